package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Input   InputConfig
	Reports ReportsConfig
	DB      DBConfig
	Redis   RedisConfig
	Server  ServerConfig
}

type InputConfig struct {
	CSVPath string
}

type ReportsConfig struct {
	Dir string
}

type DBConfig struct {
	// DSN selects postgres when set; otherwise Path names the sqlite file.
	DSN  string
	Path string
}

type ServerConfig struct {
	Addr      string
	RateLimit string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return Config{
		Input: InputConfig{
			CSVPath: getEnv("SALES_CSV", "ventas_pedidos_500.csv"),
		},
		Reports: ReportsConfig{
			Dir: getEnv("REPORTS_DIR", "reportes"),
		},
		DB: DBConfig{
			DSN:  getEnv("DB_DSN", ""),
			Path: getEnv("DB_PATH", "freshmarket.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Server: ServerConfig{
			Addr:      getEnv("SERVE_ADDR", ":8080"),
			RateLimit: getEnv("RATE_LIMIT", "60-M"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

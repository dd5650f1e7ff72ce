package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-redis/redis/v8"

	"freshmarket-system/config"
	"freshmarket-system/internal/analytics"
	"freshmarket-system/internal/database"
	"freshmarket-system/internal/ingest"
	"freshmarket-system/internal/pipeline"
	"freshmarket-system/internal/reports"
	"freshmarket-system/internal/server"
	"freshmarket-system/internal/storage"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: freshmarket <command>")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  analysis   compute the sales reports and chart")
	fmt.Fprintln(os.Stderr, "  database   load the normalized relational model")
	fmt.Fprintln(os.Stderr, "  serve      serve the reports over HTTP")
}

func main() {
	cfg := config.LoadConfig()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analysis":
		runAnalysis(cfg)
	case "database":
		runDatabase(cfg)
	case "serve":
		runServe(cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
}

func loadValidRecords(cfg config.Config) []pipeline.ValidRecord {
	raw, err := ingest.LoadFile(cfg.Input.CSVPath)
	if err != nil {
		log.Fatalf("Failed to read sales data: %v", err)
	}

	valid, rejected := pipeline.ValidateRecords(raw)
	logRejections(rejected)
	return valid
}

func logRejections(rejected []pipeline.Rejection) {
	if len(rejected) == 0 {
		return
	}
	log.Printf("Rejected %d row(s):", len(rejected))
	for _, rej := range rejected {
		log.Printf("  row %d [%s]: %s", rej.Row, rej.Reason, rej.Detail)
	}
}

func runAnalysis(cfg config.Config) {
	valid := loadValidRecords(cfg)

	top := analytics.TopProductByCity(valid)
	problems := analytics.ProblemProducts(valid)
	success := analytics.CitySuccessRates(valid)

	if err := reports.WriteAll(cfg.Reports.Dir, top, problems, success); err != nil {
		log.Fatalf("Failed to write reports: %v", err)
	}

	log.Printf("Analysis complete: %d record(s), reports in %s", len(valid), cfg.Reports.Dir)
}

func runDatabase(cfg config.Config) {
	raw, err := ingest.LoadFile(cfg.Input.CSVPath)
	if err != nil {
		log.Fatalf("Failed to read sales data: %v", err)
	}

	log.Println("Starting data migration")

	result, err := pipeline.Run(raw)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	logRejections(result.Rejected)

	db, err := database.NewConnection(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	store := storage.NewStore(db)
	if err := store.LoadResult(context.Background(), result); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	log.Printf("Migration complete: %d cities, %d products, %d customers, %d sales, %d inventory rows",
		len(result.Cities), len(result.Products), len(result.Customers), len(result.Sales), len(result.Inventory))
}

func runServe(cfg config.Config) {
	valid := loadValidRecords(cfg)

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = config.NewRedisClient(cfg.Redis)
		defer redisClient.Close()
	}

	handler := server.NewReportHandler(valid, redisClient)
	handler.InvalidateReportCaches(context.Background())

	r := server.NewRouter(handler, cfg.Server.RateLimit)

	log.Printf("Report server listening on %s", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		log.Fatalf("Failed to serve: %v", err)
	}
}

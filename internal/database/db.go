package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"freshmarket-system/config"
	"freshmarket-system/internal/database/models"
)

// NewConnection opens the relational store: postgres when a DSN is
// configured, otherwise the sqlite file.
func NewConnection(cfg config.DBConfig) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	var dialector gorm.Dialector
	if cfg.DSN != "" {
		dialector = postgres.Open(cfg.DSN)
	} else {
		dialector = sqlite.Open(cfg.Path)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	return db, nil
}

// Migrate creates the five relational tables. Dimensions go first so the
// sale and inventory foreign keys have targets.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.City{},
		&models.Product{},
		&models.Customer{},
		&models.Sale{},
		&models.Inventory{},
	)
}

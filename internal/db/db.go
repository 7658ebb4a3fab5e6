package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"aedb-backend/config"
	"aedb-backend/internal/model"
)

// Init initializes the database connection and runs migrations.
func Init(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	log.Println("Running database migrations...")
	if err := Migrate(gormDB); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	log.Println("Database initialization complete.")
	return gormDB, nil
}

// Migrate creates or updates the schema for every entity.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.Category{},
		&model.Group{},
		&model.Manual{},
		&model.MillShop{},
		&model.ProductionLine{},
		&model.Location{},
		&model.Cabinet{},
		&model.Converter{},
		&model.Unit{},
		&model.User{},
		&model.Post{},
		&model.MenuItem{},
		&model.StorageLocation{},
		&model.Equipment{},
	)
}

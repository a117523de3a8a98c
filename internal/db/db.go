package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/friendsincode/sintesi/internal/config"
)

// Connect establishes a gorm DB connection for the configured catalog
// backend.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Catalog.Backend {
	case config.DatabasePostgres:
		dialector = postgres.Open(cfg.Catalog.DSN)
	case config.DatabaseMySQL:
		dialector = mysql.Open(cfg.Catalog.DSN)
	case config.DatabaseSQLite:
		dialector = sqlite.Open(cfg.Catalog.DSN)
	default:
		return nil, fmt.Errorf("unknown catalog backend: %s", cfg.Catalog.Backend)
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

// Close releases database resources.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

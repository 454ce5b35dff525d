package database

import (
	"fmt"

	"github.com/SYH32/trivia-api/internal/config"
	"github.com/SYH32/trivia-api/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// sqlite allows one writer; a single connection also keeps
		// ":memory:" databases from being split across the pool.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	logger.Info("database connected", zap.String("driver", cfg.DBDriver))
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

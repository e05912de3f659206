package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gatepass/internal/model"
)

// Open returns a connected GORM DB for driver ("mysql", "postgres" or
// "sqlite").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql", "":
		dialector = mysql.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver != "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("pool %s: %w", driver, err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}
	return db, nil
}

// tables lists every model in drop order (dependents first).
func tables() []interface{} {
	return []interface{}{
		&model.GateLog{},
		&model.TemporaryPass{},
		&model.Vehicle{},
		&model.User{},
	}
}

// Migrate runs AutoMigrate for all models. With reset it drops the
// tables first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		slog.Warn("reset requested, dropping all tables")
		for _, table := range tables() {
			if err := db.Migrator().DropTable(table); err != nil {
				slog.Warn("failed to drop table (may not exist)", "error", err)
			}
		}
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.TemporaryPass{},
		&model.GateLog{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

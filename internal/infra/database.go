package infra

import (
	"fmt"

	"distrital4/internal/config"
	"distrital4/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured store (SQLite file or PostgreSQL) and
// prepares the schema. TranslateError is enabled so unique violations surface
// as gorm.ErrDuplicatedKey regardless of driver.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	default:
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := Open(dialector)
	if err != nil {
		return nil, err
	}

	if cfg.DBDriver == "postgres" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := SyncSchema(db, cfg.DBAlter); err != nil {
		return nil, err
	}
	return db, nil
}

// Open wraps gorm.Open with the options every handle in this service uses.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
}

// SyncSchema creates missing tables. With alter=true (DB_ALTER) it also runs
// AutoMigrate so new columns and indexes are added to existing tables.
func SyncSchema(db *gorm.DB, alter bool) error {
	models := []any{&model.Usuario{}, &model.Novedad{}}

	if alter {
		if err := db.AutoMigrate(models...); err != nil {
			return fmt.Errorf("AutoMigrate: %w", err)
		}
		return nil
	}

	m := db.Migrator()
	for _, mdl := range models {
		if m.HasTable(mdl) {
			continue
		}
		if err := m.CreateTable(mdl); err != nil {
			return fmt.Errorf("create table %T: %w", mdl, err)
		}
	}
	return nil
}

// OpenMemory returns a schema-ready in-memory SQLite handle. The pool is
// pinned to one connection because every SQLite memory connection is a
// separate database.
func OpenMemory() (*gorm.DB, error) {
	db, err := Open(sqlite.Open(":memory:"))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := SyncSchema(db, false); err != nil {
		return nil, err
	}
	return db, nil
}

package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "eventcrew/rollcall/internal/models/gorm"
)

// Migrate opens a GORM connection and brings the schema up to date. GORM
// owns DDL only; all queries go through sqlx (see store/dbstore).
func Migrate(dsn string) error {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to postgres for migration: %w", err)
	}

	if err := AutoMigrate(gdb); err != nil {
		return err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("failed to access migration connection: %w", err)
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates all tables. Split out so tests can run it
// against sqlite.
func AutoMigrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&gormModels.User{},
		&gormModels.Event{},
		&gormModels.Volunteer{},
		&gormModels.Shift{},
		&gormModels.Role{},
		&gormModels.ShiftRole{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

package main

import (
	"gorm.io/gorm"

	"github.com/warrantyit/server/internal/models"
)

// registerModels returns all models that need migration.
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Product{},
	}
}

// runMigrations executes all database migrations.
func runMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}
	return runCustomMigrations(db)
}

// runCustomMigrations handles schema changes AutoMigrate can't express.
func runCustomMigrations(db *gorm.DB) error {
	migrations := []func(*gorm.DB) error{
		enableUUIDExtension,
		addSerialNumberUniqueIndex,
	}
	for _, migration := range migrations {
		if err := migration(db); err != nil {
			return err
		}
	}
	return nil
}

// enableUUIDExtension ensures gen_random_uuid() is available.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}

// addSerialNumberUniqueIndex enforces global serial-number uniqueness, but
// only for live rows that actually carry a serial. This constraint, not the
// service-level pre-check, is the authoritative guard under races.
func addSerialNumberUniqueIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_products_serial_number
		ON products(serial_number)
		WHERE serial_number IS NOT NULL AND deleted_at IS NULL
	`).Error
}

package db

import "gorm.io/gorm"

// EnsureSchema creates the named Postgres schema if it doesn't exist yet.
// Idempotent; each feature package calls it for its own schema at startup.
func EnsureSchema(d *gorm.DB, schema string) error {
	return d.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}

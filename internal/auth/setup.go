package auth

import (
	appdb "github.com/SimratKaur2/comp2535-assignment1/internal/db"
	"gorm.io/gorm"
)

// Init creates the auth schema and tables. Idempotent; called once at
// startup.
func Init(db *gorm.DB) error {
	if err := appdb.EnsureSchema(db, "app_auth"); err != nil {
		return err
	}
	return db.AutoMigrate(&User{}, &Session{})
}

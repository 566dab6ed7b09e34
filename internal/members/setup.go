package members

import (
	"errors"

	appdb "github.com/SimratKaur2/comp2535-assignment1/internal/db"
	"gorm.io/gorm"
)

// DefaultGallery is the gallery the members page reads.
const DefaultGallery = "members"

var defaultImages = []string{
	"gif1.gif", "gif2.gif", "gif3.gif", "gif4.gif", "gif5.gif",
	"gif6.gif", "gif7.gif", "gif8.gif", "gif9.gif", "gif10.gif",
}

// Init creates the members schema and tables and seeds the default gallery.
// An existing gallery row is left alone so operators can curate it.
func Init(db *gorm.DB) error {
	if err := appdb.EnsureSchema(db, "app_members"); err != nil {
		return err
	}
	if err := db.AutoMigrate(&Gallery{}); err != nil {
		return err
	}

	var existing Gallery
	err := db.First(&existing, "name = ?", DefaultGallery).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(&Gallery{Name: DefaultGallery, Images: defaultImages}).Error
	}
	return err
}

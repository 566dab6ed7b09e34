package members

import "gorm.io/gorm"

// GalleryStore returns the image list backing the members page.
type GalleryStore interface {
	Images(name string) ([]string, error)
}

type GormGalleryStore struct {
	DB *gorm.DB
}

func (s *GormGalleryStore) Images(name string) ([]string, error) {
	var gallery Gallery
	if err := s.DB.First(&gallery, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return gallery.Images, nil
}

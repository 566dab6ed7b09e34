package members

import "github.com/lib/pq"

// Gallery is a named set of decorative images the members page draws from.
type Gallery struct {
	Name   string         `gorm:"primaryKey" json:"name"`
	Images pq.StringArray `gorm:"type:text[]" json:"images"`
}

func (Gallery) TableName() string { return "app_members.galleries" }

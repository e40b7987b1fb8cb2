// internal/models/category.go
package models

import (
	"strings"
	"time"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	Logo      string    `json:"logo" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Vehicles []Vehicle `json:"vehicles,omitempty" gorm:"foreignKey:CategoryID"`
}

// Slugify derives a URL slug from a category name: lowercased and trimmed,
// whitespace runs collapsed to single hyphens, everything outside [a-z0-9-]
// stripped.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

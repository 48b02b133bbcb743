package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. A product is "active" while the current time
// falls inside [StartDate, StartDate + Duration days].
type Product struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"size:255;not null;index"`
	CreationDate    time.Time       `json:"creation_date" gorm:"autoCreateTime"`
	CreatedByUserID uuid.UUID       `json:"created_by_user_id" gorm:"type:char(36);index"`
	StartDate       time.Time       `json:"start_date" gorm:"index;not null"`
	Duration        int             `json:"duration" gorm:"not null"` // days
	Price           decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CategoryID      uint            `json:"category_id" gorm:"index;not null"`
	ImageData       []byte          `json:"image_data,omitempty" gorm:"type:mediumblob"`
	ImageMimeType   string          `json:"image_mime_type,omitempty" gorm:"size:100"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// EndDate returns the last instant of the product's sale window.
func (p *Product) EndDate() time.Time {
	return p.StartDate.AddDate(0, 0, p.Duration)
}

// ActiveAt reports whether t falls inside the sale window, bounds inclusive.
// Mirrors the repository's SQL predicate.
func (p *Product) ActiveAt(t time.Time) bool {
	return !p.StartDate.After(t) && !p.EndDate().Before(t)
}

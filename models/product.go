package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is the central storefront entity. Category, Size and Color must
// belong to the same store as the product itself; the write handlers verify
// this before touching the row.
type Product struct {
	Id         string          `json:"id" gorm:"primaryKey;size:36"`
	StoreId    string          `json:"storeId" gorm:"size:36;index;not null"`
	Store      *Store          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CategoryId string          `json:"categoryId" gorm:"size:36;index;not null"`
	Category   *Category       `json:"category,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	SizeId     string          `json:"sizeId" gorm:"size:36;not null"`
	Size       *Size           `json:"size,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	ColorId    string          `json:"colorId" gorm:"size:36;not null"`
	Color      *Color          `json:"color,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Name       string          `json:"name" gorm:"size:255;not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsFeatured bool            `json:"isFeatured"`
	IsArchived bool            `json:"isArchived"`
	Images     []Image         `json:"images" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Image is one attachment of a product; the URL comes from the external
// image-hosting widget and is treated as an opaque string.
type Image struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	ProductId string    `json:"productId" gorm:"size:36;index;not null"`
	URL       string    `json:"url" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	return nil
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.Id == "" {
		i.Id = uuid.NewString()
	}
	return nil
}

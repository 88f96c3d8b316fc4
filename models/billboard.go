package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Billboard struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	StoreId   string    `json:"storeId" gorm:"size:36;index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Label     string    `json:"label" gorm:"size:255;not null"`
	ImageURL  string    `json:"imageUrl" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Billboard) BeforeCreate(tx *gorm.DB) error {
	if b.Id == "" {
		b.Id = uuid.NewString()
	}
	return nil
}

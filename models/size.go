package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Size struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	StoreId   string    `json:"storeId" gorm:"size:36;index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Value     string    `json:"value" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Size) BeforeCreate(tx *gorm.DB) error {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return nil
}

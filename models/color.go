package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Color value is a hex code (e.g. "#1f2937"); the handlers enforce the
// pattern before anything reaches the database.
type Color struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	StoreId   string    `json:"storeId" gorm:"size:36;index;not null"`
	Store     *Store    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Value     string    `json:"value" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Color) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	Id          string     `json:"id" gorm:"primaryKey;size:36"`
	StoreId     string     `json:"storeId" gorm:"size:36;index;not null"`
	Store       *Store     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BillboardId string     `json:"billboardId" gorm:"size:36;not null"`
	Billboard   *Billboard `json:"billboard,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Name        string     `json:"name" gorm:"size:255;not null"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Id == "" {
		c.Id = uuid.NewString()
	}
	return nil
}

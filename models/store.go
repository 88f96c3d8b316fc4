package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the tenancy root. Every other resource hangs off exactly one
// store, and the owning user id is what the ownership guard checks against.
type Store struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	UserId    string    `json:"userId" gorm:"size:36;index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.Id == "" {
		s.Id = uuid.NewString()
	}
	return nil
}

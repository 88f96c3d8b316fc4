package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is created unpaid by the storefront checkout; the dashboard only
// ever reads orders.
type Order struct {
	Id        string      `json:"id" gorm:"primaryKey;size:36"`
	StoreId   string      `json:"storeId" gorm:"size:36;index;not null"`
	Store     *Store      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IsPaid    bool        `json:"isPaid"`
	Phone     string      `json:"phone" gorm:"size:64"`
	Address   string      `json:"address" gorm:"size:255"`
	Items     []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type OrderItem struct {
	Id        string    `json:"id" gorm:"primaryKey;size:36"`
	OrderId   string    `json:"orderId" gorm:"size:36;index;not null"`
	ProductId string    `json:"productId" gorm:"size:36;not null"`
	Product   *Product  `json:"product,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Id == "" {
		o.Id = uuid.NewString()
	}
	return nil
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.Id == "" {
		oi.Id = uuid.NewString()
	}
	return nil
}

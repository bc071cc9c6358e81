package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentCash     = "cash"
	PaymentTransfer = "transfer"
	PaymentCard     = "card"
)

// WalkInUserID marks orders placed without a registered customer.
const WalkInUserID uint = 0

// Order is immutable once created.
type Order struct {
	gorm.Model
	UserID        uint      `gorm:"index" json:"userId"` // 0 = walk-in
	Total         int64     `json:"total"`               // Σ item totals, cents
	PlacedAt      time.Time `gorm:"index" json:"placedAt"`
	PaymentMethod string    `gorm:"not null" json:"paymentMethod"`

	RestaurantID uint `gorm:"index;not null" json:"restaurantId"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

package entity

import (
	"gorm.io/gorm"
)

// Cart is the pending, mutable order being assembled by one user.
type Cart struct {
	gorm.Model
	UserID       uint `gorm:"uniqueIndex" json:"userId"`
	RestaurantID uint `json:"restaurantId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

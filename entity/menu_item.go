package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryAppetizer = "appetizer"
	CategoryMain      = "main"
	CategoryDessert   = "dessert"
	CategoryBeverage  = "beverage"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"` // cents
	Category    string `gorm:"not null" json:"category"`
	ImageURL    string `json:"imageUrl"`
	IsSpecial   bool   `json:"isSpecial"`

	RestaurantID uint `gorm:"index;not null" json:"restaurantId"`

	OrderItems []OrderItem `json:"-"`
}

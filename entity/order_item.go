package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"index" json:"orderId"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload when the menu name is needed

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // catalog price at order time
	Total     int64  `json:"total"`
	Note      string `json:"note"`
}

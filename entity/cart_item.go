package entity

import (
	"gorm.io/gorm"
)

type CartItem struct {
	gorm.Model
	CartID uint `gorm:"index" json:"cartId"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshotted when the line is first added
	Note      string `json:"note"`
}

package entity

import (
	"gorm.io/gorm"
)

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleCustomer   = "customer"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"` // stored lowercase
	PasswordHash string `json:"-"`
	WhatsApp     string `json:"whatsApp"`
	Role         string `gorm:"not null;default:customer" json:"role"`

	// Owning tenant (an admin user's id). Equals the user's own ID for
	// tenant-owning admins, 0 for the superadmin.
	RestaurantID uint `gorm:"index" json:"restaurantId"`

	// Admin only
	BusinessName string `json:"businessName,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"isActive"`

	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	Orders []Order `json:"-"`
}

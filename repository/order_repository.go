package repository

import (
	"time"

	"orderdesk/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order together with its items.
func (r *OrderRepository) Create(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListByRestaurantBetween returns a tenant's orders with from <= placed_at < to,
// newest first.
func (r *OrderRepository) ListByRestaurantBetween(restaurantID uint, from, to time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("restaurant_id = ? AND placed_at >= ? AND placed_at < ?", restaurantID, from, to).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListByRestaurantAsc returns a tenant's full order history in placement
// order; reporting aggregates depend on that order for stable tie-breaks.
func (r *OrderRepository) ListByRestaurantAsc(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&orders).Error
	return orders, err
}

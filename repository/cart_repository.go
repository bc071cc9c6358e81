package repository

import (
	"errors"

	"orderdesk/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the user's cart, creating an empty one on first use.
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.DB.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = entity.Cart{UserID: userID}
		if err := r.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetWithItems preloads lines in insertion order.
func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	cart, err := r.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	err = r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.id") }).
		First(cart, cart.ID).Error
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) FindItem(cartID, menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) SaveCart(cart *entity.Cart) error {
	return r.DB.Save(cart).Error
}

func (r *CartRepository) SaveItem(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) DeleteItem(item *entity.CartItem) error {
	return r.DB.Unscoped().Delete(item).Error
}

// Clear empties the cart and unlocks it from its restaurant.
func (r *CartRepository) Clear(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return r.ClearTx(tx, userID)
	})
}

// ClearTx is Clear inside a caller-owned transaction.
func (r *CartRepository) ClearTx(tx *gorm.DB, userID uint) error {
	var cart entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Unscoped().Where("cart_id = ?", cart.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&cart).Update("restaurant_id", 0).Error
}

package repository

import (
	"orderdesk/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) FindByRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Where("restaurant_id = ?", restaurantID).
		Order("id").
		Find(&items).Error
	return items, err
}

// FindByIDForRestaurant is the only single-item lookup; scoping it to the
// tenant keeps cross-tenant reads unrepresentable.
func (r *MenuRepository) FindByIDForRestaurant(id, restaurantID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(id, restaurantID uint) error {
	return r.DB.
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Delete(&entity.MenuItem{}).Error
}

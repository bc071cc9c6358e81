package services

import (
	"errors"

	"orderdesk/entity"
	"orderdesk/repository"

	"gorm.io/gorm"
)

// MenuService manages one restaurant's catalog. Every operation takes the
// acting tenant explicitly; the tenant is never inferred from existing rows.
type MenuService struct {
	Repo     *repository.MenuRepository
	UserRepo *repository.UserRepository
}

func NewMenuService(repo *repository.MenuRepository, users *repository.UserRepository) *MenuService {
	return &MenuService{Repo: repo, UserRepo: users}
}

// MenuItemIn is the create/update payload. Price is cents and must not be
// negative; the binding rejects malformed input before it reaches the store.
type MenuItemIn struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"gte=0"`
	Category    string `json:"category" binding:"required,oneof=appetizer main dessert beverage"`
	ImageURL    string `json:"imageUrl"`
	IsSpecial   bool   `json:"isSpecial"`
}

func (s *MenuService) List(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.FindByRestaurant(restaurantID)
}

func (s *MenuService) Create(restaurantID uint, in *MenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.UserRepo.FindAdminByID(restaurantID); err != nil {
		return nil, ErrNoTenant
	}
	item := &entity.MenuItem{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		ImageURL:     in.ImageURL,
		IsSpecial:    in.IsSpecial,
		RestaurantID: restaurantID,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(restaurantID, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByIDForRestaurant(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.ImageURL = in.ImageURL
	item.IsSpecial = in.IsSpecial
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Delete(restaurantID, id uint) error {
	return s.Repo.Delete(id, restaurantID)
}

func (s *MenuService) ToggleSpecial(restaurantID, id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByIDForRestaurant(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	item.IsSpecial = !item.IsSpecial
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

package services

import (
	"errors"

	"orderdesk/entity"
	"orderdesk/repository"

	"gorm.io/gorm"
)

// CartService accumulates catalog items into pending order lines. Unit
// prices are snapshotted when a line is first added, so later catalog edits
// never change an open cart.
type CartService struct {
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository
	Tenants  *TenantService
}

func NewCartService(cr *repository.CartRepository, mr *repository.MenuRepository, ur *repository.UserRepository, tenants *TenantService) *CartService {
	return &CartService{CartRepo: cr, MenuRepo: mr, UserRepo: ur, Tenants: tenants}
}

// Get returns the cart with lines in insertion order plus the recomputed
// total. The total is never cached.
func (s *CartService) Get(userID uint) (*entity.Cart, int64, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, 0, err
	}
	var total int64
	for _, it := range cart.Items {
		total += it.UnitPrice * int64(it.Qty)
	}
	return cart, total, nil
}

// Add puts one unit of the item in the cart: an existing line gains a unit,
// otherwise a new line starts at quantity 1 with the current catalog price.
func (s *CartService) Add(userID, menuItemID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}

	// items from other restaurants are invisible to this user
	item, err := s.MenuRepo.FindByIDForRestaurant(menuItemID, user.RestaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	owner, err := s.Tenants.Owner(user)
	if err != nil {
		return err
	}
	if !owner.IsActive {
		return ErrTenantSuspended
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	if cart.RestaurantID != 0 && cart.RestaurantID != item.RestaurantID {
		return ErrCartConflict
	}
	if cart.RestaurantID == 0 {
		cart.RestaurantID = item.RestaurantID
		if err := s.CartRepo.SaveCart(cart); err != nil {
			return err
		}
	}

	line, err := s.CartRepo.FindItem(cart.ID, item.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.CartRepo.SaveItem(&entity.CartItem{
			CartID:     cart.ID,
			MenuItemID: item.ID,
			Qty:        1,
			UnitPrice:  item.Price,
		})
	}
	if err != nil {
		return err
	}
	line.Qty++
	return s.CartRepo.SaveItem(line)
}

// Remove takes one unit off the line; a line at quantity 1 is dropped.
func (s *CartService) Remove(userID, menuItemID uint) error {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	line, err := s.CartRepo.FindItem(cart.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if line.Qty > 1 {
		line.Qty--
		return s.CartRepo.SaveItem(line)
	}
	return s.CartRepo.DeleteItem(line)
}

// SetNote attaches free text to an existing line. Content is not validated.
func (s *CartService) SetNote(userID, menuItemID uint, note string) error {
	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	line, err := s.CartRepo.FindItem(cart.ID, menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	line.Note = note
	return s.CartRepo.SaveItem(line)
}

func (s *CartService) Clear(userID uint) error {
	return s.CartRepo.Clear(userID)
}

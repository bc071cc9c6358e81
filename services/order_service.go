package services

import (
	"errors"
	"time"

	"orderdesk/entity"
	"orderdesk/repository"

	"gorm.io/gorm"
)

// OrderNotifier receives every order the moment it is placed. Implemented
// by the websocket feed; nil disables notifications.
type OrderNotifier interface {
	OrderPlaced(restaurantID uint, order *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
	UserRepo *repository.UserRepository

	Feed OrderNotifier
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cr *repository.CartRepository, mr *repository.MenuRepository, ur *repository.UserRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cr, MenuRepo: mr, UserRepo: ur}
}

// OrderLine is a priced line ready for placement. UnitPrice is whatever was
// snapshotted when the line was assembled, not the current catalog price.
type OrderLine struct {
	MenuItemID uint
	Qty        int
	UnitPrice  int64
	Note       string
}

// EntryItemIn is one line of an admin-entered order; prices are taken from
// the catalog at entry time.
type EntryItemIn struct {
	MenuItemID uint   `json:"menuItemId" binding:"required"`
	Qty        int    `json:"qty" binding:"required,min=1"`
	Note       string `json:"note"`
}

// Place creates an immutable order from priced lines. The caller decides
// who the order belongs to: a registered user id, or entity.WalkInUserID
// for walk-ins. The cart is deliberately left untouched so both the
// self-service and the on-behalf flows compose with it.
func (s *OrderService) Place(restaurantID, userID uint, lines []OrderLine, paymentMethod string) (*entity.Order, error) {
	return s.place(restaurantID, userID, lines, paymentMethod, nil)
}

// place validates and commits the order. extra, when set, runs inside the
// same transaction so its effects commit or roll back with the insert.
func (s *OrderService) place(restaurantID, userID uint, lines []OrderLine, paymentMethod string, extra func(tx *gorm.DB) error) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if _, err := s.UserRepo.FindAdminByID(restaurantID); err != nil {
		return nil, ErrNoTenant
	}

	items := make([]entity.OrderItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		if l.Qty < 1 {
			return nil, ErrBadQuantity
		}
		lineTotal := l.UnitPrice * int64(l.Qty)
		total += lineTotal
		items = append(items, entity.OrderItem{
			MenuItemID: l.MenuItemID,
			Qty:        l.Qty,
			UnitPrice:  l.UnitPrice,
			Total:      lineTotal,
			Note:       l.Note,
		})
	}

	order := &entity.Order{
		UserID:        userID,
		Total:         total,
		PlacedAt:      time.Now(),
		PaymentMethod: paymentMethod,
		RestaurantID:  restaurantID,
		Items:         items,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, order); err != nil {
			return err
		}
		if extra != nil {
			return extra(tx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.OrderPlaced(restaurantID, order)
	}
	return order, nil
}

// PlaceFromCatalog prices the requested items from the current catalog and
// places the order. Used when an admin enters an order on behalf of a
// customer or a walk-in.
func (s *OrderService) PlaceFromCatalog(restaurantID, userID uint, items []EntryItemIn, paymentMethod string) (*entity.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if userID != entity.WalkInUserID {
		u, err := s.UserRepo.FindByID(userID)
		if err != nil || u.RestaurantID != restaurantID || u.Role != entity.RoleCustomer {
			return nil, ErrUnknownCustomer
		}
	}
	lines := make([]OrderLine, 0, len(items))
	for _, in := range items {
		m, err := s.MenuRepo.FindByIDForRestaurant(in.MenuItemID, restaurantID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrMenuItemNotFound
			}
			return nil, err
		}
		lines = append(lines, OrderLine{
			MenuItemID: m.ID,
			Qty:        in.Qty,
			UnitPrice:  m.Price,
			Note:       in.Note,
		})
	}
	return s.Place(restaurantID, userID, lines, paymentMethod)
}

// CheckoutFromCart turns the user's cart into an order at the snapshotted
// prices. The order insert and the cart clear commit atomically.
func (s *OrderService) CheckoutFromCart(userID uint, paymentMethod string) (*entity.Order, error) {
	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.RestaurantID == 0 {
		return nil, ErrCartEmpty
	}

	lines := make([]OrderLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, OrderLine{
			MenuItemID: it.MenuItemID,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			Note:       it.Note,
		})
	}

	return s.place(cart.RestaurantID, userID, lines, paymentMethod, func(tx *gorm.DB) error {
		return s.CartRepo.ClearTx(tx, userID)
	})
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

func (s *OrderService) ListForRestaurant(restaurantID uint) ([]entity.Order, error) {
	return s.Repo.ListByRestaurant(restaurantID)
}

package services

import (
	"fmt"
	"testing"
	"time"

	"orderdesk/entity"
	"orderdesk/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Each test gets its own named in-memory database; the name keeps pooled
// connections on the same store without leaking state between tests.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.User{},
		&entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Cart{}, &entity.CartItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	db *gorm.DB

	tenants *TenantService
	auth    *AuthService
	menu    *MenuService
	cart    *CartService
	order   *OrderService
	report  *ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := openTestDB(t)

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)

	tenants := NewTenantService(userRepo)
	return &fixture{
		db:      db,
		tenants: tenants,
		auth:    NewAuthService(userRepo, tenants, "test-secret", time.Hour),
		menu:    NewMenuService(menuRepo, userRepo),
		cart:    NewCartService(cartRepo, menuRepo, userRepo, tenants),
		order:   NewOrderService(db, orderRepo, cartRepo, menuRepo, userRepo),
		report:  NewReportService(orderRepo, userRepo),
	}
}

func (f *fixture) addAdmin(t *testing.T, username, business string) *entity.User {
	t.Helper()
	admin, err := f.auth.CreateAdmin(business, username, "password123")
	if err != nil {
		t.Fatalf("create admin %s: %v", username, err)
	}
	return admin
}

func (f *fixture) addCustomer(t *testing.T, username string, restaurantID uint) *entity.User {
	t.Helper()
	_, user, err := f.auth.Register(restaurantID, username, "password123", "000", entity.RoleCustomer)
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func (f *fixture) addMenuItem(t *testing.T, restaurantID uint, name string, price int64) *entity.MenuItem {
	t.Helper()
	item, err := f.menu.Create(restaurantID, &MenuItemIn{
		Name:     name,
		Price:    price,
		Category: entity.CategoryMain,
	})
	if err != nil {
		t.Fatalf("create menu item %s: %v", name, err)
	}
	return item
}

// placeAt backdates an order for report tests.
func (f *fixture) placeAt(t *testing.T, restaurantID, userID uint, total int64, placedAt time.Time) *entity.Order {
	t.Helper()
	order := &entity.Order{
		UserID:        userID,
		Total:         total,
		PlacedAt:      placedAt,
		PaymentMethod: entity.PaymentCash,
		RestaurantID:  restaurantID,
		Items: []entity.OrderItem{
			{MenuItemID: 1, Qty: 1, UnitPrice: total, Total: total},
		},
	}
	if err := f.db.Create(order).Error; err != nil {
		t.Fatalf("place order: %v", err)
	}
	return order
}

package configs

import (
	"log"
	"time"

	"orderdesk/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedRoot creates the superadmin account once, from env credentials. No
// credential in the environment means no superadmin; there is no built-in
// bypass login.
func SeedRoot(cfg *Config) error {
	if cfg.RootUsername == "" || cfg.RootPassword == "" {
		log.Println("skip seeding superadmin: missing ROOT_USERNAME/ROOT_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.RootUsername).Count(&count)
	if count > 0 {
		log.Println("superadmin already exists:", cfg.RootUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.RootPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	root := entity.User{
		Username:     cfg.RootUsername,
		PasswordHash: string(hash),
		WhatsApp:     "N/A",
		Role:         entity.RoleSuperadmin,
		IsActive:     true,
	}
	return db.Create(&root).Error
}

func seedAdmin(tx *gorm.DB, username, password, businessName, whatsApp string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := entity.User{
		Username:     username,
		PasswordHash: string(hash),
		WhatsApp:     whatsApp,
		Role:         entity.RoleAdmin,
		BusinessName: businessName,
		IsActive:     true,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return nil, err
	}
	// tenant owners own themselves
	admin.RestaurantID = admin.ID
	if err := tx.Model(&admin).Update("restaurant_id", admin.ID).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func seedCustomer(tx *gorm.DB, username, password, whatsApp string, restaurantID uint, city, country string) (*entity.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		Username:     username,
		PasswordHash: string(hash),
		WhatsApp:     whatsApp,
		Role:         entity.RoleCustomer,
		RestaurantID: restaurantID,
		IsActive:     true,
		City:         city,
		Country:      country,
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedOrder(tx *gorm.DB, restaurantID, userID uint, daysAgo int, payment string, items []entity.OrderItem) error {
	var total int64
	for i := range items {
		items[i].Total = items[i].UnitPrice * int64(items[i].Qty)
		total += items[i].Total
	}
	order := entity.Order{
		UserID:        userID,
		Total:         total,
		PlacedAt:      time.Now().AddDate(0, 0, -daysAgo),
		PaymentMethod: payment,
		RestaurantID:  restaurantID,
		Items:         items,
	}
	return tx.Create(&order).Error
}

// SeedDemo loads two example restaurants with menus and a week of order
// history, so dashboards and reports have something to show on a fresh
// in-memory database.
func SeedDemo() error {
	var count int64
	db.Model(&entity.User{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		log.Println("demo data already seeded")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		// Restaurant 1: Madison's Italian Kitchen
		madison, err := seedAdmin(tx, "admin", "password123", "Madison's Italian Kitchen", "111-222-3333")
		if err != nil {
			return err
		}
		john, err := seedCustomer(tx, "john", "password123", "444-555-6666", madison.ID, "Madrid", "ES")
		if err != nil {
			return err
		}

		// Restaurant 2: Dave's Burger Shack
		dave, err := seedAdmin(tx, "dave", "password123", "Dave's Burger Shack", "777-888-9999")
		if err != nil {
			return err
		}
		jane, err := seedCustomer(tx, "jane", "password123", "123-456-7890", dave.ID, "Barcelona", "ES")
		if err != nil {
			return err
		}

		italian := []entity.MenuItem{
			{Name: "Bruschetta al Pomodoro", Description: "Toasted bread with fresh tomatoes, garlic, basil and olive oil.", Price: 850, Category: entity.CategoryAppetizer, RestaurantID: madison.ID},
			{Name: "Lasagna alla Bolognese", Description: "Layers of pasta with rich meat sauce, bechamel and parmesan.", Price: 1500, Category: entity.CategoryMain, IsSpecial: true, RestaurantID: madison.ID},
			{Name: "Classic Tiramisu", Description: "Coffee-soaked sponge layered with mascarpone cream and cocoa.", Price: 700, Category: entity.CategoryDessert, RestaurantID: madison.ID},
			{Name: "Fresh Lemonade", Description: "Freshly squeezed lemon juice, water and a touch of sugar.", Price: 400, Category: entity.CategoryBeverage, RestaurantID: madison.ID},
			{Name: "Caprese Salad", Description: "Fresh tomato, buffalo mozzarella, basil, salt and olive oil.", Price: 1000, Category: entity.CategoryAppetizer, RestaurantID: madison.ID},
			{Name: "Pizza Margherita", Description: "Tomato sauce, fresh mozzarella, basil, salt and oil.", Price: 1250, Category: entity.CategoryMain, IsSpecial: true, RestaurantID: madison.ID},
			{Name: "Panna Cotta", Description: "Cooked cream dessert topped with red berries.", Price: 650, Category: entity.CategoryDessert, RestaurantID: madison.ID},
			{Name: "House Red Wine (Glass)", Description: "Selection of the house red.", Price: 550, Category: entity.CategoryBeverage, RestaurantID: madison.ID},
		}
		burgers := []entity.MenuItem{
			{Name: "Classic Burger", Description: "Beef patty, lettuce, tomato, onion, and our special sauce.", Price: 1100, Category: entity.CategoryMain, RestaurantID: dave.ID},
			{Name: "Loaded Fries", Description: "Crispy fries topped with cheese, bacon, and chives.", Price: 750, Category: entity.CategoryAppetizer, IsSpecial: true, RestaurantID: dave.ID},
			{Name: "Chocolate Milkshake", Description: "Thick and creamy chocolate milkshake.", Price: 600, Category: entity.CategoryBeverage, RestaurantID: dave.ID},
		}
		if err := tx.Create(&italian).Error; err != nil {
			return err
		}
		if err := tx.Create(&burgers).Error; err != nil {
			return err
		}

		// A week of order history for the weekly chart and customer stats.
		history := []struct {
			restaurantID uint
			userID       uint
			daysAgo      int
			payment      string
			items        []entity.OrderItem
		}{
			{madison.ID, john.ID, 1, entity.PaymentCard, []entity.OrderItem{
				{MenuItemID: italian[1].ID, Qty: 1, UnitPrice: italian[1].Price},
				{MenuItemID: italian[3].ID, Qty: 1, UnitPrice: italian[3].Price},
			}},
			{madison.ID, john.ID, 2, entity.PaymentCash, []entity.OrderItem{
				{MenuItemID: italian[5].ID, Qty: 2, UnitPrice: italian[5].Price},
			}},
			{madison.ID, john.ID, 3, entity.PaymentTransfer, []entity.OrderItem{
				{MenuItemID: italian[0].ID, Qty: 1, UnitPrice: italian[0].Price},
				{MenuItemID: italian[2].ID, Qty: 1, UnitPrice: italian[2].Price},
			}},
			{madison.ID, john.ID, 5, entity.PaymentCard, []entity.OrderItem{
				{MenuItemID: italian[4].ID, Qty: 1, UnitPrice: italian[4].Price},
			}},
			{madison.ID, john.ID, 6, entity.PaymentCash, []entity.OrderItem{
				{MenuItemID: italian[1].ID, Qty: 2, UnitPrice: italian[1].Price},
				{MenuItemID: italian[7].ID, Qty: 2, UnitPrice: italian[7].Price},
			}},
			{dave.ID, jane.ID, 1, entity.PaymentCash, []entity.OrderItem{
				{MenuItemID: burgers[0].ID, Qty: 2, UnitPrice: burgers[0].Price},
				{MenuItemID: burgers[2].ID, Qty: 2, UnitPrice: burgers[2].Price},
			}},
			{dave.ID, jane.ID, 4, entity.PaymentCard, []entity.OrderItem{
				{MenuItemID: burgers[1].ID, Qty: 1, UnitPrice: burgers[1].Price},
			}},
		}
		for _, h := range history {
			if err := seedOrder(tx, h.restaurantID, h.userID, h.daysAgo, h.payment, h.items); err != nil {
				return err
			}
		}

		log.Println("demo restaurants seeded")
		return nil
	})
}

package repository

import (
	"orderdesk/entity"

	"gorm.io/gorm"
)

// UserRepository owns all queries against the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByUsername expects an already-lowercased username; usernames are
// stored lowercase so the unique index doubles as the case-insensitive
// uniqueness rule.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// CreateAdmin creates a tenant-owning admin: its RestaurantID is its own
// freshly assigned ID, written in the same transaction.
func (r *UserRepository) CreateAdmin(user *entity.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		user.RestaurantID = user.ID
		return tx.Model(user).Update("restaurant_id", user.ID).Error
	})
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) Save(user *entity.User) error {
	return r.DB.Save(user).Error
}

// FindAdminByID resolves a tenant owner: the admin whose id equals the
// tenant id.
func (r *UserRepository) FindAdminByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("id = ? AND role = ?", id, entity.RoleAdmin).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FirstAdmin is the default tenant when none is requested.
func (r *UserRepository) FirstAdmin() (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("role = ?", entity.RoleAdmin).Order("id").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindAdmins() ([]entity.User, error) {
	var admins []entity.User
	err := r.DB.Where("role = ?", entity.RoleAdmin).Order("id").Find(&admins).Error
	return admins, err
}

// FindCustomersByRestaurant returns a tenant's registered customers in
// creation order, which reporting relies on for stable tie-breaks.
func (r *UserRepository) FindCustomersByRestaurant(restaurantID uint) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.
		Where("restaurant_id = ? AND role = ?", restaurantID, entity.RoleCustomer).
		Order("id").
		Find(&users).Error
	return users, err
}

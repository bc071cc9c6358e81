package services

import (
	"strings"
	"time"

	"orderdesk/entity"
	"orderdesk/repository"
	"orderdesk/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService owns login, registration and user-record management.
type AuthService struct {
	UserRepo  *repository.UserRepository
	Tenants   *TenantService
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, tenants *TenantService, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		UserRepo:  repo,
		Tenants:   tenants,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Login verifies credentials and issues a session token. Customers of a
// suspended restaurant are rejected even with valid credentials; admins can
// still log into their own suspended restaurant to manage it.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.UserRepo.FindByUsername(normalizeUsername(username))
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if user.Role == entity.RoleCustomer {
		owner, err := s.Tenants.Owner(user)
		if err != nil || !owner.IsActive {
			return "", nil, ErrTenantSuspended
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.RestaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a user under the given tenant and logs them in. The
// tenant must resolve and be active; usernames are unique across all
// tenants, case-insensitively.
func (s *AuthService) Register(restaurantID uint, username, password, whatsApp, role string) (string, *entity.User, error) {
	owner, active, err := s.Tenants.Resolve(restaurantID)
	if err != nil {
		return "", nil, err
	}
	if !active {
		return "", nil, ErrTenantSuspended
	}

	uname := normalizeUsername(username)
	count, err := s.UserRepo.CountByUsername(uname)
	if err != nil {
		return "", nil, err
	}
	if count > 0 {
		return "", nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	if role != entity.RoleAdmin {
		role = entity.RoleCustomer
	}
	user := &entity.User{
		Username:     uname,
		PasswordHash: string(hashed),
		WhatsApp:     strings.TrimSpace(whatsApp),
		Role:         role,
		RestaurantID: owner.ID,
		IsActive:     true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.RestaurantID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.UserRepo.FindByID(userID)
}

// UpdateProfile applies a partial update; the caller whitelists fields.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if pw, ok := updates["password"]; ok {
		hashed, err := bcrypt.GenerateFromPassword([]byte(pw.(string)), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		delete(updates, "password")
		updates["password_hash"] = string(hashed)
	}
	if err := s.UserRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.UserRepo.FindByID(userID)
}

// CreateAdmin provisions a new restaurant tenant: an admin user owning
// itself. Caller must enforce the superadmin guard.
func (s *AuthService) CreateAdmin(businessName, username, password string) (*entity.User, error) {
	uname := normalizeUsername(username)
	count, err := s.UserRepo.CountByUsername(uname)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &entity.User{
		Username:     uname,
		PasswordHash: string(hashed),
		WhatsApp:     "N/A",
		Role:         entity.RoleAdmin,
		BusinessName: strings.TrimSpace(businessName),
		IsActive:     true,
	}
	if err := s.UserRepo.CreateAdmin(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ToggleAdminStatus flips a restaurant's active flag. Rejected when the
// target is not an admin.
func (s *AuthService) ToggleAdminStatus(adminID uint) (*entity.User, error) {
	user, err := s.UserRepo.FindByID(adminID)
	if err != nil {
		return nil, err
	}
	if user.Role != entity.RoleAdmin {
		return nil, ErrNotAdmin
	}
	user.IsActive = !user.IsActive
	if err := s.UserRepo.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListAdmins() ([]entity.User, error) {
	return s.UserRepo.FindAdmins()
}

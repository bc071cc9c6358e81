package services

import (
	"orderdesk/entity"
	"orderdesk/repository"
)

// TenantService resolves which restaurant a request acts on. A tenant is an
// admin user whose id doubles as the restaurant id.
type TenantService struct {
	UserRepo *repository.UserRepository
}

func NewTenantService(repo *repository.UserRepository) *TenantService {
	return &TenantService{UserRepo: repo}
}

// Resolve returns the owning admin of the requested tenant, or the first
// admin on record when no tenant is requested. The second result reports
// whether the tenant is currently active.
func (s *TenantService) Resolve(requested uint) (*entity.User, bool, error) {
	var (
		admin *entity.User
		err   error
	)
	if requested != 0 {
		admin, err = s.UserRepo.FindAdminByID(requested)
	} else {
		admin, err = s.UserRepo.FirstAdmin()
	}
	if err != nil {
		return nil, false, ErrNoTenant
	}
	return admin, admin.IsActive, nil
}

// Owner returns the admin owning the given user's tenant.
func (s *TenantService) Owner(user *entity.User) (*entity.User, error) {
	admin, err := s.UserRepo.FindAdminByID(user.RestaurantID)
	if err != nil {
		return nil, ErrNoTenant
	}
	return admin, nil
}

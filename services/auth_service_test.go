package services

import (
	"errors"
	"testing"

	"orderdesk/entity"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	f.addCustomer(t, "john", admin.ID)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"admin ok", "admin", "password123", nil},
		{"customer ok", "john", "password123", nil},
		{"case-insensitive username", "ADMIN", "password123", nil},
		{"wrong password", "admin", "nope", ErrInvalidCredentials},
		{"unknown user", "ghost", "password123", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, user, err := f.auth.Login(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login(%q) err = %v, want %v", tt.username, err, tt.wantErr)
			}
			if tt.wantErr == nil {
				if token == "" {
					t.Error("expected a session token")
				}
				if user == nil {
					t.Fatal("expected a user")
				}
			}
		})
	}
}

func TestLoginSuspendedTenant(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	f.addCustomer(t, "john", admin.ID)

	if _, err := f.auth.ToggleAdminStatus(admin.ID); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	// customers of a suspended restaurant are locked out
	if _, _, err := f.auth.Login("john", "password123"); !errors.Is(err, ErrTenantSuspended) {
		t.Errorf("customer login err = %v, want ErrTenantSuspended", err)
	}
	// the admin can still get in to manage it
	if _, _, err := f.auth.Login("admin", "password123"); err != nil {
		t.Errorf("admin login err = %v, want nil", err)
	}

	// reactivation restores customer access
	if _, err := f.auth.ToggleAdminStatus(admin.ID); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	if _, _, err := f.auth.Login("john", "password123"); err != nil {
		t.Errorf("customer login after reactivation err = %v, want nil", err)
	}
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")

	token, user, err := f.auth.Register(admin.ID, "Bob", "password123", "555", entity.RoleCustomer)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Error("registration should start a session")
	}
	if user.Username != "bob" {
		t.Errorf("username stored as %q, want lowercase %q", user.Username, "bob")
	}
	if user.RestaurantID != admin.ID {
		t.Errorf("user scoped to restaurant %d, want %d", user.RestaurantID, admin.ID)
	}

	// uniqueness is case-insensitive and global
	if _, _, err := f.auth.Register(admin.ID, "BOB", "password123", "555", entity.RoleCustomer); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate register err = %v, want ErrUsernameTaken", err)
	}

	// usernames clash across tenants too
	other := f.addAdmin(t, "dave", "Dave's Burger Shack")
	if _, _, err := f.auth.Register(other.ID, "bob", "password123", "555", entity.RoleCustomer); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("cross-tenant duplicate err = %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterSuspendedTenant(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	if _, err := f.auth.ToggleAdminStatus(admin.ID); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	if _, _, err := f.auth.Register(admin.ID, "late", "password123", "555", entity.RoleCustomer); !errors.Is(err, ErrTenantSuspended) {
		t.Errorf("register err = %v, want ErrTenantSuspended", err)
	}
}

func TestRegisterNoTenant(t *testing.T) {
	f := newFixture(t)

	if _, _, err := f.auth.Register(0, "orphan", "password123", "555", entity.RoleCustomer); !errors.Is(err, ErrNoTenant) {
		t.Errorf("register err = %v, want ErrNoTenant", err)
	}
}

func TestCreateAdmin(t *testing.T) {
	f := newFixture(t)

	admin, err := f.auth.CreateAdmin("Dave's Burger Shack", "dave", "password123")
	if err != nil {
		t.Fatalf("create admin: %v", err)
	}
	if admin.RestaurantID != admin.ID {
		t.Errorf("admin owns restaurant %d, want its own id %d", admin.RestaurantID, admin.ID)
	}
	if !admin.IsActive {
		t.Error("new restaurants start active")
	}

	if _, err := f.auth.CreateAdmin("Copycat", "DAVE", "password123"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate create err = %v, want ErrUsernameTaken", err)
	}
}

func TestToggleAdminStatusRejectsNonAdmins(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	customer := f.addCustomer(t, "john", admin.ID)

	if _, err := f.auth.ToggleAdminStatus(customer.ID); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("toggle on customer err = %v, want ErrNotAdmin", err)
	}
}

package services

import (
	"errors"
	"testing"
)

func TestTenantResolve(t *testing.T) {
	f := newFixture(t)
	first := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	second := f.addAdmin(t, "dave", "Dave's Burger Shack")
	customer := f.addCustomer(t, "john", first.ID)

	t.Run("explicit id", func(t *testing.T) {
		admin, active, err := f.tenants.Resolve(second.ID)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if admin.ID != second.ID || !active {
			t.Errorf("got admin %d active=%v, want %d active=true", admin.ID, active, second.ID)
		}
	})

	t.Run("default is first admin", func(t *testing.T) {
		admin, _, err := f.tenants.Resolve(0)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if admin.ID != first.ID {
			t.Errorf("default tenant = %d, want first admin %d", admin.ID, first.ID)
		}
	})

	t.Run("customer id is not a tenant", func(t *testing.T) {
		if _, _, err := f.tenants.Resolve(customer.ID); !errors.Is(err, ErrNoTenant) {
			t.Errorf("err = %v, want ErrNoTenant", err)
		}
	})

	t.Run("suspended tenant resolves inactive", func(t *testing.T) {
		if _, err := f.auth.ToggleAdminStatus(second.ID); err != nil {
			t.Fatalf("suspend: %v", err)
		}
		_, active, err := f.tenants.Resolve(second.ID)
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if active {
			t.Error("suspended tenant reported active")
		}
	})
}

func TestTenantResolveEmpty(t *testing.T) {
	f := newFixture(t)
	if _, _, err := f.tenants.Resolve(0); !errors.Is(err, ErrNoTenant) {
		t.Errorf("err = %v, want ErrNoTenant", err)
	}
}

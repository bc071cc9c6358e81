package services

import (
	"testing"
	"time"

	"orderdesk/entity"
)

func TestDailyPartition(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	john := f.addCustomer(t, "john", admin.ID)

	now := time.Now()
	f.placeAt(t, admin.ID, john.ID, 1900, now)
	f.placeAt(t, admin.ID, entity.WalkInUserID, 700, now)
	f.placeAt(t, admin.ID, entity.WalkInUserID, 300, now)
	f.placeAt(t, admin.ID, john.ID, 5000, now.AddDate(0, 0, -1)) // yesterday, excluded

	daily, err := f.report.Daily(admin.ID, now)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if daily.RegisteredTotal != 1900 {
		t.Errorf("registered total = %d, want 1900", daily.RegisteredTotal)
	}
	if daily.WalkInTotal != 1000 {
		t.Errorf("walk-in total = %d, want 1000", daily.WalkInTotal)
	}
	if daily.Total != 2900 {
		t.Errorf("total = %d, want 2900", daily.Total)
	}
	if len(daily.RegisteredOrders) != 1 || len(daily.WalkInOrders) != 2 {
		t.Errorf("partition sizes %d/%d, want 1/2", len(daily.RegisteredOrders), len(daily.WalkInOrders))
	}
}

func TestWeeklySeries(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	john := f.addCustomer(t, "john", admin.ID)

	now := time.Now()
	f.placeAt(t, admin.ID, john.ID, 1000, now)
	f.placeAt(t, admin.ID, john.ID, 200, now.AddDate(0, 0, -3))
	f.placeAt(t, admin.ID, john.ID, 300, now.AddDate(0, 0, -3))
	f.placeAt(t, admin.ID, john.ID, 9999, now.AddDate(0, 0, -8)) // outside the window

	points, err := f.report.Weekly(admin.ID, now)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("got %d points, want exactly 7", len(points))
	}

	// oldest first, today last
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i, p := range points {
		wantDate := today.AddDate(0, 0, i-6).Format("2006-01-02")
		if p.Date != wantDate {
			t.Errorf("points[%d].Date = %s, want %s", i, p.Date, wantDate)
		}
	}

	if points[6].Total != 1000 {
		t.Errorf("today's total = %d, want 1000", points[6].Total)
	}
	if points[3].Total != 500 {
		t.Errorf("3-days-ago total = %d, want 500", points[3].Total)
	}
	// days without orders are present with zero, not absent
	if points[0].Total != 0 || points[1].Total != 0 {
		t.Errorf("empty days should report 0, got %d and %d", points[0].Total, points[1].Total)
	}
}

func TestCustomerStats(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	alice := f.addCustomer(t, "alice", admin.ID)
	bob := f.addCustomer(t, "bob", admin.ID)
	carol := f.addCustomer(t, "carol", admin.ID)
	dora := f.addCustomer(t, "dora", admin.ID)

	now := time.Now()
	// alice: 2 orders, 3000 total; bob: 1 order, 5000; carol: 3 orders, 900
	f.placeAt(t, admin.ID, alice.ID, 1000, now)
	f.placeAt(t, admin.ID, alice.ID, 2000, now.AddDate(0, 0, -10)) // history counts, not just today
	f.placeAt(t, admin.ID, bob.ID, 5000, now)
	f.placeAt(t, admin.ID, carol.ID, 300, now)
	f.placeAt(t, admin.ID, carol.ID, 300, now)
	f.placeAt(t, admin.ID, carol.ID, 300, now)
	// walk-in revenue belongs to no customer
	f.placeAt(t, admin.ID, entity.WalkInUserID, 99999, now)

	stats, err := f.report.CustomerStats(admin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if len(stats.TopSpenders) != 3 {
		t.Fatalf("top spenders = %d entries, want 3", len(stats.TopSpenders))
	}
	wantSpenders := []struct {
		username string
		spent    int64
	}{
		{"bob", 5000},
		{"alice", 3000},
		{"carol", 900},
	}
	for i, w := range wantSpenders {
		got := stats.TopSpenders[i]
		if got.User.Username != w.username || got.TotalSpent != w.spent {
			t.Errorf("topSpenders[%d] = %s/%d, want %s/%d", i, got.User.Username, got.TotalSpent, w.username, w.spent)
		}
	}

	wantFrequent := []struct {
		username string
		count    int
	}{
		{"carol", 3},
		{"alice", 2},
		{"bob", 1},
	}
	for i, w := range wantFrequent {
		got := stats.MostFrequent[i]
		if got.User.Username != w.username || got.OrderCount != w.count {
			t.Errorf("mostFrequent[%d] = %s/%d, want %s/%d", i, got.User.Username, got.OrderCount, w.username, w.count)
		}
	}

	// dora never ordered and must not displace anyone; no walk-in entry
	for _, s := range stats.TopSpenders {
		if s.User.ID == dora.ID {
			t.Error("customer with no orders ranked in top spenders")
		}
		if s.User.ID == entity.WalkInUserID {
			t.Error("walk-in sentinel leaked into customer stats")
		}
	}
}

func TestCustomerStatsStableTies(t *testing.T) {
	f := newFixture(t)
	admin := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	first := f.addCustomer(t, "first", admin.ID)
	second := f.addCustomer(t, "second", admin.ID)

	now := time.Now()
	f.placeAt(t, admin.ID, second.ID, 1000, now)
	f.placeAt(t, admin.ID, first.ID, 1000, now)

	stats, err := f.report.CustomerStats(admin.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	// equal spend: registration order wins
	if stats.TopSpenders[0].User.ID != first.ID {
		t.Errorf("tie broken against registration order, got %s first", stats.TopSpenders[0].User.Username)
	}
}

func TestReportTenantIsolation(t *testing.T) {
	f := newFixture(t)
	madison := f.addAdmin(t, "admin", "Madison's Italian Kitchen")
	dave := f.addAdmin(t, "dave", "Dave's Burger Shack")
	john := f.addCustomer(t, "john", madison.ID)
	jane := f.addCustomer(t, "jane", dave.ID)

	now := time.Now()
	f.placeAt(t, madison.ID, john.ID, 1000, now)
	f.placeAt(t, dave.ID, jane.ID, 7777, now)

	daily, err := f.report.Daily(madison.ID, now)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if daily.Total != 1000 {
		t.Errorf("restaurant A total = %d, want 1000 (no bleed from B)", daily.Total)
	}

	stats, err := f.report.CustomerStats(madison.ID)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, s := range stats.TopSpenders {
		if s.User.ID == jane.ID {
			t.Error("another restaurant's customer in the stats")
		}
	}
}

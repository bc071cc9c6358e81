package services

import (
	"sort"
	"time"

	"orderdesk/entity"
	"orderdesk/repository"
)

// ReportService derives sales views by scanning a tenant's orders. Nothing
// is cached or persisted; every call recomputes from the store.
type ReportService struct {
	OrderRepo *repository.OrderRepository
	UserRepo  *repository.UserRepository
}

func NewReportService(or *repository.OrderRepository, ur *repository.UserRepository) *ReportService {
	return &ReportService{OrderRepo: or, UserRepo: ur}
}

type DailySales struct {
	Total            int64          `json:"total"`
	RegisteredTotal  int64          `json:"registeredTotal"`
	WalkInTotal      int64          `json:"walkInTotal"`
	RegisteredOrders []entity.Order `json:"registeredOrders"`
	WalkInOrders     []entity.Order `json:"walkInOrders"`
}

// Daily partitions today's orders into walk-in and registered, newest first.
func (s *ReportService) Daily(restaurantID uint, now time.Time) (*DailySales, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	orders, err := s.OrderRepo.ListByRestaurantBetween(restaurantID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	out := &DailySales{
		RegisteredOrders: []entity.Order{},
		WalkInOrders:     []entity.Order{},
	}
	for _, o := range orders {
		if o.UserID == entity.WalkInUserID {
			out.WalkInTotal += o.Total
			out.WalkInOrders = append(out.WalkInOrders, o)
		} else {
			out.RegisteredTotal += o.Total
			out.RegisteredOrders = append(out.RegisteredOrders, o)
		}
	}
	out.Total = out.WalkInTotal + out.RegisteredTotal
	return out, nil
}

type WeeklyPoint struct {
	Date    string `json:"date"` // local calendar day, 2006-01-02
	Weekday string `json:"weekday"`
	Total   int64  `json:"total"`
}

// Weekly returns exactly seven entries for the trailing seven calendar days
// including today, oldest first. Days without orders appear with total 0.
func (s *ReportService) Weekly(restaurantID uint, now time.Time) ([]WeeklyPoint, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -6)

	orders, err := s.OrderRepo.ListByRestaurantBetween(restaurantID, start, today.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, 7)
	for _, o := range orders {
		totals[o.PlacedAt.In(now.Location()).Format("2006-01-02")] += o.Total
	}

	points := make([]WeeklyPoint, 0, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		key := d.Format("2006-01-02")
		points = append(points, WeeklyPoint{
			Date:    key,
			Weekday: d.Weekday().String()[:3],
			Total:   totals[key],
		})
	}
	return points, nil
}

type CustomerStat struct {
	User       entity.User `json:"user"`
	TotalSpent int64       `json:"totalSpent"`
	OrderCount int         `json:"orderCount"`
}

type CustomerHighlights struct {
	TopSpenders  []CustomerStat `json:"topSpenders"`
	MostFrequent []CustomerStat `json:"mostFrequent"`
}

// CustomerStats aggregates spend and order count per registered customer
// over the tenant's whole history. Walk-in orders carry the sentinel user id
// and are excluded on purpose: they belong to no customer. Ties keep
// registration order.
func (s *ReportService) CustomerStats(restaurantID uint) (*CustomerHighlights, error) {
	customers, err := s.UserRepo.FindCustomersByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.ListByRestaurantAsc(restaurantID)
	if err != nil {
		return nil, err
	}

	stats := make([]CustomerStat, len(customers))
	index := make(map[uint]int, len(customers))
	for i, c := range customers {
		stats[i] = CustomerStat{User: c}
		index[c.ID] = i
	}
	for _, o := range orders {
		if i, ok := index[o.UserID]; ok {
			stats[i].TotalSpent += o.Total
			stats[i].OrderCount++
		}
	}

	top := func(less func(a, b CustomerStat) bool) []CustomerStat {
		sorted := make([]CustomerStat, len(stats))
		copy(sorted, stats)
		sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
		if len(sorted) > 3 {
			sorted = sorted[:3]
		}
		return sorted
	}

	return &CustomerHighlights{
		TopSpenders:  top(func(a, b CustomerStat) bool { return a.TotalSpent > b.TotalSpent }),
		MostFrequent: top(func(a, b CustomerStat) bool { return a.OrderCount > b.OrderCount }),
	}, nil
}

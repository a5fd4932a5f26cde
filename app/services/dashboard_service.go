package services

import (
	"RestaurantApp/app/database"
	"RestaurantApp/app/models"
	"time"

	"gorm.io/gorm"
)

// DashboardService serves the read-only sales views. It never writes.
type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService() *DashboardService {
	return &DashboardService{
		db:  database.GetDB(),
		now: time.Now,
	}
}

// DailySales is one bar of the monthly sales chart.
type DailySales struct {
	Day    string  `json:"day"` // YYYY-MM-DD
	Total  float64 `json:"total"`
	Orders int     `json:"orders"`
	Items  float64 `json:"items"`
}

// GetOrdersSinceYesterday returns the orders settled since yesterday
// midnight, newest first: the dashboard's working set.
func (s *DashboardService) GetOrdersSinceYesterday() ([]models.PaidOrder, error) {
	now := s.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfYesterday := startOfDay.Add(-24 * time.Hour)

	var orders []models.PaidOrder
	err := s.db.Where("paid_time >= ?", startOfYesterday).
		Order("paid_time DESC, id DESC").Find(&orders).Error
	return orders, err
}

// GetMonthlySales buckets a month's paid orders per day for the sales
// chart. Days without sales are absent.
func (s *DashboardService) GetMonthlySales(year int, month time.Month) ([]DailySales, error) {
	loc := s.now().Location()
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	var orders []models.PaidOrder
	if err := s.db.Where("paid_time >= ? AND paid_time < ?", start, end).
		Order("paid_time ASC").Find(&orders).Error; err != nil {
		return nil, err
	}

	totals := make(map[string]*DailySales)
	var days []string
	for _, order := range orders {
		day := order.PaidAt.In(loc).Format("2006-01-02")
		entry, ok := totals[day]
		if !ok {
			entry = &DailySales{Day: day}
			totals[day] = entry
			days = append(days, day)
		}
		entry.Total += order.TotalPrice
		entry.Orders++
		entry.Items += order.TotalQuantity
	}

	out := make([]DailySales, 0, len(days))
	for _, day := range days {
		out = append(out, *totals[day])
	}
	return out, nil
}

// GetUnpaidCount reports how many orders sit in the unpaid table.
func (s *DashboardService) GetUnpaidCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.UnpaidOrder{}).Count(&count).Error
	return count, err
}

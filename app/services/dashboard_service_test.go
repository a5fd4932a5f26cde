package services

import (
	"testing"
	"time"

	"RestaurantApp/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidOrderAt(t *testing.T, svc *DashboardService, paidAt time.Time, total, quantity float64) {
	t.Helper()
	require.NoError(t, svc.db.Create(&models.PaidOrder{
		OrderSnapshot: models.OrderSnapshot{
			Items:         models.FoodLines{foodLine("چلو کباب", quantity, total)},
			TotalPrice:    total,
			TotalQuantity: quantity,
			OrderedAt:     paidAt,
		},
		PaidAt:        paidAt,
		PaymentMethod: DefaultPaymentMethod,
	}).Error)
}

func TestGetOrdersSinceYesterday(t *testing.T) {
	db := openTestDB(t)
	svc := &DashboardService{db: db, now: fixedClock}

	// Inserted out of settlement order on purpose: the newest settlement
	// lands on the lowest id.
	paidOrderAt(t, svc, testNow.Add(-2*time.Hour), 180000, 1)    // today
	paidOrderAt(t, svc, testNow.Add(-30*time.Hour), 360000, 2)   // yesterday morning
	paidOrderAt(t, svc, testNow.Add(-3*24*time.Hour), 500000, 3) // too old

	orders, err := svc.GetOrdersSinceYesterday()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	// Newest settlement first, independent of insertion order.
	assert.Equal(t, 180000.0, orders[0].TotalPrice)
	assert.Equal(t, 360000.0, orders[1].TotalPrice)
}

func TestGetMonthlySales(t *testing.T) {
	db := openTestDB(t)
	svc := &DashboardService{db: db, now: fixedClock}

	day3 := time.Date(2024, time.May, 3, 13, 0, 0, 0, time.UTC)
	day17 := time.Date(2024, time.May, 17, 20, 30, 0, 0, time.UTC)
	paidOrderAt(t, svc, day3, 100000, 1)
	paidOrderAt(t, svc, day3.Add(2*time.Hour), 150000, 2)
	paidOrderAt(t, svc, day17, 200000, 1)
	paidOrderAt(t, svc, time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC), 999999, 9) // next month

	sales, err := svc.GetMonthlySales(2024, time.May)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	assert.Equal(t, "2024-05-03", sales[0].Day)
	assert.Equal(t, 250000.0, sales[0].Total)
	assert.Equal(t, 2, sales[0].Orders)
	assert.Equal(t, 3.0, sales[0].Items)

	assert.Equal(t, "2024-05-17", sales[1].Day)
	assert.Equal(t, 200000.0, sales[1].Total)
	assert.Equal(t, 1, sales[1].Orders)
}

func TestDashboardUnpaidCount(t *testing.T) {
	db := openTestDB(t)
	svc := &DashboardService{db: db, now: fixedClock}
	orderSvc := newTestOrderService(db)

	order, err := orderSvc.CreatePendingOrder(models.FoodLines{foodLine("سوپ", 1, 50000)}, models.CustomerInfo{}, "", false)
	require.NoError(t, err)
	_, err = orderSvc.MarkUnpaid(order.ID)
	require.NoError(t, err)

	count, err := svc.GetUnpaidCount()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

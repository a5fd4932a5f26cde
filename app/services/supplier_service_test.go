package services

import (
	"testing"
	"time"

	"RestaurantApp/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplier(t *testing.T, svc *SupplierService, name string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{SupplierName: name}
	require.NoError(t, svc.CreateSupplier(supplier))
	return supplier
}

func TestAddPurchasePaidVersusUnpaid(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی مرکزی")

	// Paid at purchase time: the running balance never hears about it.
	require.NoError(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "گوشت", TotalPrice: 900000, IsPaid: true}))
	updated, err := svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.TotalCost)
	assert.Zero(t, updated.UnpaidQuantity)

	// Unpaid: both the cost balance and the unpaid counter move.
	require.NoError(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "مرغ", TotalPrice: 400000}))
	updated, err = svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, 400000.0, updated.TotalCost)
	assert.Equal(t, 1, updated.UnpaidQuantity)

	purchases, err := svc.GetPurchases(supplier.ID)
	require.NoError(t, err)
	assert.Len(t, purchases, 2)
	for _, p := range purchases {
		assert.WithinDuration(t, testNow, p.Date, time.Second)
	}
}

func TestAddPurchaseValidation(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")

	assert.ErrorIs(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "", TotalPrice: 1000}), ErrValidation)
	assert.ErrorIs(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "گوشت", TotalPrice: 0}), ErrValidation)
	assert.ErrorIs(t, svc.AddPurchase(999, &models.Product{Name: "گوشت", TotalPrice: 1000}), ErrNotFound)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestRecordSupplierPayment(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")
	require.NoError(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "گوشت", TotalPrice: 500000}))

	// Overpayment drives the balance negative.
	payment, err := svc.RecordPayment(supplier.ID, 600000, "تسویه کامل")
	require.NoError(t, err)
	assert.Equal(t, 600000.0, payment.Amount)

	updated, err := svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, -100000.0, updated.TotalCost)

	debt, credit := updated.Balance()
	assert.Zero(t, debt)
	assert.Equal(t, 100000.0, credit)

	transactions, err := svc.GetTransactions(supplier.ID)
	require.NoError(t, err)
	require.Len(t, transactions, 1)
	assert.Equal(t, "تسویه کامل", transactions[0].Note)

	_, err = svc.RecordPayment(supplier.ID, 0, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEditPurchaseDoesNotTouchBalance(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")

	product := &models.Product{Name: "گوشت", TotalPrice: 500000}
	require.NoError(t, svc.AddPurchase(supplier.ID, product))

	require.NoError(t, svc.EditPurchase(product.ID, "گوشت گوسفندی", "اصلاح فاکتور", 550000))

	purchases, err := svc.GetPurchases(supplier.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "گوشت گوسفندی", purchases[0].Name)
	assert.Equal(t, 550000.0, purchases[0].TotalPrice)

	// The balance keeps the originally booked amount.
	updated, err := svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, 500000.0, updated.TotalCost)
	assert.Equal(t, 1, updated.UnpaidQuantity)

	assert.ErrorIs(t, svc.EditPurchase(999, "x", "", 1000), ErrNotFound)
}

func TestSettlePurchase(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")

	product := &models.Product{Name: "گوشت", TotalPrice: 500000}
	require.NoError(t, svc.AddPurchase(supplier.ID, product))

	require.NoError(t, svc.SettlePurchase(product.ID))

	updated, err := svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.TotalCost)
	assert.Zero(t, updated.UnpaidQuantity)

	// Settling twice changes nothing.
	require.NoError(t, svc.SettlePurchase(product.ID))
	updated, err = svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.TotalCost)
	assert.Zero(t, updated.UnpaidQuantity)
}

func TestDeletePurchaseReversesUnpaidWeight(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")

	unpaid := &models.Product{Name: "مرغ", TotalPrice: 300000}
	require.NoError(t, svc.AddPurchase(supplier.ID, unpaid))
	paid := &models.Product{Name: "برنج", TotalPrice: 700000, IsPaid: true}
	require.NoError(t, svc.AddPurchase(supplier.ID, paid))

	require.NoError(t, svc.DeletePurchase(unpaid.ID))
	require.NoError(t, svc.DeletePurchase(paid.ID))

	updated, err := svc.GetSupplier(supplier.ID)
	require.NoError(t, err)
	assert.Zero(t, updated.TotalCost)
	assert.Zero(t, updated.UnpaidQuantity)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteSupplierCascades(t *testing.T) {
	db := openTestDB(t)
	svc := newTestSupplierService(db)
	supplier := newSupplier(t, svc, "قصابی")

	require.NoError(t, svc.AddPurchase(supplier.ID, &models.Product{Name: "گوشت", TotalPrice: 500000}))
	_, err := svc.RecordPayment(supplier.ID, 100000, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSupplier(supplier.ID))

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.BuyTransaction{}).Count(&count)
	assert.Zero(t, count)
}

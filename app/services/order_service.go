package services

import (
	"RestaurantApp/app/database"
	"RestaurantApp/app/models"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// DefaultPaymentMethod is recorded when an order is settled without an
// explicit method selection; the card reader is the house default.
const DefaultPaymentMethod = "کارتخوان"

// OrderService moves orders through their lifecycle: a pending order is
// settled by payment, written off as unpaid, or billed to a customer
// account. Settling (paid or account-billed) is the only point where
// raw-material stock depletes.
type OrderService struct {
	db           *gorm.DB
	materialSvc  *RawMaterialService
	usagePerUnit map[string]float64
	now          func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService() *OrderService {
	return &OrderService{
		db:          database.GetDB(),
		materialSvc: NewRawMaterialService(),
		now:         time.Now,
	}
}

// SetUsagePerUnit installs the per-unit depletion overrides from config.
func (s *OrderService) SetUsagePerUnit(usage map[string]float64) {
	s.usagePerUnit = usage
}

// computeTotals derives the order totals from its lines. Drink lines count
// toward the price but not toward the quantity aggregate; totalQuantity is
// the number of plates leaving the kitchen.
func computeTotals(lines models.FoodLines) (price, quantity float64) {
	for _, line := range lines {
		price += line.TotalPrice
		if line.Type == models.ItemTypeFood {
			quantity += line.Quantity
		}
	}
	return price, quantity
}

// CreatePendingOrder validates and stores a new pending order.
func (s *OrderService) CreatePendingOrder(lines models.FoodLines, customer models.CustomerInfo, description string, isOutFood bool) (*models.PendingOrder, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order has no lines: %w", ErrValidation)
	}
	price, quantity := computeTotals(lines)
	if price <= 0 {
		return nil, fmt.Errorf("order total must be positive: %w", ErrValidation)
	}

	order := &models.PendingOrder{
		OrderSnapshot: models.OrderSnapshot{
			Items:           lines,
			TotalPrice:      price,
			TotalQuantity:   quantity,
			CustomerName:    customer.Name,
			CustomerPhone:   customer.Phone,
			CustomerAddress: customer.Address,
			Description:     description,
			IsOutFood:       isOutFood,
			OrderedAt:       s.now(),
		},
	}
	if err := s.db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// EditPendingOrder fully replaces a pending order's lines and customer
// fields and recomputes its totals. Editing never touches stock; depletion
// happens once, at settlement.
func (s *OrderService) EditPendingOrder(id uint, lines models.FoodLines, customer models.CustomerInfo, description string, isOutFood bool) error {
	if len(lines) == 0 {
		return fmt.Errorf("order has no lines: %w", ErrValidation)
	}
	price, quantity := computeTotals(lines)
	if price <= 0 {
		return fmt.Errorf("order total must be positive: %w", ErrValidation)
	}

	if _, err := s.pendingByID(s.db, id); err != nil {
		return err
	}

	return s.db.Model(&models.PendingOrder{}).Where("id = ?", id).Updates(map[string]interface{}{
		"items":            lines,
		"total_price":      price,
		"total_quantity":   quantity,
		"customer_name":    customer.Name,
		"customer_phone":   customer.Phone,
		"customer_address": customer.Address,
		"description":      description,
		"is_out_food":      isOutFood,
	}).Error
}

// MarkPaid settles a pending order by direct payment. The paid row is
// inserted and the pending row is kept, flagged paid = 1 with the paying
// method, as an audit trail; it disappears from pending listings.
func (s *OrderService) MarkPaid(orderID uint, paymentMethod string) (*models.PaidOrder, error) {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	var paid *models.PaidOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.pendingByID(tx, orderID)
		if err != nil {
			return err
		}

		paid = &models.PaidOrder{
			OrderSnapshot: order.OrderSnapshot,
			PaidAt:        s.now(),
			PaymentMethod: paymentMethod,
		}
		if err := tx.Create(paid).Error; err != nil {
			return err
		}

		return tx.Model(&models.PendingOrder{}).Where("id = ?", orderID).Updates(map[string]interface{}{
			"paid":          1,
			"paying_method": paymentMethod,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("OrderService: order %d paid (%s)", paid.ID, paymentMethod)
	s.depleteStock(paid.Items)
	return paid, nil
}

// CollectUnpaidOrder settles an order that had been written off as unpaid.
// The unpaid row is deleted once the paid row exists. Stock depletes here,
// not when the order was marked unpaid, so it still fires exactly once.
func (s *OrderService) CollectUnpaidOrder(orderID uint, paymentMethod string) (*models.PaidOrder, error) {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	var paid *models.PaidOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.UnpaidOrder
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("unpaid order %d: %w", orderID, ErrNotFound)
			}
			return err
		}

		paid = &models.PaidOrder{
			OrderSnapshot: order.OrderSnapshot,
			PaidAt:        s.now(),
			PaymentMethod: paymentMethod,
		}
		if err := tx.Create(paid).Error; err != nil {
			return err
		}

		return tx.Delete(&models.UnpaidOrder{}, orderID).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("OrderService: unpaid order %d collected (%s)", paid.ID, paymentMethod)
	s.depleteStock(paid.Items)
	return paid, nil
}

// MarkUnpaid moves a pending order to the unpaid table: the customer
// walked away without paying. No depletion; stock only leaves on actual
// settlement.
func (s *OrderService) MarkUnpaid(orderID uint) (*models.UnpaidOrder, error) {
	var unpaid *models.UnpaidOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.pendingByID(tx, orderID)
		if err != nil {
			return err
		}

		unpaid = &models.UnpaidOrder{OrderSnapshot: order.OrderSnapshot}
		if err := tx.Create(unpaid).Error; err != nil {
			return err
		}

		return tx.Delete(&models.PendingOrder{}, orderID).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("OrderService: order %d marked unpaid", unpaid.ID)
	return unpaid, nil
}

// BillToAccount charges a pending order to a customer account: the order
// moves to the account's history and the account's debt grows by the order
// total. Depletes stock like a payment does.
func (s *OrderService) BillToAccount(orderID uint, accountID uint) (*models.AccountOrder, error) {
	if accountID == 0 {
		return nil, fmt.Errorf("an account must be selected: %w", ErrValidation)
	}

	var billed *models.AccountOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := s.pendingByID(tx, orderID)
		if err != nil {
			return err
		}

		var account models.Account
		if err := tx.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("account %d: %w", accountID, ErrNotFound)
			}
			return err
		}

		billed = &models.AccountOrder{
			OrderSnapshot: order.OrderSnapshot,
			AccountID:     accountID,
		}
		if err := tx.Create(billed).Error; err != nil {
			return err
		}

		if err := tx.Delete(&models.PendingOrder{}, orderID).Error; err != nil {
			return err
		}

		return tx.Model(&models.Account{}).Where("id = ?", accountID).
			Update("total_debt", gorm.Expr("total_debt + ?", order.TotalPrice)).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("OrderService: order %d billed to account %d", billed.ID, accountID)
	s.depleteStock(billed.Items)
	return billed, nil
}

// DeletePendingOrder removes a pending order outright. No side effects;
// confirmation is the UI's job.
func (s *OrderService) DeletePendingOrder(id uint) error {
	return s.db.Delete(&models.PendingOrder{}, id).Error
}

// GetPendingOrders lists open pending orders, oldest first. Rows retained
// as paid audit trails are excluded.
func (s *OrderService) GetPendingOrders() ([]models.PendingOrder, error) {
	var orders []models.PendingOrder
	err := s.db.Where("paid = 0").Order("order_time ASC").Find(&orders).Error
	return orders, err
}

// GetPaidOrders lists paid orders, newest first
func (s *OrderService) GetPaidOrders() ([]models.PaidOrder, error) {
	var orders []models.PaidOrder
	err := s.db.Order("id DESC").Find(&orders).Error
	return orders, err
}

// GetPaidOrdersBetween lists orders settled inside a date window, used by
// the history page's month and day filters.
func (s *OrderService) GetPaidOrdersBetween(from, to time.Time) ([]models.PaidOrder, error) {
	var orders []models.PaidOrder
	err := s.db.Where("paid_time >= ? AND paid_time < ?", from, to).
		Order("paid_time ASC").Find(&orders).Error
	return orders, err
}

// GetUnpaidOrders lists unpaid orders, oldest first
func (s *OrderService) GetUnpaidOrders() ([]models.UnpaidOrder, error) {
	var orders []models.UnpaidOrder
	err := s.db.Order("order_time ASC").Find(&orders).Error
	return orders, err
}

// GetUnpaidCount backs the unpaid badge the UI polls on an interval.
func (s *OrderService) GetUnpaidCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.UnpaidOrder{}).Count(&count).Error
	return count, err
}

// pendingByID loads an open pending order or reports NotFound. Rows
// flagged paid = 1 are settled and no longer eligible for transitions.
func (s *OrderService) pendingByID(tx *gorm.DB, id uint) (*models.PendingOrder, error) {
	var order models.PendingOrder
	if err := tx.Where("id = ? AND paid = 0", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pending order %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) depleteStock(lines models.FoodLines) {
	warnings := s.materialSvc.DepleteForOrder(lines, s.usagePerUnit)
	for _, warning := range warnings {
		log.Printf("OrderService: low stock: %s", warning)
	}
}

package services

import (
	"RestaurantApp/app/database"
	"RestaurantApp/app/models"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// SupplierService maintains supplier ledgers: purchased products, the
// signed cost balance, and the append-only payment log. It mirrors the
// account ledger with the sign convention flipped to the buying side.
type SupplierService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSupplierService creates a new supplier service
func NewSupplierService() *SupplierService {
	return &SupplierService{
		db:  database.GetDB(),
		now: time.Now,
	}
}

// GetSuppliers retrieves all suppliers
func (s *SupplierService) GetSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := s.db.Order("supplier_name ASC").Find(&suppliers).Error
	return suppliers, err
}

// GetSupplier retrieves a single supplier by ID
func (s *SupplierService) GetSupplier(id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := s.db.First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("supplier %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &supplier, nil
}

// CreateSupplier creates a new supplier
func (s *SupplierService) CreateSupplier(supplier *models.Supplier) error {
	if strings.TrimSpace(supplier.SupplierName) == "" {
		return fmt.Errorf("supplier name is required: %w", ErrValidation)
	}
	return s.db.Create(supplier).Error
}

// UpdateSupplier updates name and description. The balance is only moved
// by purchases and recorded payments.
func (s *SupplierService) UpdateSupplier(supplier *models.Supplier) error {
	if strings.TrimSpace(supplier.SupplierName) == "" {
		return fmt.Errorf("supplier name is required: %w", ErrValidation)
	}
	if _, err := s.GetSupplier(supplier.ID); err != nil {
		return err
	}
	return s.db.Model(&models.Supplier{}).Where("id = ?", supplier.ID).Updates(map[string]interface{}{
		"supplier_name": supplier.SupplierName,
		"description":   supplier.Description,
	}).Error
}

// DeleteSupplier deletes a supplier; its purchases and transaction log go
// with it via the cascade constraints.
func (s *SupplierService) DeleteSupplier(id uint) error {
	return s.db.Delete(&models.Supplier{}, id).Error
}

// AddPurchase records a product bought from a supplier. Only purchases
// added unpaid move the running balance: totalCost grows by the price and
// unpaidQuantity by one. A product paid at purchase time is already
// settled and touches neither.
func (s *SupplierService) AddPurchase(supplierID uint, product *models.Product) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if product.TotalPrice <= 0 {
		return fmt.Errorf("product price must be positive: %w", ErrValidation)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.First(&supplier, supplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("supplier %d: %w", supplierID, ErrNotFound)
			}
			return err
		}

		product.SupplierID = supplierID
		if product.Date.IsZero() {
			product.Date = s.now()
		}
		if err := tx.Create(product).Error; err != nil {
			return err
		}

		if product.IsPaid {
			return nil
		}
		return tx.Model(&models.Supplier{}).Where("id = ?", supplierID).Updates(map[string]interface{}{
			"total_cost":      gorm.Expr("total_cost + ?", product.TotalPrice),
			"unpaid_quantity": gorm.Expr("unpaid_quantity + 1"),
		}).Error
	})
}

// EditPurchase updates a purchase's name, description and price. Price
// edits correct the purchase record only; the supplier's running balance
// keeps the amount booked when the purchase was added.
func (s *SupplierService) EditPurchase(productID uint, name, description string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if price <= 0 {
		return fmt.Errorf("product price must be positive: %w", ErrValidation)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return err
	}

	return s.db.Model(&models.Product{}).Where("id = ?", productID).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
		"total_price": price,
	}).Error
}

// SettlePurchase marks a single unpaid purchase as paid and reverses its
// contribution to the balance. Settling an already paid purchase is a
// no-op.
func (s *SupplierService) SettlePurchase(productID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", productID, ErrNotFound)
			}
			return err
		}
		if product.IsPaid {
			return nil
		}

		if err := tx.Model(&models.Product{}).Where("id = ?", productID).
			Update("is_paid", true).Error; err != nil {
			return err
		}

		return tx.Model(&models.Supplier{}).Where("id = ?", product.SupplierID).Updates(map[string]interface{}{
			"total_cost":      gorm.Expr("total_cost - ?", product.TotalPrice),
			"unpaid_quantity": gorm.Expr("unpaid_quantity - 1"),
		}).Error
	})
}

// DeletePurchase removes a purchase. An unpaid purchase still carries its
// weight in the balance, so deleting one reverses that first.
func (s *SupplierService) DeletePurchase(productID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product %d: %w", productID, ErrNotFound)
			}
			return err
		}

		if !product.IsPaid {
			if err := tx.Model(&models.Supplier{}).Where("id = ?", product.SupplierID).Updates(map[string]interface{}{
				"total_cost":      gorm.Expr("total_cost - ?", product.TotalPrice),
				"unpaid_quantity": gorm.Expr("unpaid_quantity - 1"),
			}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Product{}, productID).Error
	})
}

// RecordPayment appends a payment to the supplier's log and decrements the
// cost balance, in one transaction. Overpaying drives the balance negative,
// meaning the supplier now owes the business.
func (s *SupplierService) RecordPayment(supplierID uint, amount float64, note string) (*models.BuyTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", ErrValidation)
	}

	var payment *models.BuyTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.First(&supplier, supplierID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("supplier %d: %w", supplierID, ErrNotFound)
			}
			return err
		}

		payment = &models.BuyTransaction{
			SupplierID: supplierID,
			Amount:     amount,
			Date:       s.now(),
			Note:       note,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Supplier{}).Where("id = ?", supplierID).
			Update("total_cost", gorm.Expr("total_cost - ?", amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// AnnotateTransaction sets the free-text note on a recorded payment.
func (s *SupplierService) AnnotateTransaction(transactionID uint, note string) error {
	var payment models.BuyTransaction
	if err := s.db.First(&payment, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("transaction %d: %w", transactionID, ErrNotFound)
		}
		return err
	}
	return s.db.Model(&models.BuyTransaction{}).Where("id = ?", transactionID).
		Update("note", note).Error
}

// GetPurchases lists a supplier's purchased products, newest first
func (s *SupplierService) GetPurchases(supplierID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Where("supplier_id = ?", supplierID).
		Order("date DESC, id DESC").Find(&products).Error
	return products, err
}

// GetTransactions lists a supplier's payments, newest first
func (s *SupplierService) GetTransactions(supplierID uint) ([]models.BuyTransaction, error) {
	var transactions []models.BuyTransaction
	err := s.db.Where("supplier_id = ?", supplierID).
		Order("date DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

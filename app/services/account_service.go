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

// AccountService maintains customer tabs: the signed debt balance, the
// orders billed against it, and the append-only payment log.
type AccountService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAccountService creates a new account service
func NewAccountService() *AccountService {
	return &AccountService{
		db:  database.GetDB(),
		now: time.Now,
	}
}

// GetAccounts retrieves all accounts
func (s *AccountService) GetAccounts() ([]models.Account, error) {
	var accounts []models.Account
	err := s.db.Order("account_name ASC").Find(&accounts).Error
	return accounts, err
}

// GetAccount retrieves a single account by ID
func (s *AccountService) GetAccount(id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.First(&account, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &account, nil
}

// CreateAccount creates a new account. TotalDebt may carry an opening
// balance.
func (s *AccountService) CreateAccount(account *models.Account) error {
	if strings.TrimSpace(account.AccountName) == "" {
		return fmt.Errorf("account name is required: %w", ErrValidation)
	}
	return s.db.Create(account).Error
}

// UpdateAccount updates name and description. The balance is only moved by
// billed orders and recorded payments.
func (s *AccountService) UpdateAccount(account *models.Account) error {
	if strings.TrimSpace(account.AccountName) == "" {
		return fmt.Errorf("account name is required: %w", ErrValidation)
	}
	if _, err := s.GetAccount(account.ID); err != nil {
		return err
	}
	return s.db.Model(&models.Account{}).Where("id = ?", account.ID).Updates(map[string]interface{}{
		"account_name": account.AccountName,
		"description":  account.Description,
	}).Error
}

// DeleteAccount deletes an account; its billed orders and transaction log
// go with it via the cascade constraints.
func (s *AccountService) DeleteAccount(id uint) error {
	return s.db.Delete(&models.Account{}, id).Error
}

// RecordPayment appends a payment to the account's log and decrements the
// debt balance by the same amount, in one transaction. There is no upper
// bound: paying more than the debt drives the balance negative, meaning
// the business now owes the customer.
func (s *AccountService) RecordPayment(accountID uint, amount float64, note string) (*models.CustomerTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive: %w", ErrValidation)
	}

	var payment *models.CustomerTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account
		if err := tx.First(&account, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("account %d: %w", accountID, ErrNotFound)
			}
			return err
		}

		payment = &models.CustomerTransaction{
			AccountID: accountID,
			Amount:    amount,
			Date:      s.now(),
			Note:      note,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		return tx.Model(&models.Account{}).Where("id = ?", accountID).
			Update("total_debt", gorm.Expr("total_debt - ?", amount)).Error
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// AnnotateTransaction sets the free-text note on a recorded payment.
func (s *AccountService) AnnotateTransaction(transactionID uint, note string) error {
	var payment models.CustomerTransaction
	if err := s.db.First(&payment, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("transaction %d: %w", transactionID, ErrNotFound)
		}
		return err
	}
	return s.db.Model(&models.CustomerTransaction{}).Where("id = ?", transactionID).
		Update("note", note).Error
}

// GetTransactions lists an account's payments, newest first
func (s *AccountService) GetTransactions(accountID uint) ([]models.CustomerTransaction, error) {
	var transactions []models.CustomerTransaction
	err := s.db.Where("account_id = ?", accountID).
		Order("date DESC, id DESC").Find(&transactions).Error
	return transactions, err
}

// GetAccountOrders lists the orders billed to an account, newest first
func (s *AccountService) GetAccountOrders(accountID uint) ([]models.AccountOrder, error) {
	var orders []models.AccountOrder
	err := s.db.Where("account_id = ?", accountID).
		Order("order_time DESC").Find(&orders).Error
	return orders, err
}

// GetAccountOrdersBetween lists an account's billed orders inside a date
// window, oldest first. This is the read model behind the printed
// statement.
func (s *AccountService) GetAccountOrdersBetween(accountID uint, from, to time.Time) ([]models.AccountOrder, error) {
	var orders []models.AccountOrder
	err := s.db.Where("account_id = ? AND order_time >= ? AND order_time < ?", accountID, from, to).
		Order("order_time ASC").Find(&orders).Error
	return orders, err
}

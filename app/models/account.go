package models

import "time"

// Account is a customer tab. TotalDebt is a signed running balance:
// positive means the customer owes the business, negative means the
// business owes the customer. No bound is enforced in either direction.
type Account struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	AccountName string  `gorm:"not null" json:"account_name"`
	Description string  `json:"description"`
	TotalDebt   float64 `gorm:"not null;default:0" json:"total_debt"`
}

func (Account) TableName() string {
	return "accounts"
}

// Balance splits the signed balance the way it is rendered: a non-negative
// balance is debt, a negative one is credit of the absolute value.
func (a *Account) Balance() (debt, credit float64) {
	if a.TotalDebt < 0 {
		return 0, -a.TotalDebt
	}
	return a.TotalDebt, 0
}

// CustomerTransaction is an append-only record of a payment received
// against an account. Amount is always the positive payment value.
type CustomerTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AccountID uint      `gorm:"index;not null" json:"account_id"`
	Account   *Account  `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      time.Time `gorm:"not null" json:"date"`
	Note      string    `json:"note"`
}

func (CustomerTransaction) TableName() string {
	return "customer_transactions"
}

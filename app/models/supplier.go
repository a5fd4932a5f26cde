package models

import "time"

// Supplier is a purchase source. TotalCost is a signed running balance:
// positive means the business owes the supplier, negative means the
// supplier has been overpaid. UnpaidQuantity counts purchased products
// still marked unpaid.
type Supplier struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	SupplierName   string  `gorm:"not null" json:"supplier_name"`
	TotalCost      float64 `gorm:"not null;default:0" json:"total_cost"`
	UnpaidQuantity int     `gorm:"not null;default:0" json:"unpaid_quantity"`
	Description    string  `json:"description"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

// Balance splits the signed cost the way it is rendered: non-negative is
// debt to the supplier, negative is credit held with the supplier.
func (s *Supplier) Balance() (debt, credit float64) {
	if s.TotalCost < 0 {
		return 0, -s.TotalCost
	}
	return s.TotalCost, 0
}

// Product is a single purchase line from a supplier. Only products added
// unpaid contribute to the supplier's running balance; products paid at
// purchase time are already settled.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SupplierID  uint      `gorm:"index;not null" json:"supplier_id"`
	Supplier    *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"`
	Description string    `json:"description"`
	IsPaid      bool      `gorm:"not null;default:false" json:"is_paid"`
	Date        time.Time `gorm:"not null" json:"date"`
}

func (Product) TableName() string {
	return "buys"
}

// BuyTransaction is an append-only record of a payment made to a supplier.
type BuyTransaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SupplierID uint      `gorm:"index;not null" json:"supplier_id"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:CASCADE" json:"-"`
	Amount     float64   `gorm:"not null" json:"amount"`
	Date       time.Time `gorm:"not null" json:"date"`
	Note       string    `json:"note"`
}

func (BuyTransaction) TableName() string {
	return "buy_transactions"
}

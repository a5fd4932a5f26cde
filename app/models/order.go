package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// FoodLine is a line item snapshot taken from the menu when the order is
// created. It carries its own title and price so later menu edits do not
// affect recorded orders.
type FoodLine struct {
	ID         uint    `json:"id"` // menu item id at snapshot time
	Title      string  `json:"title"`
	Quantity   float64 `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
	Type       string  `json:"type"` // "food" or "drink"
}

// FoodLines is stored as a JSON TEXT column, the same shape the order
// tables have always used for their items column.
type FoodLines []FoodLine

func (l FoodLines) Value() (driver.Value, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *FoodLines) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}
}

// CustomerInfo is the optional walk-in / delivery contact recorded on an
// order.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderSnapshot holds the fields shared by every order location. An order
// lives in exactly one of pending_orders, paid_orders, unpaid_orders or
// account_orders and keeps its id when it moves between them.
type OrderSnapshot struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Items           FoodLines `gorm:"type:text;not null" json:"items"`
	TotalPrice      float64   `gorm:"not null" json:"total_price"`
	TotalQuantity   float64   `gorm:"not null" json:"total_quantity"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerAddress string    `json:"customer_address"`
	Description     string    `json:"description"`
	IsOutFood       bool      `json:"is_out_food"`
	OrderedAt       time.Time `gorm:"column:order_time" json:"order_time"`
}

// PendingOrder is a taken but not yet settled order. When it is settled by
// direct payment the row is not deleted: it is flagged paid = 1 and keeps
// the paying method as an audit trail, and stops appearing in pending
// listings. The unpaid and account-billed paths delete the row instead.
type PendingOrder struct {
	OrderSnapshot
	Paid         int    `gorm:"not null;default:0" json:"paid"`
	PayingMethod string `json:"paying_method"`
}

func (PendingOrder) TableName() string {
	return "pending_orders"
}

// PaidOrder is a settled order.
type PaidOrder struct {
	OrderSnapshot
	PaidAt        time.Time `gorm:"column:paid_time;not null" json:"paid_time"`
	PaymentMethod string    `json:"payment_method"`
}

func (PaidOrder) TableName() string {
	return "paid_orders"
}

// UnpaidOrder is an order whose customer left without paying. It can still
// be collected later and moved to paid_orders.
type UnpaidOrder struct {
	OrderSnapshot
}

func (UnpaidOrder) TableName() string {
	return "unpaid_orders"
}

// AccountOrder is an order charged against a customer account instead of
// collected immediately.
type AccountOrder struct {
	OrderSnapshot
	AccountID uint     `gorm:"index;not null" json:"account_id"`
	Account   *Account `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE" json:"account,omitempty"`
}

func (AccountOrder) TableName() string {
	return "account_orders"
}

package models

// Item type values used across the menu and order line snapshots.
const (
	ItemTypeFood  = "food"
	ItemTypeDrink = "drink"
)

// MenuItem represents a dish or drink offered on the menu.
// Orders snapshot the title and price at creation time, so editing or
// deleting a menu item never rewrites order history.
type MenuItem struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Title string  `gorm:"not null" json:"title"`
	Price float64 `gorm:"not null" json:"price"`
	Type  string  `gorm:"not null;default:food" json:"type"` // "food" or "drink"
	Image string  `json:"image"`
}

func (MenuItem) TableName() string {
	return "menu"
}

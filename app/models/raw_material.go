package models

// RawMaterial is a stock-tracked kitchen ingredient. Quantity has no
// floor: a negative value signals understock rather than blocking sales.
type RawMaterial struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"not null" json:"name"`
	Quantity float64 `gorm:"not null;default:0" json:"quantity"`
	Unit     string  `json:"unit"`
}

func (RawMaterial) TableName() string {
	return "raw_materials"
}

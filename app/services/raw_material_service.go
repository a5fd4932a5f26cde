package services

import (
	"RestaurantApp/app/database"
	"RestaurantApp/app/models"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"
)

// RawMaterialService handles raw-material stock and its depletion when
// orders are finalized.
type RawMaterialService struct {
	db *gorm.DB
}

// NewRawMaterialService creates a new raw material service
func NewRawMaterialService() *RawMaterialService {
	return &RawMaterialService{
		db: database.GetDB(),
	}
}

// GetRawMaterials retrieves all raw materials
func (s *RawMaterialService) GetRawMaterials() ([]models.RawMaterial, error) {
	var materials []models.RawMaterial
	err := s.db.Order("name ASC").Find(&materials).Error
	return materials, err
}

// GetRawMaterial retrieves a single raw material by ID
func (s *RawMaterialService) GetRawMaterial(id uint) (*models.RawMaterial, error) {
	var material models.RawMaterial
	if err := s.db.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("raw material %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &material, nil
}

// CreateRawMaterial creates a new raw material
func (s *RawMaterialService) CreateRawMaterial(material *models.RawMaterial) error {
	if strings.TrimSpace(material.Name) == "" {
		return fmt.Errorf("raw material name is required: %w", ErrValidation)
	}
	return s.db.Create(material).Error
}

// UpdateRawMaterial updates name, quantity and unit
func (s *RawMaterialService) UpdateRawMaterial(material *models.RawMaterial) error {
	if strings.TrimSpace(material.Name) == "" {
		return fmt.Errorf("raw material name is required: %w", ErrValidation)
	}
	var existing models.RawMaterial
	if err := s.db.First(&existing, material.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("raw material %d: %w", material.ID, ErrNotFound)
		}
		return err
	}
	return s.db.Model(&models.RawMaterial{}).Where("id = ?", material.ID).Updates(map[string]interface{}{
		"name":     material.Name,
		"quantity": material.Quantity,
		"unit":     material.Unit,
	}).Error
}

// DeleteRawMaterial deletes a raw material
func (s *RawMaterialService) DeleteRawMaterial(id uint) error {
	return s.db.Delete(&models.RawMaterial{}, id).Error
}

// AdjustStock applies a manual +/- stock correction (restock deliveries,
// spoilage, recounts).
func (s *RawMaterialService) AdjustStock(id uint, delta float64) (*models.RawMaterial, error) {
	var material models.RawMaterial
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&material, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("raw material %d: %w", id, ErrNotFound)
			}
			return err
		}
		material.Quantity += delta
		return tx.Save(&material).Error
	})
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DepleteForOrder decrements stock for every raw material whose name
// appears as a substring of a line's title. This is a name heuristic, not
// a recipe table: one line may deplete several materials, and one material
// may be depleted by several lines of the same order. Each sold unit
// consumes 1 unit of a matched material unless usagePerUnit overrides it.
// Quantities have no floor; going negative flags understock.
//
// Failures are per material: a material that cannot be updated is logged
// and skipped, the rest of the order still depletes. Returns understock
// warnings for the caller to surface.
func (s *RawMaterialService) DepleteForOrder(lines models.FoodLines, usagePerUnit map[string]float64) []string {
	var warnings []string

	var materials []models.RawMaterial
	if err := s.db.Find(&materials).Error; err != nil {
		log.Printf("RawMaterialService: error loading raw materials: %v", err)
		return warnings
	}

	overrides := make(map[string]float64, len(usagePerUnit))
	for name, qty := range usagePerUnit {
		overrides[normalizeName(name)] = qty
	}

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		title := normalizeName(line.Title)

		for i := range materials {
			material := &materials[i]
			name := normalizeName(material.Name)
			if name == "" || !strings.Contains(title, name) {
				continue
			}

			perUnit := 1.0
			if v, ok := overrides[name]; ok {
				perUnit = v
			}
			used := perUnit * line.Quantity

			if err := s.db.Model(&models.RawMaterial{}).
				Where("id = ?", material.ID).
				Update("quantity", gorm.Expr("quantity - ?", used)).Error; err != nil {
				log.Printf("RawMaterialService: error depleting %q for line %q: %v",
					material.Name, line.Title, err)
				continue
			}
			material.Quantity -= used

			if material.Quantity <= 0 {
				warnings = append(warnings, fmt.Sprintf("%s: %.2f %s left",
					material.Name, material.Quantity, material.Unit))
			}
		}
	}

	return warnings
}

package services

import (
	"RestaurantApp/app/database"
	"RestaurantApp/app/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// MenuService handles menu item management
type MenuService struct {
	db *gorm.DB
}

// NewMenuService creates a new menu service
func NewMenuService() *MenuService {
	return &MenuService{
		db: database.GetDB(),
	}
}

// GetMenuItems retrieves all menu items
func (s *MenuService) GetMenuItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.Order("id ASC").Find(&items).Error
	return items, err
}

// GetMenuItem retrieves a single menu item by ID
func (s *MenuService) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("menu item %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// CreateMenuItem creates a new menu item
func (s *MenuService) CreateMenuItem(item *models.MenuItem) error {
	if item.Title == "" {
		return fmt.Errorf("menu item title is required: %w", ErrValidation)
	}
	if item.Price <= 0 {
		return fmt.Errorf("menu item price must be positive: %w", ErrValidation)
	}
	if item.Type == "" {
		item.Type = models.ItemTypeFood
	}
	return s.db.Create(item).Error
}

// UpdateMenuItem updates title, price and type. The stored image is kept
// when the incoming item carries none, so edits made without re-uploading
// a picture don't clear it.
func (s *MenuService) UpdateMenuItem(item *models.MenuItem) error {
	if item.Title == "" {
		return fmt.Errorf("menu item title is required: %w", ErrValidation)
	}
	if item.Price <= 0 {
		return fmt.Errorf("menu item price must be positive: %w", ErrValidation)
	}
	if item.Type == "" {
		item.Type = models.ItemTypeFood
	}

	var existing models.MenuItem
	if err := s.db.First(&existing, item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("menu item %d: %w", item.ID, ErrNotFound)
		}
		return err
	}

	updates := map[string]interface{}{
		"title": item.Title,
		"price": item.Price,
		"type":  item.Type,
	}
	if item.Image != "" {
		updates["image"] = item.Image
	}

	return s.db.Model(&models.MenuItem{}).Where("id = ?", item.ID).Updates(updates).Error
}

// DeleteMenuItem deletes a menu item. Historical orders keep their own
// line snapshots, so nothing else is touched.
func (s *MenuService) DeleteMenuItem(id uint) error {
	return s.db.Delete(&models.MenuItem{}, id).Error
}

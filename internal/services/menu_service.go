package services

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// minUpdatePrice is the lowest price accepted when editing a menu item.
// Creation accepts any non-negative price.
var minUpdatePrice = decimal.NewFromInt(1)

// MenuService provides methods to interact with the menu catalog
type MenuService interface {
	// ListMenu retrieves all menu items in storage order
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	// GetMenu retrieves a menu item by its ID
	GetMenu(ctx context.Context, id uint) (models.MenuItem, error)
	// CreateMenu validates and stores a new menu item
	CreateMenu(ctx context.Context, name string, price decimal.Decimal) (models.MenuItem, error)
	// UpdateMenu replaces the name and price of an existing menu item
	UpdateMenu(ctx context.Context, id uint, name string, price decimal.Decimal) (models.MenuItem, error)
	// DeleteMenu removes a menu item; sales that reference it are left untouched
	DeleteMenu(ctx context.Context, id uint) error
}

// menuService is the implementation of the MenuService interface
type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, internalError("list menu", err)
	}
	return items, nil
}

func (s *menuService) GetMenu(ctx context.Context, id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, &NotFoundError{Resource: "menu item", ID: id}
		}
		return models.MenuItem{}, internalError("get menu", err)
	}
	return item, nil
}

func (s *menuService) CreateMenu(ctx context.Context, name string, price decimal.Decimal) (models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if err := validateStruct(menuInput{Name: name}); err != nil {
		return models.MenuItem{}, err
	}
	if price.IsNegative() {
		return models.MenuItem{}, NewValidationError("menu_price", "The menu_price field must be at least 0.")
	}

	item := models.MenuItem{Name: name, Price: price}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.MenuItem{}, internalError("create menu", err)
	}
	return item, nil
}

func (s *menuService) UpdateMenu(ctx context.Context, id uint, name string, price decimal.Decimal) (models.MenuItem, error) {
	name = strings.TrimSpace(name)
	if err := validateStruct(menuInput{Name: name}); err != nil {
		return models.MenuItem{}, err
	}
	if price.LessThan(minUpdatePrice) {
		return models.MenuItem{}, NewValidationError("menu_price", "The menu_price field must be at least 1.")
	}

	item, err := s.GetMenu(ctx, id)
	if err != nil {
		return models.MenuItem{}, err
	}

	item.Name = name
	item.Price = price
	// Save writes every column and refreshes updated_at; concurrent edits are last-write-wins
	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return models.MenuItem{}, internalError("update menu", err)
	}
	return item, nil
}

func (s *menuService) DeleteMenu(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		return internalError("delete menu", result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Resource: "menu item", ID: id}
	}
	return nil
}

package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesService records sales and derives the joined sales views
type SalesService interface {
	// CreateSale records a sale of an existing menu item
	CreateSale(ctx context.Context, menuID uint, quantity int) (models.Sale, error)
	// ListSales joins sales with the menu, newest first; sales without a menu item are omitted
	ListSales(ctx context.Context, r DateRange) ([]models.SaleRow, error)
	// SalesSummary aggregates quantity and revenue per menu item
	SalesSummary(ctx context.Context, r DateRange) (models.SalesSummary, error)
	// DeleteSale removes a sale by its ID
	DeleteSale(ctx context.Context, id uint) error
}

type salesService struct {
	db    *gorm.DB
	menus MenuService
}

// NewSalesService creates a new instance of SalesService
func NewSalesService(db *gorm.DB) SalesService {
	return &salesService{db: db, menus: NewMenuService(db)}
}

func (s *salesService) CreateSale(ctx context.Context, menuID uint, quantity int) (models.Sale, error) {
	if err := validateStruct(saleInput{Quantity: quantity}); err != nil {
		return models.Sale{}, err
	}

	// existence is checked here rather than by a foreign key so menu deletes never cascade
	if menuID == 0 {
		return models.Sale{}, NewValidationError("menu_id", "menu_id does not exist")
	}
	if _, err := s.menus.GetMenu(ctx, menuID); err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return models.Sale{}, NewValidationError("menu_id", "menu_id does not exist")
		}
		return models.Sale{}, err
	}

	sale := models.Sale{MenuID: menuID, Quantity: quantity}
	if err := s.db.WithContext(ctx).Create(&sale).Error; err != nil {
		return models.Sale{}, internalError("create sale", err)
	}
	return sale, nil
}

// joined returns the sales ⋈ menu query restricted to r
func (s *salesService) joined(ctx context.Context, r DateRange) *gorm.DB {
	q := s.db.WithContext(ctx).
		Table("sales").
		Joins("JOIN menu ON menu.menu_id = sales.menu_id")
	if r.Start != nil {
		q = q.Where("sales.created_at >= ?", r.Start.UTC())
	}
	if r.End != nil {
		q = q.Where("sales.created_at <= ?", r.End.UTC())
	}
	return q
}

// lineTotal is price times quantity. Money is multiplied here rather than in SQL
// because SQLite evaluates NUMERIC arithmetic in floating point.
func lineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

func (s *salesService) ListSales(ctx context.Context, r DateRange) ([]models.SaleRow, error) {
	rows := []models.SaleRow{}
	err := s.joined(ctx, r).
		Select("sales.sales_id, menu.menu_name, menu.menu_price, sales.quantity, sales.created_at").
		Order("sales.created_at DESC").
		Order("sales.sales_id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, internalError("list sales", err)
	}
	for i := range rows {
		rows[i].TotalPrice = lineTotal(rows[i].MenuPrice, rows[i].Quantity)
	}
	return rows, nil
}

// summaryLine is one joined sale as read for SalesSummary
type summaryLine struct {
	MenuID    uint
	MenuName  string
	MenuPrice decimal.Decimal
	Quantity  int
}

func (s *salesService) SalesSummary(ctx context.Context, r DateRange) (models.SalesSummary, error) {
	var lines []summaryLine
	err := s.joined(ctx, r).
		Select("menu.menu_id, menu.menu_name, menu.menu_price, sales.quantity").
		Order("menu.menu_name ASC").
		Order("menu.menu_id ASC").
		Scan(&lines).Error
	if err != nil {
		return models.SalesSummary{}, internalError("summarize sales", err)
	}

	summary := models.SalesSummary{Items: []models.ItemSummary{}, TotalRevenue: decimal.Zero}
	for _, line := range lines {
		n := len(summary.Items)
		if n == 0 || summary.Items[n-1].MenuID != line.MenuID {
			summary.Items = append(summary.Items, models.ItemSummary{
				MenuID:   line.MenuID,
				MenuName: line.MenuName,
				Revenue:  decimal.Zero,
			})
			n++
		}
		item := &summary.Items[n-1]
		total := lineTotal(line.MenuPrice, line.Quantity)
		item.Quantity += int64(line.Quantity)
		item.Revenue = item.Revenue.Add(total)
		summary.TotalQuantity += int64(line.Quantity)
		summary.TotalRevenue = summary.TotalRevenue.Add(total)
	}
	return summary, nil
}

func (s *salesService) DeleteSale(ctx context.Context, id uint) error {
	var sale models.Sale
	if err := s.db.WithContext(ctx).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Resource: "sale", ID: id}
		}
		return internalError("get sale", err)
	}
	if err := s.db.WithContext(ctx).Delete(&sale).Error; err != nil {
		return internalError("delete sale", err)
	}
	return nil
}

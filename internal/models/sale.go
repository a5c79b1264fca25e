package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a quantity sold of one menu item.
// MenuID is not a database foreign key: deleting a menu item leaves its sales in place.
type Sale struct {
	ID        uint      `gorm:"column:sales_id;primaryKey" json:"sales_id"`
	MenuID    uint      `gorm:"column:menu_id;not null;index" json:"menu_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleRow is a sale joined with its menu item. TotalPrice is computed from the
// current menu price at query time and is never stored.
type SaleRow struct {
	SalesID    uint            `json:"sales_id"`
	MenuName   string          `json:"menu_name"`
	MenuPrice  decimal.Decimal `json:"menu_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ItemSummary aggregates the sales of a single menu item
type ItemSummary struct {
	MenuID   uint            `json:"menu_id"`
	MenuName string          `json:"menu_name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesSummary aggregates sales per menu item over a date range
type SalesSummary struct {
	Items         []ItemSummary   `json:"items"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

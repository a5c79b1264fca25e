package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem represents a catalog entry that can be sold
type MenuItem struct {
	ID        uint            `gorm:"column:menu_id;primaryKey" json:"menu_id"`
	Name      string          `gorm:"column:menu_name;size:255;not null" json:"menu_name"`
	Price     decimal.Decimal `gorm:"column:menu_price;type:decimal(10,2);not null" json:"menu_price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu"
}

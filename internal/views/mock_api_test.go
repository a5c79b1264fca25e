package views

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of MenuAPI and SalesAPI
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuItem), args.Error(1)
}

func (m *MockAPI) CreateMenu(ctx context.Context, name string, price decimal.Decimal) (models.MenuItem, error) {
	args := m.Called(ctx, name, price)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *MockAPI) UpdateMenu(ctx context.Context, id uint, name string, price decimal.Decimal) (models.MenuItem, error) {
	args := m.Called(ctx, id, name, price)
	return args.Get(0).(models.MenuItem), args.Error(1)
}

func (m *MockAPI) DeleteMenu(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAPI) ListSales(ctx context.Context, start, end string) ([]models.SaleRow, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SaleRow), args.Error(1)
}

func (m *MockAPI) CreateSale(ctx context.Context, menuID uint, quantity int) (models.Sale, error) {
	args := m.Called(ctx, menuID, quantity)
	return args.Get(0).(models.Sale), args.Error(1)
}

func (m *MockAPI) DeleteSale(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func priceEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

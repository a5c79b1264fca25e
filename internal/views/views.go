// Package views holds the client-side state of the Menu, Sales and Analytics
// screens. Views only fetch and reduce; rendering is left to the caller.
package views

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/client"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.WarnLevel)
}

// SetLogLevel aligns the views logger with the application log level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// Status is the load state of a view. Every mutation goes back through
// StatusLoading via an explicit refetch.
type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MenuAPI is the part of the REST client used by MenuView
type MenuAPI interface {
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	CreateMenu(ctx context.Context, name string, price decimal.Decimal) (models.MenuItem, error)
	UpdateMenu(ctx context.Context, id uint, name string, price decimal.Decimal) (models.MenuItem, error)
	DeleteMenu(ctx context.Context, id uint) error
}

// SalesLister fetches joined sales rows for an optional date range
type SalesLister interface {
	ListSales(ctx context.Context, start, end string) ([]models.SaleRow, error)
}

// SalesAPI is the part of the REST client used by SalesView
type SalesAPI interface {
	SalesLister
	ListMenu(ctx context.Context) ([]models.MenuItem, error)
	CreateSale(ctx context.Context, menuID uint, quantity int) (models.Sale, error)
	DeleteSale(ctx context.Context, id uint) error
}

var (
	_ MenuAPI  = (*client.Client)(nil)
	_ SalesAPI = (*client.Client)(nil)
)

// FormatCurrency renders an amount in pesos with two fraction digits
func FormatCurrency(amount decimal.Decimal) string {
	return "₱" + amount.StringFixed(2)
}

// errorText is what a view shows for a failed call: the server message when there is one
func errorText(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

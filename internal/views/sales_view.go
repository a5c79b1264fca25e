package views

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"golang.org/x/sync/errgroup"
)

const (
	msgSelectMenu = "Please select a menu item"
	msgSaleAdded  = "Sale added successfully!"
)

// SalesView is the state of the sales recording screen
type SalesView struct {
	api SalesAPI

	Status  Status
	Menu    []models.MenuItem
	Sales   []models.SaleRow
	Err     string
	Success string

	// SelectedMenu is zero when nothing is selected
	SelectedMenu uint
	Quantity     int
}

// NewSalesView creates a view that has not loaded yet
func NewSalesView(api SalesAPI) *SalesView {
	return &SalesView{api: api, Status: StatusLoading, Quantity: 1}
}

// Load fetches the menu and the sales list in parallel
func (v *SalesView) Load(ctx context.Context) error {
	v.Status = StatusLoading

	var menu []models.MenuItem
	var sales []models.SaleRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		menu, err = v.api.ListMenu(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		sales, err = v.api.ListSales(gctx, "", "")
		return err
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("Error loading sales screen")
		v.Status = StatusFailed
		v.Err = errorText(err, "Network response was not ok")
		return err
	}
	v.Menu = menu
	v.Sales = sales
	v.Status = StatusReady
	return nil
}

// Submit records a sale for the selected menu item, then refetches the sales list only
func (v *SalesView) Submit(ctx context.Context) error {
	v.Err = ""
	v.Success = ""

	if v.SelectedMenu == 0 {
		v.Err = msgSelectMenu
		return errors.New(msgSelectMenu)
	}

	if _, err := v.api.CreateSale(ctx, v.SelectedMenu, v.Quantity); err != nil {
		log.WithError(err).Warn("Sale error")
		v.Err = errorText(err, "Failed to record sale")
		return err
	}

	if err := v.refreshSales(ctx); err != nil {
		return err
	}
	v.Success = msgSaleAdded
	v.SelectedMenu = 0
	v.Quantity = 1
	return nil
}

// Delete removes a sale and refetches the sales list
func (v *SalesView) Delete(ctx context.Context, id uint) error {
	v.Err = ""
	v.Success = ""
	if err := v.api.DeleteSale(ctx, id); err != nil {
		v.Err = errorText(err, "Failed to delete sale")
		return err
	}
	return v.refreshSales(ctx)
}

func (v *SalesView) refreshSales(ctx context.Context) error {
	v.Status = StatusLoading
	sales, err := v.api.ListSales(ctx, "", "")
	if err != nil {
		v.Status = StatusFailed
		v.Err = errorText(err, "Failed to record sale")
		return err
	}
	v.Sales = sales
	v.Status = StatusReady
	return nil
}

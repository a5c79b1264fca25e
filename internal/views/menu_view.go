package views

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultRowsPerPage is the initial page size of the menu table
const DefaultRowsPerPage = 10

// FormMode tells whether the menu form creates a new item or edits an existing one
type FormMode interface {
	isFormMode()
}

// CreateMode submits the form as a new menu item
type CreateMode struct{}

// EditMode submits the form as an update of item ID
type EditMode struct {
	ID uint
}

func (CreateMode) isFormMode() {}
func (EditMode) isFormMode()   {}

// MenuForm is the single add/edit form of the menu screen. Price is kept as typed.
type MenuForm struct {
	Mode  FormMode
	Name  string
	Price string
}

// NewMenuForm returns an empty form in create mode
func NewMenuForm() MenuForm {
	return MenuForm{Mode: CreateMode{}}
}

// FormAction is an event applied to a MenuForm by ReduceForm
type FormAction interface {
	isFormAction()
}

// EditStarted loads an existing item into the form
type EditStarted struct {
	Item models.MenuItem
}

// NameChanged replaces the typed name
type NameChanged struct {
	Name string
}

// PriceChanged replaces the typed price
type PriceChanged struct {
	Price string
}

// FormReset empties the form and returns it to create mode
type FormReset struct{}

func (EditStarted) isFormAction()  {}
func (NameChanged) isFormAction()  {}
func (PriceChanged) isFormAction() {}
func (FormReset) isFormAction()    {}

// ReduceForm applies one action to the form
func ReduceForm(form MenuForm, action FormAction) MenuForm {
	switch a := action.(type) {
	case EditStarted:
		return MenuForm{
			Mode:  EditMode{ID: a.Item.ID},
			Name:  a.Item.Name,
			Price: a.Item.Price.String(),
		}
	case NameChanged:
		form.Name = a.Name
	case PriceChanged:
		form.Price = a.Price
	case FormReset:
		return NewMenuForm()
	}
	return form
}

// MenuView is the state of the menu management screen
type MenuView struct {
	api MenuAPI

	Status      Status
	Items       []models.MenuItem
	Err         string
	Form        MenuForm
	Page        int
	RowsPerPage int
}

// NewMenuView creates a view that has not loaded yet
func NewMenuView(api MenuAPI) *MenuView {
	return &MenuView{
		api:         api,
		Status:      StatusLoading,
		Form:        NewMenuForm(),
		RowsPerPage: DefaultRowsPerPage,
	}
}

// Load fetches the whole menu
func (v *MenuView) Load(ctx context.Context) error {
	v.Status = StatusLoading
	items, err := v.api.ListMenu(ctx)
	if err != nil {
		log.WithError(err).Warn("Error fetching menu")
		v.Status = StatusFailed
		v.Err = errorText(err, "Failed to fetch menu")
		return err
	}
	v.Items = items
	v.Err = ""
	v.Status = StatusReady
	v.clampPage()
	return nil
}

// Dispatch applies a form action
func (v *MenuView) Dispatch(action FormAction) {
	v.Form = ReduceForm(v.Form, action)
}

// Submit creates or updates depending on the form mode. On success the form is
// reset and the menu refetched; on failure the form keeps its input.
func (v *MenuView) Submit(ctx context.Context) error {
	price, err := decimal.NewFromString(strings.TrimSpace(v.Form.Price))
	if err != nil {
		v.Err = "The menu_price field must be a number."
		return errors.New(v.Err)
	}

	switch mode := v.Form.Mode.(type) {
	case EditMode:
		_, err = v.api.UpdateMenu(ctx, mode.ID, v.Form.Name, price)
	default:
		_, err = v.api.CreateMenu(ctx, v.Form.Name, price)
	}
	if err != nil {
		log.WithError(err).Warn("Error saving menu")
		v.Err = errorText(err, "Something went wrong")
		return err
	}

	v.Dispatch(FormReset{})
	return v.Load(ctx)
}

// Delete removes an item and refetches the menu
func (v *MenuView) Delete(ctx context.Context, id uint) error {
	if err := v.api.DeleteMenu(ctx, id); err != nil {
		log.WithError(err).Warn("Delete error")
		v.Err = errorText(err, "Failed to delete menu item")
		return err
	}
	return v.Load(ctx)
}

// SetPage moves to page p (zero based), clamped to the available pages
func (v *MenuView) SetPage(p int) {
	v.Page = p
	v.clampPage()
}

// SetRowsPerPage changes the page size and goes back to the first page
func (v *MenuView) SetRowsPerPage(n int) {
	if n <= 0 {
		n = DefaultRowsPerPage
	}
	v.RowsPerPage = n
	v.Page = 0
}

// PageCount is the number of pages needed for the current items, at least one
func (v *MenuView) PageCount() int {
	if len(v.Items) == 0 {
		return 1
	}
	return (len(v.Items) + v.RowsPerPage - 1) / v.RowsPerPage
}

// PageRows returns the items shown on the current page
func (v *MenuView) PageRows() []models.MenuItem {
	start := v.Page * v.RowsPerPage
	if start >= len(v.Items) {
		return nil
	}
	end := start + v.RowsPerPage
	if end > len(v.Items) {
		end = len(v.Items)
	}
	return v.Items[start:end]
}

func (v *MenuView) clampPage() {
	if v.Page >= v.PageCount() {
		v.Page = v.PageCount() - 1
	}
	if v.Page < 0 {
		v.Page = 0
	}
}

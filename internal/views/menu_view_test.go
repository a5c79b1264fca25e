package views

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/client"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReduceForm(t *testing.T) {
	item := models.MenuItem{ID: 4, Name: "Pizza", Price: decimal.NewFromInt(300)}

	testCases := []struct {
		name    string
		start   MenuForm
		actions []FormAction
		want    MenuForm
	}{
		{
			name:    "typing in create mode",
			start:   NewMenuForm(),
			actions: []FormAction{NameChanged{Name: "Fries"}, PriceChanged{Price: "80"}},
			want:    MenuForm{Mode: CreateMode{}, Name: "Fries", Price: "80"},
		},
		{
			name:    "edit replaces typed input",
			start:   MenuForm{Mode: CreateMode{}, Name: "half typed"},
			actions: []FormAction{EditStarted{Item: item}},
			want:    MenuForm{Mode: EditMode{ID: 4}, Name: "Pizza", Price: "300"},
		},
		{
			name:    "changes keep edit mode",
			start:   NewMenuForm(),
			actions: []FormAction{EditStarted{Item: item}, PriceChanged{Price: "450"}},
			want:    MenuForm{Mode: EditMode{ID: 4}, Name: "Pizza", Price: "450"},
		},
		{
			name:    "reset returns to create mode",
			start:   NewMenuForm(),
			actions: []FormAction{EditStarted{Item: item}, FormReset{}},
			want:    NewMenuForm(),
		},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			form := tt.start
			for _, a := range tt.actions {
				form = ReduceForm(form, a)
			}
			assert.Equal(t, tt.want, form)
		})
	}
}

func TestMenuViewLoad(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("ListMenu", ctx).Return([]models.MenuItem{{ID: 1, Name: "Burger"}}, nil).Once()
	api.On("ListMenu", ctx).Return(nil, errors.New("connection refused")).Once()

	v := NewMenuView(api)
	assert.Equal(t, StatusLoading, v.Status)

	require.NoError(t, v.Load(ctx))
	assert.Equal(t, StatusReady, v.Status)
	assert.Len(t, v.Items, 1)

	assert.Error(t, v.Load(ctx))
	assert.Equal(t, StatusFailed, v.Status)
	assert.Equal(t, "connection refused", v.Err)
}

func TestMenuViewSubmitCreates(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("CreateMenu", ctx, "Fries", priceEq("80")).Return(models.MenuItem{ID: 2}, nil)
	api.On("ListMenu", ctx).Return([]models.MenuItem{{ID: 2, Name: "Fries"}}, nil)

	v := NewMenuView(api)
	v.Dispatch(NameChanged{Name: "Fries"})
	v.Dispatch(PriceChanged{Price: "80"})

	require.NoError(t, v.Submit(ctx))
	assert.Equal(t, NewMenuForm(), v.Form)
	assert.Equal(t, StatusReady, v.Status)
	assert.Len(t, v.Items, 1)
	api.AssertExpectations(t)
}

func TestMenuViewSubmitUpdatesInEditMode(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("UpdateMenu", ctx, uint(4), "Pizza", priceEq("450")).Return(models.MenuItem{ID: 4}, nil)
	api.On("ListMenu", ctx).Return([]models.MenuItem{}, nil)

	v := NewMenuView(api)
	v.Dispatch(EditStarted{Item: models.MenuItem{ID: 4, Name: "Pizza", Price: decimal.NewFromInt(300)}})
	v.Dispatch(PriceChanged{Price: "450"})

	require.NoError(t, v.Submit(ctx))
	api.AssertExpectations(t)
	api.AssertNotCalled(t, "CreateMenu", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuViewSubmitFailureKeepsForm(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	serverErr := &client.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "The menu_price field must be at least 1."}
	api.On("UpdateMenu", ctx, uint(4), "Pizza", priceEq("0")).Return(models.MenuItem{}, serverErr)

	v := NewMenuView(api)
	v.Dispatch(EditStarted{Item: models.MenuItem{ID: 4, Name: "Pizza"}})
	v.Dispatch(PriceChanged{Price: "0"})

	assert.Error(t, v.Submit(ctx))
	assert.Equal(t, "The menu_price field must be at least 1.", v.Err)
	assert.Equal(t, EditMode{ID: 4}, v.Form.Mode)
	api.AssertNotCalled(t, "ListMenu", mock.Anything)
}

func TestMenuViewSubmitRejectsNonNumericPrice(t *testing.T) {
	api := new(MockAPI)
	v := NewMenuView(api)
	v.Dispatch(NameChanged{Name: "Fries"})
	v.Dispatch(PriceChanged{Price: "cheap"})

	assert.Error(t, v.Submit(context.Background()))
	assert.Equal(t, "The menu_price field must be a number.", v.Err)
	api.AssertNotCalled(t, "CreateMenu", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuViewDelete(t *testing.T) {
	ctx := context.Background()
	api := new(MockAPI)
	api.On("DeleteMenu", ctx, uint(1)).Return(nil)
	api.On("DeleteMenu", ctx, uint(9)).Return(&client.APIError{StatusCode: http.StatusNotFound, Message: "Menu item not found"})
	api.On("ListMenu", ctx).Return([]models.MenuItem{}, nil).Once()

	v := NewMenuView(api)
	require.NoError(t, v.Delete(ctx, 1))
	assert.Equal(t, StatusReady, v.Status)

	assert.Error(t, v.Delete(ctx, 9))
	assert.Equal(t, "Menu item not found", v.Err)
	api.AssertExpectations(t)
}

func TestMenuViewPagination(t *testing.T) {
	ctx := context.Background()
	items := make([]models.MenuItem, 23)
	for i := range items {
		items[i] = models.MenuItem{ID: uint(i + 1), Name: fmt.Sprintf("Item %d", i+1)}
	}
	api := new(MockAPI)
	api.On("ListMenu", ctx).Return(items, nil).Once()
	api.On("ListMenu", ctx).Return(items[:5], nil).Once()

	v := NewMenuView(api)
	require.NoError(t, v.Load(ctx))
	assert.Equal(t, DefaultRowsPerPage, v.RowsPerPage)
	assert.Equal(t, 3, v.PageCount())
	assert.Len(t, v.PageRows(), 10)

	v.SetPage(2)
	require.Len(t, v.PageRows(), 3)
	assert.Equal(t, uint(21), v.PageRows()[0].ID)

	v.SetPage(7)
	assert.Equal(t, 2, v.Page)

	v.SetRowsPerPage(25)
	assert.Equal(t, 0, v.Page)
	assert.Equal(t, 1, v.PageCount())

	v.SetRowsPerPage(2)
	v.SetPage(11)
	assert.Equal(t, 11, v.Page)
	require.NoError(t, v.Load(ctx))
	assert.Equal(t, 2, v.Page)
	assert.Len(t, v.PageRows(), 1)
}

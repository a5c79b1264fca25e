package services

import (
	"context"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenu(t *testing.T) {
	ctx := context.Background()
	service := NewMenuService(setupTestDB(t))

	t.Run("accepts zero price", func(t *testing.T) {
		item, err := service.CreateMenu(ctx, "Water", decimal.Zero)
		require.NoError(t, err)
		assert.NotZero(t, item.ID)
		assert.True(t, item.Price.IsZero())
		assert.False(t, item.CreatedAt.IsZero())
		assert.False(t, item.UpdatedAt.IsZero())
	})

	t.Run("trims the name", func(t *testing.T) {
		item, err := service.CreateMenu(ctx, "  Burger  ", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, "Burger", item.Name)
	})

	testCases := []struct {
		name  string
		input string
		price decimal.Decimal
		field string
	}{
		{name: "empty name", input: "", price: decimal.NewFromInt(10), field: "menu_name"},
		{name: "blank name", input: "   ", price: decimal.NewFromInt(10), field: "menu_name"},
		{name: "name too long", input: strings.Repeat("a", 256), price: decimal.NewFromInt(10), field: "menu_name"},
		{name: "negative price", input: "Soup", price: decimal.NewFromInt(-1), field: "menu_price"},
	}
	for _, tt := range testCases {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := service.CreateMenu(ctx, tt.input, tt.price)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}

	t.Run("accepts 255 characters", func(t *testing.T) {
		_, err := service.CreateMenu(ctx, strings.Repeat("é", 255), decimal.NewFromInt(1))
		assert.NoError(t, err)
	})
}

func TestCreateMenuAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	service := NewMenuService(setupTestDB(t))

	seen := map[uint]bool{}
	for i := 0; i < 20; i++ {
		item, err := service.CreateMenu(ctx, "Item", decimal.NewFromInt(int64(i)))
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "id %d reused", item.ID)
		seen[item.ID] = true
	}
}

func TestUpdateMenu(t *testing.T) {
	ctx := context.Background()
	service := NewMenuService(setupTestDB(t))

	created, err := service.CreateMenu(ctx, "Burger", decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("replaces name and price", func(t *testing.T) {
		updated, err := service.UpdateMenu(ctx, created.ID, "Cheeseburger", decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Cheeseburger", updated.Name)
		assert.True(t, updated.Price.Equal(decimal.NewFromInt(150)))
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		stored, err := service.GetMenu(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Cheeseburger", stored.Name)
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := service.UpdateMenu(ctx, created.ID, "Burger", decimal.Zero)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "menu_price", validationErr.Field)
	})

	t.Run("rejects price below one", func(t *testing.T) {
		_, err := service.UpdateMenu(ctx, created.ID, "Burger", decimal.RequireFromString("0.99"))

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("accepts price of exactly one", func(t *testing.T) {
		_, err := service.UpdateMenu(ctx, created.ID, "Burger", decimal.NewFromInt(1))
		assert.NoError(t, err)
	})

	t.Run("returns not found for missing id", func(t *testing.T) {
		_, err := service.UpdateMenu(ctx, 9999, "Ghost", decimal.NewFromInt(10))

		var notFound *NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("validates before looking up", func(t *testing.T) {
		_, err := service.UpdateMenu(ctx, 9999, "", decimal.NewFromInt(10))

		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestDeleteMenu(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := NewMenuService(db)

	item, err := service.CreateMenu(ctx, "Burger", decimal.NewFromInt(100))
	require.NoError(t, err)

	require.NoError(t, service.DeleteMenu(ctx, item.ID))

	_, err = service.GetMenu(ctx, item.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = service.DeleteMenu(ctx, item.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestListMenu(t *testing.T) {
	ctx := context.Background()
	service := NewMenuService(setupTestDB(t))

	items, err := service.ListMenu(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, name := range []string{"Burger", "Fries", "Soda"} {
		_, err := service.CreateMenu(ctx, name, decimal.NewFromInt(10))
		require.NoError(t, err)
	}

	items, err = service.ListMenu(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.ElementsMatch(t, []string{"Burger", "Fries", "Soda"}, names)
}

func TestStoreFailureIsInternal(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&models.MenuItem{}))
	service := NewMenuService(db)

	_, err := service.ListMenu(ctx)

	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Error(t, internal.Unwrap())
}

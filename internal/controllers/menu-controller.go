package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to the menu catalog
type MenuController interface {
	// ListMenu retrieves all menu items
	ListMenu(c *gin.Context)
	// CreateMenu creates a new menu item
	CreateMenu(c *gin.Context)
	// UpdateMenu replaces the name and price of a menu item
	UpdateMenu(c *gin.Context)
	// DeleteMenu deletes a menu item by its ID
	DeleteMenu(c *gin.Context)
}

// MenuRequest is the body accepted by the create and update endpoints.
// menu_price may be sent as a JSON number or a numeric string.
type MenuRequest struct {
	Name  string          `json:"menu_name" example:"Burger"`
	Price json.RawMessage `json:"menu_price" swaggertype:"number" example:"100"`
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

func menuErrors(internal string) errorMessages {
	return errorMessages{
		notFoundCode: models.ErrMenuNotFound,
		notFound:     "Menu item not found",
		internal:     internal,
	}
}

// ListMenu godoc
// @Summary List menu items
// @Description Get every menu item in storage order
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} map[string]string
// @Router /api/menu [get]
func (c *menuController) ListMenu(ctx *gin.Context) {
	items, err := c.service.ListMenu(ctx.Request.Context())
	if err != nil {
		ctx.JSON(errorResponse(err, menuErrors("Failed to retrieve menu")))
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// CreateMenu godoc
// @Summary Create a menu item
// @Description Add a menu item. The price may be zero.
// @Tags menu
// @Accept json
// @Produce json
// @Param menu body MenuRequest true "Menu item"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/menu [post]
func (c *menuController) CreateMenu(ctx *gin.Context) {
	var req MenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
		return
	}

	price, err := parseDecimal("menu_price", req.Price)
	if err != nil {
		ctx.JSON(errorResponse(err, menuErrors("Failed to add menu")))
		return
	}

	item, err := c.service.CreateMenu(ctx.Request.Context(), req.Name, price)
	if err != nil {
		ctx.JSON(errorResponse(err, menuErrors("Failed to add menu")))
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Menu added successfully",
		"data":    item,
	})
}

// UpdateMenu godoc
// @Summary Update a menu item
// @Description Replace the name and price of a menu item. The price must be at least 1.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param menu body MenuRequest true "Menu item"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /api/menu/{id} [put]
func (c *menuController) UpdateMenu(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, badRequest("Invalid menu ID format"))
		return
	}

	var req MenuRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, badRequest("Invalid request body"))
		return
	}

	price, err := parseDecimal("menu_price", req.Price)
	if err != nil {
		ctx.JSON(errorResponse(err, menuErrors("Failed to update menu")))
		return
	}

	item, err := c.service.UpdateMenu(ctx.Request.Context(), id, req.Name, price)
	if err != nil {
		ctx.JSON(errorResponse(err, menuErrors("Failed to update menu")))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Menu updated successfully",
		"data":    item,
	})
}

// DeleteMenu godoc
// @Summary Delete a menu item
// @Description Delete a menu item by its ID. Sales that reference it are kept.
// @Tags menu
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/menu/{id} [delete]
func (c *menuController) DeleteMenu(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, badRequest("Invalid menu ID format"))
		return
	}

	if err := c.service.DeleteMenu(ctx.Request.Context(), id); err != nil {
		status, body := errorResponse(err, menuErrors("Failed to delete menu"))
		if status == http.StatusInternalServerError {
			body["success"] = false
		}
		ctx.JSON(status, body)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Menu deleted successfully",
		"deleted_id": id,
	})
}

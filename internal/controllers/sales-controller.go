package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/services"
	"github.com/gin-gonic/gin"
)

// SalesController handles HTTP requests related to sales
type SalesController interface {
	// ListSales retrieves joined sales rows, newest first
	ListSales(c *gin.Context)
	// SalesSummary retrieves per menu item totals
	SalesSummary(c *gin.Context)
	// CreateSale records a sale
	CreateSale(c *gin.Context)
	// DeleteSale deletes a sale by its ID
	DeleteSale(c *gin.Context)
}

// SaleRequest is the body accepted by the create endpoint.
// Both fields may be sent as JSON numbers or numeric strings.
type SaleRequest struct {
	MenuID   json.RawMessage `json:"menu_id" swaggertype:"integer" example:"1"`
	Quantity json.RawMessage `json:"quantity" swaggertype:"integer" example:"3"`
}

type salesController struct {
	service services.SalesService
}

// NewSalesController creates a new instance of SalesController
func NewSalesController(service services.SalesService) *salesController {
	return &salesController{service: service}
}

// salesError writes a failure using the sales envelope, which always carries success=false
func salesError(ctx *gin.Context, err error, internal string) {
	status, body := errorResponse(err, errorMessages{
		notFoundCode: models.ErrSaleNotFound,
		notFound:     "Sale not found",
		internal:     internal,
	})
	body["success"] = false
	ctx.JSON(status, body)
}

func dateRange(ctx *gin.Context) (services.DateRange, error) {
	return services.ParseDateRange(ctx.Query("start"), ctx.Query("end"))
}

// ListSales godoc
// @Summary List sales
// @Description Sales joined with their menu item, newest first. total_price is computed from the current menu price. Sales whose menu item was deleted are omitted.
// @Tags sales
// @Produce json
// @Param start query string false "Inclusive lower bound on created_at (YYYY-MM-DD or RFC 3339)"
// @Param end query string false "Inclusive upper bound on created_at (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales [get]
func (c *salesController) ListSales(ctx *gin.Context) {
	r, err := dateRange(ctx)
	if err != nil {
		salesError(ctx, err, "Failed to retrieve sales")
		return
	}

	rows, err := c.service.ListSales(ctx.Request.Context(), r)
	if err != nil {
		salesError(ctx, err, "Failed to retrieve sales")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// SalesSummary godoc
// @Summary Summarize sales
// @Description Quantity and revenue per menu item plus overall totals for an optional date range
// @Tags sales
// @Produce json
// @Param start query string false "Inclusive lower bound on created_at (YYYY-MM-DD or RFC 3339)"
// @Param end query string false "Inclusive upper bound on created_at (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales/summary [get]
func (c *salesController) SalesSummary(ctx *gin.Context) {
	r, err := dateRange(ctx)
	if err != nil {
		salesError(ctx, err, "Failed to summarize sales")
		return
	}

	summary, err := c.service.SalesSummary(ctx.Request.Context(), r)
	if err != nil {
		salesError(ctx, err, "Failed to summarize sales")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    summary,
	})
}

// CreateSale godoc
// @Summary Record a sale
// @Description Record a quantity sold of an existing menu item
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body SaleRequest true "Sale"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 422 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales [post]
func (c *salesController) CreateSale(ctx *gin.Context) {
	var req SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		body := badRequest("Invalid request body")
		body["success"] = false
		ctx.JSON(http.StatusBadRequest, body)
		return
	}

	menuID, err := parseInteger("menu_id", req.MenuID)
	if err != nil {
		salesError(ctx, err, "Failed to record sale")
		return
	}
	if menuID <= 0 {
		salesError(ctx, services.NewValidationError("menu_id", "menu_id does not exist"), "Failed to record sale")
		return
	}

	quantity, err := parseInteger("quantity", req.Quantity)
	if err != nil {
		salesError(ctx, err, "Failed to record sale")
		return
	}

	sale, err := c.service.CreateSale(ctx.Request.Context(), uint(menuID), int(quantity))
	if err != nil {
		salesError(ctx, err, "Failed to record sale")
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sale,
		"message": "Sale recorded successfully",
	})
}

// DeleteSale godoc
// @Summary Delete a sale
// @Description Delete a sale by its ID
// @Tags sales
// @Produce json
// @Param id path int true "Sale ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sales/{id} [delete]
func (c *salesController) DeleteSale(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		body := badRequest("Invalid sale ID format")
		body["success"] = false
		ctx.JSON(http.StatusBadRequest, body)
		return
	}

	if err := c.service.DeleteSale(ctx.Request.Context(), id); err != nil {
		salesError(ctx, err, "Failed to delete sale")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Sale deleted successfully",
	})
}

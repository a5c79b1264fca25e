package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/franciscosanchezn/gin-restaurant-pos/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// errorMessages are the caller-facing texts for one resource
type errorMessages struct {
	notFoundCode string
	notFound     string
	internal     string
}

// errorResponse maps a service error onto a status code and JSON body.
// Internal failures never expose the underlying store error.
func errorResponse(err error, msgs errorMessages) (int, gin.H) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		body := gin.H{"error": validationErr.Message, "code": models.ErrValidationFailed}
		if validationErr.Field != "" {
			body["errors"] = gin.H{validationErr.Field: []string{validationErr.Message}}
		}
		return http.StatusUnprocessableEntity, body
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, gin.H{"error": msgs.notFound, "code": msgs.notFoundCode}
	default:
		return http.StatusInternalServerError, gin.H{"error": msgs.internal, "code": models.ErrInternalServer}
	}
}

func badRequest(message string) gin.H {
	return gin.H{"error": message, "code": models.ErrBadRequest}
}

// parseID reads the :id path parameter
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// rawValue returns the textual form of a JSON scalar, accepting numbers and numeric strings
func rawValue(field string, raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", services.NewValidationError(field, fmt.Sprintf("The %s field is required.", field))
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", services.NewValidationError(field, fmt.Sprintf("The %s field must be a number.", field))
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return "", services.NewValidationError(field, fmt.Sprintf("The %s field is required.", field))
		}
		return s, nil
	}
	return string(raw), nil
}

// parseDecimal parses a required numeric field
func parseDecimal(field string, raw json.RawMessage) (decimal.Decimal, error) {
	text, err := rawValue(field, raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, services.NewValidationError(field, fmt.Sprintf("The %s field must be a number.", field))
	}
	return d, nil
}

// parseInteger parses a required integer field
func parseInteger(field string, raw json.RawMessage) (int64, error) {
	text, err := rawValue(field, raw)
	if err != nil {
		return 0, err
	}
	d, err := decimal.NewFromString(text)
	if err != nil || !d.IsInteger() ||
		d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, services.NewValidationError(field, fmt.Sprintf("The %s field must be an integer.", field))
	}
	return d.IntPart(), nil
}

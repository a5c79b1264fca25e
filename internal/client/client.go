// Package client is a typed HTTP client for the restaurant POS REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-restaurant-pos/internal/models"
	"github.com/shopspring/decimal"
)

// APIError is returned for every non-2xx response. Message is the server's
// error text verbatim so views can show it unchanged.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	return e.Message
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// Client talks to the /api endpoints of the server
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type menuPayload struct {
	Name  string          `json:"menu_name"`
	Price decimal.Decimal `json:"menu_price"`
}

type salePayload struct {
	MenuID   uint `json:"menu_id"`
	Quantity int  `json:"quantity"`
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// ListMenu fetches every menu item
func (c *Client) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := c.do(ctx, http.MethodGet, "/api/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateMenu adds a menu item
func (c *Client) CreateMenu(ctx context.Context, name string, price decimal.Decimal) (models.MenuItem, error) {
	var resp envelope[models.MenuItem]
	err := c.do(ctx, http.MethodPost, "/api/menu", menuPayload{Name: name, Price: price}, &resp)
	return resp.Data, err
}

// UpdateMenu replaces the name and price of a menu item
func (c *Client) UpdateMenu(ctx context.Context, id uint, name string, price decimal.Decimal) (models.MenuItem, error) {
	var resp envelope[models.MenuItem]
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/menu/%d", id), menuPayload{Name: name, Price: price}, &resp)
	return resp.Data, err
}

// DeleteMenu removes a menu item
func (c *Client) DeleteMenu(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/menu/%d", id), nil, nil)
}

// ListSales fetches joined sales rows, newest first. Empty bounds are omitted.
func (c *Client) ListSales(ctx context.Context, start, end string) ([]models.SaleRow, error) {
	var resp envelope[[]models.SaleRow]
	if err := c.do(ctx, http.MethodGet, "/api/sales"+rangeQuery(start, end), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SalesSummary fetches per menu item totals computed by the server
func (c *Client) SalesSummary(ctx context.Context, start, end string) (models.SalesSummary, error) {
	var resp envelope[models.SalesSummary]
	err := c.do(ctx, http.MethodGet, "/api/sales/summary"+rangeQuery(start, end), nil, &resp)
	return resp.Data, err
}

// CreateSale records a sale
func (c *Client) CreateSale(ctx context.Context, menuID uint, quantity int) (models.Sale, error) {
	var resp envelope[models.Sale]
	err := c.do(ctx, http.MethodPost, "/api/sales", salePayload{MenuID: menuID, Quantity: quantity}, &resp)
	return resp.Data, err
}

// DeleteSale removes a sale
func (c *Client) DeleteSale(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/sales/%d", id), nil, nil)
}

func rangeQuery(start, end string) string {
	q := url.Values{}
	if start != "" {
		q.Set("start", start)
	}
	if end != "" {
		q.Set("end", end)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError prefers "error", then "message", then the status text
func decodeError(status int, raw []byte) error {
	var body struct {
		Error   string              `json:"error"`
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	_ = json.Unmarshal(raw, &body)

	apiErr := &APIError{StatusCode: status, Message: body.Error, Fields: body.Errors}
	if apiErr.Message == "" {
		apiErr.Message = body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// OrderItem is one order in the buyer's order history.
type OrderItem struct {
	OrderID      int     `json:"order_id"`
	ProductName  string  `json:"product_name"`
	MerchantName string  `json:"merchant_name"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	TotalAmount  float64 `json:"total_amount"`
	OrderTime    string  `json:"order_time"`
	Status       string  `json:"status"`
	IsReviewed   bool    `json:"is_reviewed"`
}

// OrderPage is a page of the buyer's order history.
type OrderPage struct {
	Total int         `json:"total"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
	Items []OrderItem `json:"items"`
}

// SearchResult is one product in a search or recommendation response.
type SearchResult struct {
	ProductID    int     `json:"product_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	MerchantName string  `json:"merchant_name"`
}

// SearchRequest filters the product search.
type SearchRequest struct {
	Keyword  string   `json:"keyword"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// CreateOrderRequest places an order for a product.
type CreateOrderRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// UserOrders returns a page of the buyer's order history.
func (c *Client) UserOrders(ctx context.Context, page, size int) (*OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out OrderPage
	if err := c.get(ctx, "/api/user/orders", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOrder places an order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) error {
	return c.send(ctx, http.MethodPost, "/api/user/orders", req, nil)
}

// SearchProducts searches listed products.
func (c *Client) SearchProducts(ctx context.Context, req SearchRequest) ([]SearchResult, error) {
	var out []SearchResult
	if err := c.send(ctx, http.MethodPost, "/api/user/search", req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Recommendations returns personalized product recommendations.
func (c *Client) Recommendations(ctx context.Context, limit int) ([]SearchResult, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out []SearchResult
	if err := c.get(ctx, "/api/user/recommendations", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Product is one product in the merchant's catalogue.
type Product struct {
	ProductID  int     `json:"product_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	SalesCount int     `json:"sales_count"`
	Category   string  `json:"category"`
	Status     int     `json:"status"`
	CreatedAt  string  `json:"created_at"`
}

// ProductPage is a page of the merchant's catalogue.
type ProductPage struct {
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Size  int       `json:"size"`
	Items []Product `json:"items"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category,omitempty"`
}

// SalesTrend is daily sales over a window, aligned by index.
type SalesTrend struct {
	Dates []string `json:"dates"`
	Sales []int    `json:"sales"`
}

// TopProduct is one entry of the sales ranking.
type TopProduct struct {
	Name  string `json:"name"`
	Sales int    `json:"sales"`
}

// CategoryShare is one slice of the category distribution.
type CategoryShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Suggestions is the advisor output for the merchant dashboard.
type Suggestions struct {
	Suggestions []string `json:"suggestions"`
}

// MerchantProducts returns a page of the merchant's own products.
func (c *Client) MerchantProducts(ctx context.Context, page, size int) (*ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out ProductPage
	if err := c.get(ctx, "/api/merchant/products", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProduct lists a new product.
func (c *Client) CreateProduct(ctx context.Context, req ProductRequest) error {
	return c.send(ctx, http.MethodPost, "/api/merchant/products", req, nil)
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, productID int, req ProductRequest) error {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/api/merchant/products/%d", productID), req, nil)
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, productID int) error {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/api/merchant/products/%d", productID), nil, nil)
}

// MerchantOrders returns a page of orders placed against the merchant.
func (c *Client) MerchantOrders(ctx context.Context, page, size int) (*OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out OrderPage
	if err := c.get(ctx, "/api/merchant/orders", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesTrend returns daily sales for the last N days.
func (c *Client) SalesTrend(ctx context.Context, days int) (*SalesTrend, error) {
	query := url.Values{}
	query.Set("days", strconv.Itoa(days))

	var out SalesTrend
	if err := c.get(ctx, "/api/merchant/sales/trend", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TopProducts returns the best selling products.
func (c *Client) TopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out []TopProduct
	if err := c.get(ctx, "/api/merchant/products/top", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryDistribution returns sales per category.
func (c *Client) CategoryDistribution(ctx context.Context) ([]CategoryShare, error) {
	var out []CategoryShare
	if err := c.get(ctx, "/api/merchant/category/distribution", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AISuggestions returns generated business suggestions.
func (c *Client) AISuggestions(ctx context.Context) (*Suggestions, error) {
	var out Suggestions
	if err := c.get(ctx, "/api/merchant/ai/suggestions", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

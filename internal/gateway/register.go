package gateway

import (
	"context"
	"fmt"
)

// RegisterUserRequest represents the buyer registration body.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=15"`
}

// RegisterMerchantRequest represents the merchant registration body.
type RegisterMerchantRequest struct {
	Name          string `json:"name" validate:"required,min=3,max=50"`
	Password      string `json:"password" validate:"required,min=6"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,max=15"`
}

// RegisterUser creates a buyer account.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid registration request: %w", err)
	}
	return c.postJSON(ctx, "/api/auth/register/user", req, nil)
}

// RegisterMerchant creates a merchant account.
func (c *Client) RegisterMerchant(ctx context.Context, req RegisterMerchantRequest) error {
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid registration request: %w", err)
	}
	return c.postJSON(ctx, "/api/auth/register/merchant", req, nil)
}

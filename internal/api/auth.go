package api

import (
	"context"

	"profix/internal/models"
)

// postMessage is for routes whose only payload is the confirmation message.
func (c *Client) postMessage(ctx context.Context, route string, body any) (string, error) {
	env, err := c.post(ctx, route, body)
	if err != nil {
		return "", err
	}
	return env.message(), nil
}

func (c *Client) RegisterUser(ctx context.Context, req models.UserRegisterRequest) (string, error) {
	return c.postMessage(ctx, RouteUserRegister, req)
}

func (c *Client) RegisterProvider(ctx context.Context, req models.ProviderRegisterRequest) (string, error) {
	return c.postMessage(ctx, RouteProviderRegister, req)
}

// LoginUser returns the customer record; a success reply without one is a
// parse error.
func (c *Client) LoginUser(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := postFor[models.User](ctx, c, RouteUserLogin, req, "user")
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) LoginProvider(ctx context.Context, req models.LoginRequest) (*models.Provider, error) {
	provider, err := postFor[models.Provider](ctx, c, RouteProviderLogin, req, "provider")
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (c *Client) LoginAdmin(ctx context.Context, req models.LoginRequest) (*models.Admin, error) {
	admin, err := postFor[models.Admin](ctx, c, RouteAdminLogin, req, "admin")
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

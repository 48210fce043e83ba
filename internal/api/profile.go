package api

import (
	"context"

	"profix/internal/models"
)

// AdminDashboard is the admin landing page payload.
type AdminDashboard struct {
	Stats          models.AdminStats       `json:"stats"`
	RecentActivity []models.RecentActivity `json:"recent_activity"`
}

func (c *Client) GetUserProfile(ctx context.Context, userID models.ID) (*models.User, error) {
	u, err := postFor[models.User](ctx, c, RouteUserProfile, models.UserIDRequest{UserID: userID}, "user")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUserProfile sends only the fields that are set.
func (c *Client) UpdateUserProfile(ctx context.Context, req models.UpdateUserProfileRequest) (string, error) {
	return c.postMessage(ctx, RouteUpdateUserProfile, req)
}

func (c *Client) DeleteUserAccount(ctx context.Context, userID models.ID) (string, error) {
	return c.postMessage(ctx, RouteDeleteUserAccount, models.UserIDRequest{UserID: userID})
}

func (c *Client) DeleteProviderAccount(ctx context.Context, providerID models.ID) (string, error) {
	return c.postMessage(ctx, RouteDeleteProviderAccount, models.ProviderIDRequest{ProviderID: providerID})
}

func (c *Client) GetPendingProviders(ctx context.Context) ([]models.Provider, error) {
	return getFor[[]models.Provider](ctx, c, RoutePendingProviders, "providers")
}

func (c *Client) GetApprovedProviders(ctx context.Context) ([]models.Provider, error) {
	return getFor[[]models.Provider](ctx, c, RouteApprovedProviders, "providers")
}

// ProviderAction approves or rejects a pending provider.
func (c *Client) ProviderAction(ctx context.Context, req models.ProviderActionRequest) (string, error) {
	return c.postMessage(ctx, RouteProviderAction, req)
}

func (c *Client) GetAdminStats(ctx context.Context) (*AdminDashboard, error) {
	env, err := c.get(ctx, RouteAdminStats, "stats")
	if err != nil {
		return nil, err
	}
	var d AdminDashboard
	if err := env.whole(RouteAdminStats, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) GetNotifications(ctx context.Context, req models.GetNotificationsRequest) ([]models.Notification, error) {
	return postFor[[]models.Notification](ctx, c, RouteNotifications, req, "notifications")
}

// MarkNotificationRead marks one notification, or all of them when MarkAll is set.
func (c *Client) MarkNotificationRead(ctx context.Context, req models.MarkNotificationReadRequest) (string, error) {
	return c.postMessage(ctx, RouteMarkNotificationRead, req)
}

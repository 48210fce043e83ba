package api

import (
	"context"

	"profix/internal/metrics"
	"profix/internal/models"
)

const catalogCacheKey = "profix:catalog:services"

// ProviderDetails is everything the provider page shows in one call.
type ProviderDetails struct {
	Provider     models.Provider
	Reviews      []models.Review
	Availability []models.ProviderAvailability
	Portfolio    []models.PortfolioImage
}

// GetServices lists bookable categories. It is the only cached call: the
// catalog changes rarely and is not edited by this client.
func (c *Client) GetServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if c.readCache(ctx, catalogCacheKey, &services) {
		metrics.ObserveCall(RouteServices, metrics.OutcomeCache, 0)
		return services, nil
	}

	services, err := getFor[[]models.Service](ctx, c, RouteServices, "services")
	if err != nil {
		return nil, err
	}
	c.writeCache(ctx, catalogCacheKey, services)
	return services, nil
}

func (c *Client) GetProviders(ctx context.Context, req models.GetProvidersRequest) ([]models.Provider, error) {
	return postFor[[]models.Provider](ctx, c, RouteProviders, req, "providers")
}

func (c *Client) GetProviderDetails(ctx context.Context, providerID models.ID) (*ProviderDetails, error) {
	env, err := c.post(ctx, RouteProviderDetails, models.ProviderIDRequest{ProviderID: providerID}, "provider")
	if err != nil {
		return nil, err
	}
	var d ProviderDetails
	for key, out := range map[string]any{
		"provider":     &d.Provider,
		"reviews":      &d.Reviews,
		"availability": &d.Availability,
		"portfolio":    &d.Portfolio,
	} {
		if err := env.decode(RouteProviderDetails, key, out); err != nil {
			return nil, err
		}
	}
	if err := checkRecords(RouteProviderDetails, "provider", d.Provider); err != nil {
		return nil, err
	}
	if err := checkRecords(RouteProviderDetails, "availability", d.Availability); err != nil {
		return nil, err
	}
	if err := checkRecords(RouteProviderDetails, "portfolio", d.Portfolio); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) GetProviderProfile(ctx context.Context, providerID models.ID) (*models.Provider, error) {
	p, err := postFor[models.Provider](ctx, c, RouteProviderProfile, models.ProviderIDRequest{ProviderID: providerID}, "provider")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProviderProfile sends only the fields that are set.
func (c *Client) UpdateProviderProfile(ctx context.Context, req models.UpdateProviderProfileRequest) (string, error) {
	return c.postMessage(ctx, RouteUpdateProviderProfile, req)
}

func (c *Client) GetProviderStats(ctx context.Context, providerID models.ID) (*models.ProviderStats, error) {
	s, err := postFor[models.ProviderStats](ctx, c, RouteProviderStats, models.ProviderIDRequest{ProviderID: providerID}, "stats")
	if err != nil {
		return nil, err
	}
	return &s, nil
}

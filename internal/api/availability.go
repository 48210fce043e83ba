package api

import (
	"context"

	"profix/internal/models"
)

// GetProviderAvailability returns the records of one month. month is 1-based.
func (c *Client) GetProviderAvailability(ctx context.Context, providerID models.ID, year, month int) ([]models.ProviderAvailability, error) {
	req := models.GetAvailabilityRequest{ProviderID: providerID, Year: year, Month: month}
	return postFor[[]models.ProviderAvailability](ctx, c, RouteProviderAvailability, req, "availability")
}

// UpdateProviderAvailability saves exactly one date's full record.
func (c *Client) UpdateProviderAvailability(ctx context.Context, req models.UpdateAvailabilityRequest) (string, error) {
	return c.postMessage(ctx, RouteUpdateProviderAvailability, req)
}

// CopyAvailability applies the source date's settings to every target date
// in a single call.
func (c *Client) CopyAvailability(ctx context.Context, req models.CopyAvailabilityRequest) (string, error) {
	return c.postMessage(ctx, RouteCopyAvailability, req)
}

func (c *Client) UpdateProviderLocation(ctx context.Context, req models.UpdateLocationRequest) (string, error) {
	return c.postMessage(ctx, RouteUpdateProviderLocation, req)
}

// GetProviderLocation returns the tracking snapshot for a booking. The
// location fields sit next to success rather than under a payload key.
func (c *Client) GetProviderLocation(ctx context.Context, bookingID models.ID) (*models.Location, error) {
	env, err := c.post(ctx, RouteProviderLocation, models.BookingIDRequest{BookingID: bookingID}, "can_track")
	if err != nil {
		return nil, err
	}
	var loc models.Location
	if err := env.whole(RouteProviderLocation, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

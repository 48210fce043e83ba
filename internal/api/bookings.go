package api

import (
	"context"

	"profix/internal/models"
)

// ReviewAnalysis is the backend's sentiment split of a provider's reviews.
type ReviewAnalysis struct {
	Positive      []models.SentimentReview `json:"positive_reviews"`
	Negative      []models.SentimentReview `json:"negative_reviews"`
	PositiveCount models.ID                `json:"positive_count"`
	NegativeCount models.ID                `json:"negative_count"`
	TotalReviews  models.ID                `json:"total_reviews"`
	Summary       string                   `json:"summary"`
}

func (c *Client) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.BookingCreated, error) {
	b, err := postFor[models.BookingCreated](ctx, c, RouteCreateBooking, req, "booking")
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) GetUserBookings(ctx context.Context, userID models.ID) ([]models.Booking, error) {
	return postFor[[]models.Booking](ctx, c, RouteUserBookings, models.UserIDRequest{UserID: userID}, "bookings")
}

func (c *Client) GetProviderBookings(ctx context.Context, providerID models.ID) ([]models.Booking, error) {
	return postFor[[]models.Booking](ctx, c, RouteProviderBookings, models.ProviderIDRequest{ProviderID: providerID}, "bookings")
}

// UpdateBookingStatus requests a transition. The status string is sent as
// given: legality of the transition is decided by the backend alone.
func (c *Client) UpdateBookingStatus(ctx context.Context, req models.UpdateBookingStatusRequest) (string, error) {
	return c.postMessage(ctx, RouteUpdateBookingStatus, req)
}

func (c *Client) SubmitReview(ctx context.Context, req models.SubmitReviewRequest) (string, error) {
	return c.postMessage(ctx, RouteSubmitReview, req)
}

func (c *Client) AnalyzeReviews(ctx context.Context, providerID models.ID) (*ReviewAnalysis, error) {
	env, err := c.post(ctx, RouteAnalyzeReviews, models.ProviderIDRequest{ProviderID: providerID},
		"positive_reviews", "negative_reviews")
	if err != nil {
		return nil, err
	}
	var a ReviewAnalysis
	if err := env.whole(RouteAnalyzeReviews, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

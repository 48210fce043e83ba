package screens

import (
	"context"
	"strings"

	"profix/internal/api"
	"profix/internal/models"
)

type BrowseBackend interface {
	GetServices(ctx context.Context) ([]models.Service, error)
	GetProviders(ctx context.Context, req models.GetProvidersRequest) ([]models.Provider, error)
	GetProviderDetails(ctx context.Context, providerID models.ID) (*api.ProviderDetails, error)
	AnalyzeReviews(ctx context.Context, providerID models.ID) (*api.ReviewAnalysis, error)
}

// Browse covers the service grid, a category's provider list and one
// provider's detail page.
type Browse struct {
	status
	backend   BrowseBackend
	services  []models.Service
	providers []models.Provider
	details   *api.ProviderDetails
	reviews   *api.ReviewAnalysis
}

func NewBrowse(backend BrowseBackend) *Browse {
	return &Browse{backend: backend}
}

func (b *Browse) Services() []models.Service { return b.services }
func (b *Browse) Providers() []models.Provider { return b.providers }
func (b *Browse) Details() *api.ProviderDetails { return b.details }
func (b *Browse) ReviewAnalysis() *api.ReviewAnalysis { return b.reviews }

func (b *Browse) LoadServices(ctx context.Context) error {
	b.begin()
	defer b.end()
	svcs, err := b.backend.GetServices(ctx)
	if err != nil {
		b.message = failure(err, "Failed to load services")
		return err
	}
	b.services = svcs
	return nil
}

// LoadProviders lists providers, optionally narrowed to a service and city.
func (b *Browse) LoadProviders(ctx context.Context, serviceID models.ID, city string) error {
	var req models.GetProvidersRequest
	if serviceID != 0 {
		req.ServiceID = &serviceID
	}
	if c := strings.TrimSpace(city); c != "" {
		req.City = &c
	}

	b.begin()
	defer b.end()
	list, err := b.backend.GetProviders(ctx, req)
	if err != nil {
		b.message = failure(err, "Failed to load providers")
		return err
	}
	b.providers = list
	return nil
}

// Open loads one provider's details and the sentiment split of their
// reviews. The analysis is optional.
func (b *Browse) Open(ctx context.Context, providerID models.ID) error {
	b.begin()
	defer b.end()
	d, err := b.backend.GetProviderDetails(ctx, providerID)
	if err != nil {
		b.message = failure(err, "Failed to load provider")
		return err
	}
	b.details = d
	b.reviews = nil
	if ra, err := b.backend.AnalyzeReviews(ctx, providerID); err == nil {
		b.reviews = ra
	}
	return nil
}

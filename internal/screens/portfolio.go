package screens

import (
	"context"

	"profix/internal/api"
	"profix/internal/models"
)

type PortfolioBackend interface {
	GetProviderPortfolio(ctx context.Context, providerID models.ID) ([]models.PortfolioImage, error)
	UploadPortfolioImage(ctx context.Context, providerID models.ID, description string, img api.Image) (*models.PortfolioImage, error)
	DeletePortfolioImage(ctx context.Context, req models.DeletePortfolioRequest) (string, error)
}

// Portfolio manages a provider's work photos.
type Portfolio struct {
	status
	backend    PortfolioBackend
	providerID models.ID
	items      []models.PortfolioImage
}

func NewPortfolio(backend PortfolioBackend, providerID models.ID) *Portfolio {
	return &Portfolio{backend: backend, providerID: providerID}
}

func (p *Portfolio) Items() []models.PortfolioImage { return p.items }

func (p *Portfolio) Load(ctx context.Context) error {
	p.begin()
	defer p.end()
	items, err := p.backend.GetProviderPortfolio(ctx, p.providerID)
	if err != nil {
		p.message = failure(err, "Failed to load portfolio")
		return err
	}
	p.items = items
	return nil
}

// Upload adds a photo and refreshes the grid.
func (p *Portfolio) Upload(ctx context.Context, description string, img api.Image) error {
	p.begin()
	_, err := p.backend.UploadPortfolioImage(ctx, p.providerID, description, img)
	p.end()
	if err != nil {
		p.message = failure(err, MsgUploadFailed)
		return err
	}
	_ = p.Load(ctx)
	p.message = MsgImageUploaded
	return nil
}

func (p *Portfolio) Delete(ctx context.Context, portfolioID models.ID) error {
	p.begin()
	msg, err := p.backend.DeletePortfolioImage(ctx, models.DeletePortfolioRequest{
		PortfolioID: portfolioID,
		ProviderID:  p.providerID,
	})
	p.end()
	if err != nil {
		p.message = failure(err, "Delete failed")
		return err
	}
	_ = p.Load(ctx)
	p.message = msg
	return nil
}

package screens

import (
	"context"
	"strings"

	"profix/internal/api"
	"profix/internal/models"
)

type AdminBackend interface {
	GetAdminStats(ctx context.Context) (*api.AdminDashboard, error)
	GetPendingProviders(ctx context.Context) ([]models.Provider, error)
	GetApprovedProviders(ctx context.Context) ([]models.Provider, error)
	ProviderAction(ctx context.Context, req models.ProviderActionRequest) (string, error)
}

// Approvals is the admin's pending-provider queue.
type Approvals struct {
	status
	backend AdminBackend
	pending []models.Provider
}

func NewApprovals(backend AdminBackend) *Approvals {
	return &Approvals{backend: backend}
}

func (a *Approvals) Pending() []models.Provider { return a.pending }

func (a *Approvals) Load(ctx context.Context) error {
	a.begin()
	defer a.end()
	list, err := a.backend.GetPendingProviders(ctx)
	if err != nil {
		a.message = failure(err, "Failed to load")
		return err
	}
	a.pending = list
	return nil
}

func (a *Approvals) Approve(ctx context.Context, providerID models.ID) error {
	return a.act(ctx, models.ProviderActionRequest{ProviderID: providerID, Action: models.ActionApprove})
}

// Reject declines a provider; an empty reason is omitted.
func (a *Approvals) Reject(ctx context.Context, providerID models.ID, reason string) error {
	req := models.ProviderActionRequest{ProviderID: providerID, Action: models.ActionReject}
	if r := strings.TrimSpace(reason); r != "" {
		req.RejectionReason = &r
	}
	return a.act(ctx, req)
}

func (a *Approvals) act(ctx context.Context, req models.ProviderActionRequest) error {
	a.begin()
	msg, err := a.backend.ProviderAction(ctx, req)
	a.end()
	if err != nil {
		a.message = failure(err, "Action failed")
		return err
	}
	_ = a.Load(ctx)
	a.message = msg
	return nil
}

// Dashboard is the admin's statistics view.
type Dashboard struct {
	status
	backend  AdminBackend
	data     *api.AdminDashboard
	approved []models.Provider
}

func NewDashboard(backend AdminBackend) *Dashboard {
	return &Dashboard{backend: backend}
}

func (d *Dashboard) Data() *api.AdminDashboard { return d.data }
func (d *Dashboard) Approved() []models.Provider { return d.approved }

func (d *Dashboard) Load(ctx context.Context) error {
	d.begin()
	defer d.end()
	data, err := d.backend.GetAdminStats(ctx)
	if err != nil {
		d.message = failure(err, "Failed to load stats")
		return err
	}
	d.data = data
	approved, err := d.backend.GetApprovedProviders(ctx)
	if err != nil {
		d.message = failure(err, "Failed to load providers")
		return nil
	}
	d.approved = approved
	return nil
}

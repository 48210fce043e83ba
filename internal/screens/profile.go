package screens

import (
	"context"
	"strings"

	"profix/internal/api"
	"profix/internal/models"
	"profix/internal/session"
	"profix/internal/validation"
)

const (
	MsgProfileUpdated = "Profile updated successfully!"
	MsgUpdateFailed   = "Update failed"
	MsgAccountDeleted = "Account deleted"
	MsgImageUploaded  = "Image uploaded successfully!"
	MsgUploadFailed   = "Upload failed"
)

// changed returns a pointer to next when it differs from cur, so unchanged
// fields are left out of the update.
func changed(cur, next string) *string {
	next = strings.TrimSpace(next)
	if next == "" || next == cur {
		return nil
	}
	return &next
}

type UserProfileBackend interface {
	GetUserProfile(ctx context.Context, userID models.ID) (*models.User, error)
	UpdateUserProfile(ctx context.Context, req models.UpdateUserProfileRequest) (string, error)
	UploadUserImage(ctx context.Context, userID models.ID, img api.Image) (string, error)
	DeleteUserAccount(ctx context.Context, userID models.ID) (string, error)
}

// UserProfile is the customer's profile view and editor.
type UserProfile struct {
	status
	backend  UserProfileBackend
	sessions *session.Manager
	userID   models.ID
	user     *models.User
	fields   validation.FieldErrors
}

func NewUserProfile(backend UserProfileBackend, sessions *session.Manager, userID models.ID) *UserProfile {
	return &UserProfile{backend: backend, sessions: sessions, userID: userID}
}

func (p *UserProfile) User() *models.User { return p.user }

func (p *UserProfile) FieldError(field string) string { return p.fields.Field(field) }

func (p *UserProfile) Load(ctx context.Context) error {
	p.begin()
	defer p.end()
	u, err := p.backend.GetUserProfile(ctx, p.userID)
	if err != nil {
		p.message = "Failed to load profile"
		return err
	}
	p.user = u
	return nil
}

// Save sends the fields that differ from the loaded profile and reloads.
func (p *UserProfile) Save(ctx context.Context, form validation.ProfileUpdate) error {
	p.fields = nil
	if err := validation.Struct(form); err != nil {
		p.fields, _ = validation.AsFieldErrors(err)
		return ErrInvalidInput
	}
	cur := p.user
	if cur == nil {
		cur = &models.User{}
	}

	p.begin()
	_, err := p.backend.UpdateUserProfile(ctx, models.UpdateUserProfileRequest{
		UserID:   p.userID,
		FullName: changed(cur.FullName, form.FullName),
		Phone:    changed(cur.Phone, form.Phone),
		Address:  changed(cur.Address, form.Address),
		City:     changed(cur.City, form.City),
		Pincode:  changed(cur.Pincode, form.Pincode),
	})
	p.end()
	if err != nil {
		p.message = failure(err, MsgUpdateFailed)
		return err
	}
	_ = p.Load(ctx)
	p.message = MsgProfileUpdated
	return nil
}

// UploadPhoto replaces the profile picture and returns its URL path.
func (p *UserProfile) UploadPhoto(ctx context.Context, img api.Image) (string, error) {
	p.begin()
	defer p.end()
	url, err := p.backend.UploadUserImage(ctx, p.userID, img)
	if err != nil {
		p.message = failure(err, MsgUploadFailed)
		return "", err
	}
	if p.user != nil {
		p.user.ProfileImage = url
	}
	p.message = MsgImageUploaded
	return url, nil
}

// DeleteAccount removes the account and ends the session.
func (p *UserProfile) DeleteAccount(ctx context.Context) error {
	p.begin()
	defer p.end()
	if _, err := p.backend.DeleteUserAccount(ctx, p.userID); err != nil {
		p.message = failure(err, "Failed")
		return err
	}
	p.message = MsgAccountDeleted
	return p.sessions.End(ctx)
}

type ProviderProfileBackend interface {
	GetProviderProfile(ctx context.Context, providerID models.ID) (*models.Provider, error)
	UpdateProviderProfile(ctx context.Context, req models.UpdateProviderProfileRequest) (string, error)
	UploadProviderImage(ctx context.Context, providerID models.ID, img api.Image) (string, error)
	DeleteProviderAccount(ctx context.Context, providerID models.ID) (string, error)
}

// ProviderProfileUpdate is the provider editor's form. Nil and empty values
// are left unchanged.
type ProviderProfileUpdate struct {
	validation.ProfileUpdate
	Description     string
	HourlyRate      *float64
	ExperienceYears *int
	IsAvailable     *bool
}

// ProviderProfile is the provider's profile view and editor.
type ProviderProfile struct {
	status
	backend    ProviderProfileBackend
	sessions   *session.Manager
	providerID models.ID
	provider   *models.Provider
	fields     validation.FieldErrors
}

func NewProviderProfile(backend ProviderProfileBackend, sessions *session.Manager, providerID models.ID) *ProviderProfile {
	return &ProviderProfile{backend: backend, sessions: sessions, providerID: providerID}
}

func (p *ProviderProfile) Provider() *models.Provider { return p.provider }

func (p *ProviderProfile) FieldError(field string) string { return p.fields.Field(field) }

func (p *ProviderProfile) Load(ctx context.Context) error {
	p.begin()
	defer p.end()
	pr, err := p.backend.GetProviderProfile(ctx, p.providerID)
	if err != nil {
		p.message = "Failed to load profile"
		return err
	}
	p.provider = pr
	return nil
}

func (p *ProviderProfile) Save(ctx context.Context, form ProviderProfileUpdate) error {
	p.fields = nil
	if err := validation.Struct(form.ProfileUpdate); err != nil {
		p.fields, _ = validation.AsFieldErrors(err)
		return ErrInvalidInput
	}
	if form.HourlyRate != nil && *form.HourlyRate <= 0 {
		p.fields = validation.FieldErrors{"hourly_rate": "Must be greater than 0"}
		return ErrInvalidInput
	}
	cur := p.provider
	if cur == nil {
		cur = &models.Provider{}
	}

	req := models.UpdateProviderProfileRequest{
		ProviderID:      p.providerID,
		FullName:        changed(cur.FullName, form.FullName),
		Phone:           changed(cur.Phone, form.Phone),
		Description:     changed(cur.Description, form.Description),
		Address:         changed(cur.Address, form.Address),
		City:            changed(cur.City, form.City),
		Pincode:         changed(cur.Pincode, form.Pincode),
		HourlyRate:      form.HourlyRate,
		ExperienceYears: form.ExperienceYears,
	}
	if form.IsAvailable != nil {
		f := models.Flag(*form.IsAvailable)
		req.IsAvailable = &f
	}

	p.begin()
	_, err := p.backend.UpdateProviderProfile(ctx, req)
	p.end()
	if err != nil {
		p.message = failure(err, MsgUpdateFailed)
		return err
	}
	_ = p.Load(ctx)
	p.message = MsgProfileUpdated
	return nil
}

func (p *ProviderProfile) UploadPhoto(ctx context.Context, img api.Image) (string, error) {
	p.begin()
	defer p.end()
	url, err := p.backend.UploadProviderImage(ctx, p.providerID, img)
	if err != nil {
		p.message = failure(err, MsgUploadFailed)
		return "", err
	}
	if p.provider != nil {
		p.provider.ProfileImage = url
	}
	p.message = MsgImageUploaded
	return url, nil
}

func (p *ProviderProfile) DeleteAccount(ctx context.Context) error {
	p.begin()
	defer p.end()
	if _, err := p.backend.DeleteProviderAccount(ctx, p.providerID); err != nil {
		p.message = failure(err, "Delete failed")
		return err
	}
	p.message = MsgAccountDeleted
	return p.sessions.End(ctx)
}

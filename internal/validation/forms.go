package validation

import "profix/internal/models"

// LoginForm is shared by the user, provider and admin login screens.
type LoginForm struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (f LoginForm) Request() models.LoginRequest {
	return models.LoginRequest{Email: f.Email, Password: f.Password}
}

type UserRegistration struct {
	FullName        string `json:"full_name" validate:"required,letters"`
	Email           string `json:"email" validate:"required,gmail"`
	Phone           string `json:"phone" validate:"len=10,digits"`
	DOB             string `json:"dob" validate:"required,dob"`
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	Pincode         string `json:"pincode" validate:"len=6,digits"`
	Password        string `json:"password" validate:"password"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

func (f UserRegistration) Request() models.UserRegisterRequest {
	dob := f.DOB
	return models.UserRegisterRequest{
		FullName: f.FullName,
		Email:    f.Email,
		Phone:    f.Phone,
		Password: f.Password,
		Address:  f.Address,
		City:     f.City,
		Pincode:  f.Pincode,
		DOB:      &dob,
	}
}

type ProviderRegistration struct {
	FullName        string    `json:"full_name" validate:"required,letters"`
	Email           string    `json:"email" validate:"required,gmail"`
	Phone           string    `json:"phone" validate:"len=10,digits"`
	ServiceID       models.ID `json:"service_id" validate:"required"`
	HourlyRate      float64   `json:"hourly_rate" validate:"gt=0"`
	ExperienceYears int       `json:"experience_years" validate:"min=0,max=80"`
	Description     string    `json:"description"`
	Address         string    `json:"address" validate:"required"`
	City            string    `json:"city" validate:"required"`
	Pincode         string    `json:"pincode" validate:"len=6,digits"`
	Aadhaar         string    `json:"aadhaar" validate:"omitempty,len=12,digits"`
	Password        string    `json:"password" validate:"password"`
	ConfirmPassword string    `json:"confirm_password" validate:"eqfield=Password"`
}

func (f ProviderRegistration) Request() models.ProviderRegisterRequest {
	return models.ProviderRegisterRequest{
		FullName:        f.FullName,
		Email:           f.Email,
		Phone:           f.Phone,
		Password:        f.Password,
		ServiceID:       f.ServiceID,
		HourlyRate:      f.HourlyRate,
		ExperienceYears: f.ExperienceYears,
		Description:     f.Description,
		Address:         f.Address,
		City:            f.City,
		Pincode:         f.Pincode,
		Aadhaar:         f.Aadhaar,
	}
}

// BookingForm is the booking confirmation form. Date availability is checked
// separately against the provider's calendar.
type BookingForm struct {
	BookingDate    string `json:"booking_date" validate:"required,datetime=2006-01-02"`
	BookingTime    string `json:"booking_time" validate:"required"`
	Address        string `json:"address" validate:"required"`
	City           string `json:"city"`
	Pincode        string `json:"pincode" validate:"omitempty,len=6,digits"`
	Description    string `json:"description"`
	EstimatedHours int    `json:"estimated_hours" validate:"min=1,max=12"`
}

type ReviewForm struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// ProfileUpdate holds the editable profile fields; empty means unchanged.
type ProfileUpdate struct {
	FullName string `json:"full_name" validate:"omitempty,letters"`
	Phone    string `json:"phone" validate:"omitempty,len=10,digits"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Pincode  string `json:"pincode" validate:"omitempty,len=6,digits"`
}

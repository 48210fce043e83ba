package models

// Request bodies, one per backend route. Field names are the backend's
// snake_case keys; optional fields are pointers so that "unset" is omitted
// rather than sent as a zero value.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserRegisterRequest struct {
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Password string  `json:"password"`
	Address  string  `json:"address"`
	City     string  `json:"city"`
	Pincode  string  `json:"pincode"`
	DOB      *string `json:"dob,omitempty"`
}

type ProviderRegisterRequest struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Password        string  `json:"password"`
	ServiceID       ID      `json:"service_id"`
	HourlyRate      float64 `json:"hourly_rate"`
	ExperienceYears int     `json:"experience_years"`
	Description     string  `json:"description"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	Pincode         string  `json:"pincode"`
	Aadhaar         string  `json:"aadhaar"`
}

type GetProvidersRequest struct {
	ServiceID *ID     `json:"service_id,omitempty"`
	City      *string `json:"city,omitempty"`
}

type ProviderIDRequest struct {
	ProviderID ID `json:"provider_id"`
}

type UserIDRequest struct {
	UserID ID `json:"user_id"`
}

type BookingIDRequest struct {
	BookingID ID `json:"booking_id"`
}

type CreateBookingRequest struct {
	UserID         ID     `json:"user_id"`
	ProviderID     ID     `json:"provider_id"`
	BookingDate    string `json:"booking_date"`
	BookingTime    string `json:"booking_time"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	Description    string `json:"description"`
	EstimatedHours int    `json:"estimated_hours"`
}

// UpdateBookingStatusRequest carries any status string; the backend decides
// whether the transition is legal.
type UpdateBookingStatusRequest struct {
	BookingID  ID     `json:"booking_id"`
	Status     string `json:"status"`
	ProviderID *ID    `json:"provider_id,omitempty"`
}

type SubmitReviewRequest struct {
	BookingID ID     `json:"booking_id"`
	UserID    ID     `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type UpdateUserProfileRequest struct {
	UserID   ID      `json:"user_id"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Pincode  *string `json:"pincode,omitempty"`
}

type UpdateProviderProfileRequest struct {
	ProviderID      ID       `json:"provider_id"`
	FullName        *string  `json:"full_name,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Address         *string  `json:"address,omitempty"`
	City            *string  `json:"city,omitempty"`
	Pincode         *string  `json:"pincode,omitempty"`
	IsAvailable     *Flag    `json:"is_available,omitempty"`
}

type ProviderActionRequest struct {
	ProviderID      ID      `json:"provider_id"`
	Action          string  `json:"action"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type GetNotificationsRequest struct {
	UserID     *ID `json:"user_id,omitempty"`
	ProviderID *ID `json:"provider_id,omitempty"`
}

type MarkNotificationReadRequest struct {
	NotificationID *ID  `json:"notification_id,omitempty"`
	UserID         *ID  `json:"user_id,omitempty"`
	ProviderID     *ID  `json:"provider_id,omitempty"`
	MarkAll        bool `json:"mark_all"`
}

type GetAvailabilityRequest struct {
	ProviderID ID  `json:"provider_id"`
	Year       int `json:"year"`
	Month      int `json:"month"`
}

type UpdateAvailabilityRequest struct {
	ProviderID ID     `json:"provider_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type CopyAvailabilityRequest struct {
	ProviderID  ID       `json:"provider_id"`
	SourceDate  string   `json:"source_date"`
	TargetDates []string `json:"target_dates"`
}

type DeletePortfolioRequest struct {
	PortfolioID ID `json:"portfolio_id"`
	ProviderID  ID `json:"provider_id"`
}

type UpdateLocationRequest struct {
	ProviderID ID      `json:"provider_id"`
	BookingID  *ID     `json:"booking_id,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	IsSharing  bool    `json:"is_sharing"`
}

type AIChatRequest struct {
	Message    string `json:"message"`
	UserType   string `json:"user_type"`
	UserID     ID     `json:"user_id"`
	ProviderID ID     `json:"provider_id"`
}

type PredictIntentRequest struct {
	Text string `json:"text"`
}

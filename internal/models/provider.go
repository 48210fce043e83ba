package models

// Provider is a service professional. Approval state (verification_status)
// is owned by the backend.
type Provider struct {
	ID                 ID     `json:"id"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ServiceID          ID     `json:"service_id"`
	ServiceName        string `json:"service_name,omitempty"`
	ServiceIcon        string `json:"service_icon,omitempty"`
	HourlyRate         Num    `json:"hourly_rate"`
	ExperienceYears    ID     `json:"experience_years"`
	Description        string `json:"description,omitempty"`
	Address            string `json:"address,omitempty"`
	City               string `json:"city,omitempty"`
	Pincode            string `json:"pincode,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
	IsVerified         Flag   `json:"is_verified"`
	VerificationStatus string `json:"verification_status,omitempty"`
	Rating             Num    `json:"rating"`
	TotalReviews       ID     `json:"total_reviews"`
	TotalJobs          ID     `json:"total_jobs"`
	IsAvailable        Flag   `json:"is_available"`
	HonorScore         Num    `json:"honor_score"`
}

// HonorTier maps the server-computed honor score to its display badge.
func (p Provider) HonorTier() string {
	switch s := float64(p.HonorScore); {
	case s >= 90:
		return "Elite"
	case s >= 75:
		return "Expert"
	case s >= 60:
		return "Professional"
	case s >= 40:
		return "Rising Star"
	default:
		return "New"
	}
}

// Service is a bookable category (Cleaner, Electrician, ...).
type Service struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
	IsActive    Flag   `json:"is_active"`
}

type ProviderStats struct {
	TotalBookings     ID  `json:"total_bookings"`
	PendingBookings   ID  `json:"pending_bookings"`
	CompletedBookings ID  `json:"completed_bookings"`
	TotalEarnings     Num `json:"total_earnings"`
	AverageRating     Num `json:"average_rating"`
}

type PortfolioImage struct {
	ID          ID     `json:"id"`
	ProviderID  ID     `json:"provider_id,omitempty"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

package models

// Booking is an engagement between a user and a provider. Status is a
// server-controlled enumeration (see Status* constants).
type Booking struct {
	ID             ID     `json:"id"`
	UserID         ID     `json:"user_id"`
	ProviderID     ID     `json:"provider_id"`
	ServiceID      ID     `json:"service_id"`
	BookingDate    string `json:"booking_date"`
	BookingTime    string `json:"booking_time"`
	Address        string `json:"address"`
	City           string `json:"city,omitempty"`
	Pincode        string `json:"pincode,omitempty"`
	Description    string `json:"description,omitempty"`
	EstimatedHours ID     `json:"estimated_hours"`
	TotalAmount    Num    `json:"total_amount"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"payment_status,omitempty"`
	ProviderName   string `json:"provider_name,omitempty"`
	ProviderPhone  string `json:"provider_phone,omitempty"`
	ProviderImage  string `json:"provider_image,omitempty"`
	UserName       string `json:"user_name,omitempty"`
	UserPhone      string `json:"user_phone,omitempty"`
	UserImage      string `json:"user_image,omitempty"`
	ServiceName    string `json:"service_name,omitempty"`
	ServiceIcon    string `json:"service_icon,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// IsActive reports whether the booking is still in the provider's queue.
func (b Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusAccepted || b.Status == StatusInProgress
}

// BookingCreated is the short record returned by create_booking.php.
type BookingCreated struct {
	ID          ID     `json:"id"`
	TotalAmount Num    `json:"total_amount"`
	Status      string `json:"status"`
}

package models

type Notification struct {
	ID               ID     `json:"id"`
	UserID           *ID    `json:"user_id,omitempty"`
	ProviderID       *ID    `json:"provider_id,omitempty"`
	Type             string `json:"type"`
	Title            string `json:"title"`
	Message          string `json:"message"`
	RelatedBookingID *ID    `json:"related_booking_id,omitempty"`
	IsRead           Flag   `json:"is_read"`
	CreatedAt        string `json:"created_at,omitempty"`
	BookingDate      string `json:"booking_date,omitempty"`
	BookingTime      string `json:"booking_time,omitempty"`
	ProviderName     string `json:"provider_name,omitempty"`
	UserName         string `json:"user_name,omitempty"`
	ServiceName      string `json:"service_name,omitempty"`
}

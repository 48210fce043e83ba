package models

type AdminStats struct {
	TotalUsers        ID  `json:"total_users"`
	TotalProviders    ID  `json:"total_providers"`
	PendingProviders  ID  `json:"pending_providers"`
	ApprovedProviders ID  `json:"approved_providers"`
	TotalBookings     ID  `json:"total_bookings"`
	CompletedBookings ID  `json:"completed_bookings"`
	PendingBookings   ID  `json:"pending_bookings"`
	ActiveBookings    ID  `json:"active_bookings"`
	TotalRevenue      Num `json:"total_revenue"`
	TotalHoursWorked  Num `json:"total_hours_worked"`
}

type RecentActivity struct {
	ID           ID     `json:"id"`
	Status       string `json:"status"`
	BookingDate  string `json:"booking_date,omitempty"`
	TotalAmount  Num    `json:"total_amount"`
	UserName     string `json:"user_name,omitempty"`
	ProviderName string `json:"provider_name,omitempty"`
	ServiceName  string `json:"service_name,omitempty"`
}

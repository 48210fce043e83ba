package models

import "time"

// ProviderAvailability is one provider's setting for one calendar date.
type ProviderAvailability struct {
	ID         ID     `json:"id,omitempty"`
	ProviderID ID     `json:"provider_id,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

// Day parses Date in DateLayout.
func (a ProviderAvailability) Day() (time.Time, error) {
	return time.Parse(DateLayout, a.Date)
}

func (a ProviderAvailability) IsUnavailable() bool {
	return a.Status == AvailabilityUnavailable
}

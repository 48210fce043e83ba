package models

// Location is the tracking snapshot returned by get_provider_location.php.
type Location struct {
	CanTrack           Flag   `json:"can_track"`
	LocationAvailable  Flag   `json:"location_available"`
	Latitude           *Num   `json:"latitude,omitempty"`
	Longitude          *Num   `json:"longitude,omitempty"`
	LastUpdated        string `json:"last_updated,omitempty"`
	ProviderName       string `json:"provider_name,omitempty"`
	ProviderPhone      string `json:"provider_phone,omitempty"`
	DestinationAddress string `json:"destination_address,omitempty"`
	Message            string `json:"message,omitempty"`
}

// HasFix reports whether both coordinates are present.
func (l Location) HasFix() bool {
	return bool(l.LocationAvailable) && l.Latitude != nil && l.Longitude != nil
}

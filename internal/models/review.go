package models

// Review is immutable once submitted.
type Review struct {
	ID         ID     `json:"id"`
	BookingID  ID     `json:"booking_id"`
	UserID     ID     `json:"user_id"`
	ProviderID ID     `json:"provider_id"`
	Rating     ID     `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	UserName   string `json:"user_name,omitempty"`
	UserImage  string `json:"user_image,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}

// SentimentReview carries the backend's positive/negative classification.
type SentimentReview struct {
	ID        ID     `json:"id"`
	Rating    ID     `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	UserName  string `json:"user_name,omitempty"`
	UserImage string `json:"user_image,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	Sentiment string `json:"sentiment,omitempty"`
}

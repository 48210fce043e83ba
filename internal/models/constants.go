package models

// Booking statuses as reported by the backend. The client never decides
// which transition is legal; these exist for display and filtering only.
const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"
)

const (
	RoleUser     = "user"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
)

const (
	// DateLayout is the wire format of every calendar date.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format of start/end times.
	ClockLayout = "15:04"

	DefaultStartTime = "09:00"
	DefaultEndTime   = "17:00"

	// DefaultTrackingInterval is how often a customer's map refreshes the provider position.
	DefaultTrackingInterval = 5 // seconds
)

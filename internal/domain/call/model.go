package call

// Direction represents the kind of call event being notified.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
	DirectionMissed   Direction = "missed"
)

// Directions lists all recognized call directions in presentation order.
var Directions = []Direction{
	DirectionIncoming,
	DirectionOutgoing,
	DirectionMissed,
}

// validDirections is the set of all recognized call directions.
var validDirections = map[Direction]bool{
	DirectionIncoming: true,
	DirectionOutgoing: true,
	DirectionMissed:   true,
}

// IsValidDirection checks whether a call direction is recognized.
func IsValidDirection(d Direction) bool {
	return validDirections[d]
}

// Event is a validated call notification request. Field values keep the
// caller's exact text; validation never rewrites them.
type Event struct {
	Direction       Direction `json:"direction"`
	CallerNumber    string    `json:"callerNumber"`
	RecipientNumber string    `json:"recipientNumber"`
	CustomMessage   string    `json:"customMessage"`
}

// ResultStatus represents the outcome of a dispatch attempt.
type ResultStatus string

const (
	// StatusSent means the provider accepted the message.
	StatusSent ResultStatus = "sent"

	// StatusDryRun means the message was not actually transmitted, either
	// because credentials are missing or because delivery failed and the
	// dispatcher degraded to a simulated send.
	StatusDryRun ResultStatus = "dry_run"
)

// Result is the normalized outcome of dispatching one call event.
type Result struct {
	Status            ResultStatus `json:"status"`
	ProviderMessageID string       `json:"provider_message_id,omitempty"`
	Reason            string       `json:"reason,omitempty"`
	Body              string       `json:"body"`
}

// DirectionOption pairs a direction value with its human-readable label,
// for populating selection UIs.
type DirectionOption struct {
	Value Direction `json:"value"`
	Label string    `json:"label"`
}

// Credentials holds the provider account settings that gate live delivery.
// All three fields must be present for the dispatcher to attempt a real send;
// otherwise every dispatch resolves to a dry-run.
type Credentials struct {
	AccountID  string
	Secret     string
	FromNumber string
}

// Configured reports whether live delivery is possible.
func (c Credentials) Configured() bool {
	return c.AccountID != "" && c.Secret != "" && c.FromNumber != ""
}

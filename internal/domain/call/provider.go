package call

import "context"

// Message is a rendered SMS ready for delivery.
type Message struct {
	To   string
	From string
	Body string
}

// Provider defines the contract for an SMS delivery backend.
// Implementations live in infra/ (e.g., Twilio).
type Provider interface {
	// Send delivers a rendered message and returns the provider's message ID.
	Send(ctx context.Context, msg *Message) (string, error)
}

// MessageRenderer defines the contract for rendering notification message
// templates. Implementations live in infra/template/.
type MessageRenderer interface {
	// Render substitutes the recognized placeholders in template with values
	// from the event. It is total: it never fails, and unrecognized or
	// malformed placeholders pass through verbatim.
	Render(template string, ev *Event) string

	// Label returns the human-readable label for a direction (e.g. "missed call").
	Label(d Direction) string
}

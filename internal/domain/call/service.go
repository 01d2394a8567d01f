package call

import (
	"context"
	"log/slog"
	"time"
)

// Service orchestrates the notification pipeline:
// render → credentials gate → provider send → normalized result.
//
// Delivery failures never surface as errors from Dispatch. The contract is
// that a well-formed event always yields a describable outcome: either the
// provider accepted the message, or the system degraded to a dry-run and the
// result says why. Hard failures are reserved for malformed input, which is
// rejected before a Service ever sees the event.
type Service struct {
	renderer MessageRenderer
	provider Provider
	creds    Credentials
}

// NewService creates a new call notification service. Credentials are passed
// in explicitly rather than read from process state, so callers (and tests)
// control the live/dry-run gate.
func NewService(renderer MessageRenderer, provider Provider, creds Credentials) *Service {
	return &Service{
		renderer: renderer,
		provider: provider,
		creds:    creds,
	}
}

// Dispatch renders the event's message and attempts delivery. Exactly one
// provider call is made per invocation, and only when credentials are
// configured; there is no internal retry.
func (s *Service) Dispatch(ctx context.Context, ev *Event) *Result {
	body := s.renderer.Render(ev.CustomMessage, ev)

	if !s.creds.Configured() {
		slog.Info("dispatch resolved to dry-run",
			"reason", "credentials not configured",
			"direction", ev.Direction,
			"to", ev.CallerNumber,
		)
		return &Result{
			Status: StatusDryRun,
			Reason: "credentials not configured",
			Body:   body,
		}
	}

	start := time.Now()
	providerID, err := s.provider.Send(ctx, &Message{
		To:   ev.CallerNumber,
		From: s.creds.FromNumber,
		Body: body,
	})
	if err != nil {
		// Fail open to simulation: a delivery-time problem becomes a dry-run
		// carrying the error text, never a hard failure.
		slog.Warn("delivery failed, degrading to dry-run",
			"error", err,
			"direction", ev.Direction,
			"to", ev.CallerNumber,
			"duration", time.Since(start),
		)
		return &Result{
			Status: StatusDryRun,
			Reason: err.Error(),
			Body:   body,
		}
	}

	slog.Info("notification sent",
		"provider_id", providerID,
		"direction", ev.Direction,
		"to", ev.CallerNumber,
		"duration", time.Since(start),
	)

	return &Result{
		Status:            StatusSent,
		ProviderMessageID: providerID,
		Body:              body,
	}
}

// Preview renders the event's message without attempting delivery.
func (s *Service) Preview(ev *Event) string {
	return s.renderer.Render(ev.CustomMessage, ev)
}

// Directions returns the closed direction set with human-readable labels.
func (s *Service) Directions() []DirectionOption {
	opts := make([]DirectionOption, 0, len(Directions))
	for _, d := range Directions {
		opts = append(opts, DirectionOption{Value: d, Label: s.renderer.Label(d)})
	}
	return opts
}

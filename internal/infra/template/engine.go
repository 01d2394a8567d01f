package template

import (
	"strings"

	"callping/internal/domain/call"
)

var _ call.MessageRenderer = (*Engine)(nil)

// directionLabels maps each call direction to its human-readable phrase.
// The table is total over the direction set: the displayed label is owned
// here, deliberately decoupled from the enum token used on the wire.
var directionLabels = map[call.Direction]string{
	call.DirectionIncoming: "incoming call",
	call.DirectionOutgoing: "outgoing call",
	call.DirectionMissed:   "missed call",
}

// Engine renders notification message templates by placeholder substitution.
//
// Recognized placeholders are {{caller}}, {{recipient}} and {{direction}},
// matched case-sensitively with no whitespace tolerance inside the braces.
// Substitution is a single left-to-right pass: replaced values are never
// re-scanned, and anything unrecognized (including malformed braces) passes
// through verbatim. Rendering is total — it never fails on any input.
type Engine struct{}

// NewEngine creates a new template engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Render substitutes the recognized placeholders in template with values
// from the event. {{direction}} expands to the human-readable label, not the
// raw enum token.
func (e *Engine) Render(template string, ev *call.Event) string {
	r := strings.NewReplacer(
		"{{caller}}", ev.CallerNumber,
		"{{recipient}}", ev.RecipientNumber,
		"{{direction}}", directionLabels[ev.Direction],
	)
	return r.Replace(template)
}

// Label returns the human-readable label for a direction.
func (e *Engine) Label(d call.Direction) string {
	return directionLabels[d]
}

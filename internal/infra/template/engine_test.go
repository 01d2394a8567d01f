package template

import (
	"testing"

	"callping/internal/domain/call"

	"github.com/stretchr/testify/assert"
)

func testEvent(d call.Direction) *call.Event {
	return &call.Event{
		Direction:       d,
		CallerNumber:    "+15551234567",
		RecipientNumber: "+15559876543",
		CustomMessage:   "unused here",
	}
}

func TestRender_Substitution(t *testing.T) {
	e := NewEngine()
	ev := testEvent(call.DirectionMissed)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "caller placeholder",
			template: "Sorry we missed you, {{caller}}!",
			want:     "Sorry we missed you, +15551234567!",
		},
		{
			name:     "all placeholders",
			template: "{{direction}} from {{caller}} to {{recipient}}",
			want:     "missed call from +15551234567 to +15559876543",
		},
		{
			name:     "repeated placeholder resolves to same value",
			template: "{{caller}} {{caller}}",
			want:     "+15551234567 +15551234567",
		},
		{
			name:     "unknown placeholder left verbatim",
			template: "Hi {{foo}}",
			want:     "Hi {{foo}}",
		},
		{
			name:     "malformed braces left verbatim",
			template: "Hi {{caller",
			want:     "Hi {{caller",
		},
		{
			name:     "whitespace inside braces is not tolerated",
			template: "Hi {{ caller }}",
			want:     "Hi {{ caller }}",
		},
		{
			name:     "case sensitive",
			template: "Hi {{Caller}}",
			want:     "Hi {{Caller}}",
		},
		{
			name:     "no placeholders",
			template: "plain text",
			want:     "plain text",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Render(tt.template, ev))
		})
	}
}

// Substitution is a single left-to-right pass: a placeholder token appearing
// inside a substituted value must not be expanded again.
func TestRender_SinglePass(t *testing.T) {
	e := NewEngine()
	ev := testEvent(call.DirectionIncoming)
	ev.CallerNumber = "{{recipient}}"

	assert.Equal(t, "{{recipient}}", e.Render("{{caller}}", ev))
}

func TestRender_Idempotent(t *testing.T) {
	e := NewEngine()
	ev := testEvent(call.DirectionOutgoing)

	first := e.Render("{{direction}}: {{caller}} -> {{recipient}}", ev)
	second := e.Render("{{direction}}: {{caller}} -> {{recipient}}", ev)
	assert.Equal(t, first, second)
}

// The direction label mapping must be total over the enum.
func TestRender_DirectionLabels(t *testing.T) {
	e := NewEngine()

	want := map[call.Direction]string{
		call.DirectionIncoming: "incoming call",
		call.DirectionOutgoing: "outgoing call",
		call.DirectionMissed:   "missed call",
	}

	for _, d := range call.Directions {
		label, ok := want[d]
		assert.True(t, ok, "direction %q missing from expectations", d)
		assert.Equal(t, label, e.Render("{{direction}}", testEvent(d)))
		assert.Equal(t, label, e.Label(d))
	}
}

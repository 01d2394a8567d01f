package call

import (
	"fmt"
	"strings"

	"callping/internal/common"
)

// ParseEvent validates an untyped request payload and produces a typed Event.
// Checks run in a fixed order so error messages are deterministic: payload
// shape, then direction, then callerNumber, then recipientNumber, then
// customMessage. The first violated constraint is reported and the rest are
// not inspected.
//
// Stored field values are the caller's exact text — trimming is used only for
// the emptiness check, never applied to the result.
func ParseEvent(raw any) (*Event, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, common.NewValidationError("payload must be a JSON object")
	}

	dir, ok := obj["direction"].(string)
	if !ok || !IsValidDirection(Direction(dir)) {
		return nil, common.NewValidationError("invalid direction: must be one of incoming, outgoing, missed")
	}

	caller, err := phoneField(obj, "callerNumber")
	if err != nil {
		return nil, err
	}

	recipient, err := phoneField(obj, "recipientNumber")
	if err != nil {
		return nil, err
	}

	msg, ok := obj["customMessage"].(string)
	if !ok || strings.TrimSpace(msg) == "" {
		return nil, common.NewValidationError("customMessage must be a non-empty string")
	}

	return &Event{
		Direction:       Direction(dir),
		CallerNumber:    caller,
		RecipientNumber: recipient,
		CustomMessage:   msg,
	}, nil
}

// phoneField extracts a phone-number field, enforcing the minimal syntactic
// floor: non-empty after trimming, an optional leading +, digits only.
func phoneField(obj map[string]any, field string) (string, error) {
	val, ok := obj[field].(string)
	if !ok || strings.TrimSpace(val) == "" {
		return "", common.NewValidationError(fmt.Sprintf("%s must be a non-empty string", field))
	}
	if !isPhoneNumber(strings.TrimSpace(val)) {
		return "", common.NewValidationError(fmt.Sprintf("%s must be a phone number (optional + followed by digits)", field))
	}
	return val, nil
}

func isPhoneNumber(s string) bool {
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Package phone normalizes user-entered phone numbers to E.164.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "IN"

// Normalize parses a free-form phone number and returns it in E.164 format.
// Numbers without a country prefix are interpreted in the default region.
// The input is returned unchanged when it cannot be parsed; the forms accept
// phone as optional free text and a best-effort normalization beats rejecting
// a reachable lead.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	parsed, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return trimmed
	}

	return phonenumbers.Format(parsed, phonenumbers.E164)
}

// Package clinical holds pure derivations over clinical record payloads.
package clinical

import (
	"strings"
	"unicode"

	"dental-clinic-service/internal/domain/entity"
)

// Payload keys of the anamnesis questionnaire consumed by the summary.
const (
	KeyChiefComplaint  = "chief_complaint"
	KeyKnownConditions = "known_conditions"
)

// ComputeSummary derives the display summary of an anamnesis from its chief
// complaint and known-conditions tokens. The summary column is a cache of
// this function; it is regenerated on every write and never trusted as a
// source.
func ComputeSummary(data entity.JSON) string {
	var parts []string

	if complaint, ok := data[KeyChiefComplaint].(string); ok && complaint != "" {
		parts = append(parts, complaint)
	}

	for _, raw := range conditionTokens(data[KeyKnownConditions]) {
		if raw == "" {
			continue
		}
		parts = append(parts, Humanize(raw))
	}

	return strings.Join(parts, ", ")
}

// Humanize turns a condition token into display form: underscores become
// spaces and the first letter is uppercased, remaining casing preserved.
func Humanize(token string) string {
	s := strings.ReplaceAll(token, "_", " ")
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// conditionTokens normalizes the known-conditions value, which arrives as
// []interface{} after jsonb round-trips and as []string from direct callers.
func conditionTokens(value interface{}) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []interface{}:
		tokens := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				tokens = append(tokens, s)
			}
		}
		return tokens
	default:
		return nil
	}
}

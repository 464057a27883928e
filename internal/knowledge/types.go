package knowledge

import (
	"errors"
	"strings"
)

// ErrUnknownDisease is returned when a disease has no treatment entry.
var ErrUnknownDisease = errors.New("unknown disease")

// Rule maps a set of symptoms to a disease. All symptoms must be present
// for the rule to fire.
type Rule struct {
	Symptoms []string `yaml:"symptoms"`
	Disease  string   `yaml:"disease"`
}

// Entry pairs a rule with its treatment advice, for listing.
type Entry struct {
	Rule
	Treatment string
}

// Normalize lowercases and trims a symptom phrase.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

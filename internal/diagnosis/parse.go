package diagnosis

import (
	"strings"

	"github.com/abhisek/medexpert/internal/knowledge"
)

// ParseSymptoms splits comma-separated text into normalized symptoms.
// Empty tokens are dropped and duplicates keep their first position.
func ParseSymptoms(text string) []string {
	parts := strings.Split(text, ",")
	seen := make(map[string]bool, len(parts))
	symptoms := make([]string, 0, len(parts))
	for _, p := range parts {
		s := knowledge.Normalize(p)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		symptoms = append(symptoms, s)
	}
	return symptoms
}

package diagnosis

import "github.com/abhisek/medexpert/internal/knowledge"

// Match runs a single forward-chaining pass: a rule fires when all of its
// symptoms are present. Diseases are returned in rule order, each once.
func Match(symptoms []string, rules []knowledge.Rule) []string {
	facts := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		facts[s] = true
	}

	var diseases []string
	seen := make(map[string]bool)
	for _, r := range rules {
		if seen[r.Disease] || !subsetOf(r.Symptoms, facts) {
			continue
		}
		seen[r.Disease] = true
		diseases = append(diseases, r.Disease)
	}
	return diseases
}

func subsetOf(required []string, facts map[string]bool) bool {
	for _, s := range required {
		if !facts[s] {
			return false
		}
	}
	return true
}

package knowledge

import (
	"fmt"
	"strings"
)

// validate checks the structural invariants of a knowledge base.
// Returns a combined error describing all problems found, or nil if valid.
func validate(rules []Rule, treatments map[string]string) error {
	var errs []string

	if len(rules) == 0 {
		errs = append(errs, "no rules defined")
	}

	for i, r := range rules {
		prefix := fmt.Sprintf("rule %d", i)
		if r.Disease == "" {
			errs = append(errs, prefix+": empty disease name")
		} else {
			prefix = fmt.Sprintf("rule %d (%s)", i, r.Disease)
		}

		if len(r.Symptoms) == 0 {
			errs = append(errs, prefix+": no symptoms")
		}
		for _, s := range r.Symptoms {
			if s == "" {
				errs = append(errs, prefix+": empty symptom")
			}
		}

		// Every disease a rule can produce must have advice.
		if r.Disease != "" {
			if advice, ok := treatments[r.Disease]; !ok {
				errs = append(errs, fmt.Sprintf("%s: no treatment for %q", prefix, r.Disease))
			} else if strings.TrimSpace(advice) == "" {
				errs = append(errs, fmt.Sprintf("%s: empty treatment for %q", prefix, r.Disease))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("knowledge base validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

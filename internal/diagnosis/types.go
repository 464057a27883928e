package diagnosis

import (
	"errors"
	"time"
)

// ErrEmptyInput is returned when the input holds no symptoms.
var ErrEmptyInput = errors.New("please enter symptoms")

// Finding is one matched disease with its treatment advice.
type Finding struct {
	Disease   string
	Treatment string
}

// Result is the outcome of a single diagnosis cycle.
type Result struct {
	Symptoms []string  // normalized, in input order
	Findings []Finding // in rule table order
	At       time.Time
}

// Found reports whether any disease matched.
func (r *Result) Found() bool {
	return len(r.Findings) > 0
}

// Diseases returns the matched disease names in order.
func (r *Result) Diseases() []string {
	names := make([]string, 0, len(r.Findings))
	for _, f := range r.Findings {
		names = append(names, f.Disease)
	}
	return names
}

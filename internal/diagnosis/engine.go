package diagnosis

import (
	"fmt"

	"github.com/abhisek/medexpert/internal/knowledge"
)

// Engine evaluates symptoms against a knowledge base. It has no side effects.
type Engine struct {
	kb *knowledge.Base
}

// NewEngine creates an engine over kb.
func NewEngine(kb *knowledge.Base) *Engine {
	return &Engine{kb: kb}
}

// Evaluate matches normalized symptoms and attaches treatment advice.
func (e *Engine) Evaluate(symptoms []string) ([]Finding, error) {
	diseases := Match(symptoms, e.kb.Rules())
	findings := make([]Finding, 0, len(diseases))
	for _, d := range diseases {
		advice, err := e.kb.Treatment(d)
		if err != nil {
			return nil, fmt.Errorf("treatment lookup: %w", err)
		}
		findings = append(findings, Finding{Disease: d, Treatment: advice})
	}
	return findings, nil
}

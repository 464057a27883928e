package diagnosis

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/medexpert/internal/knowledge"
)

// Recorder persists a completed diagnosis.
type Recorder interface {
	Record(ctx context.Context, result *Result) error
}

// Service runs the full diagnosis cycle: validate, normalize, match, record.
type Service struct {
	engine   *Engine
	recorder Recorder
	now      func() time.Time
}

// NewService creates a diagnosis service. If recorder is nil, results are
// not recorded.
func NewService(kb *knowledge.Base, recorder Recorder) *Service {
	return &Service{
		engine:   NewEngine(kb),
		recorder: recorder,
		now:      time.Now,
	}
}

// Diagnose parses text and returns the matched findings. Input without any
// symptom returns ErrEmptyInput and nothing is recorded.
func (s *Service) Diagnose(ctx context.Context, text string) (*Result, error) {
	symptoms := ParseSymptoms(text)
	if len(symptoms) == 0 {
		return nil, ErrEmptyInput
	}

	findings, err := s.engine.Evaluate(symptoms)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Symptoms: symptoms,
		Findings: findings,
		At:       s.now(),
	}

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, result); err != nil {
			return result, fmt.Errorf("record diagnosis: %w", err)
		}
	}
	return result, nil
}

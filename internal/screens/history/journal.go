package history

import "github.com/abhisek/medexpert/internal/diagnosis"

// Journal keeps the diagnoses made during the current run. It lives only
// in memory; the patient log file is never read back.
type Journal struct {
	entries []*diagnosis.Result
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Add appends a result.
func (j *Journal) Add(r *diagnosis.Result) {
	j.entries = append(j.entries, r)
}

// Len returns the number of recorded results.
func (j *Journal) Len() int {
	return len(j.entries)
}

// Recent returns results newest first.
func (j *Journal) Recent() []*diagnosis.Result {
	out := make([]*diagnosis.Result, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		out = append(out, j.entries[i])
	}
	return out
}

// Package patientlog appends diagnosis sessions to a plaintext log file.
package patientlog

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/medexpert/internal/diagnosis"
)

// DefaultPath is the log location used when none is configured.
const DefaultPath = "patients_log.txt"

// TimeFormat renders the Date line of each block.
const TimeFormat = "2006-01-02 15:04:05.000000"

const separatorWidth = 40

// Log appends one block per diagnosis to a file. The file is opened and
// closed on every Record call; there is no rotation and no locking.
type Log struct {
	path string
}

var _ diagnosis.Recorder = (*Log)(nil)

// New creates a Log writing to path.
func New(path string) *Log {
	if path == "" {
		path = DefaultPath
	}
	return &Log{path: path}
}

// Path returns the file the log appends to.
func (l *Log) Path() string {
	return l.path
}

// Record appends result to the log file, creating it if needed.
func (l *Log) Record(_ context.Context, result *diagnosis.Result) (err error) {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open patient log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close patient log: %w", cerr)
		}
	}()

	if err := WriteBlock(f, result); err != nil {
		return fmt.Errorf("write patient log: %w", err)
	}
	return nil
}

// WriteBlock renders a single log block for result.
func WriteBlock(w io.Writer, result *diagnosis.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", result.At.Format(TimeFormat))
	fmt.Fprintf(&b, "Symptoms: %s\n", strings.Join(result.Symptoms, ", "))
	if result.Found() {
		for _, f := range result.Findings {
			fmt.Fprintf(&b, "Diagnosis: %s\n", f.Disease)
			fmt.Fprintf(&b, "Treatment: %s\n", f.Treatment)
		}
	} else {
		b.WriteString("Diagnosis: Not found\n")
	}
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

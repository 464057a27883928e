package patientlog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/medexpert/internal/diagnosis"
	"github.com/abhisek/medexpert/internal/knowledge"
)

var fixedTime = time.Date(2026, 10, 19, 14, 5, 9, 123456000, time.Local)

func TestWriteBlockFindings(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBlock(&buf, &diagnosis.Result{
		Symptoms: []string{"sneezing", "runny nose", "mild fatigue", "itchy eyes"},
		Findings: []diagnosis.Finding{
			{Disease: "Common Cold", Treatment: "Rest, warm fluids, over-the-counter meds"},
			{Disease: "Allergy", Treatment: "Antihistamines, avoid allergens, eye drops"},
		},
		At: fixedTime,
	})
	require.NoError(t, err)

	want := "Date: 2026-10-19 14:05:09.123456\n" +
		"Symptoms: sneezing, runny nose, mild fatigue, itchy eyes\n" +
		"Diagnosis: Common Cold\n" +
		"Treatment: Rest, warm fluids, over-the-counter meds\n" +
		"Diagnosis: Allergy\n" +
		"Treatment: Antihistamines, avoid allergens, eye drops\n" +
		"----------------------------------------\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteBlockNotFound(t *testing.T) {
	var buf bytes.Buffer
	err := WriteBlock(&buf, &diagnosis.Result{
		Symptoms: []string{"toothache"},
		At:       fixedTime,
	})
	require.NoError(t, err)

	want := "Date: 2026-10-19 14:05:09.123456\n" +
		"Symptoms: toothache\n" +
		"Diagnosis: Not found\n" +
		strings.Repeat("-", 40) + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patients_log.txt")
	l := New(path)
	ctx := context.Background()

	r := &diagnosis.Result{Symptoms: []string{"a"}, At: fixedTime}
	require.NoError(t, l.Record(ctx, r))
	require.NoError(t, l.Record(ctx, r))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "Diagnosis: Not found\n"))
	assert.Equal(t, 2, strings.Count(string(data), strings.Repeat("-", 40)+"\n"))
	assert.True(t, strings.HasPrefix(string(data), "Date: "))
}

func TestRecordThroughService(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	svc := diagnosis.NewService(knowledge.Default(), New(path))

	_, err := svc.Diagnose(context.Background(), "Cough, FEVER , congestion")
	require.NoError(t, err)

	_, err = svc.Diagnose(context.Background(), " , ")
	require.ErrorIs(t, err, diagnosis.ErrEmptyInput)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Symptoms: cough, fever, congestion\n")
	assert.Contains(t, text, "Diagnosis: Influenza\nTreatment: Rest, fluids, antiviral meds (if severe)\n")
	assert.Equal(t, 1, strings.Count(text, "Date: "), "empty input must not be logged")
}

func TestRecordOpenError(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing-dir", "log.txt"))
	err := l.Record(context.Background(), &diagnosis.Result{At: fixedTime})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open patient log")
}

func TestNewDefaultPath(t *testing.T) {
	assert.Equal(t, DefaultPath, New("").Path())
}

package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bjk2k/red-panda/pkg/types"
)

// RecordingReporter keeps every progress line, prefixed the way the terminal
// printer renders it.
type RecordingReporter struct {
	mu    sync.Mutex
	Lines []string
}

// NewRecordingReporter creates an empty RecordingReporter.
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Step(format string, args ...any) {
	r.add("[O] " + fmt.Sprintf(format, args...))
}

func (r *RecordingReporter) Detail(format string, args ...any) {
	r.add(" |- " + fmt.Sprintf(format, args...))
}

func (r *RecordingReporter) Note(format string, args ...any) {
	r.add("    |- " + fmt.Sprintf(format, args...))
}

func (r *RecordingReporter) Output(text string) {
	if text == "" {
		return
	}
	r.add(text)
}

// Text joins all lines with newlines.
func (r *RecordingReporter) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.Lines, "\n")
}

func (r *RecordingReporter) add(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, line)
}

// Verify interface compliance
var _ types.Reporter = (*RecordingReporter)(nil)

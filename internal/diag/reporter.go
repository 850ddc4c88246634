package diag

import (
	"sync"

	"volt/internal/source"
)

// Reporter is the minimal contract through which phases emit diagnostics.
// Implementations: BagReporter (appends to a Bag), NopReporter, MultiReporter
// (fan-out), SyncReporter (serialises concurrent producers).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// BagReporter appends every report to Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// NopReporter swallows every report.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Span, string, []Note) {}

// MultiReporter forwards every report to each target in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	for _, r := range m {
		if r != nil {
			r.Report(code, sev, primary, msg, notes)
		}
	}
}

// SyncReporter makes a Reporter safe for concurrent producers. Appends are
// serialised; no report is lost or duplicated, though the interleaving across
// producers is whatever the scheduler yields.
type SyncReporter struct {
	mu   sync.Mutex
	next Reporter
}

// NewSyncReporter wraps next with a mutex.
func NewSyncReporter(next Reporter) *SyncReporter {
	return &SyncReporter{next: next}
}

func (s *SyncReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if s.next == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next.Report(code, sev, primary, msg, notes)
}

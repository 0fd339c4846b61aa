package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionPhase represents the lifecycle phase of a single request
type SubmissionPhase string

const (
	// PhaseIdle means no request has been issued yet
	PhaseIdle SubmissionPhase = "Idle"

	// PhasePending means the request is in flight
	PhasePending SubmissionPhase = "Pending"

	// PhaseSucceeded means the request completed with a parsed payload
	PhaseSucceeded SubmissionPhase = "Succeeded"

	// PhaseFailed means the request failed with an error message
	PhaseFailed SubmissionPhase = "Failed"
)

// String returns the string representation of SubmissionPhase
func (sp SubmissionPhase) String() string {
	return string(sp)
}

// IsActive returns true while a request is in flight
func (sp SubmissionPhase) IsActive() bool {
	return sp == PhasePending
}

// IsTerminal returns true once the submission has resolved either way
func (sp SubmissionPhase) IsTerminal() bool {
	return sp == PhaseSucceeded || sp == PhaseFailed
}

// Submission tracks one in-flight or completed request. A submission
// transitions exactly once from Pending to a terminal phase; each submit
// creates a fresh instance, never reusing a prior one.
type Submission struct {
	ID         string
	Phase      SubmissionPhase
	Result     any    // parsed payload once Phase == PhaseSucceeded
	LastError  string // error message once Phase == PhaseFailed
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewSubmission creates a pending submission with a fresh identity
func NewSubmission() *Submission {
	return &Submission{
		ID:        uuid.NewString(),
		Phase:     PhasePending,
		StartedAt: time.Now(),
	}
}

// Succeed moves the submission to the succeeded phase with its payload.
// Calls after the phase is already terminal are ignored.
func (s *Submission) Succeed(result any) bool {
	if s.Phase.IsTerminal() {
		return false
	}
	s.Phase = PhaseSucceeded
	s.Result = result
	s.LastError = ""
	s.FinishedAt = time.Now()
	return true
}

// Fail moves the submission to the failed phase. Any previously held result
// is cleared so stale output is never shown alongside an error.
func (s *Submission) Fail(message string) bool {
	if s.Phase.IsTerminal() {
		return false
	}
	s.Phase = PhaseFailed
	s.Result = nil
	s.LastError = message
	s.FinishedAt = time.Now()
	return true
}

package flow

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/screencraft/screencraft-studio/internal/model"
)

// ErrSubmissionPending is returned when submit is called while a request is
// already in flight. Callers treat it as a no-op.
var ErrSubmissionPending = errors.New("a submission is already in flight")

// ErrSubmitterClosed is returned when submit is called after Close
var ErrSubmitterClosed = errors.New("submitter is closed")

// Runner performs the actual network call for one submission
type Runner func(ctx context.Context) (any, error)

// Submitter owns the submission lifecycle for one feature flow. Each submit
// creates a fresh Submission; repeated submits while pending are rejected so
// at most one request is in flight per submitter.
type Submitter struct {
	mu       sync.Mutex
	current  *model.Submission
	onUpdate func(*model.Submission)
	closed   bool
}

// NewSubmitter creates an idle submitter
func NewSubmitter() *Submitter {
	return &Submitter{}
}

// SetUpdateCallback sets the callback invoked on every phase change. The
// callback runs outside the submitter lock.
func (s *Submitter) SetUpdateCallback(callback func(*model.Submission)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// Submit starts a new submission running the given call on a goroutine.
// While a submission is pending further calls return ErrSubmissionPending
// without touching state or issuing any network traffic.
func (s *Submitter) Submit(run Runner) (*model.Submission, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSubmitterClosed
	}
	if s.current != nil && s.current.Phase.IsActive() {
		s.mu.Unlock()
		return nil, ErrSubmissionPending
	}

	submission := model.NewSubmission()
	s.current = submission
	s.mu.Unlock()

	s.notifyUpdate(submission)

	go func() {
		result, err := run(context.Background())

		s.mu.Lock()
		// A completion for a superseded or torn-down submission is dropped
		// so nothing writes into state the view no longer owns.
		if s.closed || s.current != submission {
			s.mu.Unlock()
			log.Printf("Dropping completion for superseded submission %s", submission.ID)
			return
		}

		var transitioned bool
		if err != nil {
			transitioned = submission.Fail(err.Error())
		} else {
			transitioned = submission.Succeed(result)
		}
		s.mu.Unlock()

		if transitioned {
			s.notifyUpdate(submission)
		}
	}()

	return submission, nil
}

// Current returns a snapshot of the live submission, or nil when idle. The
// copy is taken under the submitter lock so callers can read it freely while
// the worker goroutine is still transitioning the original.
func (s *Submitter) Current() *model.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	snapshot := *s.current
	return &snapshot
}

// Phase returns the current phase, PhaseIdle when nothing has been submitted
func (s *Submitter) Phase() model.SubmissionPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.PhaseIdle
	}
	return s.current.Phase
}

// Reset returns the submitter to idle. An in-flight request is not
// cancelled; its eventual completion is dropped because the submission no
// longer matches.
func (s *Submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Close discards the current submission and rejects further submits. Safe
// to call more than once.
func (s *Submitter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.closed = true
}

// notifyUpdate calls the update callback if set
func (s *Submitter) notifyUpdate(submission *model.Submission) {
	s.mu.Lock()
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(submission)
	}
}

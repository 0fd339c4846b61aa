package flow

// Package flow implements the submission state machine shared by the two
// feature flows. A submitter runs at most one request at a time, reports
// phase changes through a callback, and discards completions that arrive
// after a reset or after the owning view is torn down.

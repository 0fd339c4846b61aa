package model

import "testing"

func TestSubmissionPhase_IsActive(t *testing.T) {
	tests := []struct {
		phase    SubmissionPhase
		expected bool
	}{
		{PhaseIdle, false},
		{PhasePending, true},
		{PhaseSucceeded, false},
		{PhaseFailed, false},
	}

	for _, test := range tests {
		if result := test.phase.IsActive(); result != test.expected {
			t.Errorf("IsActive() for %s = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestSubmissionPhase_IsTerminal(t *testing.T) {
	tests := []struct {
		phase    SubmissionPhase
		expected bool
	}{
		{PhaseIdle, false},
		{PhasePending, false},
		{PhaseSucceeded, true},
		{PhaseFailed, true},
	}

	for _, test := range tests {
		if result := test.phase.IsTerminal(); result != test.expected {
			t.Errorf("IsTerminal() for %s = %v, expected %v", test.phase, result, test.expected)
		}
	}
}

func TestNewSubmission(t *testing.T) {
	submission := NewSubmission()

	if submission.ID == "" {
		t.Error("Expected new submission to have an ID")
	}

	if submission.Phase != PhasePending {
		t.Errorf("Expected new submission phase to be Pending, got %s", submission.Phase)
	}

	if submission.StartedAt.IsZero() {
		t.Error("Expected StartedAt to be set")
	}

	other := NewSubmission()
	if other.ID == submission.ID {
		t.Error("Expected each submission to have a distinct ID")
	}
}

func TestSubmission_Succeed(t *testing.T) {
	submission := NewSubmission()

	if !submission.Succeed("payload") {
		t.Fatal("Expected Succeed to transition a pending submission")
	}

	if submission.Phase != PhaseSucceeded {
		t.Errorf("Expected phase Succeeded, got %s", submission.Phase)
	}

	if submission.Result != "payload" {
		t.Errorf("Expected result 'payload', got %v", submission.Result)
	}

	if submission.FinishedAt.IsZero() {
		t.Error("Expected FinishedAt to be set")
	}
}

func TestSubmission_Fail_ClearsResult(t *testing.T) {
	submission := NewSubmission()
	submission.Result = "stale"

	if !submission.Fail("server exploded") {
		t.Fatal("Expected Fail to transition a pending submission")
	}

	if submission.Phase != PhaseFailed {
		t.Errorf("Expected phase Failed, got %s", submission.Phase)
	}

	if submission.Result != nil {
		t.Errorf("Expected result to be cleared on failure, got %v", submission.Result)
	}

	if submission.LastError != "server exploded" {
		t.Errorf("Expected error message to be kept, got %q", submission.LastError)
	}
}

func TestSubmission_TransitionsExactlyOnce(t *testing.T) {
	submission := NewSubmission()

	if !submission.Succeed("first") {
		t.Fatal("Expected first transition to apply")
	}

	if submission.Fail("late failure") {
		t.Error("Expected Fail after a terminal phase to be ignored")
	}

	if submission.Succeed("second") {
		t.Error("Expected Succeed after a terminal phase to be ignored")
	}

	if submission.Phase != PhaseSucceeded {
		t.Errorf("Expected phase to remain Succeeded, got %s", submission.Phase)
	}

	if submission.Result != "first" {
		t.Errorf("Expected result to remain 'first', got %v", submission.Result)
	}
}

func TestDraftInput_IsSubmittable(t *testing.T) {
	tests := []struct {
		text     string
		document string
		expected bool
	}{
		{"", "", false},
		{"   \n\t", "", false},
		{"John sits at the cafe.", "", true},
		{"", "/tmp/draft.txt", true},
		{"text too", "/tmp/draft.txt", true},
	}

	for _, test := range tests {
		draft := &DraftInput{Text: test.text, DocumentPath: test.document}
		if result := draft.IsSubmittable(); result != test.expected {
			t.Errorf("IsSubmittable() with text=%q document=%q = %v, expected %v",
				test.text, test.document, result, test.expected)
		}
	}
}

func TestDraftInput_Reset(t *testing.T) {
	draft := &DraftInput{
		Text:         "INT. CAFE - DAY",
		DocumentPath: "/tmp/draft.docx",
		DocumentSize: 1024,
		DocumentMIME: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Genre:        "Noir",
	}

	draft.Reset()

	if draft.Text != "" || draft.DocumentPath != "" || draft.Genre != "" {
		t.Errorf("Expected draft to be empty after reset, got %+v", draft)
	}

	if draft.IsSubmittable() {
		t.Error("Expected reset draft to not be submittable")
	}
}

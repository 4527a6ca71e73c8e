package model

import "testing"

func TestJobStatus_IsValid(t *testing.T) {
	valid := []JobStatus{StatusApplied, StatusInterviewing, StatusOfferReceived, StatusRejected}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("expected %q to be valid", s)
		}
	}

	invalid := []JobStatus{"", "pending", "APPLIED", "offer"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

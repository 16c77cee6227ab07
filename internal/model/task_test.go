package model_test

import (
	"errors"
	"testing"

	"taskpulse/internal/model"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.Status
		wantErr bool
	}{
		{"Pending", model.StatusPending, false},
		{"pending", model.StatusPending, false},
		{"InProgress", model.StatusInProgress, false},
		{"In Progress", model.StatusInProgress, false},
		{"in-progress", model.StatusInProgress, false},
		{"IN_PROGRESS", model.StatusInProgress, false},
		{"Completed", model.StatusCompleted, false},
		{"done", model.StatusCompleted, false},
		{"Archived", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := model.ParseStatus(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, model.ErrUnknownStatus) {
					t.Fatalf("expected ErrUnknownStatus, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskpulse/internal/model"
	"taskpulse/internal/taskstore"
	"taskpulse/internal/taskstore/rest"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

const listBody = `{
	"tasks": [
		{
			"id": "t1",
			"title": "Prepare payroll run",
			"status": "Pending",
			"dueDate": "2025-01-16T17:00:00Z",
			"assignedUser": {"id": "u1"}
		},
		{
			"id": "t2",
			"title": "Review attendance",
			"status": "In Progress",
			"dueDate": "2025-01-14T09:00:00Z",
			"assignedUser": [{"id": "u1"}, {"id": "u2"}]
		},
		{
			"id": "t3",
			"title": "Close sprint",
			"status": "Completed",
			"dueDate": "2025-01-10T12:00:00Z",
			"completionDate": "2025-01-09T15:00:00Z"
		},
		{
			"id": "t4",
			"title": "Broken date",
			"status": "Pending",
			"dueDate": "16/01/2025"
		},
		{
			"id": "t5",
			"title": "Alien status",
			"status": "Archived",
			"dueDate": "2025-01-12T00:00:00Z"
		}
	]
}`

func TestListTasks(t *testing.T) {
	var gotAuth, gotView string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/tasks" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotView = r.URL.Query().Get("view")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(listBody))
	}))
	defer srv.Close()

	repo := rest.New(srv.URL, "test-token", 5*time.Second, nopLogger{})

	tasks, err := repo.ListTasks(context.Background(), taskstore.ListTasksOptions{
		View:   model.ViewMine,
		UserID: "u1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotView != "mine" {
		t.Errorf("view param = %q, want mine", gotView)
	}

	// t5 is dropped (unknown status); the other four survive.
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}

	byID := map[string]model.Task{}
	for _, task := range tasks {
		byID[task.ID] = task
	}

	t.Run("Single assignee object normalized to sequence", func(t *testing.T) {
		if got := byID["t1"].AssigneeIDs; len(got) != 1 || got[0] != "u1" {
			t.Errorf("t1 assignees = %v", got)
		}
	})

	t.Run("Status label drift normalized", func(t *testing.T) {
		if got := byID["t2"].Status; got != model.StatusInProgress {
			t.Errorf("t2 status = %q", got)
		}
		if got := byID["t2"].AssigneeIDs; len(got) != 2 {
			t.Errorf("t2 assignees = %v", got)
		}
	})

	t.Run("Completion timestamp parsed", func(t *testing.T) {
		done := byID["t3"].CompletedAt
		if done == nil || !done.Equal(time.Date(2025, 1, 9, 15, 0, 0, 0, time.UTC)) {
			t.Errorf("t3 completion = %v", done)
		}
	})

	t.Run("Unparseable due date kept with raw string", func(t *testing.T) {
		t4 := byID["t4"]
		if t4.HasDueDate() {
			t.Errorf("t4 should have no parsed due date, got %v", t4.DueDate)
		}
		if t4.RawDueDate != "16/01/2025" {
			t.Errorf("t4 raw due date = %q", t4.RawDueDate)
		}
	})
}

func TestListTasksUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := rest.New(srv.URL, "test-token", 5*time.Second, nopLogger{})

	if _, err := repo.ListTasks(context.Background(), taskstore.ListTasksOptions{}); err == nil {
		t.Fatalf("expected error on upstream 500")
	}
}

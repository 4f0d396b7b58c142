package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/zenith/internal/testutil"
)

func TestRecordAndListSessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.Local)
	for i, goal := range []string{"Write report", "Read paper", "Refactor"} {
		rec := testutil.NewSessionRecord().
			WithGoal(goal).
			WithFocusSeconds(600 * (i + 1)).
			CompletedAt(base.Add(time.Duration(i) * time.Hour)).
			Build()
		if _, err := db.RecordSession(ctx, rec); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}

	recent, err := db.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recent))
	}
	if recent[0].Goal != "Refactor" || recent[1].Goal != "Read paper" {
		t.Fatalf("expected newest first, got %q, %q", recent[0].Goal, recent[1].Goal)
	}
	if !recent[0].CompletedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("unexpected completed_at %v", recent[0].CompletedAt)
	}

	count, seconds, err := db.SessionTotals(ctx)
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 3 || seconds != 3600 {
		t.Fatalf("expected 3 sessions / 3600s, got %d / %d", count, seconds)
	}
}

func TestRecentSessionsNonPositiveLimit(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	got, err := db.RecentSessions(ctx, 0)
	if err != nil || got != nil {
		t.Fatalf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestSessionTotalsEmpty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	count, seconds, err := db.SessionTotals(ctx)
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 0 || seconds != 0 {
		t.Fatalf("expected zero totals, got %d / %d", count, seconds)
	}
}

func TestRecordSessionPrunesOldest(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	prev := sessionRetention
	sessionRetention = 3
	t.Cleanup(func() { sessionRetention = prev })

	base := time.Date(2026, 5, 1, 8, 0, 0, 0, time.Local)
	for i := 0; i < 5; i++ {
		rec := testutil.NewSessionRecord().
			WithGoal(fmt.Sprintf("goal %d", i)).
			CompletedAt(base.Add(time.Duration(i) * time.Hour)).
			Build()
		if _, err := db.RecordSession(ctx, rec); err != nil {
			t.Fatalf("RecordSession failed: %v", err)
		}
	}
	count, _, err := db.SessionTotals(ctx)
	if err != nil {
		t.Fatalf("SessionTotals failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 retained sessions, got %d", count)
	}
	recent, err := db.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if recent[len(recent)-1].Goal != "goal 2" {
		t.Fatalf("expected oldest kept to be goal 2, got %q", recent[len(recent)-1].Goal)
	}
}

func TestRecordSessionWrapsError(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_, err := db.RecordSession(ctx, testutil.NewSessionRecord().Build())
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "record" || opErr.Resource != "session" {
		t.Fatalf("expected record OpError, got %v", err)
	}
}

func TestOpErrorFormatting(t *testing.T) {
	withID := &OpError{Op: "delete", Resource: "session", ID: 7, Err: sql.ErrNoRows}
	if withID.Error() != "delete session 7: sql: no rows in result set" {
		t.Fatalf("unexpected message %q", withID.Error())
	}
	noID := &OpError{Op: "set", Resource: "setting", Err: errors.New("boom")}
	if noID.Error() != "set setting: boom" {
		t.Fatalf("unexpected message %q", noID.Error())
	}
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("nil OpError should format empty")
	}
}

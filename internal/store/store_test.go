package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coder/quartz"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), opts...)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenTwiceKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.PreferenceRepo().Set(ctx, "currentOperator", "-"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	v, ok, err := s.PreferenceRepo().Get(ctx, "currentOperator")
	if err != nil || !ok || v != "-" {
		t.Fatalf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestPreferenceRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.PreferenceRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to report ok=false")
	}

	if err := repo.Set(ctx, "currentOperator", "+"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "currentOperator", "-"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := repo.Set(ctx, "timerPool", "12"); err != nil {
		t.Fatalf("set pool: %v", err)
	}

	v, ok, err := repo.Get(ctx, "currentOperator")
	if err != nil || !ok {
		t.Fatalf("get: %v ok=%v", err, ok)
	}
	if v != "-" {
		t.Errorf("currentOperator = %q, want %q", v, "-")
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 || all["timerPool"] != "12" {
		t.Errorf("All() = %v", all)
	}

	if err := repo.Delete(ctx, "timerPool"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, "timerPool"); ok {
		t.Error("expected timerPool to be deleted")
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence went from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestEventRepo_SessionsAndTotals(t *testing.T) {
	clock := quartz.NewMock(t)
	s := openTestStore(t, WithClock(clock))
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "a", Action: ActionStart, Age: 6, MaxStage: 2, Operator: "+"},
		{SessionID: "a", Action: ActionEnd, Age: 6, MaxStage: 2, Operator: "+",
			Score: 120, CorrectCount: 8, TotalCount: 10, DurationSecs: 95, EarnedMinutes: 2},
		{SessionID: "b", Action: ActionStart, Age: 5, MaxStage: 1, Operator: "-"},
		{SessionID: "b", Action: ActionAbandon, Age: 5, MaxStage: 1, Operator: "-"},
		{SessionID: "c", Action: ActionStart, Age: 7, MaxStage: 1, Operator: "+"},
		{SessionID: "c", Action: ActionEnd, Age: 7, MaxStage: 1, Operator: "+",
			Score: 40, CorrectCount: 4, TotalCount: 5, DurationSecs: 30},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s/%s: %v", e.SessionID, e.Action, err)
		}
	}

	answers := []AnswerEventData{
		{SessionID: "c", Stage: 1, QuestionText: "3 + 4 = ?", CorrectAnswer: 7, Given: 7, Correct: true, Points: 10},
		{SessionID: "c", Stage: 1, QuestionText: "5 + 5 = ?", CorrectAnswer: 10, Given: 11},
		{SessionID: "c", Stage: 1, QuestionText: "2 + 2 = ?", CorrectAnswer: 4, Retry: true},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	recent, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d recent sessions, want 3 (start events excluded)", len(recent))
	}
	if recent[0].SessionID != "c" || recent[2].SessionID != "a" {
		t.Errorf("recent order = %s,%s,%s; want newest first", recent[0].SessionID, recent[1].SessionID, recent[2].SessionID)
	}
	if recent[1].Action != ActionAbandon {
		t.Errorf("recent[1].Action = %q, want abandon", recent[1].Action)
	}
	if got, want := recent[0].Timestamp.UnixMilli(), clock.Now().UnixMilli(); got != want {
		t.Errorf("timestamp = %d, want %d", got, want)
	}

	limited, err := repo.RecentSessions(ctx, 1)
	if err != nil {
		t.Fatalf("recent limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limit 1 returned %d rows", len(limited))
	}

	tot, err := repo.Totals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	want := Totals{Sessions: 2, Abandoned: 1, BestScore: 120, MinutesEarned: 2, Answers: 2, Correct: 1, Retries: 1}
	if tot != want {
		t.Errorf("Totals() = %+v, want %+v", tot, want)
	}
}

func TestEventRepo_EmptyTotals(t *testing.T) {
	s := openTestStore(t)

	tot, err := s.EventRepo().Totals(context.Background())
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if tot != (Totals{}) {
		t.Errorf("Totals() on empty db = %+v", tot)
	}
}

func TestEventRepo_RejectsUnknownAction(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendSessionEvent(context.Background(), SessionEventData{SessionID: "x", Action: "pause"})
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.PreferenceRepo().Set(ctx, "currentOperator", "-"); err != nil {
		t.Fatal(err)
	}
	if err := s.EventRepo().AppendSessionEvent(ctx, SessionEventData{SessionID: "a", Action: ActionEnd, Score: 60}); err != nil {
		t.Fatal(err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	all, _ := s.PreferenceRepo().All(ctx)
	if len(all) != 0 {
		t.Errorf("preferences after reset = %v", all)
	}
	tot, _ := s.EventRepo().Totals(ctx)
	if tot.Sessions != 0 {
		t.Errorf("sessions after reset = %d", tot.Sessions)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MATHTIME_DB", filepath.Join(dir, "env", "x.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "env", "x.db") {
		t.Errorf("env path = %q", p)
	}
	if _, err := os.Stat(filepath.Join(dir, "env")); err != nil {
		t.Errorf("expected parent dir created: %v", err)
	}

	t.Setenv("MATHTIME_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "mathtime", "mathtime.db") {
		t.Errorf("xdg path = %q", p)
	}
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/coder/quartz"
)

// Session event actions.
const (
	ActionStart   = "start"
	ActionEnd     = "end"
	ActionAbandon = "abandon"
)

// SessionEventData describes a session lifecycle transition. Summary
// columns are zero for start events.
type SessionEventData struct {
	SessionID     string
	Action        string
	Age           int
	MaxStage      int
	Operator      string
	Score         int
	CorrectCount  int
	TotalCount    int
	DurationSecs  int
	EarnedMinutes int
}

// AnswerEventData records one submission or retry.
type AnswerEventData struct {
	SessionID     string
	Stage         int
	QuestionText  string
	CorrectAnswer int
	Given         int
	Correct       bool
	Retry         bool
	Points        int
}

// SessionRecord is a stored session event.
type SessionRecord struct {
	SessionEventData
	Sequence  int64
	Timestamp time.Time
}

// Totals aggregates finished sessions and answers across all play.
type Totals struct {
	Sessions      int
	Abandoned     int
	BestScore     int
	MinutesEarned int
	Answers       int
	Correct       int
	Retries       int
}

// EventRepo provides append and query access to game events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// RecentSessions returns up to limit end/abandon events, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	Totals(ctx context.Context) (Totals, error)
}

// sequenceCounter hands out one increasing number shared by the session
// and answer tables so events can be ordered across both.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

type eventRepo struct {
	db    *sql.DB
	seq   *sequenceCounter
	clock quartz.Clock
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	switch data.Action {
	case ActionStart, ActionEnd, ActionAbandon:
	default:
		return fmt.Errorf("unknown session action %q", data.Action)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableSessionEvents).
		Columns("sequence", "timestamp", "session_id", "action", "age", "max_stage", "operator",
			"score", "correct_count", "total_count", "duration_secs", "earned_minutes").
		Values(seqNum, r.clock.Now().UnixMilli(), data.SessionID, data.Action, data.Age, data.MaxStage,
			data.Operator, data.Score, data.CorrectCount, data.TotalCount, data.DurationSecs, data.EarnedMinutes).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	query, args := builder().Insert(tableAnswerEvents).
		Columns("sequence", "timestamp", "session_id", "stage", "question_text",
			"correct_answer", "given", "correct", "retry", "points").
		Values(seqNum, r.clock.Now().UnixMilli(), data.SessionID, data.Stage, data.QuestionText,
			data.CorrectAnswer, data.Given, data.Correct, data.Retry, data.Points).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	sel := builder().Select("sequence", "timestamp", "session_id", "action", "age", "max_stage",
		"operator", "score", "correct_count", "total_count", "duration_secs", "earned_minutes").
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.In("action", ActionEnd, ActionAbandon)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var (
			rec SessionRecord
			ts  int64
		)
		if err := rows.Scan(&rec.Sequence, &ts, &rec.SessionID, &rec.Action, &rec.Age, &rec.MaxStage,
			&rec.Operator, &rec.Score, &rec.CorrectCount, &rec.TotalCount, &rec.DurationSecs,
			&rec.EarnedMinutes); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Totals(ctx context.Context) (Totals, error) {
	var t Totals

	var best, minutes sql.NullInt64
	query, args := builder().Select(entsql.Count("*"), entsql.Max("score"), entsql.Sum("earned_minutes")).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", ActionEnd)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Sessions, &best, &minutes); err != nil {
		return Totals{}, fmt.Errorf("query session totals: %w", err)
	}
	t.BestScore = int(best.Int64)
	t.MinutesEarned = int(minutes.Int64)

	query, args = builder().Select(entsql.Count("*")).
		From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", ActionAbandon)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Abandoned); err != nil {
		return Totals{}, fmt.Errorf("query abandoned sessions: %w", err)
	}

	var correct, retries sql.NullInt64
	query, args = builder().Select(entsql.Count("*"), entsql.Sum("correct"), entsql.Sum("retry")).
		From(entsql.Table(tableAnswerEvents)).
		Query()
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Answers, &correct, &retries); err != nil {
		return Totals{}, fmt.Errorf("query answer totals: %w", err)
	}
	t.Correct = int(correct.Int64)
	t.Retries = int(retries.Int64)
	t.Answers -= t.Retries
	return t, nil
}

package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathtime/internal/store"
)

// execute runs the root command against a temp database and config.
func execute(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MATHTIME_DB", "")
	t.Setenv("MATHTIME_CONFIG", "")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args,
		"--db", filepath.Join(dir, "test.db"),
		"--config", filepath.Join(dir, "missing.yaml"),
	))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "mathtime")
}

func TestSettings_ShowDefaults(t *testing.T) {
	out, err := execute(t, t.TempDir(), "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "+ (Addition)")
	assert.Contains(t, out, "Pororo")
	assert.Contains(t, out, "not saved between runs")
}

func TestSettings_SetOperatorAndVideos(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "settings", "set", "operator", "subtract")
	require.NoError(t, err)
	assert.Contains(t, out, "timer pool has been emptied")

	_, err = execute(t, dir, "", "settings", "set", "videos", "Bluey")
	require.NoError(t, err)

	out, err = execute(t, dir, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "- (Subtraction)")
	assert.Contains(t, out, "Video 1:     Bluey")
	assert.Contains(t, out, "Video 2:     Numberblocks")
}

func TestSettings_SetOperatorRejectsUnknown(t *testing.T) {
	_, err := execute(t, t.TempDir(), "", "settings", "set", "operator", "*")
	assert.Error(t, err)
}

func TestHistoryAndStats(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No games played yet.")

	st, err := store.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	ctx := context.Background()
	repo := st.EventRepo()
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.ActionEnd, Age: 6, MaxStage: 2, Operator: "+",
		Score: 90, CorrectCount: 9, TotalCount: 10, DurationSecs: 75, EarnedMinutes: 1,
	}))
	require.NoError(t, repo.AppendAnswerEvent(ctx, store.AnswerEventData{
		SessionID: "s1", Stage: 1, QuestionText: "2 + 3 = ?", CorrectAnswer: 5, Given: 5, Correct: true, Points: 10,
	}))
	require.NoError(t, st.Close())

	out, err = execute(t, dir, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "90% (9/10)")
	assert.Contains(t, out, "01:15")

	out, err = execute(t, dir, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Games finished:  1")
	assert.Contains(t, out, "Best score:      90")
	assert.Contains(t, out, "100% (1/1)")
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, dir, "", "settings", "set", "operator", "-")
	require.NoError(t, err)

	out, err := execute(t, dir, "n\n", "reset", "--yes=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, err = execute(t, dir, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Subtraction")

	out, err = execute(t, dir, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "All data cleared.")

	out, err = execute(t, dir, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Addition")
}

func TestPlay_RejectsBadFlags(t *testing.T) {
	_, err := execute(t, t.TempDir(), "", "play", "--age", "9", "--stage", "1")
	assert.ErrorContains(t, err, "--age")

	_, err = execute(t, t.TempDir(), "", "play", "--age", "5", "--stage", "6")
	assert.ErrorContains(t, err, "--stage")
}

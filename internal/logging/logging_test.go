package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
		err  bool
	}{
		{"debug", log.DebugLevel, false},
		{"INFO", log.InfoLevel, false},
		{"", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"chatty", log.InfoLevel, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.err {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "TEST", log.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown", "stage", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "TEST")
	assert.Contains(t, out, "stage=2")
}

func TestOpenFile_CreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mt.log")

	logger, closer, err := OpenFile(path, "debug")
	require.NoError(t, err)
	logger.Debug("first")
	require.NoError(t, closer.Close())

	logger, closer, err = OpenFile(path, "debug")
	require.NoError(t, err)
	logger.Debug("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
	assert.Contains(t, string(data), "second")
}

func TestOpenFile_BadLevel(t *testing.T) {
	_, _, err := OpenFile(filepath.Join(t.TempDir(), "x.log"), "nope")
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/data", "mathtime", "mathtime.log"), DefaultPath())
}

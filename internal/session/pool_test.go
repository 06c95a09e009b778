package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerPool_Add(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		earned   int
		want     int
		wantFull bool
	}{
		{"under cap", 10, 5, 15, false},
		{"clipped", 28, 5, 30, true},
		{"exactly cap is not full", 25, 5, 30, false},
		{"already full", 30, 1, 30, true},
		{"zero earned", 30, 0, 30, false},
		{"negative earned ignored", 5, -3, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewTimerPool(tc.start)
			full := p.Add(tc.earned)
			assert.Equal(t, tc.want, p.Minutes())
			assert.Equal(t, tc.wantFull, full)
		})
	}
}

func TestNewTimerPool_Clamps(t *testing.T) {
	assert.Equal(t, 0, NewTimerPool(-4).Minutes())
	assert.Equal(t, PoolCap, NewTimerPool(99).Minutes())
}

func TestTimerPool_Reset(t *testing.T) {
	p := NewTimerPool(17)
	p.Reset()
	assert.Zero(t, p.Minutes())
}

func TestAccuracy(t *testing.T) {
	assert.Equal(t, 60, Accuracy(3, 5))
	assert.Equal(t, 67, Accuracy(2, 3))
	assert.Equal(t, 100, Accuracy(4, 4))
	assert.Equal(t, 0, Accuracy(0, 0))
}

func TestEarnedMinutes(t *testing.T) {
	assert.Equal(t, 0, EarnedMinutes(49))
	assert.Equal(t, 1, EarnedMinutes(50))
	assert.Equal(t, 7, EarnedMinutes(375))
	assert.Equal(t, 0, EarnedMinutes(-10))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "01:05:43", FormatClock(time.Minute+5*time.Second+430*time.Millisecond))
	assert.Equal(t, "00:00:00", FormatClock(-time.Second))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "02:05", FormatDuration(125))
	assert.Equal(t, "00:00", FormatDuration(-1))
}

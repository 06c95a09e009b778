package session

// PoolCap is the most reward minutes the timer pool can hold.
const PoolCap = 30

// TimerPool accumulates reward minutes across sessions.
type TimerPool struct {
	minutes int
}

// NewTimerPool creates a pool holding minutes, clamped to [0, PoolCap].
func NewTimerPool(minutes int) *TimerPool {
	return &TimerPool{minutes: clampPool(minutes)}
}

// Minutes returns the current pool value.
func (p *TimerPool) Minutes() int {
	return p.minutes
}

// Add credits earned minutes. It reports full when the sum went past the
// cap and had to be clipped.
func (p *TimerPool) Add(earned int) (full bool) {
	if earned < 0 {
		earned = 0
	}
	p.minutes += earned
	if p.minutes > PoolCap {
		p.minutes = PoolCap
		return true
	}
	return false
}

// Reset empties the pool.
func (p *TimerPool) Reset() {
	p.minutes = 0
}

func clampPool(m int) int {
	if m < 0 {
		return 0
	}
	if m > PoolCap {
		return PoolCap
	}
	return m
}

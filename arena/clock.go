package arena

import "time"

// MaxFrameDelta is the clamp hosts give their WallClock.
const MaxFrameDelta = 100 * time.Millisecond

// Clock supplies the seconds elapsed since the previous frame. Values are
// never negative.
type Clock interface {
	Delta() float64
}

// FixedClock reports the same delta every frame.
type FixedClock float64

func (c FixedClock) Delta() float64 {
	return max(float64(c), 0)
}

// WallClock measures real time between calls to Delta. The first call
// returns 0. Deltas above MaxDelta are clamped so a stalled host does not
// teleport entities.
type WallClock struct {
	MaxDelta time.Duration

	now  func() time.Time
	last time.Time
}

func NewWallClock(maxDelta time.Duration) *WallClock {
	return &WallClock{MaxDelta: maxDelta, now: time.Now}
}

func (c *WallClock) Delta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	elapsed := now.Sub(c.last)
	c.last = now

	if elapsed < 0 {
		return 0
	}
	if c.MaxDelta > 0 && elapsed > c.MaxDelta {
		elapsed = c.MaxDelta
	}
	return elapsed.Seconds()
}

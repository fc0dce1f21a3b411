package arena

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween interpolates linearly between two points over a duration in
// seconds. Each axis is driven by its own gween tween.
type Tween struct {
	start, end mgl32.Vec3
	duration   float32
	elapsed    float32
	axes       [3]*gween.Tween
}

func NewTween(start, end mgl32.Vec3, duration float32) Tween {
	t := Tween{start: start, end: end, duration: duration}
	if duration > 0 {
		for i := range t.axes {
			t.axes[i] = gween.New(start[i], end[i], duration, ease.Linear)
		}
	}
	return t
}

func (t *Tween) Start() mgl32.Vec3 { return t.start }

func (t *Tween) End() mgl32.Vec3 { return t.end }

func (t *Tween) Duration() float32 { return t.duration }

func (t *Tween) Elapsed() float32 { return t.elapsed }

// Value evaluates the tween at elapsed seconds from its start. Elapsed is
// clamped to [0, duration]; a non-positive duration yields the end point.
func (t *Tween) Value(elapsed float32) mgl32.Vec3 {
	if t.duration <= 0 || t.axes[0] == nil {
		return t.end
	}
	elapsed = mgl32.Clamp(elapsed, 0, t.duration)

	var v mgl32.Vec3
	for i, axis := range t.axes {
		v[i], _ = axis.Set(elapsed)
	}
	return v
}

// Advance moves the tween forward by dt and returns the new value and
// whether the tween has finished.
func (t *Tween) Advance(dt float32) (mgl32.Vec3, bool) {
	if dt > 0 {
		t.elapsed += dt
	}
	return t.Value(t.elapsed), t.Done()
}

func (t *Tween) Done() bool {
	return t.elapsed >= t.duration
}

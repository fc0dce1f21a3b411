package tuihost

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/ballpit/arena"
)

// DefaultHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHold = 250 * time.Millisecond

var opposites = map[arena.Key][]arena.Key{
	arena.KeyLeft:  {arena.KeyRight, arena.KeyL},
	arena.KeyH:     {arena.KeyRight, arena.KeyL},
	arena.KeyRight: {arena.KeyLeft, arena.KeyH},
	arena.KeyL:     {arena.KeyLeft, arena.KeyH},
	arena.KeyUp:    {arena.KeyDown, arena.KeyJ},
	arena.KeyK:     {arena.KeyDown, arena.KeyJ},
	arena.KeyDown:  {arena.KeyUp, arena.KeyK},
	arena.KeyJ:     {arena.KeyUp, arena.KeyK},
}

// Keyboard is an arena.InputSource fed from tcell key events. It is safe
// for use from the event goroutine and the frame loop at once.
type Keyboard struct {
	Hold time.Duration

	mu   sync.Mutex
	held map[arena.Key]time.Time
	now  func() time.Time
}

func NewKeyboard(hold time.Duration) *Keyboard {
	return &Keyboard{
		Hold: hold,
		held: make(map[arena.Key]time.Time),
		now:  time.Now,
	}
}

// KeyFor maps a tcell key (and rune, for KeyRune) to an arena key.
func KeyFor(key tcell.Key, r rune) (arena.Key, bool) {
	switch key {
	case tcell.KeyLeft:
		return arena.KeyLeft, true
	case tcell.KeyRight:
		return arena.KeyRight, true
	case tcell.KeyUp:
		return arena.KeyUp, true
	case tcell.KeyDown:
		return arena.KeyDown, true
	case tcell.KeyRune:
		switch r {
		case 'h', 'H':
			return arena.KeyH, true
		case 'j', 'J':
			return arena.KeyJ, true
		case 'k', 'K':
			return arena.KeyK, true
		case 'l', 'L':
			return arena.KeyL, true
		}
	}
	return 0, false
}

// HandleEvent records ev if it maps to an arena key.
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) bool {
	key, ok := KeyFor(ev.Key(), ev.Rune())
	if ok {
		k.Press(key)
	}
	return ok
}

// Press marks key as held and releases the keys of the opposite direction.
func (k *Keyboard) Press(key arena.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()

	for _, other := range opposites[key] {
		delete(k.held, other)
	}
	k.held[key] = k.now()
}

func (k *Keyboard) Pressed(key arena.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	at, ok := k.held[key]
	if !ok {
		return false
	}
	if k.now().Sub(at) > k.Hold {
		delete(k.held, key)
		return false
	}
	return true
}

// Release drops every held key.
func (k *Keyboard) Release() {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.held)
}

// Package scroll owns the scroll offset of a virtualized list and turns
// imperative scroll commands into clamped offsets.
//
// A Controller is not safe for concurrent use. It is meant to be driven from
// a single UI event loop: every call runs one synchronous cycle that clamps,
// stores and notifies subscribers before returning.
package scroll

import (
	"math"

	"go.uber.org/zap"

	"github.com/jcikl/jcikl-member-app-sub001/window"
)

// Align selects where ScrollToIndex places the target row.
type Align int

const (
	// AlignAuto moves the viewport as little as possible to bring the row
	// fully into view. A row that is already fully visible does not move it.
	AlignAuto Align = iota
	// AlignStart puts the row at the top of the viewport.
	AlignStart
	// AlignEnd puts the row at the bottom of the viewport.
	AlignEnd
	// AlignCenter centers the row in the viewport.
	AlignCenter
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return "auto"
	}
}

// ParseAlign maps "start", "end", "center" and "auto" to an Align. Unknown
// values fall back to AlignAuto.
func ParseAlign(s string) Align {
	switch s {
	case "start":
		return AlignStart
	case "end":
		return AlignEnd
	case "center":
		return AlignCenter
	default:
		return AlignAuto
	}
}

// ---------------------------------------------------------------------------
// Config / options
// ---------------------------------------------------------------------------

// Config is the static part of a list: row height, overscan and the
// initial viewport height (0 until measured).
type Config struct {
	ItemSize       float64
	Overscan       int
	ViewportHeight float64
}

// Option is a functional option for New.
type Option func(*Controller)

// WithLogger attaches a logger for debug events. The default is a no-op.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// ---------------------------------------------------------------------------
// State
// ---------------------------------------------------------------------------

// State is a snapshot of the controller taken at the end of a cycle.
type State struct {
	Offset         float64
	ViewportHeight float64
	ItemSize       float64
	Count          int
	Overscan       int
	Window         window.Window
}

// SurfaceHeight is the full scrollable height, count * itemSize.
func (s State) SurfaceHeight() float64 {
	return window.SurfaceHeight(s.Count, s.ItemSize)
}

// ---------------------------------------------------------------------------
// Controller
// ---------------------------------------------------------------------------

// Controller holds the single offset value of a list. Other components read
// it through State and never write it.
type Controller struct {
	itemSize float64
	overscan int
	height   float64

	count    int
	identity any

	offset float64

	subs   map[int]func(State)
	nextID int

	log *zap.Logger
}

// New validates cfg and returns a Controller positioned at offset 0 with an
// empty dataset. An invalid item size or a negative overscan yields a
// *window.ConfigurationError.
func New(cfg Config, opts ...Option) (*Controller, error) {
	if err := window.Validate(cfg.ItemSize); err != nil {
		return nil, err
	}
	if cfg.Overscan < 0 {
		return nil, &window.ConfigurationError{Field: "overscanCount", Value: cfg.Overscan}
	}
	c := &Controller{
		itemSize: cfg.ItemSize,
		overscan: cfg.Overscan,
		height:   math.Max(0, cfg.ViewportHeight),
		subs:     make(map[int]func(State)),
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Subscribe registers fn to be called synchronously after every cycle. The
// returned func removes it.
func (c *Controller) Subscribe(fn func(State)) (cancel func()) {
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	return func() { delete(c.subs, id) }
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() float64 { return c.offset }

// Count returns the row count of the current dataset.
func (c *Controller) Count() int { return c.count }

// Identity returns the identity token of the current dataset.
func (c *Controller) Identity() any { return c.identity }

// ItemSize returns the fixed row height.
func (c *Controller) ItemSize() float64 { return c.itemSize }

// ViewportHeight returns the last viewport height given to the controller.
func (c *Controller) ViewportHeight() float64 { return c.height }

// MaxOffset returns the largest offset the current dataset and viewport allow.
func (c *Controller) MaxOffset() float64 {
	return window.MaxOffset(c.count, c.itemSize, c.height)
}

// Window computes the current render window.
func (c *Controller) Window() window.Window {
	w, err := window.Compute(c.params())
	if err != nil {
		// Config was validated in New and count/overscan are kept
		// non-negative, so this only fires on a programming error.
		c.log.Error("window computation failed", zap.Error(err))
		return window.Empty()
	}
	return w
}

// State returns a snapshot of the current cycle.
func (c *Controller) State() State {
	return State{
		Offset:         c.offset,
		ViewportHeight: c.height,
		ItemSize:       c.itemSize,
		Count:          c.count,
		Overscan:       c.overscan,
		Window:         c.Window(),
	}
}

// OnScroll stores newOffset clamped to [0, MaxOffset] and notifies
// subscribers.
func (c *Controller) OnScroll(newOffset float64) {
	c.offset = c.clamp(newOffset)
	c.notify()
}

// ScrollBy moves the offset by delta through the same clamp/store/notify path.
func (c *Controller) ScrollBy(delta float64) {
	c.OnScroll(c.offset + delta)
}

// ScrollToIndex moves the viewport so that row i is visible according to
// align. An index outside [0, count-1] is clamped into range.
func (c *Controller) ScrollToIndex(i int, align Align) {
	if c.count == 0 {
		c.OnScroll(0)
		return
	}
	if i < 0 || i >= c.count {
		clamped := min(max(i, 0), c.count-1)
		c.log.Debug("scroll index out of range",
			zap.Int("index", i),
			zap.Int("clamped", clamped),
			zap.Int("count", c.count))
		i = clamped
	}

	top := window.RowTop(i, c.itemSize)
	bottom := top + c.itemSize

	var target float64
	switch align {
	case AlignStart:
		target = top
	case AlignEnd:
		target = bottom - c.height
	case AlignCenter:
		target = top - (c.height-c.itemSize)/2
	default:
		target = c.offset
		if top < c.offset {
			target = top
		} else if bottom > c.offset+c.height {
			target = bottom - c.height
		}
	}
	c.OnScroll(target)
}

// ScrollToTop is ScrollToIndex(0, AlignStart).
func (c *Controller) ScrollToTop() {
	c.ScrollToIndex(0, AlignStart)
}

// SetDataset installs a dataset. identity must be comparable. When it differs
// from the previous identity the offset resets to the top; the same identity
// with a new count only re-clamps the current offset.
func (c *Controller) SetDataset(identity any, count int) {
	if count < 0 {
		count = 0
	}
	replaced := identity != c.identity
	c.identity = identity
	c.count = count
	if replaced {
		c.log.Debug("dataset replaced, resetting scroll",
			zap.Int("count", count),
			zap.Float64("previous_offset", c.offset))
		c.ScrollToTop()
		return
	}
	c.OnScroll(c.offset)
}

// SetViewport records a new viewport height and re-clamps the offset.
func (c *Controller) SetViewport(height float64) {
	c.height = math.Max(0, height)
	c.OnScroll(c.offset)
}

func (c *Controller) clamp(offset float64) float64 {
	if math.IsNaN(offset) || offset < 0 {
		return 0
	}
	return math.Min(offset, c.MaxOffset())
}

func (c *Controller) params() window.Params {
	return window.Params{
		Offset:         c.offset,
		ViewportHeight: c.height,
		ItemSize:       c.itemSize,
		Count:          c.count,
		Overscan:       c.overscan,
	}
}

func (c *Controller) notify() {
	if len(c.subs) == 0 {
		return
	}
	s := c.State()
	for _, fn := range c.subs {
		fn(s)
	}
}

package bars

import (
	"slices"

	errs "github.com/matzehuels/sortviz/pkg/errors"
	"github.com/matzehuels/sortviz/pkg/sorting"
)

// Default canvas matching the original 800x600 window.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultGap    = 2
)

// Config is the only state a renderer carries.
type Config struct {
	Width  int `json:"width" toml:"width"`
	Height int `json:"height" toml:"height"`
	Gap    int `json:"gap" toml:"gap"`
}

// DefaultConfig returns the 800x600 canvas with a 2px gap.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight, Gap: DefaultGap}
}

// Validate rejects non-positive canvases and negative gaps.
func (c Config) Validate() error {
	return errs.ValidateDimensions(c.Width, c.Height, c.Gap)
}

// SlotWidth returns the width of one bar for n elements. When n bars and
// their gaps do not fit, the gap is dropped; when n exceeds the width, bars
// are one unit wide and share columns.
func (c Config) SlotWidth(n int) int {
	if n <= 0 {
		return 0
	}
	if w := (c.Width - (n-1)*c.Gap) / n; w >= 1 {
		return w
	}
	return max(1, c.Width/n)
}

// gapFor returns the gap actually placed between n bars.
func (c Config) gapFor(n int) int {
	if n > 0 && c.Width-(n-1)*c.Gap >= n {
		return c.Gap
	}
	return 0
}

// barX returns the left edge of bar i of n. Every bar lies inside the
// canvas: x+SlotWidth(n) <= Width whenever the canvas is at least one unit
// wide.
func (c Config) barX(i, n, slot, gap int) int {
	if n > c.Width {
		return i * c.Width / n
	}
	return i * (slot + gap)
}

// Role classifies a bar for coloring.
type Role int

const (
	RoleNeutral Role = iota
	RolePrimary
	RoleSecondary
)

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleSecondary:
		return "secondary"
	}
	return "neutral"
}

// Bar is one element's rectangle, with the origin at the top-left corner.
type Bar struct {
	Index  int  `json:"index"`
	Value  int  `json:"value"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Role   Role `json:"role"`
}

// Layout computes the bars of s on the canvas described by cfg.
func Layout(cfg Config, s sorting.Snapshot) []Bar {
	n := len(s.Values)
	if n == 0 {
		return nil
	}

	slot, gap := cfg.SlotWidth(n), cfg.gapFor(n)
	scale := max(n, slices.Max(s.Values))

	bars := make([]Bar, n)
	for i, v := range s.Values {
		h := 0
		if v > 0 {
			h = barHeight(v, scale, cfg.Height)
		}
		bars[i] = Bar{
			Index:  i,
			Value:  v,
			X:      cfg.barX(i, n, slot, gap),
			Y:      cfg.Height - h,
			Width:  slot,
			Height: h,
			Role:   roleOf(i, s.Primary, s.Secondary),
		}
	}
	return bars
}

// barHeight scales v in (0, scale] to [1, height]. The product is taken in
// float64 so values near the int range cannot overflow.
func barHeight(v, scale, height int) int {
	h := int(float64(v) * float64(height) / float64(scale))
	return min(height, max(1, h))
}

func roleOf(i, primary, secondary int) Role {
	switch i {
	case primary:
		return RolePrimary
	case secondary:
		return RoleSecondary
	}
	return RoleNeutral
}

// rank orders roles for drawing when bars share a column: highlighted bars
// win over neutral ones, and primary over secondary.
func (r Role) rank() int {
	switch r {
	case RolePrimary:
		return 2
	case RoleSecondary:
		return 1
	}
	return 0
}

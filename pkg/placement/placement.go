// Package placement turns edge proximity into a tooltip placement and the
// utility classes that realize it.
package placement

import (
	"fmt"

	"github.com/kimjansheden/logo/pkg/edge"
)

// Vertical is the side of the widget the tooltip opens on.
type Vertical int

const (
	Below Vertical = iota
	Above
)

func (v Vertical) String() string {
	if v == Above {
		return "above"
	}
	return "below"
}

// MarshalText encodes v by name.
func (v Vertical) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes "above" or "below".
func (v *Vertical) UnmarshalText(text []byte) error {
	switch string(text) {
	case "above":
		*v = Above
	case "below":
		*v = Below
	default:
		return fmt.Errorf("unknown vertical placement %q", text)
	}
	return nil
}

// Classes returns the utility classes that place the tooltip on side v.
func (v Vertical) Classes() []string {
	if v == Above {
		return []string{"bottom-full", "mb-2"}
	}
	return []string{"top-full", "mt-2"}
}

// Horizontal is how the tooltip lines up with the widget.
type Horizontal int

const (
	Centered Horizontal = iota
	LeftAligned
	RightAligned
)

func (h Horizontal) String() string {
	switch h {
	case LeftAligned:
		return "left"
	case RightAligned:
		return "right"
	default:
		return "center"
	}
}

// MarshalText encodes h by name.
func (h Horizontal) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes "left", "right" or "center".
func (h *Horizontal) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*h = LeftAligned
	case "right":
		*h = RightAligned
	case "center":
		*h = Centered
	default:
		return fmt.Errorf("unknown horizontal placement %q", text)
	}
	return nil
}

// Classes returns the utility classes for alignment h. Centering shifts the
// tooltip back by half its own width.
func (h Horizontal) Classes() []string {
	switch h {
	case LeftAligned:
		return []string{"left-0"}
	case RightAligned:
		return []string{"right-0"}
	default:
		return []string{"left-1/2", "-translate-x-1/2"}
	}
}

// Directive is a resolved tooltip placement.
type Directive struct {
	Vertical   Vertical   `json:"vertical"`
	Horizontal Horizontal `json:"horizontal"`
}

// Resolve picks the placement for p. A widget near the bottom gets its
// tooltip above; left proximity wins over right when both are set.
func Resolve(p edge.Proximity) Directive {
	d := Directive{Vertical: Below, Horizontal: Centered}
	if p.Bottom {
		d.Vertical = Above
	}
	switch {
	case p.Left:
		d.Horizontal = LeftAligned
	case p.Right:
		d.Horizontal = RightAligned
	}
	return d
}

// Classes returns the vertical classes followed by the horizontal ones.
func (d Directive) Classes() []string {
	return append(d.Vertical.Classes(), d.Horizontal.Classes()...)
}

func (d Directive) String() string {
	return d.Vertical.String() + "/" + d.Horizontal.String()
}

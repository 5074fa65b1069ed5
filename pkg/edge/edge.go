// Package edge infers whether the widget sits close to a viewport edge from
// numeric offset utilities such as "bottom-4" or "sm:left-2".
//
// A token is proximate to an edge when its value is at most the edge's
// tolerance. Responsive variants count the same as their base token, so
// "lg:bottom-6" is as close to the bottom as "bottom-6".
//
// The left edge has one extra rule: a fixed or absolute element with no
// explicit left-* or right-* token keeps its static horizontal position, which
// is the left edge, so a small m-*, mx-* or ml-* margin is treated as
// left-proximate. The right edge has no such fallback.
package edge

import (
	"regexp"
	"slices"
	"strconv"
)

// Default tolerances used when the caller has no preference.
const (
	DefaultBottomTolerance = 8
	DefaultSideTolerance   = 5
)

var (
	bottomPattern     = regexp.MustCompile(`^(sm:|md:|lg:|xl:|2xl:)?bottom-(\d+)$`)
	leftPattern       = regexp.MustCompile(`^(sm:|md:|lg:|xl:|2xl:)?left-(\d+)$`)
	rightPattern      = regexp.MustCompile(`^(sm:|md:|lg:|xl:|2xl:)?right-(\d+)$`)
	horizontalPattern = regexp.MustCompile(`^(sm:|md:|lg:|xl:|2xl:)?(left-|right-)`)
	marginPattern     = regexp.MustCompile(`^(sm:|md:|lg:|xl:|2xl:)?(m-|mx-|ml-)(\d+)$`)
)

// Tolerances holds the maximum offset value that still counts as touching
// each edge.
type Tolerances struct {
	Bottom int `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left   int `json:"left" toml:"left" yaml:"left"`
	Right  int `json:"right" toml:"right" yaml:"right"`
}

// DefaultTolerances returns {Bottom: 8, Left: 5, Right: 5}.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Bottom: DefaultBottomTolerance,
		Left:   DefaultSideTolerance,
		Right:  DefaultSideTolerance,
	}
}

// Proximity reports which edges the widget is close to.
type Proximity struct {
	Bottom bool `json:"bottom"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
}

// Detect runs all three detectors over tokens.
func Detect(tokens []string, tol Tolerances) Proximity {
	return Proximity{
		Bottom: Bottom(tokens, tol.Bottom),
		Left:   Left(tokens, tol.Left),
		Right:  Right(tokens, tol.Right),
	}
}

// Bottom reports whether any bottom-N token has N <= tolerance.
func Bottom(tokens []string, tolerance int) bool {
	return anyWithin(tokens, bottomPattern, tolerance)
}

// Left reports whether any left-N token has N <= tolerance, falling back to
// margin tokens for fixed or absolute elements without horizontal offsets.
func Left(tokens []string, tolerance int) bool {
	if anyWithin(tokens, leftPattern, tolerance) {
		return true
	}
	if !isOutOfFlow(tokens) || hasHorizontalOffset(tokens) {
		return false
	}
	return anyWithin(tokens, marginPattern, tolerance)
}

// Right reports whether any right-N token has N <= tolerance.
func Right(tokens []string, tolerance int) bool {
	return anyWithin(tokens, rightPattern, tolerance)
}

func isOutOfFlow(tokens []string) bool {
	return slices.Contains(tokens, "fixed") || slices.Contains(tokens, "absolute")
}

func hasHorizontalOffset(tokens []string) bool {
	return slices.ContainsFunc(tokens, horizontalPattern.MatchString)
}

// anyWithin reports whether any token matches re with its last capture group
// at most tolerance.
func anyWithin(tokens []string, re *regexp.Regexp, tolerance int) bool {
	for _, t := range tokens {
		m := re.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[len(m)-1])
		if err != nil {
			// Out of int range, so nowhere near the edge.
			continue
		}
		if n <= tolerance {
			return true
		}
	}
	return false
}

package sorting

import (
	"strconv"
	"strings"

	errs "github.com/matzehuels/sortviz/pkg/errors"
)

// Algorithm selects one of the instrumented sorting algorithms.
// The numeric values match the interactive menu (0 = selection ... 4 = quick).
type Algorithm int

const (
	AlgSelection Algorithm = iota
	AlgBubble
	AlgInsertion
	AlgMerge
	AlgQuick
)

// All lists every algorithm in menu order.
var All = []Algorithm{AlgSelection, AlgBubble, AlgInsertion, AlgMerge, AlgQuick}

var algorithmNames = [...]string{"selection", "bubble", "insertion", "merge", "quick"}

// String returns the lowercase name used on the command line ("bubble").
func (a Algorithm) String() string {
	if !a.Valid() {
		return "algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Title returns the display name used in menus ("Bubble Sort").
func (a Algorithm) Title() string {
	if !a.Valid() {
		return a.String()
	}
	name := algorithmNames[a]
	return strings.ToUpper(name[:1]) + name[1:] + " Sort"
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	return a >= AlgSelection && a <= AlgQuick
}

// Recursive reports whether the algorithm has a call tree.
func (a Algorithm) Recursive() bool {
	return a == AlgMerge || a == AlgQuick
}

// Func returns the sorting function for a, or nil if a is not valid.
func (a Algorithm) Func() func([]int, RenderFunc) {
	switch a {
	case AlgSelection:
		return Selection
	case AlgBubble:
		return Bubble
	case AlgInsertion:
		return Insertion
	case AlgMerge:
		return Merge
	case AlgQuick:
		return Quick
	}
	return nil
}

// MarshalText encodes the algorithm by name.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText accepts anything [ParseAlgorithm] accepts.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm parses a menu number ("3") or a name ("merge", "Merge Sort").
func ParseAlgorithm(s string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return 0, errs.New(errs.ErrCodeInvalidAlgorithm, "no algorithm given")
	}
	if n, err := strconv.Atoi(key); err == nil {
		a := Algorithm(n)
		if !a.Valid() {
			return 0, errs.New(errs.ErrCodeInvalidAlgorithm, "invalid choice %d (want 0-%d)", n, len(All)-1)
		}
		return a, nil
	}
	key = strings.TrimSuffix(strings.TrimSuffix(key, "sort"), " ")
	key = strings.TrimSuffix(key, "-")
	for _, a := range All {
		if a.String() == key {
			return a, nil
		}
	}
	return 0, errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q", s)
}

// Sort sorts values in place with the given algorithm, calling render after
// every step. render may be nil.
func Sort(a Algorithm, values []int, render RenderFunc) error {
	fn := a.Func()
	if fn == nil {
		return errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %d", int(a))
	}
	fn(values, render)
	return nil
}

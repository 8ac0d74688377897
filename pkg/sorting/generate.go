package sorting

import (
	"math/rand/v2"
	"strconv"
	"strings"

	errs "github.com/matzehuels/sortviz/pkg/errors"
)

// MaxSize is the largest sequence the visualizer accepts.
const MaxSize = 100

// ClampSize bounds n to [0, MaxSize] and reports whether it was changed.
func ClampSize(n int) (int, bool) {
	switch {
	case n > MaxSize:
		return MaxSize, true
	case n < 0:
		return 0, true
	}
	return n, false
}

// Generate returns n pseudo-random values in [1, n]. The same seed always
// produces the same sequence.
func Generate(n int, seed uint64) []int {
	if n <= 0 {
		return []int{}
	}
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	values := make([]int, n)
	for i := range values {
		values[i] = rng.IntN(n) + 1
	}
	return values
}

// ParseValues parses an explicit input such as "5,3,8,1" (commas and/or
// spaces). At most MaxSize values are accepted.
func ParseValues(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "invalid value %q in input", f)
		}
		values = append(values, v)
	}
	if len(values) > MaxSize {
		return nil, errs.New(errs.ErrCodeInvalidSize, "input has %d values (max %d)", len(values), MaxSize)
	}
	return values, nil
}

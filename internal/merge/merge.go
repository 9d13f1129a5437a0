// Package merge implements the compact-and-merge step used by tile-merging
// games such as 2048. It works on plain slices and knows nothing about boards.
package merge

import (
	"fmt"
	"strconv"
	"strings"
)

// MoveAndMergeEqual drops absent (nil) entries, then walks the remaining
// values left to right and replaces every adjacent equal pair with
// merge(v). A merged value is never merged again in the same pass:
//
//	a a b    -> merge(a) b
//	a _      -> a
//	b _ a a  -> b merge(a)
//	a a _ a  -> merge(a) a
//	a a a    -> merge(a) a
//
// The result is never longer than the number of present values.
func MoveAndMergeEqual[T comparable](line []*T, merge func(T) T) []T {
	compact := Compact(line)
	result := make([]T, 0, len(compact))

	for k := 0; k < len(compact); k++ {
		if k+1 < len(compact) && compact[k] == compact[k+1] {
			result = append(result, merge(compact[k]))
			k++ // skip the consumed partner
			continue
		}
		result = append(result, compact[k])
	}

	return result
}

// Compact returns the present values of line in order.
func Compact[T any](line []*T) []T {
	result := make([]T, 0, len(line))
	for _, v := range line {
		if v != nil {
			result = append(result, *v)
		}
	}
	return result
}

// Ptrs wraps each value in a pointer, for building fully present lines.
func Ptrs[T any](vs ...T) []*T {
	ptrs := make([]*T, len(vs))
	for i := range vs {
		ptrs[i] = &vs[i]
	}
	return ptrs
}

// Double is the classic 2048 rule: two tiles of v become one tile of 2v.
func Double(v int) int {
	return v * 2
}

// Repeat concatenates a value with itself ("a" -> "aa").
func Repeat(v string) string {
	return v + v
}

// DoubleString doubles a decimal string ("2" -> "4").
// Non-numeric values fall back to Repeat.
func DoubleString(v string) string {
	n, err := strconv.Atoi(v)
	if err != nil {
		return Repeat(v)
	}
	return strconv.Itoa(Double(n))
}

// Rules lists the names accepted by Rule.
var Rules = []string{"double", "repeat"}

// Rule resolves a named merge rule over string values.
func Rule(name string) (func(string) string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "double", "":
		return DoubleString, nil
	case "repeat":
		return Repeat, nil
	default:
		return nil, fmt.Errorf("unknown merge rule %q (expected one of %s)", name, strings.Join(Rules, ", "))
	}
}

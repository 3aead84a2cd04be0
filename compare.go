// Package sparkline holds the values that back sparkline table cells (bar
// and line series, scatter points, index tuples) and the orderings a table
// uses to sort its rows by them.
//
// None of the types are safe for concurrent mutation. A caller that sorts a
// table must not mutate the cells being sorted at the same time.
package sparkline

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Comparable is implemented by every cell value a table column can be sorted
// on. CompareTo returns -1, 0 or 1 and fails with ErrKindMismatch if other
// holds a different kind of value.
type Comparable interface {
	CompareTo(other Comparable) (int, error)
	String() string
}

// CompareOrdered returns -1 if a < b, 1 if a > b and 0 otherwise.
func CompareOrdered[T constraints.Integer | constraints.Float](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func kindMismatch(a, b interface{}) error {
	return fmt.Errorf("%w: %T vs %T", ErrKindMismatch, a, b)
}

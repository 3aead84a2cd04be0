package sparkline

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// NumericSeries backs a bar or line sparkline. Its values and its policy may
// both be replaced after construction; aggregates are always recomputed from
// the current values.
type NumericSeries struct {
	values []float64
	policy SortPolicy
}

func NewNumericSeries(policy SortPolicy, values ...float64) *NumericSeries {
	s := &NumericSeries{policy: policy}
	s.SetValues(values...)

	return s
}

// Values returns a copy of the series' values.
func (s *NumericSeries) Values() []float64 {
	return append([]float64(nil), s.values...)
}

func (s *NumericSeries) SetValues(values ...float64) {
	s.values = append([]float64(nil), values...)
}

func (s *NumericSeries) Policy() SortPolicy {
	return s.policy
}

func (s *NumericSeries) SetPolicy(policy SortPolicy) {
	s.policy = policy
}

func (s *NumericSeries) Len() int {
	return len(s.values)
}

func (s *NumericSeries) Sum() float64 {
	return floats.Sum(s.values)
}

// SumExceptLast is the sum of every value but the final one, or 0 if there
// are fewer than two values.
func (s *NumericSeries) SumExceptLast() float64 {
	if len(s.values) < 2 {
		return 0
	}

	return floats.Sum(s.values[:len(s.values)-1])
}

func (s *NumericSeries) sortKey(policy SortPolicy) (float64, error) {
	switch policy {
	case SumOfAll:
		return s.Sum(), nil
	case SumExceptLast:
		return s.SumExceptLast(), nil
	case FirstValueOnly:
		if len(s.values) == 0 {
			return 0, fmt.Errorf("%w: %s needs at least one value", ErrInvalidState, policy)
		}
		return s.values[0], nil
	}

	return 0, fmt.Errorf("%w: unknown sort policy %d", ErrInvalidState, int(policy))
}

// CompareSeries orders a and b by the scalar that a's policy derives from
// each. Callers sorting a column must give every series the same policy.
func CompareSeries(a, b *NumericSeries) (int, error) {
	ka, err := a.sortKey(a.policy)
	if err != nil {
		return 0, err
	}

	kb, err := b.sortKey(a.policy)
	if err != nil {
		return 0, err
	}

	return CompareOrdered(ka, kb), nil
}

func (s *NumericSeries) CompareTo(other Comparable) (int, error) {
	o, ok := other.(*NumericSeries)
	if !ok {
		return 0, kindMismatch(s, other)
	}

	return CompareSeries(s, o)
}

func (s *NumericSeries) String() string {
	return joinFloats(s.values, ", ")
}

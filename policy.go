package sparkline

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// SortPolicy is the aggregation used to reduce a NumericSeries to the single
// scalar a table sorts on.
type SortPolicy int

const (
	SumOfAll SortPolicy = iota
	SumExceptLast
	FirstValueOnly
)

// Policies maps the names a column configuration may use to a SortPolicy.
var Policies = map[string]SortPolicy{
	"sum":             SumOfAll,
	"sum-except-last": SumExceptLast,
	"first":           FirstValueOnly,
}

func (p SortPolicy) String() string {
	for name, v := range Policies {
		if v == p {
			return name
		}
	}

	return fmt.Sprintf("SortPolicy(%d)", int(p))
}

// PolicyNames returns the valid policy names in alphabetical order.
func PolicyNames() string {
	names := make([]string, 0, len(Policies))
	for name := range Policies {
		names = append(names, name)
	}
	slices.Sort(names)

	return strings.Join(names, ", ")
}

// ParseSortPolicy looks up a policy by name.
func ParseSortPolicy(name string) (SortPolicy, error) {
	p, exists := Policies[name]
	if !exists {
		return 0, fmt.Errorf("Sort policy %s is not found. Valid policy names include: %s", name, PolicyNames())
	}

	return p, nil
}

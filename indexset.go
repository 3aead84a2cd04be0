package sparkline

import (
	"strconv"
	"strings"
)

// IndexSet is an ordered tuple of integer positions. Sets compared against
// each other are expected to have the same length.
type IndexSet struct {
	indices []int
}

func NewIndexSet(indices ...int) IndexSet {
	return IndexSet{indices: append([]int(nil), indices...)}
}

func (s IndexSet) Indices() []int {
	return append([]int(nil), s.indices...)
}

func (s IndexSet) Len() int {
	return len(s.indices)
}

// CompareIndexSets orders a and b lexicographically. If the lengths differ
// and one is a prefix of the other, the shorter sorts first.
func CompareIndexSets(a, b IndexSet) int {
	for i := 0; i < len(a.indices) && i < len(b.indices); i++ {
		if c := CompareOrdered(a.indices[i], b.indices[i]); c != 0 {
			return c
		}
	}

	return CompareOrdered(len(a.indices), len(b.indices))
}

func (s IndexSet) CompareTo(other Comparable) (int, error) {
	o, ok := other.(IndexSet)
	if !ok {
		return 0, kindMismatch(s, other)
	}

	return CompareIndexSets(s, o), nil
}

func (s IndexSet) String() string {
	b := strings.Builder{}
	for i, v := range s.indices {
		if i != 0 {
			b.WriteString(",")
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

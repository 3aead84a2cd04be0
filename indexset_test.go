package sparkline

import "testing"

func TestIndexSet(t *testing.T) {
	s := NewIndexSet(1, 2, 3)
	if got := s.String(); got != "1,2,3" {
		t.Errorf("Got %q", got)
	}

	for _, v := range []struct {
		A, B     IndexSet
		Expected int
	}{
		{NewIndexSet(1, 2, 3), NewIndexSet(2, 1, 3), -1},
		{NewIndexSet(2, 1, 3), NewIndexSet(1, 2, 3), 1},
		{NewIndexSet(1, 2, 3), NewIndexSet(1, 2, 4), -1},
		{NewIndexSet(1, 2, 3), NewIndexSet(1, 2, 3), 0},
		{NewIndexSet(), NewIndexSet(), 0},
	} {
		if got := CompareIndexSets(v.A, v.B); got != v.Expected {
			t.Errorf("%v vs %v: got %d, expected %d", v.A, v.B, got, v.Expected)
		}
		got, err := v.A.CompareTo(v.B)
		if err != nil || got != v.Expected {
			t.Errorf("CompareTo %v vs %v: got %d (%v)", v.A, v.B, got, err)
		}
	}
}

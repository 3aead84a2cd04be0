package sparkline

import "testing"

func TestComparePoints(t *testing.T) {
	for _, v := range []struct {
		A, B     Point2D
		Expected int
	}{
		{NewPoint2D(1, 5, true), NewPoint2D(2, 0, true), -1},
		{NewPoint2D(3, 5, true), NewPoint2D(2, 9, true), 1},
		{NewPoint2D(2, 5, true), NewPoint2D(2, 9, true), -1},
		{NewPoint2D(2, 9, true), NewPoint2D(2, 9, true), 0},
		{NewPoint2D(1, 5, false), NewPoint2D(2, 0, false), 1},
		{NewPoint2D(1, 5, false), NewPoint2D(0, 5, false), 1},
		{NewPoint2D(1, 5, false), NewPoint2D(1, 5, false), 0},
	} {
		if got := ComparePoints(v.A, v.B); got != v.Expected {
			t.Errorf("%+v: got %d", v, got)
		}
		if got := ComparePoints(v.B, v.A); got != -v.Expected {
			t.Errorf("%+v reversed: got %d", v, got)
		}
	}
}

func TestPointText(t *testing.T) {
	if got := NewPoint2D(1, 2.5, true).String(); got != "1.0, 2.5" {
		t.Errorf("Got %q", got)
	}
	if got := (Point3D{1.1, 1.2, 1.3}).String(); got != "1.1, 1.2, 1.3" {
		t.Errorf("Got %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	for _, v := range []struct {
		In       float64
		Expected string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{-6, "-6.0"},
		{2.25, "2.25"},
		{0.001, "0.001"},
		{1e7, "1.0E7"},
		{1.5e7, "1.5E7"},
		{1e-5, "1.0E-5"},
	} {
		if got := FormatFloat(v.In); got != v.Expected {
			t.Errorf("%v: got %q, expected %q", v.In, got, v.Expected)
		}
	}
}

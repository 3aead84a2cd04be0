package sparkline

import (
	"image/color"
	"strings"
)

// Series2D is a labeled, colored line series. It owns a private copy of its
// points.
type Series2D struct {
	Label  string
	Color  color.RGBA
	points []Point2D
}

func NewSeries2D(label string, c color.RGBA, points ...Point2D) Series2D {
	return Series2D{
		Label:  label,
		Color:  c,
		points: append([]Point2D(nil), points...),
	}
}

func (s Series2D) Points() []Point2D {
	return append([]Point2D(nil), s.points...)
}

func (s Series2D) Len() int {
	return len(s.points)
}

// String renders the points as "(x, y), (x, y)".
func (s Series2D) String() string {
	b := strings.Builder{}
	for i, p := range s.points {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		b.WriteString(p.String())
		b.WriteString(")")
	}

	return b.String()
}

// Series3D is a labeled, colored scatter series.
type Series3D struct {
	Label  string
	Color  color.RGBA
	points []Point3D
}

func NewSeries3D(label string, c color.RGBA, points ...Point3D) Series3D {
	return Series3D{
		Label:  label,
		Color:  c,
		points: append([]Point3D(nil), points...),
	}
}

func (s Series3D) Points() []Point3D {
	return append([]Point3D(nil), s.points...)
}

func (s Series3D) Len() int {
	return len(s.points)
}

// String renders the points as "(x, y, z), (x, y, z)".
func (s Series3D) String() string {
	b := strings.Builder{}
	for i, p := range s.points {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		b.WriteString(p.String())
		b.WriteString(")")
	}

	return b.String()
}

package sparkline

import "strings"

// Collection2D is the set of line series drawn together in one cell.
type Collection2D struct {
	series []Series2D
}

func NewCollection2D(series ...Series2D) Collection2D {
	return Collection2D{series: append([]Series2D(nil), series...)}
}

func (c Collection2D) Series() []Series2D {
	return append([]Series2D(nil), c.series...)
}

func (c Collection2D) Len() int {
	return len(c.series)
}

func (c Collection2D) String() string {
	parts := make([]string, 0, len(c.series))
	for _, s := range c.series {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, ", ")
}

// Collection3D is the set of scatter series drawn together in one cell.
type Collection3D struct {
	series []Series3D
}

func NewCollection3D(series ...Series3D) Collection3D {
	return Collection3D{series: append([]Series3D(nil), series...)}
}

func (c Collection3D) Series() []Series3D {
	return append([]Series3D(nil), c.series...)
}

func (c Collection3D) Len() int {
	return len(c.series)
}

// String wraps each member series in brackets: "[(1.0, 2.0, 3.0)], [...]".
func (c Collection3D) String() string {
	parts := make([]string, 0, len(c.series))
	for _, s := range c.series {
		parts = append(parts, "["+s.String()+"]")
	}

	return strings.Join(parts, ", ")
}

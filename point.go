package sparkline

// Point2D is one coordinate of a line chart. SortByX selects the axis used to
// order points; the other axis breaks ties. Both sides of a comparison are
// expected to agree on SortByX.
type Point2D struct {
	X       float64
	Y       float64
	SortByX bool
}

func NewPoint2D(x, y float64, sortByX bool) Point2D {
	return Point2D{X: x, Y: y, SortByX: sortByX}
}

// ComparePoints orders a and b on a's sort axis, then on the other axis.
func ComparePoints(a, b Point2D) int {
	primary, secondary := CompareOrdered(a.Y, b.Y), CompareOrdered(a.X, b.X)
	if a.SortByX {
		primary, secondary = secondary, primary
	}

	if primary != 0 {
		return primary
	}

	return secondary
}

func (p Point2D) CompareTo(other Comparable) (int, error) {
	o, ok := other.(Point2D)
	if !ok {
		return 0, kindMismatch(p, other)
	}

	return ComparePoints(p, o), nil
}

func (p Point2D) String() string {
	return joinFloats([]float64{p.X, p.Y}, ", ")
}

// Point3D is one coordinate of a 3D scatter series. It carries no ordering.
type Point3D struct {
	X float64
	Y float64
	Z float64
}

func (p Point3D) String() string {
	return joinFloats([]float64{p.X, p.Y, p.Z}, ", ")
}

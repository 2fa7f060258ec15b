package geom

// Containment classifies how one volume relates to another.
type Containment uint8

const (
	Disjoint   Containment = iota // no overlap
	Contains                      // the second shape lies entirely inside the first
	Intersects                    // partial overlap
)

func (c Containment) String() string {
	switch c {
	case Disjoint:
		return "disjoint"
	case Contains:
		return "contains"
	case Intersects:
		return "intersects"
	}
	return "unknown"
}

// PlaneIntersection classifies a shape against a plane.
type PlaneIntersection uint8

const (
	Back         PlaneIntersection = iota // entirely on the side opposite the normal
	Front                                 // entirely on the side the normal points to
	Intersecting                          // straddles the plane
)

func (p PlaneIntersection) String() string {
	switch p {
	case Back:
		return "back"
	case Front:
		return "front"
	case Intersecting:
		return "intersecting"
	}
	return "unknown"
}

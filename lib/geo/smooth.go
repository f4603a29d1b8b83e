package geo

// SplineSegments is the number of line segments each quadratic curve piece is
// subdivided into for rendering and export. Downstream consumers assume this
// exact count; it is a compatibility constant, not a quality knob.
const SplineSegments = 8

// QuadSegment is one quadratic curve piece of a smoothed path. A straight run
// is encoded with the control point halfway between start and end, which
// evaluates to the straight line.
type QuadSegment struct {
	Start   *Point
	Control *Point
	End     *Point
}

// QuadraticPoint evaluates the quadratic Bezier through start and end with
// the given control point at t in [0, 1].
func QuadraticPoint(start, control, end *Point, t float64) *Point {
	mt := 1 - t
	a := mt * mt
	b := 2 * mt * t
	c := t * t
	return NewPoint(
		a*start.X+b*control.X+c*end.X,
		a*start.Y+b*control.Y+c*end.Y,
	)
}

// SmoothSegments expands user points into the quadratic pieces of "smooth"
// mode: every interior point becomes the control point of one curve piece
// whose knots are the midpoints of the adjacent sides. Open paths begin and
// end with straight runs into the true endpoints; closed paths wrap through
// the midpoint of the last and first points. Fewer than 3 points have no
// curve pieces and return nil.
func SmoothSegments(points Points, closed bool) []QuadSegment {
	if len(points) < 3 {
		return nil
	}
	n := len(points)
	mid := make(Points, n)
	for i := 0; i < n; i++ {
		mid[i] = Midpoint(points[i], points[(i+1)%n])
	}

	if closed {
		segs := make([]QuadSegment, 0, n)
		for i := 0; i < n; i++ {
			segs = append(segs, QuadSegment{
				Start:   mid[(i+n-1)%n].Copy(),
				Control: points[i].Copy(),
				End:     mid[i].Copy(),
			})
		}
		return segs
	}

	segs := make([]QuadSegment, 0, n)
	segs = append(segs, straightSegment(points[0], mid[0]))
	for i := 1; i < n-1; i++ {
		segs = append(segs, QuadSegment{
			Start:   mid[i-1].Copy(),
			Control: points[i].Copy(),
			End:     mid[i].Copy(),
		})
	}
	segs = append(segs, straightSegment(mid[n-2], points[n-1]))
	return segs
}

func straightSegment(a, b *Point) QuadSegment {
	return QuadSegment{Start: a.Copy(), Control: Midpoint(a, b), End: b.Copy()}
}

// SmoothPoints returns the piecewise-linear approximation of the smoothed
// path, subdividing every piece into SplineSegments lines. Fewer than 3
// points come back unchanged (copied). For closed paths the result starts and
// ends at the wrap midpoint.
func SmoothPoints(points Points, closed bool) Points {
	if len(points) < 3 {
		return points.Copy()
	}
	segs := SmoothSegments(points, closed)
	out := make(Points, 0, 1+len(segs)*SplineSegments)
	out = append(out, segs[0].Start.Copy())
	for _, seg := range segs {
		for i := 1; i <= SplineSegments; i++ {
			t := float64(i) / SplineSegments
			out = append(out, QuadraticPoint(seg.Start, seg.Control, seg.End, t))
		}
	}
	return out
}

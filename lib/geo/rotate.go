package geo

import "math"

// RotatePoint rotates p about center by deg degrees. Positive angles turn
// clockwise on screen because Y grows downward. The same convention is used
// everywhere rotation is applied or undone, so
// RotatePoint(RotatePoint(p, c, deg), c, -deg) round-trips.
func RotatePoint(p, center *Point, deg float64) *Point {
	if deg == 0 {
		return p.Copy()
	}
	rad := Radians(deg)
	sin, cos := math.Sin(rad), math.Cos(rad)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return NewPoint(
		center.X+dx*cos-dy*sin,
		center.Y+dx*sin+dy*cos,
	)
}

func RotatePoints(ps Points, center *Point, deg float64) Points {
	out := make(Points, len(ps))
	for i, p := range ps {
		out[i] = RotatePoint(p, center, deg)
	}
	return out
}

// NormalizeDegrees reduces deg to [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDegrees returns the screen-space angle of p about center, measured
// clockwise from the positive X axis, in [0, 360). Rotating (center.X+r, center.Y)
// about center by deg lands on the point whose AngleDegrees is deg.
func AngleDegrees(center, p *Point) float64 {
	return NormalizeDegrees(Degrees(math.Atan2(p.Y-center.Y, p.X-center.X)))
}

// DeltaDegrees returns the shortest signed angular difference to - from, in
// (-180, 180]. Safe across the ±180 wraparound: DeltaDegrees(350, 10) == 20.
func DeltaDegrees(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

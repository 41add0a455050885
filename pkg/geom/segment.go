// pkg/geom/segment.go
package geom

// SegmentIntersectsCircle reports whether the segment a-b passes through the
// circle (center, radius). Touching the boundary counts as an intersection.
func SegmentIntersectsCircle(a, b, center Vec2, radius float64) bool {
	return DistToSegment(center, a, b) <= radius
}

// DistToSegment returns the shortest distance from p to the segment a-b.
func DistToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(a.Add(ab.Scale(t)))
}

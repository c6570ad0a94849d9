package raycast

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Along returns the point at distance d from origin in direction angle.
func Along(origin Point, angle, d float64) Point {
	return Point{
		X: origin.X + d*math.Cos(angle),
		Y: origin.Y + d*math.Sin(angle),
	}
}

// VisibilityPolygon returns the region swept by a fan: the origin followed by
// every hit point in fan order. Misses are clipped to maxDistance along their
// ray so the polygon stays bounded.
func VisibilityPolygon(origin Point, hits []Hit, maxDistance float64) []Point {
	if len(hits) == 0 {
		return nil
	}

	points := make([]Point, 0, len(hits)+1)
	points = append(points, origin)
	for _, hit := range hits {
		if hit.IsMiss() || hit.Distance > maxDistance {
			points = append(points, Along(origin, hit.Angle, maxDistance))
			continue
		}
		points = append(points, hit.Point)
	}
	return points
}

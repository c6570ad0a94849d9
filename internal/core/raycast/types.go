package raycast

// NoHitDistance is reported when a ray leaves the world without meeting a wall.
const NoHitDistance = 10000.0

// Point represents a 2D point in world space
type Point struct {
	X, Y float64
}

// Pose is the viewer's position and heading. Dir is in radians, 0 along +x,
// counter-clockwise positive.
type Pose struct {
	Pos Point
	Dir float64
}

// Hit is the result of casting one ray.
type Hit struct {
	Index      int     // Position in the fan (0 = dir - fov/2)
	Angle      float64 // Absolute ray angle in radians
	Distance   float64 // Euclidean distance from the origin, NoHitDistance if nothing was hit
	Horizontal bool    // Hit came from a horizontal grid line
	Code       uint8   // Cell code of the wall, 0 when nothing was hit
	Point      Point   // Intersection point (last probe position on a miss)
}

// IsMiss reports whether the ray left the world without hitting anything.
func (h Hit) IsMiss() bool {
	return h.Code == 0 || h.Distance >= NoHitDistance
}

package pointset_test

import (
	"github.com/plus3/pointset/pointset"
)

// Payload types used across the test suite.

type RGB struct {
	R, G, B uint8
}

type Label string

// newXYZ creates a point set with Vec3 points and normals, the common case.
func newXYZ() *pointset.PointSet[pointset.Vec3, pointset.Vec3] {
	return pointset.New[pointset.Vec3, pointset.Vec3]()
}

func collectActive(s *pointset.PointSet[pointset.Vec3, pointset.Vec3]) []pointset.Index {
	var out []pointset.Index
	for i := range s.ActiveIndices() {
		out = append(out, i)
	}
	return out
}

package pointset_test

import (
	"fmt"

	"github.com/plus3/pointset/pointset"
)

// ExampleInserter shows the deferred insertion pattern used by file-format
// readers: properties of one record arrive in arbitrary order, the first
// write allocates the record's index, and pushing the point ends the record.
func ExampleInserter() {
	ps := pointset.New[pointset.Vec3, pointset.Vec3]()

	ins := ps.Inserter()
	normals := ins.NormalView()
	points := ins.PointView()

	// A PLY-style record: normal first, point last.
	normals.Push(pointset.Vec3{Z: 1})
	points.Push(pointset.Vec3{X: 1, Y: 2, Z: 3})

	// An XYZ-style record: point only.
	points.Push(pointset.Vec3{X: 4, Y: 5, Z: 6})

	fmt.Printf("records: %d\n", ps.ActiveCount())
	for i := range ps.ActiveIndices() {
		p, _ := ps.Point(i)
		n, _ := ps.Normal(i)
		fmt.Printf("point (%.0f %.0f %.0f) normal (%.0f %.0f %.0f)\n", p.X, p.Y, p.Z, n.X, n.Y, n.Z)
	}

	// Output:
	// records: 2
	// point (1 2 3) normal (0 0 1)
	// point (4 5 6) normal (0 0 0)
}

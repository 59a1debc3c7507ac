package pointset_test

import (
	"fmt"

	"github.com/plus3/pointset/pointset"
)

// ExamplePointSet demonstrates the basic lifecycle: inserting points,
// attaching a custom property, removing, and compacting. Removal only marks
// slots; Compact reclaims them and renumbers the survivors.
func ExamplePointSet() {
	ps := pointset.New[pointset.Vec3, pointset.Vec3]()

	for i := 0; i < 5; i++ {
		ps.InsertPoint(pointset.Vec3{X: float64(i)})
	}

	labels, _ := pointset.AddProperty(ps, "label", pointset.Index(0))
	for i := range ps.ActiveIndices() {
		labels.Set(i, i)
	}

	ps.Remove(1)
	ps.Remove(3)
	fmt.Printf("size=%d active=%d removed=%d\n", ps.Size(), ps.ActiveCount(), ps.NumRemoved())

	ps.Compact()
	fmt.Printf("size=%d active=%d removed=%d\n", ps.Size(), ps.ActiveCount(), ps.NumRemoved())

	for i := range ps.ActiveIndices() {
		p, _ := ps.Point(i)
		label, _ := labels.Get(i)
		fmt.Printf("index %d: x=%.0f was slot %d\n", i, p.X, label)
	}

	// Output:
	// size=5 active=3 removed=2
	// size=3 active=3 removed=0
	// index 0: x=0 was slot 0
	// index 1: x=2 was slot 2
	// index 2: x=4 was slot 4
}

// ExamplePointSet_properties shows runtime-extensible typed columns and the
// introspection surface a generic writer would use.
func ExamplePointSet_properties() {
	ps := pointset.New[pointset.Vec3, pointset.Vec3]()
	idx := ps.InsertPoint(pointset.Vec3{X: 1, Y: 2, Z: 3})

	intensity, _ := pointset.AddProperty(ps, "intensity", 0.0)
	intensity.Set(idx, 0.75)

	ps.SetNormal(idx, pointset.Vec3{Z: 1})

	for _, info := range ps.Properties() {
		fmt.Printf("%s: %s\n", info.Name, info.Type)
	}

	// Output:
	// intensity: float64
	// normal: pointset.Vec3
	// point: pointset.Vec3
}

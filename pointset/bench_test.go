package pointset_test

import (
	"testing"

	"github.com/plus3/pointset/pointset"
)

func BenchmarkInsertPoint(b *testing.B) {
	ps := newXYZ()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps.InsertPoint(pointset.Vec3{X: float64(i)})
	}
}

func BenchmarkInsertRecycled(b *testing.B) {
	ps := newXYZ()
	idx := ps.Insert()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps.Remove(idx)
		idx = ps.Insert()
	}
}

func BenchmarkHandleSet(b *testing.B) {
	ps := newXYZ()
	idx := ps.Insert()
	points := ps.PointMap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		points.Set(idx, pointset.Vec3{X: float64(i)})
	}
}

func BenchmarkHandleGet(b *testing.B) {
	ps := newXYZ()
	idx := ps.InsertPoint(pointset.Vec3{X: 1})
	points := ps.PointMap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = points.Get(idx)
	}
}

func BenchmarkActiveIteration(b *testing.B) {
	ps := newXYZ()
	for i := 0; i < 10000; i++ {
		ps.Insert()
	}
	for i := 0; i < 10000; i += 3 {
		ps.Remove(pointset.Index(i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range ps.ActiveIndices() {
		}
	}
}

func BenchmarkCompact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ps := newXYZ()
		for j := 0; j < 10000; j++ {
			ps.InsertPoint(pointset.Vec3{X: float64(j)})
		}
		for j := 0; j < 10000; j += 2 {
			ps.Remove(pointset.Index(j))
		}
		b.StartTimer()

		ps.Compact()
	}
}

func BenchmarkPushInsert(b *testing.B) {
	ps := newXYZ()
	ins := ps.Inserter()
	normals := ins.NormalView()
	points := ins.PointView()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		normals.Push(pointset.Vec3{Z: 1})
		points.Push(pointset.Vec3{X: float64(i)})
	}
}

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pointset/pointset"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	initialPoints := flag.Int("points", 100000, "The initial number of points to insert.")
	removeRatio := flag.Float64("remove-ratio", 0.3, "Fraction of operations that remove a point.")
	compactEvery := flag.Int("compact-every", 50000, "Run compaction after this many operations.")
	seed := flag.Int64("seed", 1, "Seed for the operation generator.")
	flag.Parse()

	log.Println("Starting point set stress test...")

	rng := rand.New(rand.NewSource(*seed))

	ps := pointset.New[pointset.Vec3, pointset.Vec3]()
	ps.Reserve(*initialPoints)

	intensity, err := pointset.AddProperty(ps, "intensity", 0.0)
	if err != nil {
		log.Fatalf("Failed to add intensity property: %v", err)
	}
	normals := ps.AddNormalMap()

	log.Printf("Populating set with %d points...\n", *initialPoints)
	for i := 0; i < *initialPoints; i++ {
		idx := ps.InsertPoint(randomVec3(rng))
		if err := intensity.Set(idx, rng.Float64()); err != nil {
			log.Fatalf("Failed to set intensity: %v", err)
		}
		if err := normals.Set(idx, randomVec3(rng)); err != nil {
			log.Fatalf("Failed to set normal: %v", err)
		}
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:      *duration,
		InitialPoints: *initialPoints,
		RemoveRatio:   *removeRatio,
		CompactEvery:  *compactEvery,
		CompactTime:   Stats{Samples: make([]time.Duration, 0)},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running churn for %s...\n", *duration)
	startTime := time.Now()
	deadline := startTime.Add(*duration)

	var opsSinceCompact int
	for time.Now().Before(deadline) {
		for batch := 0; batch < 1024; batch++ {
			if rng.Float64() < *removeRatio && ps.ActiveCount() > 0 {
				removeRandomActive(ps, rng)
				report.Removes++
			} else {
				idx := ps.InsertPoint(randomVec3(rng))
				intensity.Set(idx, rng.Float64())
				report.Inserts++
			}
			opsSinceCompact++

			if opsSinceCompact >= *compactEvery {
				compactStart := time.Now()
				ps.Compact()
				report.CompactTime.Samples = append(report.CompactTime.Samples, time.Since(compactStart))
				report.Compactions++
				opsSinceCompact = 0
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.FinalSize = ps.Size()
	report.FinalActive = ps.ActiveCount()
	report.CompactTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Churn finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func randomVec3(rng *rand.Rand) pointset.Vec3 {
	return pointset.Vec3{
		X: rng.Float64() * 100,
		Y: rng.Float64() * 100,
		Z: rng.Float64() * 100,
	}
}

// removeRandomActive picks a random slot and removes it if active, probing
// forward to the next active slot otherwise.
func removeRandomActive(ps *pointset.PointSet[pointset.Vec3, pointset.Vec3], rng *rand.Rand) {
	size := ps.Size()
	start := pointset.Index(rng.Intn(size))
	for off := 0; off < size; off++ {
		i := pointset.Index((int(start) + off) % size)
		removed, err := ps.IsRemoved(i)
		if err != nil {
			log.Fatalf("IsRemoved(%d): %v", i, err)
		}
		if !removed {
			if err := ps.Remove(i); err != nil {
				log.Fatalf("Remove(%d): %v", i, err)
			}
			return
		}
	}
}

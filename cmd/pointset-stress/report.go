package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	InitialPoints int
	RemoveRatio   float64
	CompactEvery  int

	// Results
	TotalTime     time.Duration
	Inserts       int64
	Removes       int64
	Compactions   int64
	FinalSize     int
	FinalActive   int
	CompactTime   Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Point Set Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Initial Points:** {{.InitialPoints}}
- **Remove Ratio:** {{.RemoveRatio}}
- **Compact Every:** {{.CompactEvery}} ops

## Churn Results
- **Total Test Time:** {{.TotalTime}}
- **Inserts:** {{.Inserts}}
- **Removes:** {{.Removes}}
- **Compactions:** {{.Compactions}}
- **Final Size:** {{.FinalSize}} ({{.FinalActive}} active)
- **Compaction Time:**
  - **Avg:** {{.CompactTime.Avg}}
  - **Min:** {{.CompactTime.Min}}
  - **Max:** {{.CompactTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}

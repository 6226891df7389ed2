package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// FrameStats is one frame's worth of timing and scene-size data, the fields COLLECT_STATS
// flushes to OUTPUT_FILE at shutdown.
type FrameStats struct {
	FrameTime   time.Duration
	FPS         float64
	NodeCount   int
	SphereCount int
}

// Profiler accumulates per-frame stats when enabled and reports initialization timing
// regardless. There are no per-phase timers: the CPU's whole job ends at upload, so frame
// time and the one-off init time are the only costs worth recording.
type Profiler struct {
	enabled bool
	history []FrameStats

	initStart  time.Time
	frameStart time.Time
	current    FrameStats
}

// NewProfiler creates a profiler; enabled gates per-frame collection (COLLECT_STATS).
func NewProfiler(enabled bool) *Profiler {
	return &Profiler{enabled: enabled}
}

// BeginInit marks the start of scene build + GPU upload.
func (p *Profiler) BeginInit() {
	p.initStart = time.Now()
}

// EndInit reports the wall-clock cost of scene build + GPU upload, matching main.cpp's
// steady_clock measurement around raytracer.initialize().
func (p *Profiler) EndInit() time.Duration {
	elapsed := time.Since(p.initStart)
	fmt.Printf("[Driver] initialization took %s\n", elapsed)
	return elapsed
}

// BeginFrame marks the start of a frame. No-op bookkeeping when disabled.
func (p *Profiler) BeginFrame() {
	if !p.enabled {
		return
	}
	p.frameStart = time.Now()
	p.current = FrameStats{}
}

// EndFrame closes out a frame, computing FPS and appending to history.
func (p *Profiler) EndFrame(nodeCount, sphereCount int) {
	if !p.enabled {
		return
	}
	p.current.FrameTime = time.Since(p.frameStart)
	if p.current.FrameTime > 0 {
		p.current.FPS = 1.0 / p.current.FrameTime.Seconds()
	}
	p.current.NodeCount = nodeCount
	p.current.SphereCount = sphereCount
	p.history = append(p.history, p.current)
}

// Flush writes accumulated frame stats to path as CSV. A no-op if nothing was collected.
func (p *Profiler) Flush(path string) error {
	if !p.enabled || len(p.history) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stats: failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"frame_time_ms", "fps", "node_count", "sphere_count"}); err != nil {
		return fmt.Errorf("stats: failed to write header: %w", err)
	}

	for _, s := range p.history {
		row := []string{
			strconv.FormatFloat(float64(s.FrameTime.Microseconds())/1000, 'f', 3, 64),
			strconv.FormatFloat(s.FPS, 'f', 2, 64),
			strconv.Itoa(s.NodeCount),
			strconv.Itoa(s.SphereCount),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("stats: failed to write row: %w", err)
		}
	}

	return w.Error()
}

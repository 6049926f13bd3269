// Package profiling accumulates wall-clock time per named section. The
// preview resets it every frame; the bake tool reads it once at exit.
package profiling

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
	counts = make(map[string]int)
)

// Track returns a stop function that adds the elapsed time to name.
//
//	defer profiling.Track("gradient.Bake")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		counts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears every bucket
func ResetFrame() {
	mu.Lock()
	clear(totals)
	clear(counts)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	return maps.Clone(totals)
}

// Calls returns how many times name was tracked since the last reset
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return counts[name]
}

// SumWithPrefix totals every bucket whose name starts with prefix
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for name, d := range totals {
		if strings.HasPrefix(name, prefix) {
			sum += d
		}
	}
	return sum
}

type entry struct {
	name string
	dur  time.Duration
}

// TopN formats the n slowest buckets, e.g. "render.Strip:4.2ms, bake:2ms"
func TopN(n int) string {
	ss := Snapshot()
	list := make([]entry, 0, len(ss))
	for k, v := range ss {
		list = append(list, entry{name: k, dur: v})
	}
	slices.SortFunc(list, func(a, b entry) int {
		if c := cmp.Compare(b.dur, a.dur); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	n = min(max(n, 0), len(list))
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.name+":"+formatMs(e.dur))
	}
	return strings.Join(parts, ", ")
}

// one decimal, trailing .0 dropped
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	s := strings.TrimSuffix(fmt.Sprintf("%.1f", ms), ".0")
	return s + "ms"
}

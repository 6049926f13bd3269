package config

import "sync"

// BakeSettings holds export configuration
type BakeSettings struct {
	mu         sync.RWMutex
	resolution int  // samples across the strip
	markers    bool // draw key markers and labels
}

var globalBakeSettings = &BakeSettings{
	resolution: 256,
	markers:    true,
}

// GetBakeResolution returns the number of samples baked across [0, 1]
func GetBakeResolution() int {
	globalBakeSettings.mu.RLock()
	defer globalBakeSettings.mu.RUnlock()
	return globalBakeSettings.resolution
}

// SetBakeResolution sets the sample count, clamped to 2..4096
func SetBakeResolution(n int) {
	globalBakeSettings.mu.Lock()
	defer globalBakeSettings.mu.Unlock()

	if n < 2 {
		n = 2
	}
	if n > 4096 {
		n = 4096
	}

	globalBakeSettings.resolution = n
}

func GetMarkers() bool {
	globalBakeSettings.mu.RLock()
	defer globalBakeSettings.mu.RUnlock()
	return globalBakeSettings.markers
}

func SetMarkers(enabled bool) {
	globalBakeSettings.mu.Lock()
	defer globalBakeSettings.mu.Unlock()
	globalBakeSettings.markers = enabled
}

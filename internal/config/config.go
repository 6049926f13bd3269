package config

import "sync"

// PreviewSettings holds live preview configuration
type PreviewSettings struct {
	mu          sync.RWMutex
	fpsLimit    int // 0 = unlimited
	stripHeight int // in pixels
	wrapping    bool
}

var globalPreviewSettings = &PreviewSettings{
	fpsLimit:    60,
	stripHeight: 96,
	wrapping:    false,
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.fpsLimit
}

// SetFPSLimit sets the frame cap
func SetFPSLimit(limit int) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}

	globalPreviewSettings.fpsLimit = limit
}

// GetStripHeight returns the gradient strip height in pixels
func GetStripHeight() int {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.stripHeight
}

func SetStripHeight(height int) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()

	if height < 8 {
		height = 8
	}
	if height > 1024 {
		height = 1024
	}

	globalPreviewSettings.stripHeight = height
}

// GetWrapping returns whether newly loaded gradients preview with wrapping on
func GetWrapping() bool {
	globalPreviewSettings.mu.RLock()
	defer globalPreviewSettings.mu.RUnlock()
	return globalPreviewSettings.wrapping
}

func SetWrapping(enabled bool) {
	globalPreviewSettings.mu.Lock()
	defer globalPreviewSettings.mu.Unlock()
	globalPreviewSettings.wrapping = enabled
}

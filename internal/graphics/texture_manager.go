package graphics

import (
	"image"
	"sync"
)

// TextureCache keeps one GL texture per key so cycling back to a
// previously shown ramp skips the bake and upload.
type TextureCache struct {
	mu       sync.RWMutex
	textures map[string]uint32
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]uint32)}
}

// Get returns the cached texture for key, baking it with bake on a miss
func (c *TextureCache) Get(key string, bake func() *image.RGBA) uint32 {
	c.mu.RLock()
	if tex, ok := c.textures[key]; ok {
		c.mu.RUnlock()
		return tex
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double check locking
	if tex, ok := c.textures[key]; ok {
		return tex
	}

	tex := UploadRGBA(bake())
	c.textures[key] = tex
	return tex
}

// Len returns the number of cached textures
func (c *TextureCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.textures)
}

// Clear deletes every cached texture
func (c *TextureCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, tex := range c.textures {
		DeleteTexture(tex)
		delete(c.textures, key)
	}
}

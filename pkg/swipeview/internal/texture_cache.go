package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 8

// TextureCache keeps recently used textures (page images and indicator
// frames) and destroys the least recently used one when full.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// GetOrCreate returns the cached texture for key, creating it on a miss.
// A failed create is not cached.
func (c *TextureCache) GetOrCreate(key string, create func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	if texture, ok := c.textures[key]; ok {
		c.touch(key)
		return texture, nil
	}

	texture, err := create()
	if err != nil {
		return nil, err
	}
	if len(c.order) >= c.maxSize {
		c.remove(c.order[0])
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
	return texture, nil
}

// Remove destroys the texture for key, if cached.
func (c *TextureCache) Remove(key string) {
	if _, ok := c.textures[key]; ok {
		c.remove(key)
	}
}

func (c *TextureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) remove(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	if texture := c.textures[key]; texture != nil {
		texture.Destroy()
	}
	delete(c.textures, key)
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		if texture != nil {
			texture.Destroy()
		}
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}

package sdlhost

import "github.com/veandco/go-sdl2/sdl"

const defaultTextureCacheSize = 256

type cachedTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// textureCache keeps rendered text and icon textures, evicting the least
// recently used entry when full.
type textureCache struct {
	textures map[string]cachedTexture
	order    []string
	maxSize  int
}

func newTextureCache(maxSize int) *textureCache {
	return &textureCache{
		textures: make(map[string]cachedTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textureCache) get(key string) (cachedTexture, bool) {
	entry, ok := c.textures[key]
	if ok {
		c.touch(key)
	}
	return entry, ok
}

func (c *textureCache) set(key string, entry cachedTexture) {
	if old, ok := c.textures[key]; ok {
		if old.texture != entry.texture {
			old.texture.Destroy()
		}
		c.textures[key] = entry
		c.touch(key)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[key] = entry
	c.order = append(c.order, key)
}

func (c *textureCache) touch(key string) {
	for i, k := range c.order {
		if k == key {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = key
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if entry, ok := c.textures[oldest]; ok {
		entry.texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, entry := range c.textures {
		entry.texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}

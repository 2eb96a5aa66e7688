package sdlhost

import (
	"fmt"
	"image"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/listkit/pkg/listkit"
	"github.com/BrandonKowalski/listkit/pkg/listkit/constants"
	"github.com/BrandonKowalski/listkit/pkg/listkit/internal"
)

// Canvas draws list rows onto an SDL renderer. Widget coordinates are
// translated by the canvas origin and clipped to the widget bounds.
type Canvas struct {
	renderer *sdl.Renderer
	fonts    *fontCache
	textures *textureCache
	origin   sdl.Point
	clip     sdl.Rect
}

var _ listkit.IconCanvas = (*Canvas)(nil)

func newCanvas(renderer *sdl.Renderer, fonts *fontCache) *Canvas {
	return &Canvas{
		renderer: renderer,
		fonts:    fonts,
		textures: newTextureCache(defaultTextureCacheSize),
	}
}

// begin positions the canvas at bounds and clips drawing to clip.
func (c *Canvas) begin(bounds sdl.Rect, clip listkit.Rect) {
	c.origin = sdl.Point{X: bounds.X, Y: bounds.Y}
	if clip.Empty() {
		c.clip = bounds
	} else {
		c.clip = c.toSDL(clip)
	}
	c.renderer.SetClipRect(&c.clip)
	c.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
}

func (c *Canvas) end() {
	c.renderer.SetClipRect(nil)
}

func (c *Canvas) toSDL(r listkit.Rect) sdl.Rect {
	return sdl.Rect{X: c.origin.X + int32(r.X), Y: c.origin.Y + int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

func (c *Canvas) FillRect(r listkit.Rect, col color.RGBA) {
	if r.Empty() || col.A == 0 {
		return
	}
	rect := c.toSDL(r)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRect(&rect)
}

func (c *Canvas) MeasureText(text string, spec listkit.FontSpec) (int, int) {
	font, err := c.fonts.get(spec)
	if err != nil {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return w, h
}

func (c *Canvas) DrawText(r listkit.Rect, text string, spec listkit.FontSpec, col color.RGBA, align constants.TextAlign) {
	if text == "" || r.Empty() {
		return
	}

	key := fmt.Sprintf("t|%s|%v|%s", text, c.fonts.keyFor(spec), internal.ColorToHex(col))
	entry, ok := c.textures.get(key)
	if !ok {
		var err error
		entry, err = c.renderText(text, spec, col)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
			return
		}
		c.textures.set(key, entry)
	}

	dst := c.toSDL(r)
	x := dst.X
	switch align {
	case constants.TextAlignCenter:
		x += (dst.W - entry.w) / 2
	case constants.TextAlignRight:
		x += dst.W - entry.w
	}
	y := dst.Y + (dst.H-entry.h)/2

	target := sdl.Rect{X: x, Y: y, W: entry.w, H: entry.h}
	visible, ok := target.Intersect(&dst)
	if !ok {
		return
	}
	src := sdl.Rect{X: visible.X - target.X, Y: visible.Y - target.Y, W: visible.W, H: visible.H}
	c.renderer.Copy(entry.texture, &src, &visible)
}

func (c *Canvas) renderText(text string, spec listkit.FontSpec, col color.RGBA) (cachedTexture, error) {
	font, err := c.fonts.get(spec)
	if err != nil {
		return cachedTexture{}, err
	}
	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A})
	if err != nil {
		return cachedTexture{}, listkit.NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return cachedTexture{}, listkit.NewInfrastructureError("create_texture", err)
	}
	return cachedTexture{texture: texture, w: surface.W, h: surface.H}, nil
}

func (c *Canvas) DrawIcon(r listkit.Rect, icon constants.Icon, col color.RGBA) {
	if r.Empty() {
		return
	}

	size := min(r.W, r.H)
	key := fmt.Sprintf("i|%s|%d|%s", icon, size, internal.ColorToHex(col))
	entry, ok := c.textures.get(key)
	if !ok {
		img, err := internal.RasterizeIcon(icon, size, col)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to rasterize icon", "icon", icon, "error", err)
			return
		}
		entry, err = c.imageTexture(img)
		if err != nil {
			internal.GetInternalLogger().Error("Failed to upload icon", "icon", icon, "error", err)
			return
		}
		c.textures.set(key, entry)
	}

	dst := c.toSDL(r)
	dst.X += (dst.W - entry.w) / 2
	dst.Y += (dst.H - entry.h) / 2
	dst.W, dst.H = entry.w, entry.h
	c.renderer.Copy(entry.texture, nil, &dst)
}

// imageTexture uploads a premultiplied RGBA image as a straight-alpha
// texture.
func (c *Canvas) imageTexture(img *image.RGBA) (cachedTexture, error) {
	w, h := int32(img.Bounds().Dx()), int32(img.Bounds().Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return cachedTexture{}, listkit.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return cachedTexture{}, listkit.NewInfrastructureError("lock_surface", err)
	}
	pixels := surface.Pixels()
	pitch := int(surface.Pitch)
	for y := 0; y < int(h); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+int(w)*4]
		out := pixels[y*pitch : y*pitch+int(w)*4]
		for x := 0; x < len(row); x += 4 {
			a := row[x+3]
			out[x+3] = a
			if a == 0 {
				out[x], out[x+1], out[x+2] = 0, 0, 0
				continue
			}
			out[x] = uint8(uint32(row[x]) * 255 / uint32(a))
			out[x+1] = uint8(uint32(row[x+1]) * 255 / uint32(a))
			out[x+2] = uint8(uint32(row[x+2]) * 255 / uint32(a))
		}
	}
	surface.Unlock()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return cachedTexture{}, listkit.NewInfrastructureError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return cachedTexture{texture: texture, w: w, h: h}, nil
}

func (c *Canvas) destroy() {
	c.textures.destroy()
}

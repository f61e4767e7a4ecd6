package internal

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"unsafe"

	"github.com/BrandonKowalski/swipeview/pkg/swipeview/indicator"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// indicatorStep quantises indicator frames so an animation reuses textures.
const indicatorStep = 0.02

// PageView is what the renderer needs to draw one page.
type PageView struct {
	Key       string
	Color     *sdl.Color // nil uses the theme's page colour
	ImagePath string
}

// RenderPages draws the page strip shifted by translate pixels. Pages outside
// the window are skipped.
func (window *Window) RenderPages(pages []PageView, translate float64, cache *TextureCache, padding Padding) {
	w, h := window.Size()
	theme := GetTheme()

	for i, page := range pages {
		x := float64(i)*float64(w) + translate
		if x+float64(w) <= 0 || x >= float64(w) {
			continue
		}
		rect := sdl.Rect{X: int32(math.Round(x)), Y: 0, W: w, H: h}

		fill := theme.PageColor(i)
		if page.Color != nil {
			fill = *page.Color
		}
		window.Renderer.SetDrawColor(fill.R, fill.G, fill.B, fill.A)
		window.Renderer.FillRect(&rect)

		if page.ImagePath == "" {
			continue
		}
		texture, err := cache.GetOrCreate("page:"+page.Key, func() (*sdl.Texture, error) {
			return img.LoadTexture(window.Renderer, page.ImagePath)
		})
		if err != nil {
			continue
		}
		window.Renderer.Copy(texture, nil, fitRect(texture, padding.Inset(rect)))
	}
}

// RenderIndicator draws the page dots at the bottom of the window.
func (window *Window) RenderIndicator(count int, position float64, cache *TextureCache, padding Padding) error {
	if count <= 1 {
		return nil
	}
	theme := GetTheme()
	style := indicator.Style{
		ActiveColor:   ToRGBA(theme.IndicatorActive),
		InactiveColor: ToRGBA(theme.IndicatorInactive),
	}
	position = math.Round(position/indicatorStep) * indicatorStep

	// Only the current indicator frame is kept so page images stay cached.
	key := fmt.Sprintf("indicator:%d:%.2f", count, position)
	if window.indicatorKey != "" && window.indicatorKey != key {
		cache.Remove(window.indicatorKey)
	}
	window.indicatorKey = key
	texture, err := cache.GetOrCreate(key, func() (*sdl.Texture, error) {
		rgba, err := indicator.Render(count, position, style)
		if err != nil {
			return nil, err
		}
		return TextureFromImage(window.Renderer, rgba)
	})
	if err != nil {
		return err
	}

	iw, ih := style.Size(count)
	w, h := window.Size()
	dst := padding.BottomCenter(sdl.Rect{W: w, H: h}, int32(iw), int32(ih))
	return window.Renderer.Copy(texture, nil, &dst)
}

// TextureFromImage uploads an RGBA image as a blended texture.
func TextureFromImage(renderer *sdl.Renderer, src *image.RGBA) (*sdl.Texture, error) {
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	// SDL blends straight alpha.
	nrgba := image.NewNRGBA(b)
	draw.Draw(nrgba, b, src, b.Min, draw.Src)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&nrgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(nrgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

func fitRect(texture *sdl.Texture, area sdl.Rect) *sdl.Rect {
	_, _, tw, th, err := texture.Query()
	if err != nil || tw == 0 || th == 0 || area.W == 0 || area.H == 0 {
		return &area
	}
	scale := math.Min(float64(area.W)/float64(tw), float64(area.H)/float64(th))
	w, h := int32(float64(tw)*scale), int32(float64(th)*scale)
	return &sdl.Rect{
		X: area.X + (area.W-w)/2,
		Y: area.Y + (area.H-h)/2,
		W: w,
		H: h,
	}
}

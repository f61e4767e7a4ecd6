// Package indicator rasterises page-indicator dots for a normalised pager
// position. The dots are described as SVG and drawn with oksvg/rasterx, so the
// output is an image.RGBA that any renderer can upload.
package indicator

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Style sizes and colours the dots. Zero values use DefaultStyle.
type Style struct {
	Radius        float64 // dot radius in px
	Spacing       float64 // distance between dot centres in px
	ActiveScale   float64 // active dot radius relative to Radius
	ActiveColor   color.RGBA
	InactiveColor color.RGBA
}

// DefaultStyle returns white active and grey inactive dots.
func DefaultStyle() Style {
	return Style{
		Radius:        4,
		Spacing:       16,
		ActiveScale:   1.25,
		ActiveColor:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		InactiveColor: color.RGBA{R: 120, G: 120, B: 120, A: 255},
	}
}

func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.Radius <= 0 {
		s.Radius = d.Radius
	}
	if s.Spacing <= 0 {
		s.Spacing = d.Spacing
	}
	if s.ActiveScale <= 0 {
		s.ActiveScale = d.ActiveScale
	}
	if s.ActiveColor == (color.RGBA{}) {
		s.ActiveColor = d.ActiveColor
	}
	if s.InactiveColor == (color.RGBA{}) {
		s.InactiveColor = d.InactiveColor
	}
	return s
}

// Size returns the pixel size of an indicator for count pages.
func (s Style) Size(count int) (width, height int) {
	s = s.withDefaults()
	if count <= 0 {
		return 0, 0
	}
	width = int(math.Ceil(s.Spacing * float64(count)))
	height = int(math.Ceil(2 * s.Radius * s.ActiveScale))
	return width, height
}

// SVG describes the indicator for count pages with the active dot at the
// normalised position. Fractional positions place the active dot between pages.
func SVG(count int, position float64, style Style) string {
	style = style.withDefaults()
	width, height := style.Size(count)
	cy := float64(height) / 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`,
			dotCenter(i, style), cy, style.Radius, hex(style.InactiveColor))
	}
	if count > 0 {
		position = clampPosition(position, count)
		cx := style.Spacing * (position + 0.5)
		fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`,
			cx, cy, style.Radius*style.ActiveScale, hex(style.ActiveColor))
	}
	b.WriteString(`</svg>`)
	return b.String()
}

// Render rasterises the indicator. It returns nil when there are no pages.
func Render(count int, position float64, style Style) (*image.RGBA, error) {
	width, height := style.Size(count)
	if width == 0 || height == 0 {
		return nil, nil
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(count, position, style)))
	if err != nil {
		return nil, fmt.Errorf("parsing indicator svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return img, nil
}

// ActiveCenter returns the x coordinate of the active dot's centre.
func ActiveCenter(count int, position float64, style Style) float64 {
	style = style.withDefaults()
	if count <= 0 {
		return 0
	}
	return style.Spacing * (clampPosition(position, count) + 0.5)
}

func dotCenter(i int, style Style) float64 {
	return style.Spacing * (float64(i) + 0.5)
}

func clampPosition(position float64, count int) float64 {
	if math.IsNaN(position) {
		return 0
	}
	return math.Max(0, math.Min(position, float64(count-1)))
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

package media

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPlaceholderSize is the placeholder edge length in pixels.
const DefaultPlaceholderSize = 200

// goldenAngle spreads consecutive indexes around the hue wheel.
const goldenAngle = 137.50776405003785

// PlaceholderHue returns the base hue in degrees for the 1-based index.
func PlaceholderHue(index int) float64 {
	return math.Mod(float64(index)*goldenAngle, 360)
}

// Placeholder renders a deterministic size x size tile for the 1-based index:
// a diagonal gradient between two shades of the index's hue with a darker
// band marking the index, so neighbouring cells stay distinguishable.
func Placeholder(index, size int) *image.RGBA {
	if size <= 0 {
		size = DefaultPlaceholderSize
	}
	hue := PlaceholderHue(index)
	light := colorful.Hsv(hue, 0.45, 0.95)
	dark := colorful.Hsv(math.Mod(hue+24, 360), 0.75, 0.55)
	band := colorful.Hsv(hue, 0.8, 0.3)

	bandStart := size * 3 / 4
	bandEnd := bandStart + size/16 + 1

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	span := float64(2*size - 2)
	if span <= 0 {
		span = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := light.BlendLab(dark, float64(x+y)/span)
			if y >= bandStart && y < bandEnd && x < (size*index/13)%size+size/8 {
				c = band
			}
			r, g, b := c.Clamped().RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

package gradient

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"math"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/util"
	"github.com/disintegration/imaging"
)

// Rasterize paints d into a w x h image over a white background. Unlike the
// CSS form, diamonds are drawn exactly: the ramp follows the L1 distance from
// the centre.
func Rasterize(d Descriptor, w, h int) *image.NRGBA {
	img := imaging.New(w, h, stdcolor.NRGBA{255, 255, 255, 255})
	if len(d.Stops) < 2 || w <= 0 || h <= 0 {
		return img
	}

	sorted := SortStops(d.Stops)
	for y := range h {
		for x := range w {
			// Pixel centre in [-1,1] box coordinates.
			px := (float64(x)+0.5)/float64(w)*2 - 1
			py := (float64(y)+0.5)/float64(h)*2 - 1
			pos := rampPosition(d, px, py)
			img.SetNRGBA(x, y, shade(sorted, pos))
		}
	}
	return img
}

// rampPosition returns where on the 0-100 ramp the point (px, py) falls.
func rampPosition(d Descriptor, px, py float64) float64 {
	radius := util.Tern(d.Radius > 0, d.Radius, DefaultRadius) / 100

	switch d.Type {
	case Radial:
		// The CSS circle's 100% reaches the farthest corner.
		return math.Hypot(px, py) / math.Sqrt2 / radius * 100
	case Angular:
		deg := math.Atan2(px, -py)*180/math.Pi - d.Angle
		deg = math.Mod(deg, 360)
		if deg < 0 {
			deg += 360
		}
		return deg / 360 * 100
	case Diamond:
		return (math.Abs(px) + math.Abs(py)) / 2 / radius * 100
	default:
		rad := d.Angle * math.Pi / 180
		dx, dy := math.Sin(rad), -math.Cos(rad)
		// Half-length of the gradient line, as CSS defines it for a box.
		half := math.Abs(dx) + math.Abs(dy)
		return ((px*dx+py*dy)/half + 1) / 2 * 100
	}
}

func shade(sorted []Stop, pos float64) stdcolor.NRGBA {
	c := color.HexToRGB(ColorAtOffset(pos, sorted))
	alpha := opacityAtOffset(pos, sorted) / 100

	over := func(v int) uint8 {
		return uint8(math.Round(float64(v)*alpha + 255*(1-alpha)))
	}
	return stdcolor.NRGBA{R: over(c.R), G: over(c.G), B: over(c.B), A: 255}
}

// opacityAtOffset interpolates stop opacity the same way ColorAtOffset
// interpolates colour.
func opacityAtOffset(offset float64, sorted []Stop) float64 {
	first, last := sorted[0], sorted[len(sorted)-1]
	if offset <= first.Offset {
		return first.Opacity
	}
	if offset >= last.Offset {
		return last.Opacity
	}
	for i := 0; i < len(sorted)-1; i++ {
		s1, s2 := sorted[i], sorted[i+1]
		if offset < s1.Offset || offset > s2.Offset {
			continue
		}
		if s2.Offset == s1.Offset {
			return s1.Opacity
		}
		t := (offset - s1.Offset) / (s2.Offset - s1.Offset)
		return s1.Opacity + (s2.Opacity-s1.Opacity)*t
	}
	return last.Opacity
}

// SavePNG renders d at w x h and writes it to path. The image format is
// chosen from the file extension.
func SavePNG(d Descriptor, path string, w, h int) error {
	if err := imaging.Save(Rasterize(d, w, h), path); err != nil {
		return fmt.Errorf("failed to save gradient preview: %w", err)
	}
	return nil
}

// Thumbnail renders d at full size and scales it down to fit within
// maxW x maxH, for gallery previews.
func Thumbnail(d Descriptor, w, h, maxW, maxH int) *image.NRGBA {
	return imaging.Fit(Rasterize(d, w, h), maxW, maxH, imaging.Lanczos)
}

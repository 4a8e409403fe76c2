// Package appearance turns the book appearance settings chosen in the style
// panel into the values the page renderer needs. Derive is a pure function of
// its Settings; unknown names fall back to defaults instead of failing.
package appearance

import (
	"fmt"
	"math"
	"time"

	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/util"
)

const ShadowNone = "none"

type DropShadow struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"` // percent
	XAxis   float64 `json:"xAxis"`
	YAxis   float64 `json:"yAxis"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	Active  bool    `json:"active"`
}

// Settings is the appearance record saved by the style panel. Zero values are
// taken literally (an Opacity of 0 hides the overlay), so callers start from
// DefaultSettings and override what they have.
type Settings struct {
	Texture        string     `json:"texture"`
	HardCover      bool       `json:"hardCover"`
	GrainIntensity float64    `json:"grainIntensity"`
	Warmth         float64    `json:"warmth"`
	TextureScale   float64    `json:"textureScale"`
	Opacity        float64    `json:"opacity"` // percent; 100 in DefaultSettings
	FlipStyle      string     `json:"flipStyle"`
	FlipSpeed      string     `json:"flipSpeed"`
	Corner         string     `json:"corner"`
	DropShadow     DropShadow `json:"dropShadow"`
	Instructions   bool       `json:"instructions"`
}

func DefaultSettings() Settings {
	return Settings{
		Texture:   PlainWhite,
		Opacity:   100,
		FlipStyle: "Classic",
		FlipSpeed: "Medium",
		Corner:    "Sharp",
		DropShadow: DropShadow{
			Color:   "#000000",
			Opacity: 30,
			XAxis:   0,
			YAxis:   4,
			Blur:    12,
			Spread:  0,
		},
	}
}

// Overlay describes the layer drawn over each page: the paper texture and an
// optional warmth tint.
type Overlay struct {
	Pattern        string // CSS background-image, or "none"
	Opacity        float64
	BackgroundSize string
	Tint           string // CSS colour, or "" for no tint
}

type Derived struct {
	Shadow       string
	CornerRadius float64
	FlipDuration time.Duration
	Overlay      Overlay
}

// Derive computes rendering parameters from s.
func Derive(s Settings) Derived {
	return Derived{
		Shadow:       ShadowStyle(s.DropShadow),
		CornerRadius: CornerRadius(s.Corner),
		FlipDuration: FlipDuration(s.FlipSpeed, s.FlipStyle),
		Overlay:      TextureOverlay(s),
	}
}

// ShadowStyle renders a box-shadow value, or ShadowNone when the shadow is
// switched off.
func ShadowStyle(ds DropShadow) string {
	if !ds.Active {
		return ShadowNone
	}
	return fmt.Sprintf("%spx %spx %spx %spx %s",
		color.FormatNumber(ds.XAxis),
		color.FormatNumber(ds.YAxis),
		color.FormatNumber(ds.Blur),
		color.FormatNumber(ds.Spread),
		color.RGBA(ds.Color, ds.Opacity/100),
	)
}

var cornerRadii = table[float64]{
	entries: map[string]float64{
		"Sharp": 0,
		"Soft":  8,
		"Round": 20,
	},
	fallback: 0,
}

func CornerRadius(corner string) float64 {
	return cornerRadii.get(corner)
}

var flipSpeeds = table[float64]{
	entries: map[string]float64{
		"Slow":   1500,
		"Medium": 1000,
		"Fast":   600,
	},
	fallback: 1000,
}

var flipStyleModifiers = table[float64]{
	entries: map[string]float64{
		"Fast Flip":   0.7,
		"Smooth Flip": 1.2,
		"3D Flip":     1.3,
	},
	fallback: 1,
}

const MinFlipDuration = 300 * time.Millisecond

// FlipDuration is the page-turn animation length for a speed and style.
func FlipDuration(speed, style string) time.Duration {
	return flipDuration(flipSpeeds.get(speed) * flipStyleModifiers.get(style))
}

func flipDuration(ms float64) time.Duration {
	d := time.Duration(math.Round(ms)) * time.Millisecond
	return util.Max(d, MinFlipDuration)
}

const (
	warmTint = "rgba(244, 230, 180, %s)"
	coolTint = "rgba(200, 230, 255, %s)"
)

// TextureOverlay derives the paper texture layer and warmth tint.
func TextureOverlay(s Settings) Overlay {
	pattern := TexturePattern(s.Texture)
	hasPattern := pattern != PatternNone

	base := s.Opacity / 100
	grain := 1.0
	if hasPattern {
		grain = math.Min(1, math.Abs(s.GrainIntensity)/100*0.8)
	}

	o := Overlay{
		Pattern:        pattern,
		Opacity:        base * grain,
		BackgroundSize: color.FormatNumber(100+s.TextureScale) + "%",
	}

	if s.Warmth != 0 {
		alpha := color.FormatNumber(math.Abs(s.Warmth) / 250)
		o.Tint = fmt.Sprintf(util.Tern(s.Warmth > 0, warmTint, coolTint), alpha)
		if !hasPattern {
			o.Opacity = base
		}
	}
	return o
}

package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bvisness/flowstyle/app/appearance"
	"github.com/joho/godotenv"
	"github.com/tidwall/gjson"
)

// Config holds command line defaults. Values come from the environment, and
// from a .env file in the working directory if there is one.
type Config struct {
	SettingsPath string
	PageWidth    float64
	NoColor      bool
}

func DefaultConfig() Config {
	return Config{
		SettingsPath: "settings.json",
		PageWidth:    appearance.DefaultPageWidth,
	}
}

func LoadConfig() Config {
	// A missing .env is normal.
	_ = godotenv.Load()

	c := DefaultConfig()
	if p := os.Getenv("FLOWSTYLE_SETTINGS"); p != "" {
		c.SettingsPath = p
	}
	if w, err := strconv.ParseFloat(os.Getenv("FLOWSTYLE_PAGE_WIDTH"), 64); err == nil && w > 0 {
		c.PageWidth = w
	}
	if v, err := strconv.ParseBool(os.Getenv("FLOWSTYLE_NO_COLOR")); err == nil {
		c.NoColor = v
	}
	return c
}

// ParseAppearance reads appearance settings as saved by the style panel.
// Fields that are missing or have the wrong JSON type keep their defaults.
func ParseAppearance(data []byte) appearance.Settings {
	s := appearance.DefaultSettings()
	root := gjson.ParseBytes(data)

	str := func(path string, dst *string) {
		if r := root.Get(path); r.Type == gjson.String {
			*dst = r.String()
		}
	}
	num := func(path string, dst *float64) {
		if r := root.Get(path); r.Type == gjson.Number {
			*dst = r.Float()
		}
	}
	flag := func(path string, dst *bool) {
		if r := root.Get(path); r.IsBool() {
			*dst = r.Bool()
		}
	}

	str("texture", &s.Texture)
	flag("hardCover", &s.HardCover)
	num("grainIntensity", &s.GrainIntensity)
	num("warmth", &s.Warmth)
	num("textureScale", &s.TextureScale)
	num("opacity", &s.Opacity)
	str("flipStyle", &s.FlipStyle)
	str("flipSpeed", &s.FlipSpeed)
	str("corner", &s.Corner)
	flag("instructions", &s.Instructions)

	str("dropShadow.color", &s.DropShadow.Color)
	num("dropShadow.opacity", &s.DropShadow.Opacity)
	num("dropShadow.xAxis", &s.DropShadow.XAxis)
	num("dropShadow.yAxis", &s.DropShadow.YAxis)
	num("dropShadow.blur", &s.DropShadow.Blur)
	num("dropShadow.spread", &s.DropShadow.Spread)
	flag("dropShadow.active", &s.DropShadow.Active)

	return s
}

// LoadAppearance reads settings from path. An unreadable file gives the
// default settings.
func LoadAppearance(path string) appearance.Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: could not read settings %s: %v\n", path, err)
		}
		return appearance.DefaultSettings()
	}
	return ParseAppearance(data)
}

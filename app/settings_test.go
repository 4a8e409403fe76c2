package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bvisness/flowstyle/app/appearance"
	"github.com/stretchr/testify/assert"
)

func TestParseAppearance(t *testing.T) {
	s := ParseAppearance([]byte(`{
		"texture": "Linen",
		"hardCover": true,
		"grainIntensity": 50,
		"warmth": -25,
		"flipSpeed": "Fast",
		"corner": "Round",
		"dropShadow": {"color": "#112233", "opacity": 60, "blur": 20, "active": true}
	}`))

	assert.Equal(t, "Linen", s.Texture)
	assert.True(t, s.HardCover)
	assert.Equal(t, 50.0, s.GrainIntensity)
	assert.Equal(t, -25.0, s.Warmth)
	assert.Equal(t, "Fast", s.FlipSpeed)
	assert.Equal(t, "Round", s.Corner)
	assert.Equal(t, "#112233", s.DropShadow.Color)
	assert.Equal(t, 60.0, s.DropShadow.Opacity)
	assert.Equal(t, 20.0, s.DropShadow.Blur)
	assert.True(t, s.DropShadow.Active)

	// Missing fields keep their defaults
	def := appearance.DefaultSettings()
	assert.Equal(t, def.Opacity, s.Opacity)
	assert.Equal(t, def.FlipStyle, s.FlipStyle)
	assert.Equal(t, def.DropShadow.YAxis, s.DropShadow.YAxis)
}

func TestParseAppearance_WrongTypes(t *testing.T) {
	s := ParseAppearance([]byte(`{"texture": 12, "opacity": "50", "hardCover": "yes", "dropShadow": "none"}`))
	assert.Equal(t, appearance.DefaultSettings(), s)

	s = ParseAppearance([]byte(`not json`))
	assert.Equal(t, appearance.DefaultSettings(), s)
}

func TestLoadAppearance(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, appearance.DefaultSettings(), LoadAppearance(filepath.Join(dir, "missing.json")))

	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(`{"corner": "Soft"}`), 0644); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "Soft", LoadAppearance(path).Corner)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FLOWSTYLE_SETTINGS", "book.json")
	t.Setenv("FLOWSTYLE_PAGE_WIDTH", "320")
	t.Setenv("FLOWSTYLE_NO_COLOR", "true")

	cfg := LoadConfig()
	assert.Equal(t, Config{SettingsPath: "book.json", PageWidth: 320, NoColor: true}, cfg)

	t.Setenv("FLOWSTYLE_SETTINGS", "")
	t.Setenv("FLOWSTYLE_PAGE_WIDTH", "-5")
	t.Setenv("FLOWSTYLE_NO_COLOR", "")
	assert.Equal(t, DefaultConfig(), LoadConfig())
}

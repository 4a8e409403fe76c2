package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bvisness/flowstyle/app/gradient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadGradient(t *testing.T) {
	g := gradient.SetAngle(gradient.Default(), 135)
	g = gradient.SetStopColor(g, 0, "#FF8800")

	tmpFile := filepath.Join(t.TempDir(), "test.grad")

	// Save
	err := SaveGradient(tmpFile, g)
	if err != nil {
		t.Fatalf("SaveGradient failed: %v", err)
	}

	// Load
	loaded, err := LoadGradient(tmpFile)
	if err != nil {
		t.Fatalf("LoadGradient failed: %v", err)
	}

	assert.Equal(t, g, loaded)

	_, err = LoadGradient(filepath.Join(t.TempDir(), "missing.grad"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadWriteGradientFormats(t *testing.T) {
	dir := t.TempDir()
	g, _ := gradient.AddStop(gradient.SetType(gradient.Default(), gradient.Radial), 50)

	for _, name := range []string{"g.grad", "g.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteGradient(path, g))
			loaded, err := ReadGradient(path)
			require.NoError(t, err)
			assert.Equal(t, g, loaded)
		})
	}

	svgPath := filepath.Join(dir, "g.svg")
	require.NoError(t, os.WriteFile(svgPath, []byte(`<svg xmlns="http://www.w3.org/2000/svg">
<linearGradient id="a"><stop offset="0" stop-color="#000"/><stop offset="1" stop-color="#fff"/></linearGradient>
</svg>`), 0644))
	loaded, err := ReadGradient(svgPath)
	require.NoError(t, err)
	assert.Equal(t, "#808080", gradient.ColorAtOffset(50, loaded.Stops))
	assert.Equal(t, 90.0, loaded.Angle)
}

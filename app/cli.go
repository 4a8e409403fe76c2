package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bvisness/flowstyle/app/appearance"
	"github.com/bvisness/flowstyle/app/color"
	"github.com/bvisness/flowstyle/app/gradient"
	"github.com/expr-lang/expr"
)

const usage = `Usage:
  flowstyle derive [settings.json]           print derived appearance parameters
  flowstyle query <settings.json> <expr>     evaluate an expression over derived parameters
  flowstyle gradient <in> [out]              print a gradient, optionally converting it
  flowstyle render <in> <out.png> [w h]      rasterize a gradient preview
  flowstyle shadow <page> <pages> [width]    print page-turn shadow geometry
  flowstyle textures [query]                 list paper textures

Gradients are read from .json, .svg or .grad files and written as .json or .grad.
`

// Run executes one command and returns the process exit code.
func Run(cfg Config, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "derive":
		err = runDerive(cfg, rest, stdout)
	case "query":
		err = runQuery(rest, stdout)
	case "gradient":
		err = runGradient(cfg, rest, stdout)
	case "render":
		err = runRender(rest, stdout)
	case "shadow":
		err = runShadow(cfg, rest, stdout)
	case "textures":
		err = runTextures(rest, stdout)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runDerive(cfg Config, args []string, out io.Writer) error {
	path := cfg.SettingsPath
	if len(args) > 0 {
		path = args[0]
	}
	s := LoadAppearance(path)
	d := appearance.Derive(s)

	fmt.Fprint(out, field("Shadow", d.Shadow))
	fmt.Fprint(out, field("Corner radius", color.FormatNumber(d.CornerRadius)+"px"))
	fmt.Fprint(out, field("Flip duration", d.FlipDuration.String()))
	fmt.Fprint(out, field("Texture", d.Overlay.Pattern))
	fmt.Fprint(out, field("Overlay opacity", color.FormatNumber(d.Overlay.Opacity)))
	fmt.Fprint(out, field("Texture size", d.Overlay.BackgroundSize))
	if d.Overlay.Tint != "" {
		fmt.Fprint(out, field("Tint", d.Overlay.Tint))
	}
	return nil
}

// QueryEnv exposes settings and derived parameters to query expressions.
func QueryEnv(s appearance.Settings) map[string]any {
	d := appearance.Derive(s)
	return map[string]any{
		"Texture":        s.Texture,
		"HardCover":      s.HardCover,
		"GrainIntensity": s.GrainIntensity,
		"Warmth":         s.Warmth,
		"TextureScale":   s.TextureScale,
		"Opacity":        s.Opacity,
		"FlipStyle":      s.FlipStyle,
		"FlipSpeed":      s.FlipSpeed,
		"Corner":         s.Corner,
		"ShadowActive":   s.DropShadow.Active,

		"Shadow":         d.Shadow,
		"CornerRadius":   d.CornerRadius,
		"FlipMillis":     d.FlipDuration.Milliseconds(),
		"Pattern":        d.Overlay.Pattern,
		"OverlayOpacity": d.Overlay.Opacity,
		"BackgroundSize": d.Overlay.BackgroundSize,
		"Tint":           d.Overlay.Tint,
	}
}

// Query evaluates an expression such as `FlipMillis < 500 && CornerRadius > 0`
// against the settings and what they derive to.
func Query(s appearance.Settings, src string) (any, error) {
	env := QueryEnv(s)
	program, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("bad expression: %w", err)
	}
	res, err := expr.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate expression: %w", err)
	}
	return res, nil
}

func runQuery(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("query needs a settings file and an expression")
	}
	res, err := Query(LoadAppearance(args[0]), strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, res)
	return nil
}

// ReadGradient loads a gradient, choosing the format from the extension.
func ReadGradient(path string) (gradient.Descriptor, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".grad":
		return LoadGradient(path)
	case ".svg":
		f, err := os.Open(path)
		if err != nil {
			return gradient.Descriptor{}, err
		}
		defer f.Close()
		return gradient.ImportSVG(f)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return gradient.Descriptor{}, err
		}
		return gradient.ParseJSON(data), nil
	}
}

// WriteGradient saves a gradient as .grad, or as JSON for any other
// extension.
func WriteGradient(path string, d gradient.Descriptor) error {
	if strings.ToLower(filepath.Ext(path)) == ".grad" {
		return SaveGradient(path, d)
	}
	data, err := d.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func runGradient(cfg Config, args []string, out io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("gradient needs an input file")
	}
	d, err := ReadGradient(args[0])
	if err != nil {
		return fmt.Errorf("failed to read gradient: %w", err)
	}

	fmt.Fprint(out, field("Type", d.Type.String()))
	switch d.Type {
	case gradient.Linear, gradient.Angular:
		fmt.Fprint(out, field("Angle", color.FormatNumber(d.Angle)+"deg"))
	default:
		fmt.Fprint(out, field("Radius", color.FormatNumber(d.Radius)+"%"))
	}
	for i, s := range d.Stops {
		label := fmt.Sprintf("Stop %d", i+1)
		value := fmt.Sprintf("%s %s%% opacity %s%%", s.Color, color.FormatNumber(s.Offset), color.FormatNumber(s.Opacity))
		if !cfg.NoColor {
			value = Chip(s.Color, "  ") + " " + value
		}
		fmt.Fprint(out, field(label, value))
	}
	if !cfg.NoColor {
		fmt.Fprint(out, field("Preview", Swatch(d, 40)))
	}
	fmt.Fprint(out, field("CSS", d.Fill))

	if len(args) > 1 {
		if err := WriteGradient(args[1], d); err != nil {
			return fmt.Errorf("failed to write gradient: %w", err)
		}
		fmt.Fprintln(out, DimStyle.Render("Wrote "+args[1]))
	}
	return nil
}

func runRender(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("render needs an input file and an output image")
	}
	w, h := 512, 256
	if len(args) >= 4 {
		var err1, err2 error
		w, err1 = strconv.Atoi(args[2])
		h, err2 = strconv.Atoi(args[3])
		if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
			return fmt.Errorf("bad image size %sx%s", args[2], args[3])
		}
	}

	d, err := ReadGradient(args[0])
	if err != nil {
		return fmt.Errorf("failed to read gradient: %w", err)
	}
	if err := gradient.SavePNG(d, args[1], w, h); err != nil {
		return err
	}
	fmt.Fprintf(out, "Rendered %s gradient to %s (%dx%d)\n", d.Type, args[1], w, h)
	return nil
}

func runShadow(cfg Config, args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("shadow needs a page index and a page count")
	}
	page, err1 := strconv.Atoi(args[0])
	pages, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("bad page numbers %q %q", args[0], args[1])
	}
	width := cfg.PageWidth
	if len(args) > 2 {
		w, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("bad page width %q", args[2])
		}
		width = w
	}

	fmt.Fprint(out, field("Shadow width", color.FormatNumber(appearance.ShadowWidth(page, pages, width))+"px"))
	fmt.Fprint(out, field("Shadow offset", color.FormatNumber(appearance.ShadowOffset(page, pages))+"%"))
	return nil
}

func runTextures(args []string, out io.Writer) error {
	for _, name := range appearance.SuggestTextures(strings.Join(args, " ")) {
		fmt.Fprintln(out, name)
	}
	return nil
}

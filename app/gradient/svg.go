package gradient

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/bvisness/flowstyle/app/color"
)

var ErrNoGradient = errors.New("no gradient element found")

// ImportSVG reads the first linearGradient or radialGradient from an SVG
// document. Linear gradients keep the direction given by x1/y1/x2/y2 as an
// angle; radial gradients take their radius from r.
func ImportSVG(r io.Reader) (Descriptor, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to parse SVG: %w", err)
	}

	node := xmlquery.FindOne(doc, "//*[local-name()='linearGradient' or local-name()='radialGradient']")
	if node == nil {
		return Descriptor{}, ErrNoGradient
	}

	d := Descriptor{Type: Linear, Radius: DefaultRadius}
	if node.Data == "radialGradient" {
		d.Type = Radial
		if rad, ok := parsePortion(node.SelectAttr("r")); ok {
			// r is relative to the bounding box; 50% reaches the edge.
			d.Radius = rad * 2
		}
	} else {
		x1, _ := parsePortionDefault(node.SelectAttr("x1"), 0)
		y1, _ := parsePortionDefault(node.SelectAttr("y1"), 0)
		x2, _ := parsePortionDefault(node.SelectAttr("x2"), 100)
		y2, _ := parsePortionDefault(node.SelectAttr("y2"), 0)
		d.Angle = svgAngle(x2-x1, y2-y1)
	}

	for _, stopNode := range xmlquery.Find(node, "./*[local-name()='stop']") {
		off, _ := parsePortion(stopNode.SelectAttr("offset"))
		stop := NewStop(color.White, off)

		style := parseStyle(stopNode.SelectAttr("style"))
		if c := firstNonEmpty(stopNode.SelectAttr("stop-color"), style["stop-color"]); c != "" {
			stop.Color = color.Normalize(c)
		}
		if op := firstNonEmpty(stopNode.SelectAttr("stop-opacity"), style["stop-opacity"]); op != "" {
			if v, err := strconv.ParseFloat(op, 64); err == nil {
				stop.Opacity = v * 100
			}
		}
		d.Stops = append(d.Stops, stop)
	}

	return Normalize(d), nil
}

// svgAngle converts a direction vector in SVG coordinates (y down) to a CSS
// gradient angle, where 0deg points up and angles grow clockwise.
func svgAngle(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 90
	}
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return math.Round(deg*100) / 100
}

// parsePortion reads an SVG length that is either a fraction ("0.5") or a
// percentage ("50%") and returns it as a percentage.
func parsePortion(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		return v, err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v * 100, err == nil
}

func parsePortionDefault(s string, def float64) (float64, bool) {
	if v, ok := parsePortion(s); ok {
		return v, true
	}
	return def, false
}

func parseStyle(style string) map[string]string {
	res := make(map[string]string)
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		res[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return res
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

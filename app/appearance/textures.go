package appearance

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/cases"
)

// table is a lookup keyed by display name. Keys match regardless of case and
// surrounding space; anything else gets the fallback.
type table[T any] struct {
	entries  map[string]T
	fallback T
}

func (t table[T]) get(name string) T {
	if v, ok := t.entries[name]; ok {
		return v
	}
	key := foldName(name)
	for k, v := range t.entries {
		if foldName(k) == key {
			return v
		}
	}
	return t.fallback
}

func (t table[T]) names() []string {
	res := make([]string, 0, len(t.entries))
	for k := range t.entries {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

const (
	PlainWhite  = "Plain White"
	PatternNone = "none"
)

var texturePatterns = table[string]{
	entries: map[string]string{
		PlainWhite:       PatternNone,
		"Cream Paper":    `url("textures/cream-paper.png")`,
		"Recycled Paper": `url("textures/recycled-paper.png")`,
		"Linen":          `url("textures/linen.png")`,
		"Canvas":         `url("textures/canvas.png")`,
		"Parchment":      `url("textures/parchment.png")`,
		"Watercolor":     `url("textures/watercolor.png")`,
		"Kraft":          `url("textures/kraft.png")`,
		"Newsprint":      `url("textures/newsprint.png")`,
	},
	fallback: PatternNone,
}

// TexturePattern returns the CSS background image for a paper texture, or
// PatternNone for Plain White and unknown names.
func TexturePattern(name string) string {
	return texturePatterns.get(name)
}

// Textures lists the known texture names in alphabetical order.
func Textures() []string {
	return texturePatterns.names()
}

// SuggestTextures ranks texture names against a partially typed query, best
// match first. An empty query returns every texture.
func SuggestTextures(query string) []string {
	names := Textures()
	query = strings.TrimSpace(query)
	if query == "" {
		return names
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Stable(ranks)

	res := make([]string, len(ranks))
	for i, r := range ranks {
		res[i] = r.Target
	}
	return res
}

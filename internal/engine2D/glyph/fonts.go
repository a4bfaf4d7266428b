package glyph

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"hero-particles/internal/utils"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

// builtinFaces maps normalized family names to embedded Go fonts.
// The Go fonts have no serif cut; serif families get the bold italic.
var builtinFaces = map[string]string{
	"inter":         "gobold",
	"arial":         "gobold",
	"helvetica":     "gobold",
	"trebuchetms":   "gobold",
	"trebuchet":     "gobold",
	"segoeui":       "gobold",
	"sansserif":     "gobold",
	"go":            "gobold",
	"spacemono":     "gomonobold",
	"menlo":         "gomonobold",
	"monaco":        "gomonobold",
	"consolas":      "gomonobold",
	"monospace":     "gomonobold",
	"gomono":        "gomonobold",
	"timesnewroman": "gobolditalic",
	"times":         "gobolditalic",
	"georgia":       "gobolditalic",
	"serif":         "gobolditalic",
}

var builtinData = map[string][]byte{
	"gobold":       gobold.TTF,
	"gomonobold":   gomonobold.TTF,
	"gobolditalic": gobolditalic.TTF,
}

// Fonts resolves CSS-like family lists to parsed fonts and caches the result.
type Fonts struct {
	Dirs []string

	mu       sync.Mutex
	resolved map[string]*opentype.Font
	parsed   map[string]*opentype.Font
}

func NewFonts(dirs []string) *Fonts {
	return &Fonts{
		Dirs:     dirs,
		resolved: make(map[string]*opentype.Font),
		parsed:   make(map[string]*opentype.Font),
	}
}

// Resolve walks the comma separated family list and returns the first usable font.
// An exhausted list falls back to Go Bold.
func (f *Fonts) Resolve(families string) (*opentype.Font, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if font, ok := f.resolved[families]; ok {
		return font, nil
	}

	for _, family := range strings.Split(families, ",") {
		family = strings.Trim(strings.TrimSpace(family), `'"`)
		if family == "" {
			continue
		}

		if path := utils.FindFontFile(family, f.Dirs); path != "" {
			font, err := f.parseFile(path)
			if err == nil {
				utils.Debug("Glyph: family %q -> %s", family, path)
				f.resolved[families] = font
				return font, nil
			}
			utils.Warn("Glyph: failed to parse font %s: %v", path, err)
		}

		if id, ok := builtinFaces[utils.NormalizeFontName(family)]; ok {
			font, err := f.parseBuiltin(id)
			if err != nil {
				return nil, err
			}
			f.resolved[families] = font
			return font, nil
		}
	}

	font, err := f.parseBuiltin("gobold")
	if err != nil {
		return nil, err
	}
	f.resolved[families] = font
	return font, nil
}

func (f *Fonts) parseFile(path string) (*opentype.Font, error) {
	if font, ok := f.parsed[path]; ok {
		return font, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	font, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	f.parsed[path] = font
	return font, nil
}

func (f *Fonts) parseBuiltin(id string) (*opentype.Font, error) {
	key := "builtin:" + id
	if font, ok := f.parsed[key]; ok {
		return font, nil
	}
	font, err := opentype.Parse(builtinData[id])
	if err != nil {
		return nil, fmt.Errorf("parsing builtin font %s: %w", id, err)
	}
	f.parsed[key] = font
	return font, nil
}

package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// SystemFontDirs are searched after the configured font directories.
var SystemFontDirs = []string{
	"/usr/share/fonts",
	"/usr/local/share/fonts",
	"/Library/Fonts",
	"/System/Library/Fonts",
	`C:\Windows\Fonts`,
}

var fontExtensions = []string{".ttf", ".otf"}

var errFound = errors.New("found")

// NormalizeFontName lowercases a family or file name and drops quotes, spaces, dashes and underscores.
func NormalizeFontName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', ' ', '-', '_':
			return -1
		}
		return r
	}, name)
}

// FindFontFile resolves a font family (or a path) to a TrueType/OpenType file.
// Bold variants are preferred since the glyph text is drawn at weight 700.
func FindFontFile(family string, dirs []string) string {
	family = strings.Trim(strings.TrimSpace(family), `'"`)
	if family == "" {
		return ""
	}

	// Explicit path
	if hasFontExtension(family) {
		if _, err := os.Stat(family); err == nil {
			return family
		}
	}

	target := NormalizeFontName(family)
	searchDirs := append(append([]string{}, dirs...), SystemFontDirs...)

	// Direct hits first
	for _, dir := range dirs {
		for _, ext := range fontExtensions {
			for _, name := range []string{family + " Bold" + ext, family + "-Bold" + ext, family + ext} {
				p := filepath.Join(dir, name)
				if _, err := os.Stat(p); err == nil {
					return p
				}
			}
		}
	}

	// Recursive fallback, bold match wins over a plain match
	var plain, bold string
	for _, dir := range searchDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() || !hasFontExtension(path) {
				return nil
			}
			base := filepath.Base(path)
			name := NormalizeFontName(strings.TrimSuffix(base, filepath.Ext(base)))

			switch {
			case name == target+"bold":
				bold = path
				return errFound
			case name == target && plain == "":
				plain = path
			}
			return nil
		})
		if bold != "" {
			return bold
		}
	}

	return plain
}

func hasFontExtension(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	for _, e := range fontExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0755)
}

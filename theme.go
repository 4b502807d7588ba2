// Package xcursor locates X cursor themes on disk and resolves icon
// names through the theme inheritance chain.
//
// A theme is the set of directories named after it under one or more
// search roots. Each directory may carry an index.theme file whose
// Inherits key names a parent theme; icons missing locally are looked
// up in the parent, and so on up the chain. The cursor files found in
// a theme's cursors/ directories are Xcursor containers, decoded by
// the container package.
package xcursor

import (
	"os"
	"path/filepath"
)

// DefaultTheme is the theme every chain falls back to when no
// inheritance is declared. It conventionally inherits from itself,
// which ends the chain.
const DefaultTheme = "default"

// Theme is a resolved cursor theme. SearchPaths keeps the roots the
// theme was resolved against so ancestor themes resolve the same way;
// it is shared, not copied, and must not be mutated mid-resolution.
type Theme struct {
	Name        string
	Dirs        []string
	Inherits    string
	SearchPaths []string
}

// LoadTheme resolves the named theme against the given search roots.
// It never fails: unreadable roots and metadata files contribute
// nothing, and a theme with no directories and default inheritance is
// a valid result.
func LoadTheme(name string, searchPaths []string) Theme {
	theme := Theme{
		Name:        name,
		Inherits:    DefaultTheme,
		SearchPaths: searchPaths,
	}

	for _, root := range searchPaths {
		dir := filepath.Join(root, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			theme.Dirs = append(theme.Dirs, dir)
		}
	}

	// The last directory with a readable declaration wins.
	for _, dir := range theme.Dirs {
		if parent, ok := readInherits(filepath.Join(dir, "index.theme")); ok {
			theme.Inherits = parent
		}
	}

	return theme
}

// LoadIcon resolves an icon name to the path of its cursor file,
// consulting ancestor themes when the icon is absent locally. The
// second return is false when no theme in the chain has the icon.
//
// The walk remembers which themes it has visited and gives up on a
// repeat, so a malformed inheritance cycle ends in not-found instead
// of looping forever.
func (t Theme) LoadIcon(iconName string) (string, bool) {
	visited := map[string]bool{}

	for {
		for _, dir := range t.Dirs {
			p := filepath.Join(dir, "cursors", iconName)
			if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
				return p, true
			}
		}

		// A self-inheriting theme (conventionally "default") is the
		// end of the chain.
		if t.Name == t.Inherits {
			return "", false
		}

		visited[t.Name] = true
		if visited[t.Inherits] {
			return "", false
		}
		t = LoadTheme(t.Inherits, t.SearchPaths)
	}
}

package xcursor

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"mvdan.cc/sh/v3/shell"
)

// DefaultSearchPaths builds the ordered list of theme search roots per
// the XDG icon theme spec. A non-empty XCURSOR_PATH overrides the
// defaults entirely; its entries get the same $VAR and ~ expansion.
func DefaultSearchPaths() []string {
	if override := os.Getenv("XCURSOR_PATH"); override != "" {
		return ExpandPaths(strings.Split(override, ":"))
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = "~/.local/share"
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	roots := []string{"~/.icons", dataHome + "/icons"}
	for _, dir := range strings.Split(dataDirs, ":") {
		roots = append(roots, filepath.Join(dir, "icons"))
	}
	roots = append(roots, "/usr/share/pixmaps")

	return ExpandPaths(roots)
}

// ExpandPaths substitutes environment variables and a leading ~ in
// each pattern. A variable holding a colon-separated list (PATH-like,
// as the XDG base directory variables are) fans out into one result
// per segment, preserving order. Expansion is total: unset variables,
// patterns the expander cannot parse, and the unsupported ${var}
// syntax are all left in place verbatim rather than erroring.
func ExpandPaths(patterns []string) []string {
	out := patterns
	for {
		next := expandPass(out)
		if slices.Equal(next, out) {
			return next
		}
		out = next
	}
}

// expandPass substitutes the first variable of each pattern. Callers
// loop until a pass changes nothing, so patterns holding several
// variables converge one variable at a time.
func expandPass(patterns []string) []string {
	out := make([]string, 0, len(patterns))
	for _, p := range patterns {
		name := firstVariable(p)
		if name == "" || strings.Contains(p, "${") {
			out = append(out, expandTilde(p))
			continue
		}

		value, ok := os.LookupEnv(name)
		if !ok {
			out = append(out, expandTilde(p))
			continue
		}

		segments := strings.Split(value, ":")
		expanded := make([]string, 0, len(segments))
		var expandErr error
		for _, segment := range segments {
			result, err := shell.Expand(p, func(v string) string {
				if v == name {
					return segment
				}
				return "$" + v // keep for the next pass
			})
			if err != nil {
				expandErr = err
				break
			}
			expanded = append(expanded, expandTilde(result))
		}
		if expandErr != nil {
			// An unparseable pattern passes through verbatim exactly
			// once, like an unset variable; appending it per segment
			// would keep the list growing and deny the caller's
			// fixed point.
			out = append(out, expandTilde(p))
			continue
		}
		out = append(out, expanded...)
	}
	return out
}

// firstVariable returns the name of the first $variable in s, or ""
// when there is none.
func firstVariable(s string) string {
	i := strings.IndexByte(s, '$')
	if i < 0 {
		return ""
	}
	rest := s[i+1:]
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if end < 0 {
		end = len(rest)
	}
	return rest[:end]
}

func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

package xcursor

import (
	"bufio"
	"os"
	"strings"
)

const inheritsKey = "Inherits"

// readInherits extracts the value of the Inherits key from an
// index.theme file. An unreadable file is treated as "no declaration",
// never an error. Returns false when no line carries a non-empty
// value.
func readInherits(path string) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if value, ok := parseInheritsLine(scanner.Text()); ok {
			return value, true
		}
	}
	return "", false
}

// parseInheritsLine matches one line against the tolerant grammar some
// theme packages use, in four stages: skip the leading whitespace and
// the Inherits token, require '=', skip any run of separators, then
// collect the value up to the next separator. An empty value is not a
// match.
func parseInheritsLine(line string) (string, bool) {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, inheritsKey) {
		return "", false
	}
	s = strings.TrimLeft(s[len(inheritsKey):], " \t")
	if !strings.HasPrefix(s, "=") {
		return "", false
	}
	s = s[1:]

	start := 0
	for start < len(s) && isSeparator(s[start]) {
		start++
	}
	end := start
	for end < len(s) && !isSeparator(s[end]) {
		end++
	}
	if start == end {
		return "", false
	}
	return s[start:end], true
}

// Theme packages are sloppy about how they delimit the value; treat
// ';' and ',' like whitespace.
func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == ';' || c == ','
}

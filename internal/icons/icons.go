package icons

import (
	"sort"
	"strings"
)

// Icon names the frontend can render. Content rows reference icons by
// name, so admin writes are checked against this set instead of letting
// unknown names fall through to a blank glyph at render time.
var known = map[string]bool{
	"award":        true,
	"book-open":    true,
	"briefcase":    true,
	"building":     true,
	"calendar":     true,
	"check-circle": true,
	"eye":          true,
	"file-text":    true,
	"flag":         true,
	"globe":        true,
	"handshake":    true,
	"heart":        true,
	"landmark":     true,
	"lightbulb":    true,
	"map-pin":      true,
	"megaphone":    true,
	"mic":          true,
	"newspaper":    true,
	"scale":        true,
	"shield":       true,
	"star":         true,
	"target":       true,
	"trending-up":  true,
	"users":        true,
}

func Valid(name string) bool {
	return known[strings.ToLower(strings.TrimSpace(name))]
}

// Normalize lowercases and trims an icon name, returning false for names
// outside the known set. Empty input is allowed: icons are optional.
func Normalize(name string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return "", true
	}
	return cleaned, known[cleaned]
}

// Names lists the accepted icon names for admin form option lists.
func Names() []string {
	names := make([]string, 0, len(known))
	for name := range known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

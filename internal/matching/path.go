package matching

import (
	"fmt"
	"strings"
)

// Params holds the values captured by placeholders, keyed by name.
// A trailing wildcard is captured under "*".
type Params map[string]string

// MatchPath checks if path matches pattern.
// Returns a score > 0 and the captured params if matched, 0 and nil if not.
// Supports:
//   - Exact match: "/api/radars" matches "/api/radars"
//   - Named params: "/api/radars/:id" and "/api/radars/{id}" match "/api/radars/CAM001"
//   - Trailing wildcard: "/api/*" matches "/api/radars/CAM001"
//
// A trailing slash on path is ignored. Captured values are not unescaped.
func MatchPath(pattern, path string) (int, Params) {
	path = normalize(path)
	pattern = normalize(pattern)

	if pattern == path && !strings.ContainsAny(pattern, ":{*") {
		return ScorePathExact, Params{}
	}

	patternParts := split(pattern)
	pathParts := split(path)

	wildcard := len(patternParts) > 0 && patternParts[len(patternParts)-1] == "*"
	if wildcard {
		patternParts = patternParts[:len(patternParts)-1]
		if len(pathParts) < len(patternParts) {
			return 0, nil
		}
	} else if len(patternParts) != len(pathParts) {
		return 0, nil
	}

	params := Params{}
	literals := 0
	for i, part := range patternParts {
		if name, ok := paramName(part); ok {
			if pathParts[i] == "" {
				return 0, nil
			}
			params[name] = pathParts[i]
			continue
		}
		if part != pathParts[i] {
			return 0, nil
		}
		literals++
	}

	base := ScorePathNamedParams
	if wildcard {
		params["*"] = strings.Join(pathParts[len(patternParts):], "/")
		base = ScorePathWildcard
	}
	return base + literals*ScoreLiteralSegment, params
}

// ValidatePattern checks that pattern is absolute, that placeholders are
// named and unique, and that a wildcard only appears as the last segment.
func ValidatePattern(pattern string) error {
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("pattern %q must start with /", pattern)
	}
	parts := split(normalize(pattern))
	seen := make(map[string]bool)
	for i, part := range parts {
		if part == "*" {
			if i != len(parts)-1 {
				return fmt.Errorf("pattern %q: wildcard must be the last segment", pattern)
			}
			continue
		}
		name, ok := paramName(part)
		if !ok {
			if strings.ContainsAny(part, ":{}*") {
				return fmt.Errorf("pattern %q: malformed segment %q", pattern, part)
			}
			continue
		}
		if name == "" {
			return fmt.Errorf("pattern %q: placeholder without a name", pattern)
		}
		if seen[name] {
			return fmt.Errorf("pattern %q: duplicate placeholder %q", pattern, name)
		}
		seen[name] = true
	}
	return nil
}

// Join mounts pattern under prefix, collapsing duplicate slashes.
func Join(prefix, pattern string) string {
	prefix = strings.Trim(prefix, "/")
	pattern = strings.Trim(pattern, "/")
	switch {
	case prefix == "":
		return "/" + pattern
	case pattern == "":
		return "/" + prefix
	default:
		return "/" + prefix + "/" + pattern
	}
}

func paramName(segment string) (string, bool) {
	if strings.HasPrefix(segment, ":") {
		return segment[1:], true
	}
	if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
		return segment[1 : len(segment)-1], true
	}
	return "", false
}

func normalize(p string) string {
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

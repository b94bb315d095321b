// Package tlp implements TLP sensitivity classification for vault files:
// the four-level ordering, policy pattern matching, .tlp policy parsing,
// and the classification engine combining path rules with frontmatter
// overrides.
package tlp

import "strings"

// Level is a TLP sensitivity level. Levels are totally ordered:
// Red > Amber > Green > Clear, Red being the most restrictive.
type Level int

const (
	Clear Level = iota
	Green
	Amber
	Red
)

func (l Level) String() string {
	switch l {
	case Red:
		return "RED"
	case Amber:
		return "AMBER"
	case Green:
		return "GREEN"
	case Clear:
		return "CLEAR"
	}
	return "UNKNOWN"
}

// ParseLevel parses a level name, case-insensitively, with surrounding
// whitespace ignored. Returns false for anything that is not one of the
// four level names.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "RED":
		return Red, true
	case "AMBER":
		return Amber, true
	case "GREEN":
		return Green, true
	case "CLEAR":
		return Clear, true
	}
	return Clear, false
}

// MostRestrictive returns the higher of two levels. This is the only way
// levels combine: a frontmatter override can escalate a path-derived level
// but never relax it.
func MostRestrictive(a, b Level) Level {
	if a >= b {
		return a
	}
	return b
}

package tlp

import "strings"

// MatchPattern reports whether a vault-relative path matches a policy
// pattern. The supported forms are:
//
//   - "*.ext"       basename suffix match at any depth
//   - "dir/**"      the directory itself or anything under it
//   - "exact/path"  exact match against the full relative path
//   - "**"          everything
//
// There is no wildcard escaping and no character classes. Matching is
// case-sensitive, following filesystem convention.
func MatchPattern(path, pattern string) bool {
	if pattern == "**" {
		return true // catchall, useful as a trailing GREEN rule
	}

	if strings.HasPrefix(pattern, "*") && !strings.Contains(pattern, "/") {
		return strings.HasSuffix(path, pattern[1:])
	}

	if prefix, ok := strings.CutSuffix(pattern, "/**"); ok {
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}

	return path == pattern
}

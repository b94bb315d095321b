// Package shellpath extracts file paths referenced by a shell command,
// so the hook can classify files a Bash tool call is about to touch.
package shellpath

import (
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Extract parses command as Bash and returns the absolute forms of its
// path-shaped literal argument and redirect words. Expansions, variables
// and command substitutions are skipped — only words whose value is fully
// known statically are considered. If the command does not parse, a plain
// whitespace split is used instead.
func Extract(command, cwd string) []string {
	if cwd == "" {
		cwd, _ = os.Getwd()
	}
	homeDir, _ := os.UserHomeDir()

	words := literalWords(command)

	var paths []string
	seen := make(map[string]bool)
	for _, w := range words {
		if !looksLikePath(w) {
			continue
		}
		p := expandPath(w, cwd, homeDir)
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}
	return paths
}

func literalWords(command string) []string {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	file, err := parser.Parse(strings.NewReader(command), "")
	if err != nil {
		return strings.Fields(command)
	}

	var words []string
	syntax.Walk(file, func(node syntax.Node) bool {
		switch n := node.(type) {
		case *syntax.CallExpr:
			// Args[0] is the executable; only its arguments can be paths.
			for i, w := range n.Args {
				if i == 0 {
					continue
				}
				if lit, ok := flatLiteral(w); ok {
					words = append(words, lit)
				}
			}
		case *syntax.Redirect:
			if n.Word != nil {
				if lit, ok := flatLiteral(n.Word); ok {
					words = append(words, lit)
				}
			}
		}
		return true
	})
	return words
}

// flatLiteral flattens a word made only of literals and quoted literals.
func flatLiteral(w *syntax.Word) (string, bool) {
	var b strings.Builder
	for _, part := range w.Parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(p.Value)
		case *syntax.SglQuoted:
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			for _, inner := range p.Parts {
				lit, ok := inner.(*syntax.Lit)
				if !ok {
					return "", false
				}
				b.WriteString(lit.Value)
			}
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

func looksLikePath(arg string) bool {
	if strings.HasPrefix(arg, "-") {
		return false
	}
	if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
		return false
	}
	return strings.HasPrefix(arg, "/") ||
		strings.HasPrefix(arg, "./") ||
		strings.HasPrefix(arg, "../") ||
		strings.HasPrefix(arg, "~/") ||
		strings.Contains(arg, "/")
}

func expandPath(path, cwd, homeDir string) string {
	if strings.HasPrefix(path, "~/") && homeDir != "" {
		path = filepath.Join(homeDir, path[2:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path)
}

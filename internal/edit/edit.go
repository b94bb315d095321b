// Package edit implements the write-path operations on raw file content:
// unique exact replacement, positional insertion at a marker line, and
// atomic persistence. All functions are pure over content except
// WriteFileAtomic.
package edit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/contextsec/tlpguard/internal/redact"
)

var (
	// ErrNotFound means the target substring or marker line is absent.
	ErrNotFound = errors.New("target not found")

	// ErrPlaceholder means caller-supplied text touches a redaction
	// placeholder. Such an edit would blindly overwrite (or fabricate)
	// hidden content the caller cannot see.
	ErrPlaceholder = errors.New("text contains redaction placeholders")
)

// AmbiguousError means the target matched more than once; the caller
// must narrow it before any write happens.
type AmbiguousError struct {
	Count int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("target found %d times — must be unique", e.Count)
}

// ContainsPlaceholder reports whether s carries either placeholder literal.
func ContainsPlaceholder(s string) bool {
	return strings.Contains(s, redact.TLPPlaceholder) ||
		strings.Contains(s, redact.SecretPlaceholder)
}

// ReplaceExact replaces exactly one occurrence of old with new in the raw
// content. The old string must occur exactly once and must not touch a
// placeholder region.
func ReplaceExact(content, old, new string) (string, error) {
	if ContainsPlaceholder(old) {
		return "", ErrPlaceholder
	}

	switch n := strings.Count(content, old); n {
	case 0:
		return "", ErrNotFound
	case 1:
		return strings.Replace(content, old, new, 1), nil
	default:
		return "", &AmbiguousError{Count: n}
	}
}

// Position says which side of the marker line an insert lands on.
type Position int

const (
	Before Position = iota
	After
)

// InsertAt inserts text as a new line immediately before or after the
// single line whose trimmed text equals the trimmed marker. Absent or
// ambiguous markers are rejected before any write occurs, and inserted
// text must not carry placeholders.
func InsertAt(content, marker, text string, pos Position) (string, error) {
	if ContainsPlaceholder(text) {
		return "", ErrPlaceholder
	}

	lines := strings.Split(content, "\n")
	trailing := strings.HasSuffix(content, "\n")
	if trailing {
		lines = lines[:len(lines)-1]
	}

	target := strings.TrimSpace(marker)
	var matches []int
	for i, line := range lines {
		if strings.TrimSpace(line) == target {
			matches = append(matches, i)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrNotFound
	case 1:
	default:
		return "", &AmbiguousError{Count: len(matches)}
	}

	idx := matches[0]
	out := make([]string, 0, len(lines)+1)
	for i, line := range lines {
		if i == idx && pos == Before {
			out = append(out, text)
		}
		out = append(out, line)
		if i == idx && pos == After {
			out = append(out, text)
		}
	}

	result := strings.Join(out, "\n")
	if trailing {
		result += "\n"
	}
	return result, nil
}

// WriteFileAtomic writes data to path through a temp file in the same
// directory plus a rename, so a concurrent reader never observes a
// partially written file. An existing file keeps its permission bits.
func WriteFileAtomic(path string, data []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tlpguard-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

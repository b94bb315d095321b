package redact

import (
	"fmt"
	"strings"
)

// MismatchError reports a placeholder count that does not match the
// hidden structure of the original file. The write is refused outright:
// too many placeholders would fabricate hidden content, too few would
// silently destroy it.
type MismatchError struct {
	Kind SpanKind
	Have int // placeholders in the edited content
	Want int // hidden chunks in the original
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("edited content has %d %s placeholder(s), original has %d hidden %s(s)",
		e.Have, e.Kind, e.Want, e.Kind)
}

// Hidden holds the ordered hidden chunks of one file, per kind. It is
// recomputed from the original file on every write and never persisted.
type Hidden struct {
	Blocks  []string // whole TLP blocks, marker lines included
	Inlines []string // inline TLP runs, marker and boundary tag included
	Secrets []string // secret matches from the section-stripped content
}

// Empty reports whether the file has no hidden content at all.
func (h Hidden) Empty() bool {
	return len(h.Blocks) == 0 && len(h.Inlines) == 0 && len(h.Secrets) == 0
}

// ExtractHidden runs the redaction pipeline against content and collects
// what it would hide, in document order per kind.
func ExtractHidden(content string) Hidden {
	res := Pipeline{}.Apply(content)

	var h Hidden
	for _, s := range res.Sections {
		switch s.Kind {
		case BlockSection:
			h.Blocks = append(h.Blocks, s.Text)
		case InlineSection:
			h.Inlines = append(h.Inlines, s.Text)
		}
	}
	for _, s := range res.Secrets {
		h.Secrets = append(h.Secrets, s.Text)
	}
	return h
}

// Restore substitutes the k-th placeholder of each kind in newContent
// with the k-th hidden chunk, leaving everything else untouched. It is
// all-or-nothing: any per-kind count mismatch fails with no output.
func (h Hidden) Restore(newContent string) (string, error) {
	haveBlocks, haveInlines, haveSecrets := counts(newContent)
	if haveBlocks != len(h.Blocks) {
		return "", &MismatchError{BlockSection, haveBlocks, len(h.Blocks)}
	}
	if haveInlines != len(h.Inlines) {
		return "", &MismatchError{InlineSection, haveInlines, len(h.Inlines)}
	}
	if haveSecrets != len(h.Secrets) {
		return "", &MismatchError{Secret, haveSecrets, len(h.Secrets)}
	}

	var (
		out       []string
		blockIdx  int
		inlineIdx int
		secretIdx int
	)

	for _, line := range splitLines(newContent) {
		if strings.TrimSpace(line) == TLPPlaceholder {
			out = append(out, h.Blocks[blockIdx])
			blockIdx++
			continue
		}

		// Substitute left to right in a single pass, never re-scanning
		// substituted text: a hidden chunk may itself contain a
		// placeholder literal, which must land verbatim rather than
		// consume further chunks.
		var b strings.Builder
		rest := line
		for {
			ti := strings.Index(rest, TLPPlaceholder)
			si := strings.Index(rest, SecretPlaceholder)
			if ti < 0 && si < 0 {
				break
			}
			if si < 0 || (ti >= 0 && ti < si) {
				b.WriteString(rest[:ti])
				b.WriteString(h.Inlines[inlineIdx])
				inlineIdx++
				rest = rest[ti+len(TLPPlaceholder):]
			} else {
				b.WriteString(rest[:si])
				b.WriteString(h.Secrets[secretIdx])
				secretIdx++
				rest = rest[si+len(SecretPlaceholder):]
			}
		}
		b.WriteString(rest)
		out = append(out, b.String())
	}

	return joinLines(out, strings.HasSuffix(newContent, "\n")), nil
}

// counts tallies placeholders per kind the same way Restore consumes
// them, so verification and substitution cannot disagree.
func counts(content string) (blocks, inlines, secrets int) {
	for _, line := range splitLines(content) {
		if strings.TrimSpace(line) == TLPPlaceholder {
			blocks++
			continue
		}
		inlines += strings.Count(line, TLPPlaceholder)
		secrets += strings.Count(line, SecretPlaceholder)
	}
	return
}

// Restore is the full write-path restoration: extract the hidden chunks
// of original, then merge them into newContent.
func Restore(newContent, original string) (string, error) {
	return ExtractHidden(original).Restore(newContent)
}

// Package redact strips hidden TLP sections and credential-shaped secrets
// from file content for presentation, and restores the hidden originals
// into an edited, placeholder-bearing version of that content.
package redact

import "strings"

// Placeholders substituted for hidden content. Restoration correctness
// depends on these never occurring naturally in ordinary files.
const (
	TLPPlaceholder    = "[REDACTED]"
	SecretPlaceholder = "[SECRET REDACTED]"
)

const redMarker = "#tlp/red"

// boundaryMarkers end a hidden run. #tlp/red itself is never a boundary.
var boundaryMarkers = []string{"#tlp/amber", "#tlp/green", "#tlp/clear"}

// SpanKind distinguishes the three kinds of hidden content.
type SpanKind int

const (
	BlockSection SpanKind = iota
	InlineSection
	Secret
)

func (k SpanKind) String() string {
	switch k {
	case BlockSection:
		return "TLP block"
	case InlineSection:
		return "inline TLP chunk"
	case Secret:
		return "secret"
	}
	return "unknown"
}

// Span is one hidden run: the exact text a placeholder replaced.
// Block spans include the opening #tlp/red line and the closing boundary
// line (when present), so substituting a span back for its placeholder
// reproduces the original content byte-for-byte.
type Span struct {
	Kind SpanKind
	Text string
}

func isBoundary(trimmed string) bool {
	for _, tag := range boundaryMarkers {
		if trimmed == tag {
			return true
		}
	}
	return false
}

// splitLines splits on \n the way the redaction pipeline counts lines:
// a trailing newline does not produce a final empty line. Callers re-add
// the trailing newline when the input had one.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func joinLines(lines []string, trailingNewline bool) string {
	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}

// StripSections removes hidden TLP sections from content and returns the
// redacted text plus the removed spans in document order.
//
// Block mode: a line whose trimmed text is exactly #tlp/red opens a
// hidden block, closed by the first line whose trimmed text is a boundary
// marker — or by end of input when none follows (when in doubt, redact
// more, not less). The whole block, marker lines included, collapses to a
// single [REDACTED] line.
//
// Inline mode: a #tlp/red occurrence mid-line hides everything up to the
// next boundary marker on the same line (inclusive), or to end of line.
// Each inline run becomes one in-line [REDACTED].
func StripSections(content string) (string, []Span) {
	var (
		out     []string
		spans   []Span
		inBlock bool
		block   []string
		emitted bool
	)

	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)

		if trimmed == redMarker && !inBlock {
			inBlock = true
			emitted = false
			block = append(block[:0], line)
			continue
		}

		if inBlock {
			block = append(block, line)
			if isBoundary(trimmed) {
				if !emitted {
					out = append(out, TLPPlaceholder)
				}
				spans = append(spans, Span{BlockSection, strings.Join(block, "\n")})
				inBlock = false
				continue
			}
			if !emitted {
				out = append(out, TLPPlaceholder)
				emitted = true
			}
			continue
		}

		stripped, lineSpans := stripInline(line)
		out = append(out, stripped)
		spans = append(spans, lineSpans...)
	}

	// Unterminated block: redact through end of input.
	if inBlock {
		if !emitted {
			out = append(out, TLPPlaceholder)
		}
		spans = append(spans, Span{BlockSection, strings.Join(block, "\n")})
	}

	return joinLines(out, strings.HasSuffix(content, "\n")), spans
}

// stripInline handles mid-line #tlp/red runs on a single line, left to
// right. Each captured span includes the opening marker and the boundary
// tag that closed it.
func stripInline(line string) (string, []Span) {
	if !strings.Contains(line, redMarker) {
		return line, nil
	}

	var b strings.Builder
	var spans []Span
	remaining := line

	for {
		pos := strings.Index(remaining, redMarker)
		if pos < 0 {
			break
		}
		b.WriteString(remaining[:pos])
		b.WriteString(TLPPlaceholder)

		after := remaining[pos+len(redMarker):]
		end, tagLen := -1, 0
		for _, tag := range boundaryMarkers {
			if p := strings.Index(after, tag); p >= 0 && (end < 0 || p < end) {
				end, tagLen = p, len(tag)
			}
		}

		if end >= 0 {
			stop := pos + len(redMarker) + end + tagLen
			spans = append(spans, Span{InlineSection, remaining[pos:stop]})
			remaining = remaining[stop:]
		} else {
			spans = append(spans, Span{InlineSection, remaining[pos:]})
			remaining = ""
		}
	}

	b.WriteString(remaining)
	return b.String(), spans
}

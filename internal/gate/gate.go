// Package gate turns a classification plus a requested operation into an
// allow/block decision. It is pure: the hook command owns all I/O.
package gate

import (
	"fmt"

	"github.com/contextsec/tlpguard/internal/tlp"
)

// Op is the kind of access being requested.
type Op int

const (
	OpRead Op = iota
	OpWrite
)

// Verdict is the gate's outcome.
type Verdict int

const (
	Allow Verdict = iota
	AllowWithWarning
	Block
)

// Decision pairs a verdict with its diagnostic message. Config errors
// and RED both block, but their messages differ so the user can tell a
// broken policy from a deliberate one.
type Decision struct {
	Verdict Verdict
	Message string
}

// OpForTool maps a hook tool name to an operation kind. Read-like tools
// observe content; everything else that reaches the gate mutates it.
func OpForTool(tool string) Op {
	switch tool {
	case "Read", "Bash":
		// Bash is treated as a read: a shell command can cat a file raw,
		// which is exactly what AMBER forbids.
		return OpRead
	}
	return OpWrite
}

// Evaluate decides whether an operation on a classified file may proceed.
// A nil classification means the file is ungoverned and always allowed.
func Evaluate(c *tlp.Classification, op Op) Decision {
	if c == nil {
		return Decision{Verdict: Allow}
	}

	if c.ConfigError {
		return Decision{
			Verdict: Block,
			Message: "Malformed .tlp config. All files treated as RED until fixed.",
		}
	}

	switch c.Level {
	case tlp.Red:
		return Decision{
			Verdict: Block,
			Message: fmt.Sprintf("TLP:RED — access blocked for: %s", c.RelPath),
		}
	case tlp.Amber:
		if op == OpRead {
			return Decision{
				Verdict: Block,
				Message: fmt.Sprintf(
					"TLP:AMBER — raw read blocked for: %s\nUse the redacting reader instead: tlpguard read <file>",
					c.RelPath),
			}
		}
		return Decision{
			Verdict: AllowWithWarning,
			Message: fmt.Sprintf(
				"TLP:AMBER — editing allowed, but never output content verbatim from: %s",
				c.RelPath),
		}
	}

	return Decision{Verdict: Allow}
}

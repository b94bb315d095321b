package gate

import (
	"strings"
	"testing"

	"github.com/contextsec/tlpguard/internal/tlp"
)

func TestOpForTool(t *testing.T) {
	tests := []struct {
		tool string
		want Op
	}{
		{"Read", OpRead},
		{"Bash", OpRead},
		{"Write", OpWrite},
		{"Edit", OpWrite},
		{"NotebookEdit", OpWrite},
		{"", OpWrite},
	}
	for _, tt := range tests {
		if got := OpForTool(tt.tool); got != tt.want {
			t.Errorf("OpForTool(%q) = %v, want %v", tt.tool, got, tt.want)
		}
	}
}

func TestEvaluate_Ungoverned(t *testing.T) {
	for _, op := range []Op{OpRead, OpWrite} {
		d := Evaluate(nil, op)
		if d.Verdict != Allow {
			t.Errorf("op %v: verdict = %v, want Allow", op, d.Verdict)
		}
	}
}

func TestEvaluate_ConfigErrorBlocksEverything(t *testing.T) {
	c := &tlp.Classification{Level: tlp.Red, RelPath: "a.md", ConfigError: true}
	for _, op := range []Op{OpRead, OpWrite} {
		d := Evaluate(c, op)
		if d.Verdict != Block {
			t.Errorf("op %v: verdict = %v, want Block", op, d.Verdict)
		}
		if !strings.Contains(d.Message, "Malformed .tlp config") {
			t.Errorf("op %v: message = %q", op, d.Message)
		}
	}
}

func TestEvaluate_Levels(t *testing.T) {
	tests := []struct {
		name  string
		level tlp.Level
		op    Op
		want  Verdict
	}{
		{"red read", tlp.Red, OpRead, Block},
		{"red write", tlp.Red, OpWrite, Block},
		{"amber read", tlp.Amber, OpRead, Block},
		{"amber write", tlp.Amber, OpWrite, AllowWithWarning},
		{"green read", tlp.Green, OpRead, Allow},
		{"green write", tlp.Green, OpWrite, Allow},
		{"clear read", tlp.Clear, OpRead, Allow},
		{"clear write", tlp.Clear, OpWrite, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &tlp.Classification{Level: tt.level, RelPath: "Journals/note.md"}
			d := Evaluate(c, tt.op)
			if d.Verdict != tt.want {
				t.Errorf("verdict = %v, want %v", d.Verdict, tt.want)
			}
		})
	}
}

func TestEvaluate_Messages(t *testing.T) {
	c := &tlp.Classification{Level: tlp.Red, RelPath: "Vault/secret.md"}
	if d := Evaluate(c, OpWrite); !strings.Contains(d.Message, "Vault/secret.md") {
		t.Errorf("red message missing path: %q", d.Message)
	}

	c = &tlp.Classification{Level: tlp.Amber, RelPath: "Journals/note.md"}
	if d := Evaluate(c, OpRead); !strings.Contains(d.Message, "tlpguard read") {
		t.Errorf("amber read message should steer to the redacting reader: %q", d.Message)
	}
	if d := Evaluate(c, OpWrite); !strings.Contains(d.Message, "verbatim") {
		t.Errorf("amber write warning = %q", d.Message)
	}
}

package tlp

import (
	"os"
	"path/filepath"
	"testing"
)

// writeVault lays out a vault under a temp dir: a .tlp policy plus files.
func writeVault(t *testing.T, policy string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".tlp"), []byte(policy), 0644); err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestClassify_Ungoverned(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if c := Classify(path); c != nil {
		t.Errorf("expected nil for ungoverned file, got %+v", c)
	}
}

func TestClassify_PathRules(t *testing.T) {
	root := writeVault(t, "RED:\n  - \"*.pdf\"\nAMBER:\n  - \"Journals/**\"\n", map[string]string{
		"Journals/note.md": "A\n",
		"doc.pdf":          "binary-ish\n",
		"Topics/rust.md":   "B\n",
	})

	tests := []struct {
		rel  string
		want Level
	}{
		{"Journals/note.md", Amber},
		{"doc.pdf", Red},
		{"Topics/rust.md", Amber}, // no rule matches: default AMBER
	}

	for _, tt := range tests {
		c := Classify(filepath.Join(root, filepath.FromSlash(tt.rel)))
		if c == nil {
			t.Fatalf("Classify(%q) = nil, want classification", tt.rel)
		}
		if c.ConfigError {
			t.Fatalf("Classify(%q): unexpected config error", tt.rel)
		}
		if c.Level != tt.want {
			t.Errorf("Classify(%q).Level = %v, want %v", tt.rel, c.Level, tt.want)
		}
		if c.RelPath != tt.rel {
			t.Errorf("Classify(%q).RelPath = %q", tt.rel, c.RelPath)
		}
	}
}

func TestClassify_FailClosedOnMalformedPolicy(t *testing.T) {
	root := writeVault(t, "RED: [unclosed\n", map[string]string{
		"Topics/open.md": "public notes\n",
	})

	c := Classify(filepath.Join(root, "Topics", "open.md"))
	if c == nil {
		t.Fatal("expected classification")
	}
	if !c.ConfigError {
		t.Error("expected ConfigError for malformed policy")
	}
	if c.Level != Red {
		t.Errorf("Level = %v, want Red (fail closed)", c.Level)
	}
}

func TestClassify_FailClosedOnUnreadablePolicy(t *testing.T) {
	// A directory named .tlp exists (so the vault is found) but cannot be
	// read as a file.
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, ".tlp"), 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(root, "note.md")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Classify(path)
	if c == nil {
		t.Fatal("expected classification")
	}
	if !c.ConfigError || c.Level != Red {
		t.Errorf("got level=%v configError=%v, want Red with ConfigError", c.Level, c.ConfigError)
	}
}

func TestClassify_OverrideEscalates(t *testing.T) {
	root := writeVault(t, "GREEN:\n  - \"Topics/**\"\n", map[string]string{
		"Topics/secret.md": "---\ntlp: red\n---\n\nbody\n",
	})

	c := Classify(filepath.Join(root, "Topics", "secret.md"))
	if c == nil {
		t.Fatal("expected classification")
	}
	if c.Level != Red {
		t.Errorf("Level = %v, want Red (frontmatter override escalates)", c.Level)
	}
}

func TestClassify_OverrideNeverRelaxes(t *testing.T) {
	root := writeVault(t, "AMBER:\n  - \"Journals/**\"\n", map[string]string{
		"Journals/note.md": "---\ntlp: green\n---\n\nbody\n",
	})

	c := Classify(filepath.Join(root, "Journals", "note.md"))
	if c == nil {
		t.Fatal("expected classification")
	}
	if c.Level != Amber {
		t.Errorf("Level = %v, want Amber (override must not downgrade)", c.Level)
	}
}

func TestClassify_InvalidOverrideIgnored(t *testing.T) {
	root := writeVault(t, "GREEN:\n  - \"Topics/**\"\n", map[string]string{
		"Topics/a.md": "---\ntlp: fuchsia\n---\n\nbody\n",
		"Topics/b.md": "no frontmatter at all\n",
	})

	for _, name := range []string{"a.md", "b.md"} {
		c := Classify(filepath.Join(root, "Topics", name))
		if c == nil {
			t.Fatalf("%s: expected classification", name)
		}
		if c.Level != Green {
			t.Errorf("%s: Level = %v, want Green (invalid override ignored)", name, c.Level)
		}
	}
}

func TestClassify_NestedVaultWins(t *testing.T) {
	outer := writeVault(t, "RED:\n  - \"**\"\n", nil)
	inner := filepath.Join(outer, "sub")
	if err := os.MkdirAll(inner, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(inner, ".tlp"), []byte("GREEN:\n  - \"**\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(inner, "note.md")
	if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := Classify(path)
	if c == nil {
		t.Fatal("expected classification")
	}
	if c.VaultRoot != inner {
		t.Errorf("VaultRoot = %q, want nearest vault %q", c.VaultRoot, inner)
	}
	if c.Level != Green {
		t.Errorf("Level = %v, want Green from the nearest policy", c.Level)
	}
}

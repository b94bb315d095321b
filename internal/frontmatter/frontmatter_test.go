package frontmatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	content := "---\ntitle: Hello\ntlp: RED\n---\nBody"

	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"tlp", "RED", true},
		{"title", "Hello", true},
		{"missing", "", false},
	}

	for _, tt := range tests {
		got, ok := Get(content, tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Get(%q) = %q, %v; want %q, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestGet_NoFrontmatter(t *testing.T) {
	if _, ok := Get("Just a plain file", "tlp"); ok {
		t.Error("expected no value without frontmatter")
	}
}

func TestGet_ColonInValue(t *testing.T) {
	content := "---\nurl: https://example.com\n---\n"
	got, ok := Get(content, "url")
	if !ok || got != "https://example.com" {
		t.Errorf("Get(url) = %q, %v", got, ok)
	}
}

func TestGet_InvalidYAML(t *testing.T) {
	content := "---\ntlp: [unclosed\n---\nBody"
	if _, ok := Get(content, "tlp"); ok {
		t.Error("invalid frontmatter YAML should read as absent")
	}
}

func TestSet_ExistingKey(t *testing.T) {
	content := "---\ntitle: Hello\ntlp: GREEN\n---\nBody"
	result := Set(content, "tlp", "RED")

	if !strings.Contains(result, "tlp: RED") {
		t.Errorf("missing updated key in %q", result)
	}
	if strings.Contains(result, "tlp: GREEN") {
		t.Errorf("old value survived in %q", result)
	}
	if !strings.Contains(result, "Body") {
		t.Errorf("body lost in %q", result)
	}
}

func TestSet_NewKey(t *testing.T) {
	content := "---\ntitle: Hello\n---\nBody"
	result := Set(content, "tlp", "RED")

	if !strings.Contains(result, "tlp: RED") || !strings.Contains(result, "title: Hello") {
		t.Errorf("Set produced %q", result)
	}
}

func TestSet_NoFrontmatter(t *testing.T) {
	result := Set("Just a plain file", "tlp", "RED")

	if !strings.HasPrefix(result, "---\ntlp: RED\n---") {
		t.Errorf("Set produced %q", result)
	}
	if !strings.Contains(result, "Just a plain file") {
		t.Errorf("content lost in %q", result)
	}
}

func TestSet_EmptyContent(t *testing.T) {
	result := Set("", "tlp", "RED")
	if !strings.Contains(result, "tlp: RED") {
		t.Errorf("Set produced %q", result)
	}
}

func TestSet_Idempotent(t *testing.T) {
	content := "---\ntlp: RED\n---\nBody"
	if got := Set(content, "tlp", "RED"); got != content {
		t.Errorf("re-setting the same value changed content: %q", got)
	}
}

func TestSet_NoExtraBlankLines(t *testing.T) {
	result := Set("---\ntitle: Hello\n---\nBody", "tlp", "RED")
	if strings.Contains(result, "\n\n\n") {
		t.Errorf("Set introduced blank-line runs: %q", result)
	}
}

func TestListMarkdown(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.md", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0755); err != nil {
		t.Fatal(err)
	}

	files := ListMarkdown(dir)
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.md" || filepath.Base(files[1]) != "b.md" {
		t.Errorf("want sorted [a.md b.md], got %v", files)
	}
}

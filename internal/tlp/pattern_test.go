package tlp

import "testing"

func TestMatchPattern_ExtensionForm(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"foo/bar.pdf", "*.pdf", true},
		{"deep/nested/file.xlsx", "*.xlsx", true},
		{"foo/bar.txt", "*.pdf", false},
		{"bar.pdf", "*.pdf", true},
	}

	for _, tt := range tests {
		if got := MatchPattern(tt.path, tt.pattern); got != tt.want {
			t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestMatchPattern_DirectoryForm(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"Resources/Contacts/john.md", "Resources/Contacts/**", true},
		{"Resources/Contacts/sub/deep.md", "Resources/Contacts/**", true},
		{"Resources/ContactsExtra/john.md", "Resources/Contacts/**", false},
		// The pattern protects the directory itself too.
		{"Contacts", "Contacts/**", true},
	}

	for _, tt := range tests {
		if got := MatchPattern(tt.path, tt.pattern); got != tt.want {
			t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

func TestMatchPattern_ExactForm(t *testing.T) {
	if !MatchPattern("AI/Identity.md", "AI/Identity.md") {
		t.Error("exact path should match itself")
	}
	if MatchPattern("AI/Identity.md.bak", "AI/Identity.md") {
		t.Error("exact match must not be a prefix match")
	}
	if MatchPattern("file.md", "") {
		t.Error("empty pattern must not match")
	}
}

func TestMatchPattern_Catchall(t *testing.T) {
	for _, path := range []string{"any/deep/path.md", "file.txt", "a"} {
		if !MatchPattern(path, "**") {
			t.Errorf("MatchPattern(%q, \"**\") = false, want true", path)
		}
	}
}

// Matching is case-sensitive, following filesystem convention.
func TestMatchPattern_CaseSensitive(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"notes/FILE.PDF", "*.pdf", false},
		{"notes/file.pdf", "*.PDF", false},
		{"journals/note.md", "Journals/**", false},
		{"Journals/note.md", "Journals/**", true},
		{"ai/identity.md", "AI/Identity.md", false},
	}

	for _, tt := range tests {
		if got := MatchPattern(tt.path, tt.pattern); got != tt.want {
			t.Errorf("MatchPattern(%q, %q) = %v, want %v", tt.path, tt.pattern, got, tt.want)
		}
	}
}

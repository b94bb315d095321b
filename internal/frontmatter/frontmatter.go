// Package frontmatter reads and writes YAML frontmatter blocks delimited
// by "---" lines at the top of markdown files.
package frontmatter

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// split extracts the YAML text between the --- delimiters and the body
// that follows. Returns false when the content has no frontmatter block.
func split(content string) (yamlText, body string, ok bool) {
	if !strings.HasPrefix(content, "---") {
		return "", "", false
	}

	rest := strings.TrimPrefix(content[3:], "\n")
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return "", "", false
	}

	yamlText = rest[:end]
	body = strings.TrimPrefix(rest[end+4:], "\n")
	return yamlText, body, true
}

// parseMapping unmarshals frontmatter YAML into a mapping node, or nil if
// the text is not a valid mapping.
func parseMapping(yamlText string) *yaml.Node {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(yamlText), &doc); err != nil {
		return nil
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil
	}
	return doc.Content[0]
}

// Get extracts a frontmatter value by key. Scalar values are returned as
// their literal text; anything structured is re-serialized. Returns false
// when there is no frontmatter, the YAML is invalid, or the key is absent.
func Get(content, key string) (string, bool) {
	yamlText, _, ok := split(content)
	if !ok {
		return "", false
	}
	mapping := parseMapping(yamlText)
	if mapping == nil {
		return "", false
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != key {
			continue
		}
		val := mapping.Content[i+1]
		if val.Kind == yaml.ScalarNode {
			return val.Value, true
		}
		out, err := yaml.Marshal(val)
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(string(out)), true
	}
	return "", false
}

// Set writes a frontmatter key, creating the frontmatter block if the
// content has none and updating in place if the key already exists.
// Existing keys keep their declaration order.
func Set(content, key, value string) string {
	if yamlText, body, ok := split(content); ok {
		mapping := parseMapping(yamlText)
		if mapping == nil {
			mapping = &yaml.Node{Kind: yaml.MappingNode}
		}
		upsert(mapping, key, value)
		serialized := marshalMapping(mapping)

		if body == "" {
			return "---\n" + serialized + "---"
		}
		return "---\n" + serialized + "---\n" + body
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	upsert(mapping, key, value)
	return "---\n" + marshalMapping(mapping) + "---\n\n" + content
}

func upsert(mapping *yaml.Node, key, value string) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			val := mapping.Content[i+1]
			val.Kind = yaml.ScalarNode
			val.Tag = ""
			val.Style = 0
			val.Value = value
			val.Content = nil
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: value},
	)
}

func marshalMapping(mapping *yaml.Node) string {
	out, err := yaml.Marshal(mapping)
	if err != nil {
		return ""
	}
	return string(out)
}

// ListMarkdown lists the .md files directly inside dir (non-recursive),
// sorted by name. Unreadable directories yield an empty list.
func ListMarkdown(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), ".md") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files
}

package tlp

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rule is one (level, pattern) pair from a .tlp policy file.
type Rule struct {
	Level   Level
	Pattern string
}

// Policy is the ordered rule list parsed from a .tlp file. Rules keep
// their textual declaration order across all level headings, because
// classification is first-match-wins over the combined order, not
// grouped by level.
type Policy struct {
	Rules []Rule
}

// ParsePolicy parses .tlp policy content: a YAML mapping of level names
// to lists of pattern strings, e.g.
//
//	RED:
//	  - "*.pdf"
//	AMBER:
//	  - "Journals/**"
//
// The yaml.Node API is used instead of a map so the declaration order of
// rules survives parsing. Any structural problem is an error; callers
// treat parse errors as fail-closed RED.
func ParsePolicy(data []byte) (*Policy, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	p := &Policy{}
	if len(doc.Content) == 0 {
		// Empty file: a valid vault where everything defaults to AMBER.
		return p, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("policy must be a mapping of level names to pattern lists")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		level, ok := ParseLevel(key.Value)
		if !ok {
			return nil, fmt.Errorf("line %d: unknown level %q", key.Line, key.Value)
		}

		if val.Kind == yaml.ScalarNode && val.Tag == "!!null" {
			continue // "RED:" with no patterns
		}
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: %s must list patterns", val.Line, key.Value)
		}

		for _, item := range val.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: pattern must be a string", item.Line)
			}
			p.Rules = append(p.Rules, Rule{Level: level, Pattern: item.Value})
		}
	}

	return p, nil
}

// PathLevel classifies a vault-relative path against the rule list.
// The first matching rule wins; unmatched paths default to AMBER.
func (p *Policy) PathLevel(relPath string) Level {
	for _, r := range p.Rules {
		if MatchPattern(relPath, r.Pattern) {
			return r.Level
		}
	}
	return Amber
}

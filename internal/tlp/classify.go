package tlp

import (
	"os"
	"path/filepath"

	"github.com/contextsec/tlpguard/internal/frontmatter"
	"github.com/contextsec/tlpguard/internal/vault"
)

// OverrideKey is the frontmatter field carrying a per-file level override.
const OverrideKey = "tlp"

// Classification is the result of classifying a single file.
type Classification struct {
	Level     Level
	RelPath   string
	VaultRoot string

	// ConfigError is set when the vault's policy file exists but cannot
	// be read or parsed. The level is then forced to RED regardless of
	// any rule content.
	ConfigError bool
}

// Classify resolves the effective TLP level for filePath.
//
// A nil result means the file lives outside any vault — no ancestor
// directory holds a policy file — which is not an error, just "no
// opinion". An unreadable or unparsable policy file yields RED with
// ConfigError set. Otherwise the effective level is the more restrictive
// of the path-derived level and the file's frontmatter override; an
// override can escalate but never relax.
func Classify(filePath string) *Classification {
	root, ok := vault.Find(filePath)
	if !ok {
		return nil
	}

	rel, err := filepath.Rel(root, filePath)
	if err != nil {
		return nil
	}
	rel = filepath.ToSlash(rel)

	c := &Classification{RelPath: rel, VaultRoot: root}

	data, err := os.ReadFile(filepath.Join(root, vault.PolicyFileName))
	if err != nil {
		c.Level = Red
		c.ConfigError = true
		return c
	}
	policy, err := ParsePolicy(data)
	if err != nil {
		c.Level = Red
		c.ConfigError = true
		return c
	}

	c.Level = policy.PathLevel(rel)

	// Frontmatter override. Unreadable files and unrecognized tokens
	// simply mean "no override".
	if content, err := os.ReadFile(filePath); err == nil {
		if token, ok := frontmatter.Get(string(content), OverrideKey); ok {
			if override, ok := ParseLevel(token); ok {
				c.Level = MostRestrictive(c.Level, override)
			}
		}
	}

	return c
}

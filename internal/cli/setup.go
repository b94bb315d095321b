package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"
)

var disableFlag bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up tlpguard for your environment",
	Long: `Set up tlpguard integration with agent tooling.

  tlpguard setup claude-code             # install the PreToolUse hook
  tlpguard setup claude-code --disable   # remove it`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var setupClaudeCodeCmd = &cobra.Command{
	Use:   "claude-code",
	Short: "Install the Claude Code PreToolUse hook",
	Long: `Install or remove the PreToolUse hook so every Read, Edit, Write and
Bash tool call Claude Code makes is checked against the governing .tlp
policy before it runs.

  tlpguard setup claude-code             # enable hook
  tlpguard setup claude-code --disable   # disable hook`,
	RunE: setupClaudeCodeCommand,
}

func init() {
	setupClaudeCodeCmd.Flags().BoolVar(&disableFlag, "disable", false, "Remove the tlpguard hook")
	setupCmd.AddCommand(setupClaudeCodeCmd)
	rootCmd.AddCommand(setupCmd)
}

var tlpguardHookEntry = map[string]interface{}{
	"matcher": "Read|Edit|Write|Bash",
	"hooks": []interface{}{
		map[string]interface{}{
			"type":    "command",
			"command": "tlpguard hook",
		},
	},
}

func setupClaudeCodeCommand(cmd *cobra.Command, args []string) error {
	settingsPath := filepath.Join(os.Getenv("HOME"), ".claude", "settings.json")

	if disableFlag {
		return disableClaudeCodeHook(settingsPath)
	}

	if _, err := exec.LookPath("tlpguard"); err != nil {
		fmt.Println("tlpguard not found in PATH — install the binary first.")
		return nil
	}

	settings, err := readClaudeSettings(settingsPath)
	if err != nil {
		return err
	}

	hooks := getOrCreateMap(settings, "hooks")
	preToolUse, _ := hooks["PreToolUse"].([]interface{})

	for _, entry := range preToolUse {
		if isTlpguardHookEntry(entry) {
			fmt.Printf("Claude Code hook already configured: %s\n", settingsPath)
			return nil
		}
	}

	hooks["PreToolUse"] = append(preToolUse, tlpguardHookEntry)
	settings["hooks"] = hooks

	if err := writeClaudeSettings(settingsPath, settings); err != nil {
		return err
	}

	fmt.Printf("PreToolUse hook installed: %s\n", settingsPath)
	fmt.Println()
	fmt.Println("Every Read, Edit, Write and Bash tool call is now checked against")
	fmt.Println("the governing .tlp policy before it runs.")
	fmt.Println()
	fmt.Println("To disable: tlpguard setup claude-code --disable")
	return nil
}

func disableClaudeCodeHook(settingsPath string) error {
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		fmt.Println("No settings.json found for Claude Code — nothing to disable.")
		return nil
	}

	settings, err := readClaudeSettings(settingsPath)
	if err != nil {
		return err
	}

	hooks, ok := settings["hooks"].(map[string]interface{})
	if !ok {
		fmt.Println("Claude Code settings.json has no hooks — nothing to disable.")
		return nil
	}

	preToolUse, _ := hooks["PreToolUse"].([]interface{})
	filtered := preToolUse[:0]
	removed := false
	for _, entry := range preToolUse {
		if isTlpguardHookEntry(entry) {
			removed = true
			continue
		}
		filtered = append(filtered, entry)
	}

	if !removed {
		fmt.Println("tlpguard hook not found in Claude Code settings — nothing to disable.")
		return nil
	}

	if len(filtered) == 0 {
		delete(hooks, "PreToolUse")
	} else {
		hooks["PreToolUse"] = filtered
	}
	if len(hooks) == 0 {
		delete(settings, "hooks")
	} else {
		settings["hooks"] = hooks
	}

	if err := writeClaudeSettings(settingsPath, settings); err != nil {
		return err
	}

	fmt.Printf("tlpguard hook disabled for Claude Code\n")
	fmt.Println("Re-enable anytime with: tlpguard setup claude-code")
	return nil
}

func isTlpguardHookEntry(entry interface{}) bool {
	m, ok := entry.(map[string]interface{})
	if !ok {
		return false
	}
	subHooks, _ := m["hooks"].([]interface{})
	for _, h := range subHooks {
		if hm, ok := h.(map[string]interface{}); ok {
			if hm["command"] == "tlpguard hook" {
				return true
			}
		}
	}
	return false
}

func readClaudeSettings(path string) (map[string]interface{}, error) {
	settings := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	return settings, nil
}

func writeClaudeSettings(path string, settings map[string]interface{}) error {
	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func getOrCreateMap(parent map[string]interface{}, key string) map[string]interface{} {
	if v, ok := parent[key].(map[string]interface{}); ok {
		return v
	}
	m := make(map[string]interface{})
	parent[key] = m
	return m
}

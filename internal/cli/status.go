package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contextsec/tlpguard/internal/config"
	"github.com/contextsec/tlpguard/internal/tlp"
	"github.com/contextsec/tlpguard/internal/vault"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show tlpguard status — hook, vault, audit log",
	RunE:  statusCommand,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusCommand(cmd *cobra.Command, args []string) error {
	cfg, _ := config.Load(logPath)

	binPath, err := os.Executable()
	if err != nil {
		binPath = "unknown"
	}
	fmt.Printf("Binary:     %s (%s)\n", binPath, Version)

	if cfg != nil {
		fmt.Printf("Config:     %s\n", cfg.ConfigDir)
		if _, err := os.Stat(cfg.LogPath); err == nil {
			fmt.Printf("Audit log:  %s\n", cfg.LogPath)
		} else {
			fmt.Printf("Audit log:  %s (not created yet)\n", cfg.LogPath)
		}
	}

	settingsPath := filepath.Join(os.Getenv("HOME"), ".claude", "settings.json")
	if claudeHookInstalled(settingsPath) {
		fmt.Println("Hook:       installed (Claude Code PreToolUse)")
	} else {
		fmt.Println("Hook:       not installed — run: tlpguard setup claude-code")
	}

	root, ok := vault.FindFromCwd()
	if !ok {
		fmt.Println("Vault:      none (current directory is ungoverned)")
		return nil
	}
	fmt.Printf("Vault:      %s\n", root)

	data, err := os.ReadFile(filepath.Join(root, vault.PolicyFileName))
	if err != nil {
		fmt.Println("Policy:     UNREADABLE — all files fail closed to RED")
		return nil
	}
	policy, err := tlp.ParsePolicy(data)
	if err != nil {
		fmt.Printf("Policy:     MALFORMED (%v) — all files fail closed to RED\n", err)
		return nil
	}
	fmt.Printf("Policy:     %d rule(s)\n", len(policy.Rules))
	return nil
}

func claudeHookInstalled(settingsPath string) bool {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return false
	}
	var settings map[string]interface{}
	if err := json.Unmarshal(data, &settings); err != nil {
		return false
	}
	hooks, _ := settings["hooks"].(map[string]interface{})
	preToolUse, _ := hooks["PreToolUse"].([]interface{})
	for _, entry := range preToolUse {
		if isTlpguardHookEntry(entry) {
			return true
		}
	}
	return false
}

package cli

import (
	"github.com/spf13/cobra"
)

var logPath string

var rootCmd = &cobra.Command{
	Use:   "tlpguard",
	Short: "tlpguard - TLP sensitivity gate for AI agent file access",
	Long: `tlpguard governs whether an AI agent may read or modify files in a
vault — a directory tree rooted at a .tlp policy file. Files classify as
RED, AMBER, GREEN or CLEAR; RED files are off-limits, AMBER files are
only visible through a redacting reader that strips #tlp/red sections
and credential-shaped secrets, and edits are merged back without the
agent ever observing the hidden content.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Path to audit log file (default: ~/.tlpguard/audit.jsonl)")
}

func Execute() error {
	return rootCmd.Execute()
}

package cli

import (
	"fmt"

	"github.com/contextsec/tlpguard/internal/tlp"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Show a file's effective TLP classification",
	Args:  cobra.ExactArgs(1),
	RunE:  classifyCommand,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func classifyCommand(cmd *cobra.Command, args []string) error {
	c := tlp.Classify(args[0])
	if c == nil {
		fmt.Println("ungoverned (no .tlp file in any parent directory)")
		return nil
	}

	fmt.Printf("Level:  TLP:%s\n", c.Level)
	fmt.Printf("Vault:  %s\n", c.VaultRoot)
	fmt.Printf("Path:   %s\n", c.RelPath)
	if c.ConfigError {
		fmt.Println("Config: MALFORMED — fail-closed to RED until fixed")
	}
	return nil
}

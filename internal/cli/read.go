package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/contextsec/tlpguard/internal/redact"
	"github.com/contextsec/tlpguard/internal/tlp"
	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print a file with TLP sections and secrets redacted",
	Long: `Print file content gated by its TLP classification.

RED files are refused. AMBER files pass through the redaction pipeline:
#tlp/red sections collapse to [REDACTED] and credential-shaped strings
become [SECRET REDACTED]. GREEN, CLEAR and ungoverned files print as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: readCommand,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func readCommand(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	c := tlp.Classify(filePath)
	if c != nil {
		if c.ConfigError {
			return errors.New("malformed .tlp config — all files treated as RED until fixed")
		}
		if c.Level == tlp.Red {
			return fmt.Errorf("TLP:RED — access blocked for: %s", c.RelPath)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	// GREEN, CLEAR and ungoverned content is shown raw.
	if c == nil || c.Level != tlp.Amber {
		fmt.Print(string(data))
		return nil
	}

	res := redact.Pipeline{}.Apply(string(data))
	if len(res.Secrets) > 0 {
		fmt.Fprintf(os.Stderr, "WARNING: secret(s) detected and redacted in %s. Consider rotating the exposed key(s).\n", filePath)
	}
	fmt.Print(res.Output)
	return nil
}

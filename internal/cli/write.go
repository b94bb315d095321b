package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/contextsec/tlpguard/internal/edit"
	"github.com/contextsec/tlpguard/internal/redact"
	"github.com/contextsec/tlpguard/internal/tlp"
	"github.com/spf13/cobra"
)

var (
	writeOld     string
	writeNew     string
	writeBefore  string
	writeAfter   string
	writeContent string
)

var writeCmd = &cobra.Command{
	Use:   "write <file>",
	Short: "Write a file while preserving its hidden TLP sections and secrets",
	Long: `Modify a vault file without ever exposing its hidden content.

Three modes:

  tlpguard write note.md                          # full overwrite, new content on stdin
  tlpguard write note.md --old TEXT --new TEXT    # replace one exact occurrence
  tlpguard write note.md --before MARKER --content TEXT
  tlpguard write note.md --after  MARKER --content TEXT

Overwrite mode expects the content you produce from 'tlpguard read':
every [REDACTED] and [SECRET REDACTED] placeholder must survive the edit
exactly once per hidden chunk, and is swapped back for the original
hidden text before the file is persisted. Any count mismatch refuses the
write and leaves the file untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: writeCommand,
}

func init() {
	writeCmd.Flags().StringVar(&writeOld, "old", "", "Exact string to replace (must occur exactly once)")
	writeCmd.Flags().StringVar(&writeNew, "new", "", "Replacement string")
	writeCmd.Flags().StringVar(&writeBefore, "before", "", "Insert content before this marker line")
	writeCmd.Flags().StringVar(&writeAfter, "after", "", "Insert content after this marker line")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Content to insert")
	rootCmd.AddCommand(writeCmd)
}

// unescapeShell undoes the \! escaping some zsh setups apply to bang
// characters even inside single quotes, so callers don't need workarounds.
func unescapeShell(s string) string {
	return strings.ReplaceAll(s, `\!`, "!")
}

func writeCommand(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	if c := tlp.Classify(filePath); c != nil {
		if c.ConfigError {
			return errors.New("malformed .tlp config — all files treated as RED until fixed")
		}
		if c.Level == tlp.Red {
			return fmt.Errorf("TLP:RED — write refused for: %s", c.RelPath)
		}
	}

	switch {
	case cmd.Flags().Changed("old") || cmd.Flags().Changed("new"):
		if writeBefore != "" || writeAfter != "" || writeContent != "" {
			return errors.New("--old/--new cannot be combined with insert flags")
		}
		return runReplace(filePath)
	case writeBefore != "" || writeAfter != "" || writeContent != "":
		return runInsert(filePath)
	default:
		return runOverwrite(filePath)
	}
}

func runReplace(filePath string) error {
	old := unescapeShell(writeOld)
	replacement := unescapeShell(writeNew)
	if old == "" {
		return errors.New("--old is required and cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	result, err := edit.ReplaceExact(string(content), old, replacement)
	if err != nil {
		if errors.Is(err, edit.ErrPlaceholder) {
			return errors.New("old string contains redaction placeholders — cannot edit hidden content; edit only visible text")
		}
		if errors.Is(err, edit.ErrNotFound) {
			return fmt.Errorf("old string not found in %s (if the file changed externally, re-read it and retry)", filePath)
		}
		return err
	}

	if err := edit.WriteFileAtomic(filePath, []byte(result)); err != nil {
		return fmt.Errorf("cannot write %s: %w", filePath, err)
	}
	fmt.Println(filePath)
	return nil
}

func runInsert(filePath string) error {
	if writeBefore != "" && writeAfter != "" {
		return errors.New("cannot use both --before and --after")
	}
	if writeBefore == "" && writeAfter == "" {
		return errors.New("--before or --after is required for insert mode")
	}
	if writeContent == "" {
		return errors.New("--content is required for insert mode")
	}

	marker := unescapeShell(writeBefore)
	pos := edit.Before
	if writeAfter != "" {
		marker = unescapeShell(writeAfter)
		pos = edit.After
	}
	text := unescapeShell(writeContent)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	result, err := edit.InsertAt(string(content), marker, text, pos)
	if err != nil {
		if errors.Is(err, edit.ErrPlaceholder) {
			return errors.New("content contains redaction placeholders — cannot insert hidden content")
		}
		if errors.Is(err, edit.ErrNotFound) {
			return fmt.Errorf("marker not found in %s", filePath)
		}
		var ambiguous *edit.AmbiguousError
		if errors.As(err, &ambiguous) {
			return fmt.Errorf("marker found %d times in %s — must be unique", ambiguous.Count, filePath)
		}
		return err
	}

	if err := edit.WriteFileAtomic(filePath, []byte(result)); err != nil {
		return fmt.Errorf("cannot write %s: %w", filePath, err)
	}
	fmt.Println(filePath)
	return nil
}

func runOverwrite(filePath string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("cannot read stdin: %w", err)
	}
	newContent := string(data)
	if newContent == "" {
		return fmt.Errorf("refusing to write empty content to %s", filePath)
	}

	original, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		// New file — no hidden content to preserve, but writing literal
		// placeholder text would be a mistake either way.
		if edit.ContainsPlaceholder(newContent) {
			return errors.New("new content contains redaction placeholders but there is no original file to restore from")
		}
		if err := edit.WriteFileAtomic(filePath, data); err != nil {
			return fmt.Errorf("cannot write %s: %w", filePath, err)
		}
		fmt.Println(filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", filePath, err)
	}

	hidden := redact.ExtractHidden(string(original))

	if hidden.Empty() && edit.ContainsPlaceholder(newContent) {
		return errors.New("new content contains redaction placeholders but the original file has no hidden content to restore — this would write literal marker text")
	}

	merged, err := hidden.Restore(newContent)
	if err != nil {
		var mismatch *redact.MismatchError
		if errors.As(err, &mismatch) {
			return fmt.Errorf("restoration failed: %v\nThe original file was NOT modified", mismatch)
		}
		return err
	}

	if err := edit.WriteFileAtomic(filePath, []byte(merged)); err != nil {
		return fmt.Errorf("cannot write %s: %w", filePath, err)
	}
	if !hidden.Empty() {
		fmt.Fprintf(os.Stderr, "Restored %d TLP block(s), %d inline chunk(s), %d secret(s)\n",
			len(hidden.Blocks), len(hidden.Inlines), len(hidden.Secrets))
	}
	fmt.Println(filePath)
	return nil
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/contextsec/tlpguard/internal/edit"
	"github.com/contextsec/tlpguard/internal/frontmatter"
	"github.com/contextsec/tlpguard/internal/vault"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var metaYes bool

var metaCmd = &cobra.Command{
	Use:   "meta <get|set|has> <directory> <key> [value]",
	Short: "Bulk frontmatter operations without reading file bodies",
	Long: `Get, set or check a frontmatter key across every .md file in a
directory without printing any file body — safe to run against AMBER
directories.

  tlpguard meta set Journals tlp red     # escalate a whole directory
  tlpguard meta get Journals tlp
  tlpguard meta has Journals tlp

Relative directories resolve against the vault root found by walking up
from the current directory.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: metaCommand,
}

func init() {
	metaCmd.Flags().BoolVar(&metaYes, "yes", false, "Skip the confirmation prompt for bulk set")
	rootCmd.AddCommand(metaCmd)
}

func metaCommand(cmd *cobra.Command, args []string) error {
	action, dir, key := args[0], args[1], args[2]

	target := dir
	if !filepath.IsAbs(dir) {
		root, ok := vault.FindFromCwd()
		if !ok {
			return errors.New("cannot find vault root (no .tlp file in parent directories)")
		}
		target = filepath.Join(root, dir)
	}

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", dir)
	}

	switch action {
	case "set":
		if len(args) < 4 {
			return errors.New("set requires a value")
		}
		return metaSet(target, key, args[3])
	case "get":
		return metaGet(target, key)
	case "has":
		return metaHas(target, key)
	default:
		return fmt.Errorf("unknown action: %s (use set, get, or has)", action)
	}
}

// confirmBulkSet asks before touching a directory's worth of files. In a
// non-interactive session there is nobody to ask, so the caller's intent
// stands.
func confirmBulkSet(n int, key, value string) bool {
	if metaYes || !term.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}

	fmt.Fprintf(os.Stderr, "Set %s: %s on %d file(s)? [y/N] ", key, value, n)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func metaSet(dir, key, value string) error {
	files := frontmatter.ListMarkdown(dir)
	if !confirmBulkSet(len(files), key, value) {
		return errors.New("aborted")
	}

	var count int
	for _, path := range files {
		name := filepath.Base(path)
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		updated := frontmatter.Set(string(content), key, value)
		if updated == string(content) {
			fmt.Printf("  ok:      %s\n", name)
			count++
			continue
		}
		if err := edit.WriteFileAtomic(path, []byte(updated)); err != nil {
			fmt.Fprintf(os.Stderr, "  error:   %s (%v)\n", name, err)
			continue
		}
		fmt.Printf("  updated: %s\n", name)
		count++
	}

	fmt.Println()
	fmt.Printf("Done: %d/%d files processed with %s: %s\n", count, len(files), key, value)
	return nil
}

func metaGet(dir, key string) error {
	files := frontmatter.ListMarkdown(dir)

	var count int
	for _, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), ".md")
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if val, ok := frontmatter.Get(string(content), key); ok {
			fmt.Printf("  %s: %s\n", name, val)
			count++
		}
	}

	fmt.Println()
	fmt.Printf("%d/%d files have %s set\n", count, len(files), key)
	return nil
}

func metaHas(dir, key string) error {
	files := frontmatter.ListMarkdown(dir)

	fmt.Printf("Files missing %s:\n", key)
	var missing int
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if _, ok := frontmatter.Get(string(content), key); !ok {
			fmt.Printf("  %s\n", filepath.Base(path))
			missing++
		}
	}

	fmt.Println()
	fmt.Printf("%d/%d files missing %s\n", missing, len(files), key)
	return nil
}

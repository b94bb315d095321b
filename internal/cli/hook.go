package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/contextsec/tlpguard/internal/config"
	"github.com/contextsec/tlpguard/internal/gate"
	"github.com/contextsec/tlpguard/internal/logger"
	"github.com/contextsec/tlpguard/internal/shellpath"
	"github.com/contextsec/tlpguard/internal/tlp"
	"github.com/spf13/cobra"
)

// hookInput is the JSON payload Claude Code sends to PreToolUse hooks:
// {"hook_event_name": "PreToolUse", "tool_name": "Read", "tool_input": {"file_path": "..."}}
type hookInput struct {
	HookEventName string    `json:"hook_event_name"`
	ToolName      string    `json:"tool_name"`
	ToolInput     toolInput `json:"tool_input"`
	Cwd           string    `json:"cwd"`
}

type toolInput struct {
	FilePath string `json:"file_path"`
	Command  string `json:"command"`
}

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "PreToolUse hook handler for Claude Code",
	Long: `Reads a PreToolUse JSON payload from stdin, classifies the target file
against the governing .tlp policy, and allows or blocks the tool call.

Exit code 0 allows the call; exit code 2 blocks it with the reason on
stderr. The hook's own failures always allow — a broken check must never
halt the agent's unrelated work.

Setup:
  tlpguard setup claude-code`,
	RunE: hookCommand,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func hookCommand(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil // fail open
	}

	var input hookInput
	if err := json.Unmarshal(data, &input); err != nil {
		fmt.Fprintf(os.Stderr, "[tlpguard] warning: could not parse hook input: %v\n", err)
		return nil // fail open
	}

	if input.ToolName == "Bash" && input.ToolInput.Command != "" {
		return gateBashCommand(input)
	}

	filePath := input.ToolInput.FilePath
	if filePath == "" {
		return nil // some tool calls legitimately have no file path
	}

	c := tlp.Classify(filePath)
	decision := gate.Evaluate(c, gate.OpForTool(input.ToolName))
	logDecision(input.ToolName, filePath, c, decision)
	applyDecision(decision)
	return nil
}

// gateBashCommand classifies every vault file a shell command references
// and blocks on the most restrictive outcome.
func gateBashCommand(input hookInput) error {
	for _, path := range shellpath.Extract(input.ToolInput.Command, input.Cwd) {
		c := tlp.Classify(path)
		if c == nil {
			continue
		}
		decision := gate.Evaluate(c, gate.OpForTool("Bash"))
		if decision.Verdict == gate.Block {
			logDecision("Bash", path, c, decision)
			applyDecision(decision)
			return nil
		}
	}
	return nil
}

func applyDecision(d gate.Decision) {
	switch d.Verdict {
	case gate.Block:
		fmt.Fprintln(os.Stderr, d.Message)
		os.Exit(2)
	case gate.AllowWithWarning:
		fmt.Println(d.Message)
	}
}

// logDecision appends the gate outcome to the audit log, best effort:
// audit failures never affect the decision.
func logDecision(toolName, filePath string, c *tlp.Classification, d gate.Decision) {
	cfg, err := config.Load(logPath)
	if err != nil {
		return
	}
	auditLogger, err := logger.New(cfg.LogPath)
	if err != nil {
		return
	}
	defer func() {
		_ = auditLogger.Close()
	}()

	event := logger.AuditEvent{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ToolName:  toolName,
		FilePath:  filePath,
		Decision:  verdictString(d.Verdict),
		Reason:    d.Message,
		Source:    "claude-code-hook",
	}
	if c != nil {
		event.RelPath = c.RelPath
		event.Level = c.Level.String()
		event.ConfigError = c.ConfigError
	}

	if err := auditLogger.Log(event); err != nil {
		fmt.Fprintf(os.Stderr, "[tlpguard] warning: audit log failed: %v\n", err)
	}
}

func verdictString(v gate.Verdict) string {
	switch v {
	case gate.Block:
		return "BLOCK"
	case gate.AllowWithWarning:
		return "ALLOW_WITH_WARNING"
	}
	return "ALLOW"
}

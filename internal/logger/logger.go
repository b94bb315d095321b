package logger

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/contextsec/tlpguard/internal/redact"
)

// AuditEvent is one gate decision, appended as a JSONL record.
type AuditEvent struct {
	Timestamp   string `json:"timestamp"`
	ToolName    string `json:"tool_name"`
	FilePath    string `json:"file_path"`
	RelPath     string `json:"rel_path,omitempty"`
	Level       string `json:"level,omitempty"`
	Decision    string `json:"decision"`
	Reason      string `json:"reason,omitempty"`
	ConfigError bool   `json:"config_error,omitempty"`
	Source      string `json:"source"`
}

type AuditLogger struct {
	file *os.File
	mu   sync.Mutex
}

func New(path string) (*AuditLogger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, err
	}

	return &AuditLogger{file: file}, nil
}

func (l *AuditLogger) Log(event AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A reason can quote file content; never log a live credential.
	event.Reason, _ = redact.StripSecrets(event.Reason)

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = l.file.Write(data)
	return err
}

func (l *AuditLogger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

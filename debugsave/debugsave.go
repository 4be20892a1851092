// Package debugsave writes prompts and responses to disk for inspection.
// Saving is best effort: failures are logged, never returned, so a broken
// debug directory cannot fail a model run.
package debugsave

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/modelkit/claudecode/provider"
)

// DefaultDir is used when debug saving is enabled without a path.
const DefaultDir = "claude_debug_prompts"

// Saver writes numbered prompt/response artifacts into a directory.
// A nil Saver is valid and saves nothing.
type Saver struct {
	dir    string
	logger *slog.Logger
	seq    atomic.Uint64
}

// FromSettings builds a Saver from the debug_save_prompts setting. The
// value may be a bool (true enables DefaultDir relative to the working
// directory) or a string path. Disabled or absent returns nil.
func FromSettings(settings provider.Settings, workingDir string, logger *slog.Logger) *Saver {
	raw, ok := settings[provider.KeyDebugSavePrompts]
	if !ok {
		return nil
	}

	var dir string
	switch v := raw.(type) {
	case bool:
		if !v {
			return nil
		}
		dir = filepath.Join(workingDir, DefaultDir)
	case string:
		if v == "" {
			return nil
		}
		dir = v
	default:
		return nil
	}

	return New(dir, logger)
}

// New creates a Saver writing into dir.
func New(dir string, logger *slog.Logger) *Saver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Saver{dir: dir, logger: logger}
}

// Dir returns the target directory, or "" for a nil Saver.
func (s *Saver) Dir() string {
	if s == nil {
		return ""
	}
	return s.dir
}

// SavePrompt writes the prompt text and returns the sequence number used,
// so the matching response can be filed alongside it.
func (s *Saver) SavePrompt(prompt string) uint64 {
	if s == nil {
		return 0
	}
	seq := s.seq.Add(1)
	s.write(s.fileName(seq, "prompt"), prompt)
	return seq
}

// SaveResponse writes the response content and run metadata under the
// sequence number returned by SavePrompt.
func (s *Saver) SaveResponse(seq uint64, resp *provider.Response) {
	if s == nil || resp == nil {
		return
	}
	body := resp.Content
	meta := fmt.Sprintf("model: %s\nsession: %s\nturns: %d\ncost_usd: %.6f\nduration: %s\n",
		resp.Model, resp.SessionID, resp.NumTurns, resp.CostUSD, resp.Duration)
	s.write(s.fileName(seq, "response"), body)
	s.write(s.fileName(seq, "meta"), meta)
}

// SaveError records a failed run's error text under the sequence number.
func (s *Saver) SaveError(seq uint64, err error) {
	if s == nil || err == nil {
		return
	}
	s.write(s.fileName(seq, "error"), err.Error())
}

func (s *Saver) fileName(seq uint64, kind string) string {
	stamp := time.Now().UTC().Format("20060102T150405")
	return fmt.Sprintf("%04d_%s_%s.txt", seq, stamp, kind)
}

func (s *Saver) write(name, content string) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Warn("debug save directory unavailable", "dir", s.dir, "error", err)
		return
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		s.logger.Warn("debug save failed", "path", path, "error", err)
	}
}

// Package jsonl reads stream-json transcript files written by the Claude
// CLI, one JSON event per line. Reading supports both completed files and
// real-time tailing of a file an active CLI run is still appending to.
package jsonl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/modelkit/claudecode/events"
)

// pollInterval is the fallback cadence when fsnotify is unavailable.
const pollInterval = 100 * time.Millisecond

// Reader reads a stream-json event file.
type Reader struct {
	path string
	file *os.File
}

// NewReader opens a stream-json file for reading.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stream-json file: %w", err)
	}
	return &Reader{path: path, file: file}, nil
}

// Path returns the file path being read.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// ReadAll reads every event in the file. Malformed lines are skipped: a
// live transcript can legitimately end mid-line.
func (r *Reader) ReadAll() ([]*events.Message, error) {
	if _, err := r.file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to start: %w", err)
	}

	var messages []*events.Message
	scanner := bufio.NewScanner(r.file)
	// Assistant turns with large tool results can run to megabytes.
	buf := make([]byte, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		msg, err := events.Decode(line)
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan stream-json: %w", err)
	}
	return messages, nil
}

// Tail follows the file and sends newly appended events to the returned
// channel. The channel is closed when the context is cancelled. Uses
// fsnotify with a polling fallback.
func (r *Reader) Tail(ctx context.Context) <-chan *events.Message {
	ch := make(chan *events.Message, 100)

	go func() {
		defer close(ch)

		// Only new content; the caller uses ReadAll for history.
		offset, err := r.file.Seek(0, io.SeekEnd)
		if err != nil {
			return
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			r.tailPolling(ctx, ch, offset)
			return
		}
		defer watcher.Close()

		// Watching the directory is more reliable than watching the file.
		if err := watcher.Add(filepath.Dir(r.path)); err != nil {
			r.tailPolling(ctx, ch, offset)
			return
		}

		r.tailWithWatcher(ctx, ch, watcher, offset)
	}()

	return ch
}

func (r *Reader) tailWithWatcher(ctx context.Context, ch chan<- *events.Message, watcher *fsnotify.Watcher, offset int64) {
	baseName := filepath.Base(r.path)
	reader := bufio.NewReader(r.file)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) {
				continue
			}

			offset = r.resetIfTruncated(reader, offset)
			offset = r.sendNewEvents(reader, ch, offset)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are usually recoverable; keep tailing.
		}
	}
}

func (r *Reader) tailPolling(ctx context.Context, ch chan<- *events.Message, offset int64) {
	reader := bufio.NewReader(r.file)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			offset = r.resetIfTruncated(reader, offset)
			offset = r.sendNewEvents(reader, ch, offset)
		}
	}
}

// resetIfTruncated rewinds when the file shrank under us.
func (r *Reader) resetIfTruncated(reader *bufio.Reader, offset int64) int64 {
	info, err := r.file.Stat()
	if err != nil {
		return offset
	}
	if info.Size() < offset {
		r.file.Seek(0, io.SeekStart)
		reader.Reset(r.file)
		return 0
	}
	return offset
}

func (r *Reader) sendNewEvents(reader *bufio.Reader, ch chan<- *events.Message, offset int64) int64 {
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			offset += int64(len(line))
			trimmed := strings.TrimSuffix(line, "\n")
			if trimmed != "" {
				if msg, decodeErr := events.Decode([]byte(trimmed)); decodeErr == nil {
					select {
					case ch <- msg:
					default:
						// Channel full, drop rather than block the watcher.
					}
				}
			}
		}
		if err != nil {
			return offset
		}
	}
}

// ReadFile reads all events from a file path.
// Convenience function that opens, reads, and closes the file.
func ReadFile(path string) ([]*events.Message, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadAll()
}

// WaitForFile blocks until path exists and is non-empty, using fsnotify on
// the parent directory with a polling fallback. Used to pick up capture
// files the CLI writes asynchronously.
func WaitForFile(ctx context.Context, path string) error {
	if ready(path) {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return waitPolling(ctx, path)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return waitPolling(ctx, path)
	}

	// The file may have appeared between the first check and watcher setup.
	if ready(path) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return waitPolling(ctx, path)
			}
			if event.Name == path && ready(path) {
				return nil
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return waitPolling(ctx, path)
			}
		}
	}
}

func waitPolling(ctx context.Context, path string) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ready(path) {
				return nil
			}
		}
	}
}

func ready(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Size() > 0
}

package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/claudecode/contract"
)

const sampleTranscript = `{"type":"system","subtype":"init","session_id":"sess-1","model":"sonnet"}
{"type":"assistant","session_id":"sess-1","message":{"model":"sonnet","content":[{"type":"text","text":"hi"}]}}

{"type":"result","subtype":"success","session_id":"sess-1","result":"hi","num_turns":1}
`

func writeTranscript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadAll(t *testing.T) {
	path := writeTranscript(t, sampleTranscript)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	msgs, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, contract.EventTypeSystem, msgs[0].Type)
	assert.Equal(t, contract.EventTypeResult, msgs[2].Type)
}

func TestReadAllSkipsMalformedLines(t *testing.T) {
	content := sampleTranscript + `{"type":"assistant","message":` + "\n"
	path := writeTranscript(t, content)

	msgs, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, msgs, 3, "truncated trailing line is skipped")
}

func TestReadAllIsRepeatable(t *testing.T) {
	path := writeTranscript(t, sampleTranscript)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	first, err := r.ReadAll()
	require.NoError(t, err)
	second, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}

func TestNewReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.jsonl"))
	assert.Error(t, err)
}

func TestTailReceivesAppendedEvents(t *testing.T) {
	path := writeTranscript(t, "")

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch := r.Tail(ctx)

	// Give the watcher a beat to attach before appending.
	time.Sleep(200 * time.Millisecond)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(`{"type":"assistant","session_id":"sess-1","message":{"model":"sonnet","content":[{"type":"text","text":"tailed"}]}}` + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case msg := <-ch:
		require.NotNil(t, msg)
		require.NotNil(t, msg.Assistant)
		assert.Equal(t, "tailed", msg.Assistant.Text())
	case <-ctx.Done():
		t.Fatal("no event received before timeout")
	}
}

func TestTailStopsOnCancel(t *testing.T) {
	path := writeTranscript(t, sampleTranscript)

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := r.Tail(ctx)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open, "channel must close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWaitForFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "capture.json")

	go func() {
		time.Sleep(150 * time.Millisecond)
		os.WriteFile(path, []byte(`{"ok":true}`), 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, WaitForFile(ctx, path))
}

func TestWaitForFileAlreadyPresent(t *testing.T) {
	path := writeTranscript(t, sampleTranscript)

	require.NoError(t, WaitForFile(context.Background(), path))
}

func TestWaitForFileContextCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	err := WaitForFile(ctx, filepath.Join(t.TempDir(), "never.json"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

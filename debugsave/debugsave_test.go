package debugsave

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/claudecode/provider"
)

func TestFromSettings(t *testing.T) {
	work := t.TempDir()

	tests := []struct {
		name    string
		value   any
		wantDir string
	}{
		{"absent", nil, ""},
		{"false", false, ""},
		{"empty string", "", ""},
		{"true uses default dir", true, filepath.Join(work, DefaultDir)},
		{"explicit path", "/var/debug", "/var/debug"},
		{"mistyped", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := provider.Settings{}
			if tt.value != nil {
				settings[provider.KeyDebugSavePrompts] = tt.value
			}

			s := FromSettings(settings, work, nil)
			if tt.wantDir == "" {
				assert.Nil(t, s)
			} else {
				require.NotNil(t, s)
				assert.Equal(t, tt.wantDir, s.Dir())
			}
		})
	}
}

func TestSavePromptAndResponse(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, nil)

	seq := s.SavePrompt("What is the capital of Norway?")
	require.NotZero(t, seq)
	s.SaveResponse(seq, &provider.Response{
		Content:   "Oslo",
		Model:     "sonnet",
		SessionID: "sess-1",
		NumTurns:  1,
	})

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var kinds []string
	for _, e := range entries {
		parts := strings.Split(strings.TrimSuffix(e.Name(), ".txt"), "_")
		kinds = append(kinds, parts[len(parts)-1])
		assert.True(t, strings.HasPrefix(e.Name(), "0001_"), "name = %q", e.Name())
	}
	assert.ElementsMatch(t, []string{"prompt", "response", "meta"}, kinds)
}

func TestSequenceNumbersIncrement(t *testing.T) {
	s := New(t.TempDir(), nil)

	first := s.SavePrompt("one")
	second := s.SavePrompt("two")
	assert.Equal(t, first+1, second)
}

func TestNilSaverIsNoOp(t *testing.T) {
	var s *Saver

	assert.Zero(t, s.SavePrompt("ignored"))
	s.SaveResponse(1, &provider.Response{Content: "ignored"})
	s.SaveError(1, os.ErrNotExist)
	assert.Empty(t, s.Dir())
}

func TestSaveFailureDoesNotPanic(t *testing.T) {
	// A file in place of the directory makes MkdirAll fail.
	base := t.TempDir()
	blocked := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	s := New(blocked, nil)
	s.SavePrompt("must not panic")
}

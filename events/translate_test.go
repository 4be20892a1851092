package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelkit/claudecode/provider"
)

func decodeLines(t *testing.T, lines ...string) []*Message {
	t.Helper()
	raw := make([][]byte, len(lines))
	for i, l := range lines {
		raw[i] = []byte(l)
	}
	msgs, err := DecodeAll(raw)
	require.NoError(t, err)
	return msgs
}

func TestTranslateFullRun(t *testing.T) {
	msgs := decodeLines(t, initLine, assistantLine, toolUseLine, toolResultLine, resultLine)

	resp, err := Translate(msgs)
	require.NoError(t, err)

	assert.Equal(t, "Hello world", resp.Content)
	assert.Equal(t, "claude-sonnet-4-20250514", resp.Model)
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, 2, resp.NumTurns)
	assert.Equal(t, 4200*time.Millisecond, resp.Duration)
	assert.InDelta(t, 0.0042, resp.CostUSD, 1e-9)

	require.Len(t, resp.ToolCalls, 1)
	assert.Equal(t, "Read", resp.ToolCalls[0].Name)

	// Usage accumulates across assistant turns.
	assert.Equal(t, 14, resp.Usage.InputTokens)
	assert.Equal(t, 7, resp.Usage.OutputTokens)
	assert.Equal(t, 21, resp.Usage.TotalTokens)
}

func TestTranslateErrorResult(t *testing.T) {
	msgs := decodeLines(t, initLine, assistantLine, errorResultLine)

	_, err := Translate(msgs)
	require.Error(t, err)

	var adapterErr *provider.Error
	require.ErrorAs(t, err, &adapterErr)
	assert.Equal(t, "translate", adapterErr.Op)
	assert.Contains(t, err.Error(), "error_during_execution")
}

func TestTranslatePrintModeFallback(t *testing.T) {
	// Print-mode runs have no assistant messages: the text rides on the
	// result message.
	msgs := decodeLines(t, resultLine)

	resp, err := Translate(msgs)
	require.NoError(t, err)
	assert.Equal(t, "Hello world", resp.Content)
}

func TestTranslateEmptyStream(t *testing.T) {
	_, err := Translate(nil)
	assert.Error(t, err)

	msgs := decodeLines(t, initLine)
	_, err = Translate(msgs)
	assert.Error(t, err)
}

func TestTranslateDefaultFinishReason(t *testing.T) {
	msgs := decodeLines(t, resultLine)

	resp, err := Translate(msgs)
	require.NoError(t, err)
	assert.Equal(t, "end_turn", resp.FinishReason)
}

package events

import (
	"fmt"
	"time"

	"github.com/modelkit/claudecode/contract"
	"github.com/modelkit/claudecode/provider"
)

// Translate folds a decoded event sequence into the adapter's response
// object. Text from all assistant turns is concatenated, tool calls are
// collected in order, and usage accumulates across turns. The final result
// message, when present, supplies cost, duration, turn count, and session
// id.
//
// A result with an error subtype translates to an error, not a Response.
func Translate(messages []*Message) (*provider.Response, error) {
	resp := &provider.Response{}
	var sawAssistant bool

	for _, msg := range messages {
		if msg == nil {
			continue
		}
		if resp.SessionID == "" && msg.SessionID != "" {
			resp.SessionID = msg.SessionID
		}

		switch msg.Type {
		case contract.EventTypeSystem:
			if msg.System != nil && msg.System.Subtype == contract.SubtypeInit && resp.Model == "" {
				resp.Model = msg.System.Model
			}

		case contract.EventTypeAssistant:
			if msg.Assistant == nil {
				continue
			}
			sawAssistant = true
			resp.Content += msg.Assistant.Text()
			resp.Model = msg.Assistant.Model()
			resp.FinishReason = msg.Assistant.StopReason()

			for _, block := range msg.Assistant.ToolUses() {
				resp.ToolCalls = append(resp.ToolCalls, provider.ToolCall{
					ID:        block.ID,
					Name:      block.Name,
					Arguments: block.Input,
				})
			}

			usage := msg.Assistant.Usage()
			resp.Usage.Add(provider.TokenUsage{
				InputTokens:              usage.InputTokens,
				OutputTokens:             usage.OutputTokens,
				CacheCreationInputTokens: usage.CacheCreationInputTokens,
				CacheReadInputTokens:     usage.CacheReadInputTokens,
			})

		case contract.EventTypeResult:
			if msg.Result == nil {
				continue
			}
			if msg.Result.IsError {
				return nil, provider.NewError("translate",
					fmt.Errorf("run failed (%s): %s", msg.Result.Subtype, msg.Result.Result))
			}
			resp.CostUSD = msg.Result.TotalCostUSD
			resp.NumTurns = msg.Result.NumTurns
			resp.Duration = time.Duration(msg.Result.DurationMS) * time.Millisecond
			// Print-mode runs put the final text on the result message.
			if resp.Content == "" && msg.Result.Result != "" {
				resp.Content = msg.Result.Result
			}
		}
	}

	if !sawAssistant && resp.Content == "" {
		return nil, provider.NewError("translate", fmt.Errorf("no assistant output in event stream"))
	}

	resp.Usage.TotalTokens = resp.Usage.InputTokens + resp.Usage.OutputTokens
	if resp.FinishReason == "" {
		resp.FinishReason = contract.StopReasonEndTurn
	}
	return resp, nil
}

// DecodeAll decodes a batch of stream-json lines, skipping blank lines.
// A malformed line fails the whole batch: a truncated transcript should
// surface, not silently drop turns.
func DecodeAll(lines [][]byte) ([]*Message, error) {
	messages := make([]*Message, 0, len(lines))
	for i, line := range lines {
		if len(line) == 0 {
			continue
		}
		msg, err := Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

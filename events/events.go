// Package events decodes the Claude CLI's stream-json output into typed
// messages and translates a completed event sequence into the adapter's
// response objects.
//
// Each line of stream-json output is one JSON envelope whose "type" field
// selects the message shape: system (init), assistant, user (tool results),
// and a final result carrying run statistics.
package events

import (
	"encoding/json"
	"fmt"

	"github.com/modelkit/claudecode/contract"
)

// Message is one decoded stream-json envelope. Exactly one of the typed
// fields is populated, selected by Type.
type Message struct {
	// Type is the envelope type: system, assistant, user, result.
	Type string

	// SessionID is available on all messages after init.
	SessionID string

	// System is populated when Type == contract.EventTypeSystem.
	System *SystemMessage

	// Assistant is populated when Type == contract.EventTypeAssistant.
	Assistant *AssistantMessage

	// User is populated when Type == contract.EventTypeUser.
	User *UserMessage

	// Result is populated when Type == contract.EventTypeResult.
	Result *ResultMessage

	// Raw is the original JSON line for advanced consumers.
	Raw json.RawMessage
}

// SystemMessage carries session-level events. The init subtype announces
// the session id, model, and available tools.
type SystemMessage struct {
	Subtype   string   `json:"subtype"`
	SessionID string   `json:"session_id"`
	Model     string   `json:"model"`
	CWD       string   `json:"cwd"`
	Tools     []string `json:"tools"`
}

// AssistantMessage is a model response turn.
type AssistantMessage struct {
	Message   assistantBody `json:"message"`
	SessionID string        `json:"session_id"`
}

type assistantBody struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
	Usage      Usage          `json:"usage"`
}

// Model returns the model that produced this message.
func (m *AssistantMessage) Model() string { return m.Message.Model }

// StopReason returns why the model stopped generating.
func (m *AssistantMessage) StopReason() string { return m.Message.StopReason }

// Usage returns the token usage for this message.
func (m *AssistantMessage) Usage() Usage { return m.Message.Usage }

// Text concatenates all text content blocks.
func (m *AssistantMessage) Text() string {
	var text string
	for _, block := range m.Message.Content {
		if block.Type == contract.ContentTypeText {
			text += block.Text
		}
	}
	return text
}

// ToolUses returns all tool invocation blocks.
func (m *AssistantMessage) ToolUses() []ContentBlock {
	var tools []ContentBlock
	for _, block := range m.Message.Content {
		if block.Type == contract.ContentTypeToolUse {
			tools = append(tools, block)
		}
	}
	return tools
}

// UserMessage carries tool results fed back into the conversation.
type UserMessage struct {
	Message   userBody `json:"message"`
	SessionID string   `json:"session_id"`
}

type userBody struct {
	Content []ContentBlock `json:"content"`
}

// ToolResults returns all tool result blocks.
func (m *UserMessage) ToolResults() []ContentBlock {
	var results []ContentBlock
	for _, block := range m.Message.Content {
		if block.Type == contract.ContentTypeToolResult {
			results = append(results, block)
		}
	}
	return results
}

// ResultMessage is the final message of a run, carrying statistics.
type ResultMessage struct {
	Subtype      string  `json:"subtype"`
	IsError      bool    `json:"is_error"`
	DurationMS   int64   `json:"duration_ms"`
	DurationAPMS int64   `json:"duration_api_ms"`
	NumTurns     int     `json:"num_turns"`
	Result       string  `json:"result"`
	TotalCostUSD float64 `json:"total_cost_usd"`
	Usage        Usage   `json:"usage"`
	SessionID    string  `json:"session_id"`
}

// ContentBlock is one block of message content.
type ContentBlock struct {
	Type string `json:"type"`

	// Text content (type == "text" or "thinking")
	Text     string `json:"text,omitempty"`
	Thinking string `json:"thinking,omitempty"`

	// Tool use (type == "tool_use")
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Input json.RawMessage `json:"input,omitempty"`

	// Tool result (type == "tool_result")
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   json.RawMessage `json:"content,omitempty"`
	IsError   bool            `json:"is_error,omitempty"`
}

// Usage tracks token consumption reported by the CLI.
type Usage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// envelope is the minimal shape needed to dispatch on type.
type envelope struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

// Decode parses one stream-json line into a Message.
// Unknown envelope types decode into a Message with only Type, SessionID,
// and Raw set, so callers stay compatible with newer CLIs.
func Decode(line []byte) (*Message, error) {
	var env envelope
	if err := json.Unmarshal(line, &env); err != nil {
		return nil, fmt.Errorf("decode event envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("event missing type field")
	}

	msg := &Message{
		Type:      env.Type,
		SessionID: env.SessionID,
		Raw:       append(json.RawMessage(nil), line...),
	}

	switch env.Type {
	case contract.EventTypeSystem:
		msg.System = &SystemMessage{}
		if err := json.Unmarshal(line, msg.System); err != nil {
			return nil, fmt.Errorf("decode system event: %w", err)
		}
		if msg.SessionID == "" {
			msg.SessionID = msg.System.SessionID
		}
	case contract.EventTypeAssistant:
		msg.Assistant = &AssistantMessage{}
		if err := json.Unmarshal(line, msg.Assistant); err != nil {
			return nil, fmt.Errorf("decode assistant event: %w", err)
		}
	case contract.EventTypeUser:
		msg.User = &UserMessage{}
		if err := json.Unmarshal(line, msg.User); err != nil {
			return nil, fmt.Errorf("decode user event: %w", err)
		}
	case contract.EventTypeResult:
		msg.Result = &ResultMessage{}
		if err := json.Unmarshal(line, msg.Result); err != nil {
			return nil, fmt.Errorf("decode result event: %w", err)
		}
	}

	return msg, nil
}

package contract

// Stream event types from CLI stream-json output.
const (
	// EventTypeSystem is used for init and other session-level events.
	EventTypeSystem = "system"

	// EventTypeAssistant is for assistant messages (model responses).
	EventTypeAssistant = "assistant"

	// EventTypeUser is for user messages (including tool results).
	EventTypeUser = "user"

	// EventTypeResult is the final result message with run statistics.
	EventTypeResult = "result"

	// EventTypeStreamEvent is for partial message deltas.
	EventTypeStreamEvent = "stream_event"
)

// System event subtypes.
const (
	// SubtypeInit is the initialization event at session start.
	SubtypeInit = "init"

	// SubtypeCompactBoundary indicates a conversation compaction boundary.
	SubtypeCompactBoundary = "compact_boundary"
)

// Result subtypes indicating how the run ended.
const (
	// ResultSubtypeSuccess indicates successful completion.
	ResultSubtypeSuccess = "success"

	// ResultSubtypeErrorMaxTurns indicates the max turns limit was reached.
	ResultSubtypeErrorMaxTurns = "error_max_turns"

	// ResultSubtypeErrorDuringExecution indicates an execution error.
	ResultSubtypeErrorDuringExecution = "error_during_execution"
)

// Content block types within messages.
const (
	// ContentTypeText is a text content block.
	ContentTypeText = "text"

	// ContentTypeToolUse is a tool invocation request.
	ContentTypeToolUse = "tool_use"

	// ContentTypeToolResult is the result of a tool invocation.
	ContentTypeToolResult = "tool_result"

	// ContentTypeThinking is a thinking block.
	ContentTypeThinking = "thinking"
)

// Stop reasons for assistant messages.
const (
	// StopReasonEndTurn indicates the assistant ended its turn naturally.
	StopReasonEndTurn = "end_turn"

	// StopReasonMaxTokens indicates the max tokens limit was reached.
	StopReasonMaxTokens = "max_tokens"

	// StopReasonStopSequence indicates a stop sequence was encountered.
	StopReasonStopSequence = "stop_sequence"

	// StopReasonToolUse indicates the assistant is waiting for tool results.
	StopReasonToolUse = "tool_use"
)

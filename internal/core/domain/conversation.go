package domain

import "strings"

// Turn is one question/answer exchange. It is immutable once created
// and is only recorded after the model produced an answer.
type Turn struct {
	// Question is the user's question text.
	Question string

	// Answer is the model's answer text.
	Answer string
}

// History is the chronological log of turns within a session.
// It only grows; turns are never mutated or removed.
type History struct {
	turns []Turn
}

// NewHistory creates an empty conversation history.
func NewHistory() *History {
	return &History{}
}

// Append records one completed turn at the end of the history.
// Repeated identical turns are permitted.
func (h *History) Append(turn Turn) {
	h.turns = append(h.turns, turn)
}

// Len returns the number of recorded turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Window returns the last count turns in chronological order.
// A count of zero returns an empty view. A negative count, or a count
// exceeding the history length, returns the entire history.
// Windowing slices by turn, never by characters or lines.
func (h *History) Window(count int) []Turn {
	if count == 0 {
		return []Turn{}
	}
	if count < 0 || count > len(h.turns) {
		count = len(h.turns)
	}
	return append([]Turn(nil), h.turns[len(h.turns)-count:]...)
}

// Render serialises the full history for human display as alternating
// "User:" / "Assistant:" lines, turns separated by a blank line.
// Prompt assembly does not use this form; it works from the raw turns.
func (h *History) Render() string {
	var sb strings.Builder
	for i, turn := range h.turns {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("User: ")
		sb.WriteString(turn.Question)
		sb.WriteString("\nAssistant: ")
		sb.WriteString(turn.Answer)
		sb.WriteString("\n")
	}
	return sb.String()
}

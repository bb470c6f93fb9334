package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHistory_AppendGrowsChronologically tests that turns accumulate in order.
func TestHistory_AppendGrowsChronologically(t *testing.T) {
	h := NewHistory()
	h.Append(Turn{Question: "q1", Answer: "a1"})
	h.Append(Turn{Question: "q2", Answer: "a2"})
	h.Append(Turn{Question: "q3", Answer: "a3"})

	require.Equal(t, 3, h.Len())
	turns := h.Window(-1)
	assert.Equal(t, "q1", turns[0].Question)
	assert.Equal(t, "q2", turns[1].Question)
	assert.Equal(t, "q3", turns[2].Question)
}

// TestHistory_RepeatedTurnsPermitted tests that identical turns may repeat.
func TestHistory_RepeatedTurnsPermitted(t *testing.T) {
	h := NewHistory()
	turn := Turn{Question: "q", Answer: "a"}
	h.Append(turn)
	h.Append(turn)

	assert.Equal(t, 2, h.Len())
}

// TestHistory_Window tests the bounded suffix view.
func TestHistory_Window(t *testing.T) {
	h := NewHistory()
	h.Append(Turn{Question: "q1", Answer: "a1"})
	h.Append(Turn{Question: "q2", Answer: "a2"})
	h.Append(Turn{Question: "q3", Answer: "a3"})

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{name: "zero returns empty view", count: 0, want: []string{}},
		{name: "one returns last turn", count: 1, want: []string{"q3"}},
		{name: "two returns last two in order", count: 2, want: []string{"q2", "q3"}},
		{name: "exact length returns all", count: 3, want: []string{"q1", "q2", "q3"}},
		{name: "beyond length returns all", count: 10, want: []string{"q1", "q2", "q3"}},
		{name: "negative means full history", count: -1, want: []string{"q1", "q2", "q3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			turns := h.Window(tt.count)
			require.Len(t, turns, len(tt.want))
			for i, q := range tt.want {
				assert.Equal(t, q, turns[i].Question)
			}
		})
	}
}

// TestHistory_WindowEmptyHistory tests windowing before any turns exist.
func TestHistory_WindowEmptyHistory(t *testing.T) {
	h := NewHistory()

	assert.Empty(t, h.Window(5))
	assert.Empty(t, h.Window(-1))
	assert.Empty(t, h.Window(0))
}

// TestHistory_Render tests the display serialisation.
func TestHistory_Render(t *testing.T) {
	h := NewHistory()
	h.Append(Turn{Question: "What is Go?", Answer: "A language."})
	h.Append(Turn{Question: "Who made it?", Answer: "Google."})

	want := "User: What is Go?\nAssistant: A language.\n" +
		"\nUser: Who made it?\nAssistant: Google.\n"
	assert.Equal(t, want, h.Render())
}

// TestHistory_RenderEmpty tests rendering an empty history.
func TestHistory_RenderEmpty(t *testing.T) {
	h := NewHistory()
	assert.Equal(t, "", h.Render())
}

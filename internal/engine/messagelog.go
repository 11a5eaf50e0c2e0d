package engine

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Message is one log entry. Repeated identical messages stack into a
// single entry with a count instead of flooding the log.
type Message struct {
	Text  string
	Color tcell.Color
	Count int
}

// FullText returns the display text, with the repeat count appended when
// the message has stacked.
func (m *Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// MessageLog is a bounded history of game messages.
type MessageLog struct {
	Messages []Message
	limit    int
}

// NewMessageLog creates a log that keeps at most limit entries.
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{limit: limit}
}

// Add appends a message, stacking it onto the previous entry when the
// text matches.
func (l *MessageLog) Add(text string, color tcell.Color) {
	if n := len(l.Messages); n > 0 && l.Messages[n-1].Text == text {
		l.Messages[n-1].Count++
		return
	}
	l.Messages = append(l.Messages, Message{Text: text, Color: color, Count: 1})
	if l.limit > 0 && len(l.Messages) > l.limit {
		l.Messages = l.Messages[len(l.Messages)-l.limit:]
	}
}

// Addf formats and appends a message in the default color.
func (l *MessageLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...), tcell.ColorWhite)
}

// Len returns the number of stacked entries.
func (l *MessageLog) Len() int {
	return len(l.Messages)
}

package assistant

import "encoding/json"

// Role identifies who authored a history entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// maxHistoryEntries bounds the conversation context sent to the model.
const maxHistoryEntries = 10

// Message is a single conversation entry.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// History is a bounded conversation transcript. Appending beyond the cap
// drops the oldest entries, so the value sent to the model stays small no
// matter how long the conversation runs. The zero value is an empty history.
type History struct {
	entries []Message
}

// NewHistory builds a history from existing messages, keeping only the most
// recent ones if there are more than the cap.
func NewHistory(messages []Message) History {
	var h History
	for _, m := range messages {
		h.Append(m.Role, m.Content)
	}
	return h
}

// Append adds an entry, evicting the oldest when the history is full.
func (h *History) Append(role Role, content string) {
	h.entries = append(h.entries, Message{Role: role, Content: content})
	if len(h.entries) > maxHistoryEntries {
		h.entries = h.entries[len(h.entries)-maxHistoryEntries:]
	}
}

// Messages returns a copy of the entries in chronological order.
func (h History) Messages() []Message {
	out := make([]Message, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len reports the number of stored entries.
func (h History) Len() int {
	return len(h.entries)
}

// MarshalJSON encodes the history as a plain message array.
func (h History) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Messages())
}

// UnmarshalJSON decodes a message array, applying the cap.
func (h *History) UnmarshalJSON(data []byte) error {
	var messages []Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return err
	}
	*h = NewHistory(messages)
	return nil
}

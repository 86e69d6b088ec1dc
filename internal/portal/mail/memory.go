package mail

import (
	"context"
	"sync"
)

// Message is a recorded email. Test helper.
type Message struct {
	To   string
	Name string
	Kind string // "otp" or "document"
	Body string // the OTP code or document name
}

// MemorySender records messages instead of delivering them. Tests inspect
// the recorded slice to assert on dispatch counts and payloads.
type MemorySender struct {
	mu       sync.Mutex
	messages []Message

	// FailNext makes the next send return this error, then clears it.
	FailNext error
}

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (m *MemorySender) record(msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailNext != nil {
		err := m.FailNext
		m.FailNext = nil
		return err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MemorySender) SendLoginOTP(ctx context.Context, to, name, code string) error {
	return m.record(Message{To: to, Name: name, Kind: "otp", Body: code})
}

func (m *MemorySender) SendDocumentNotification(ctx context.Context, to, name, documentName string) error {
	return m.record(Message{To: to, Name: name, Kind: "document", Body: documentName})
}

// Messages returns a copy of the recorded messages.
func (m *MemorySender) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

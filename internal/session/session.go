// Package session holds per-conversation state: the message history and
// the identity of the most recently uploaded document.
package session

import (
	"sync"

	"hr-chatbot-be/pkg/llm"
)

// HistoryWindow is how many trailing messages are sent to the model.
const HistoryWindow = 10

// Session is safe for concurrent use; the web shell handles requests in
// parallel while the CLI shares the same type.
type Session struct {
	ID string

	mu                   sync.Mutex
	history              []llm.Message
	lastUploadedFilename string
	lastUploadedTitle    string
}

func New(id string) *Session {
	return &Session{ID: id}
}

func (s *Session) Append(msg llm.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, msg)
}

// Window returns a copy of the last n history messages.
func (s *Session) Window(n int) []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := len(s.history) - n
	if start < 0 {
		start = 0
	}
	out := make([]llm.Message, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

// SetLastUploaded records the session's current document. Callers must
// only invoke this after ingestion succeeded, otherwise later retrieval
// passes filter on a title with no chunks behind it.
func (s *Session) SetLastUploaded(filename, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUploadedFilename = filename
	s.lastUploadedTitle = title
}

// LastUploaded returns the current document's filename and title, both
// empty when nothing was uploaded this session.
func (s *Session) LastUploaded() (filename, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUploadedFilename, s.lastUploadedTitle
}

// Reset clears the history and the current-document pointer.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.lastUploadedFilename = ""
	s.lastUploadedTitle = ""
}

// Snapshot is the serializable form of a Session.
type Snapshot struct {
	ID                   string        `json:"id"`
	History              []llm.Message `json:"history"`
	LastUploadedFilename string        `json:"last_uploaded_filename"`
	LastUploadedTitle    string        `json:"last_uploaded_title"`
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]llm.Message, len(s.history))
	copy(history, s.history)
	return Snapshot{
		ID:                   s.ID,
		History:              history,
		LastUploadedFilename: s.lastUploadedFilename,
		LastUploadedTitle:    s.lastUploadedTitle,
	}
}

// FromSnapshot rebuilds a Session from its serialized form.
func FromSnapshot(snap Snapshot) *Session {
	return &Session{
		ID:                   snap.ID,
		history:              snap.History,
		lastUploadedFilename: snap.LastUploadedFilename,
		lastUploadedTitle:    snap.LastUploadedTitle,
	}
}

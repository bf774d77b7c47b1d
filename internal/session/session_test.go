package session

import (
	"context"
	"fmt"
	"testing"

	"hr-chatbot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowReturnsTail(t *testing.T) {
	s := New("t")
	for i := 0; i < 15; i++ {
		s.Append(llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("msg %d", i)})
	}

	window := s.Window(HistoryWindow)

	require.Len(t, window, HistoryWindow)
	assert.Equal(t, "msg 5", window[0].Content)
	assert.Equal(t, "msg 14", window[len(window)-1].Content)
}

func TestWindowShorterThanLimit(t *testing.T) {
	s := New("t")
	s.Append(llm.Message{Role: llm.RoleUser, Content: "only one"})

	window := s.Window(HistoryWindow)

	require.Len(t, window, 1)
}

func TestResetClearsHistoryAndIdentity(t *testing.T) {
	s := New("t")
	s.Append(llm.Message{Role: llm.RoleUser, Content: "hello"})
	s.SetLastUploaded("resume.pdf", "resume")

	s.Reset()

	assert.Empty(t, s.Window(HistoryWindow))
	filename, title := s.LastUploaded()
	assert.Empty(t, filename)
	assert.Empty(t, title)
}

func TestSetLastUploadedMostRecentWins(t *testing.T) {
	s := New("t")
	s.SetLastUploaded("old.pdf", "old")
	s.SetLastUploaded("new.docx", "new")

	filename, title := s.LastUploaded()
	assert.Equal(t, "new.docx", filename)
	assert.Equal(t, "new", title)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := New("abc")
	s.Append(llm.Message{Role: llm.RoleUser, Content: "hi"})
	s.Append(llm.Message{Role: llm.RoleAssistant, Content: "hello"})
	s.SetLastUploaded("cv.pdf", "cv")

	restored := FromSnapshot(s.Snapshot())

	assert.Equal(t, "abc", restored.ID)
	assert.Equal(t, s.Window(HistoryWindow), restored.Window(HistoryWindow))
	filename, title := restored.LastUploaded()
	assert.Equal(t, "cv.pdf", filename)
	assert.Equal(t, "cv", title)
}

func TestMemoryStoreCreatesAndShares(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	a.Append(llm.Message{Role: llm.RoleUser, Content: "hi"})

	b, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Same(t, a, b)

	other, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Window(HistoryWindow))
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	a.Append(llm.Message{Role: llm.RoleUser, Content: "hi"})

	require.NoError(t, store.Delete(ctx, "s1"))

	fresh, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, fresh.Window(HistoryWindow))
}

package ingestion

import (
	"strings"
	"testing"
)

func TestSplitTextShortInput(t *testing.T) {
	chunks := SplitText("just a short note", 500, 50)

	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0] != "just a short note" {
		t.Errorf("chunk = %q", chunks[0])
	}
}

func TestSplitTextEmptyInput(t *testing.T) {
	if chunks := SplitText("   \n\n  ", 500, 50); len(chunks) != 0 {
		t.Errorf("got %d chunks for blank input, want 0", len(chunks))
	}
}

func TestSplitTextBreaksOnParagraphs(t *testing.T) {
	text := "First paragraph about vacation policy.\n\nSecond paragraph about sick leave rules."
	chunks := SplitText(text, 45, 0)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %q", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "First paragraph") {
		t.Errorf("chunk 0 = %q", chunks[0])
	}
	if !strings.Contains(chunks[1], "Second paragraph") {
		t.Errorf("chunk 1 = %q", chunks[1])
	}
}

func TestSplitTextOverlapCarriesTail(t *testing.T) {
	text := "First paragraph about vacation policy.\n\nSecond paragraph about sick leave rules."
	chunks := SplitText(text, 45, 10)

	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2: %q", len(chunks), chunks)
	}
	// The second chunk starts with the tail of the first.
	tail := chunks[0][len(chunks[0])-10:]
	if !strings.HasPrefix(chunks[1], strings.TrimSpace(tail)) {
		t.Errorf("chunk 1 = %q, want prefix %q", chunks[1], tail)
	}
}

func TestSplitTextHardFallback(t *testing.T) {
	text := strings.Repeat("x", 100)
	chunks := SplitText(text, 30, 0)

	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}
	for i, c := range chunks {
		if len(c) > 30 {
			t.Errorf("chunk %d has %d chars, want <= 30", i, len(c))
		}
	}
}

func TestChunkDocument(t *testing.T) {
	doc := &Document{
		Content: "Alpha section.\n\nBeta section.\n\nGamma section.",
		Source:  "/docs/guide.md",
		Format:  "md",
		Title:   "guide",
	}

	chunks := ChunkDocument(doc, 16, 0)

	if len(chunks) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(chunks))
	}
	for i, c := range chunks {
		if c.ChunkIndex != i {
			t.Errorf("chunk %d: ChunkIndex = %d", i, c.ChunkIndex)
		}
		if c.Title != "guide" || c.Format != "md" || c.Source != "/docs/guide.md" {
			t.Errorf("chunk %d metadata = %+v", i, c)
		}
	}
}

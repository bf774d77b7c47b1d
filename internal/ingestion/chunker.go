package ingestion

import "strings"

// Chunk is one piece of a document with enough metadata to trace it back.
type Chunk struct {
	Text       string
	Source     string
	Format     string
	Title      string
	ChunkIndex int
}

var separators = []string{"\n\n", "\n", ". ", " "}

// SplitText splits text into pieces of at most chunkSize characters, breaking
// on progressively finer separators (paragraph, line, sentence, word) before
// falling back to a hard character split. Each chunk after the first gets the
// tail of its predecessor prepended for context continuity.
func SplitText(text string, chunkSize int, chunkOverlap int) []string {
	raw := splitRecursive(text, chunkSize, 0)

	final := make([]string, 0, len(raw))
	for i, chunk := range raw {
		if i > 0 && chunkOverlap > 0 {
			prev := raw[i-1]
			tail := prev
			if len(prev) > chunkOverlap {
				tail = prev[len(prev)-chunkOverlap:]
			}
			chunk = tail + " " + chunk
		}
		final = append(final, strings.TrimSpace(chunk))
	}
	return final
}

func splitRecursive(text string, chunkSize, sepIdx int) []string {
	if len(text) <= chunkSize {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}

	for ; sepIdx < len(separators); sepIdx++ {
		sep := separators[sepIdx]
		parts := strings.Split(text, sep)
		if len(parts) <= 1 {
			continue
		}

		var chunks []string
		current := ""
		for _, part := range parts {
			candidate := part
			if current != "" {
				candidate = current + sep + part
			}
			if len(candidate) <= chunkSize {
				current = candidate
				continue
			}
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			if len(part) > chunkSize {
				chunks = append(chunks, splitRecursive(part, chunkSize, sepIdx+1)...)
				current = ""
			} else {
				current = part
			}
		}
		if strings.TrimSpace(current) != "" {
			chunks = append(chunks, strings.TrimSpace(current))
		}
		return chunks
	}

	// Hard fallback: slice by character count
	var chunks []string
	step := chunkSize
	for i := 0; i < len(text); i += step {
		end := i + chunkSize
		if end > len(text) {
			end = len(text)
		}
		piece := strings.TrimSpace(text[i:end])
		if piece != "" {
			chunks = append(chunks, piece)
		}
	}
	return chunks
}

// ChunkDocument turns a loaded Document into indexed chunks.
func ChunkDocument(doc *Document, chunkSize, chunkOverlap int) []Chunk {
	texts := SplitText(doc.Content, chunkSize, chunkOverlap)
	chunks := make([]Chunk, 0, len(texts))
	for i, text := range texts {
		chunks = append(chunks, Chunk{
			Text:       text,
			Source:     doc.Source,
			Format:     doc.Format,
			Title:      doc.Title,
			ChunkIndex: i,
		})
	}
	return chunks
}

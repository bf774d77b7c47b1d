package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"hr-chatbot-be/internal/vectorstore"
	"hr-chatbot-be/pkg/embedding"
)

// Store is an in-process vector store. It mirrors the pgvector driver's
// semantics (cosine distance, equality filters, upsert by chunk key) and
// backs the CLI shell and tests where no Postgres is available.
type Store struct {
	mu       sync.RWMutex
	embedder embedding.Provider
	chunks   map[string]entry // keyed by chunk key
}

type entry struct {
	chunk  vectorstore.Chunk
	vector []float32
}

var _ vectorstore.Store = &Store{}

func NewStore(embedder embedding.Provider) *Store {
	return &Store{
		embedder: embedder,
		chunks:   make(map[string]entry),
	}
}

func (s *Store) Upsert(ctx context.Context, chunks []vectorstore.Chunk) error {
	for _, c := range chunks {
		vec, err := s.embedder.Generate(ctx, c.Text)
		if err != nil {
			return fmt.Errorf("embed chunk %s: %w", c.Key, err)
		}
		s.mu.Lock()
		s.chunks[c.Key] = entry{chunk: c, vector: vec}
		s.mu.Unlock()
	}
	return nil
}

func (s *Store) Query(ctx context.Context, text string, limit int, filter *vectorstore.Filter) ([]vectorstore.Result, error) {
	if limit <= 0 {
		limit = 5
	}

	queryVec, err := s.embedder.Generate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []vectorstore.Result
	for _, e := range s.chunks {
		if filter != nil && !matches(e.chunk, filter) {
			continue
		}
		results = append(results, vectorstore.Result{
			Text: e.chunk.Text,
			Metadata: vectorstore.Metadata{
				Title:      e.chunk.Title,
				Source:     e.chunk.Source,
				Format:     e.chunk.Format,
				ChunkIndex: e.chunk.ChunkIndex,
				Uploaded:   e.chunk.Uploaded,
			},
			Distance: cosineDistance(queryVec, e.vector),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.chunks)), nil
}

func matches(c vectorstore.Chunk, filter *vectorstore.Filter) bool {
	switch filter.Field {
	case vectorstore.FieldTitle:
		return c.Title == filter.Value
	case vectorstore.FieldUploaded:
		return c.Uploaded == (filter.Value == "true")
	default:
		return false
	}
}

func cosineDistance(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 1
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 1
	}
	return 1 - dot/(math.Sqrt(magA)*math.Sqrt(magB))
}

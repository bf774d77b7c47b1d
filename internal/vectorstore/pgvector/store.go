package pgvector

import (
	"context"
	"fmt"

	"hr-chatbot-be/internal/model"
	"hr-chatbot-be/internal/vectorstore"
	"hr-chatbot-be/pkg/embedding"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists chunks in Postgres with a pgvector column and ranks
// queries by cosine distance (embedding_value <=> query).
type Store struct {
	db       *gorm.DB
	embedder embedding.Provider
}

var _ vectorstore.Store = &Store{}

func NewStore(db *gorm.DB, embedder embedding.Provider) *Store {
	return &Store{db: db, embedder: embedder}
}

func (s *Store) Upsert(ctx context.Context, chunks []vectorstore.Chunk) error {
	for _, c := range chunks {
		vec, err := s.embedder.Generate(ctx, c.Text)
		if err != nil {
			return fmt.Errorf("embed chunk %s: %w", c.Key, err)
		}

		m := model.DocumentChunk{
			ChunkKey:       c.Key,
			Text:           c.Text,
			EmbeddingValue: pgvector.NewVector(vec),
			Title:          c.Title,
			Source:         c.Source,
			Format:         c.Format,
			ChunkIndex:     c.ChunkIndex,
			Uploaded:       c.Uploaded,
		}

		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "chunk_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"text", "embedding_value", "title", "source", "format", "chunk_index", "uploaded", "updated_at",
			}),
		}).Create(&m).Error
		if err != nil {
			return fmt.Errorf("upsert chunk %s: %w", c.Key, err)
		}
	}
	return nil
}

func (s *Store) Query(ctx context.Context, text string, limit int, filter *vectorstore.Filter) ([]vectorstore.Result, error) {
	if limit <= 0 {
		limit = 5
	}

	vec, err := s.embedder.Generate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	queryVector := pgvector.NewVector(vec)

	type row struct {
		model.DocumentChunk
		Distance float64
	}
	var rows []row

	q := s.db.WithContext(ctx).
		Table("document_chunks").
		Select("document_chunks.*, embedding_value <=> ? as distance", queryVector)

	if filter != nil {
		switch filter.Field {
		case vectorstore.FieldTitle:
			q = q.Where("title = ?", filter.Value)
		case vectorstore.FieldUploaded:
			q = q.Where("uploaded = ?", filter.Value == "true")
		default:
			return nil, fmt.Errorf("unsupported filter field: %s", filter.Field)
		}
	}

	if err := q.Order("distance ASC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]vectorstore.Result, len(rows))
	for i, r := range rows {
		results[i] = vectorstore.Result{
			Text: r.Text,
			Metadata: vectorstore.Metadata{
				Title:      r.Title,
				Source:     r.Source,
				Format:     r.Format,
				ChunkIndex: r.ChunkIndex,
				Uploaded:   r.Uploaded,
			},
			Distance: r.Distance,
		}
	}
	return results, nil
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.DocumentChunk{}).Count(&count).Error
	return count, err
}

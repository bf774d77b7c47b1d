package memory

import (
	"context"
	"strings"
	"testing"

	"hr-chatbot-be/internal/vectorstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countEmbedder struct{}

func (countEmbedder) Generate(_ context.Context, text string) ([]float32, error) {
	lower := strings.ToLower(text)
	return []float32{
		float32(strings.Count(lower, "vacation")),
		float32(strings.Count(lower, "salary")),
		1,
	}, nil
}

func seed(t *testing.T) *Store {
	t.Helper()
	s := NewStore(countEmbedder{})
	err := s.Upsert(context.Background(), []vectorstore.Chunk{
		{Key: "a_0", Text: "vacation vacation rules", Title: "policy", Format: "md"},
		{Key: "b_0", Text: "salary bands and payroll", Title: "pay", Format: "md"},
		{Key: "upload_cv_0", Text: "candidate salary history", Title: "cv", Format: "pdf", Uploaded: true},
	})
	require.NoError(t, err)
	return s
}

func TestQueryRanksByDistance(t *testing.T) {
	s := seed(t)

	results, err := s.Query(context.Background(), "vacation", 3, nil)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, "vacation vacation rules", results[0].Text)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i].Distance, results[i-1].Distance)
	}
}

func TestQueryTitleFilter(t *testing.T) {
	s := seed(t)

	results, err := s.Query(context.Background(), "salary", 5,
		&vectorstore.Filter{Field: vectorstore.FieldTitle, Value: "cv"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "cv", results[0].Metadata.Title)
	assert.True(t, results[0].Metadata.Uploaded)
}

func TestQueryUploadedFilter(t *testing.T) {
	s := seed(t)

	results, err := s.Query(context.Background(), "salary", 5,
		&vectorstore.Filter{Field: vectorstore.FieldUploaded, Value: "true"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "candidate salary history", results[0].Text)
}

func TestQueryLimit(t *testing.T) {
	s := seed(t)

	results, err := s.Query(context.Background(), "salary", 2, nil)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestUpsertReplacesByKey(t *testing.T) {
	s := seed(t)
	ctx := context.Background()

	err := s.Upsert(ctx, []vectorstore.Chunk{
		{Key: "a_0", Text: "rewritten vacation text", Title: "policy", Format: "md"},
	})
	require.NoError(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	results, err := s.Query(ctx, "vacation", 1, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "rewritten vacation text", results[0].Text)
}

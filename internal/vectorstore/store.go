package vectorstore

import "context"

// Chunk is a unit of document text ready for indexing. Key is the stable
// upsert identity ({title}_{index}, uploads prefixed "upload_") so
// re-ingesting a file replaces its chunks instead of duplicating them.
type Chunk struct {
	Key        string
	Text       string
	Title      string
	Source     string
	Format     string
	ChunkIndex int
	Uploaded   bool
}

// Metadata travels with every retrieved result.
type Metadata struct {
	Title      string `json:"title"`
	Source     string `json:"source"`
	Format     string `json:"format"`
	ChunkIndex int    `json:"chunk_index"`
	Uploaded   bool   `json:"uploaded"`
}

// Result is a ranked similarity hit. Distance is cosine distance
// (0 = identical), ascending in query results.
type Result struct {
	Text     string
	Metadata Metadata
	Distance float64
}

// Filter restricts a query to rows whose metadata field equals Value.
// Supported fields are FieldTitle and FieldUploaded.
type Filter struct {
	Field string
	Value string
}

const (
	FieldTitle    = "title"
	FieldUploaded = "uploaded"
)

// Store is the document store adapter. Implementations embed texts
// internally; callers only ever deal in plain text.
type Store interface {
	Upsert(ctx context.Context, chunks []Chunk) error
	Query(ctx context.Context, text string, limit int, filter *Filter) ([]Result, error)
	Count(ctx context.Context) (int64, error)
}

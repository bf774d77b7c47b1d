package ingestion

import (
	"context"
	"fmt"
	"path/filepath"

	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/vectorstore"
)

// Pipeline runs load -> chunk -> embed -> store for documents.
type Pipeline struct {
	store        vectorstore.Store
	chunkSize    int
	chunkOverlap int
	log          logger.ILogger
}

func NewPipeline(store vectorstore.Store, chunkSize, chunkOverlap int, log logger.ILogger) *Pipeline {
	return &Pipeline{
		store:        store,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
		log:          log,
	}
}

// Result summarizes one ingestion run.
type Result struct {
	Filename           string `json:"filename"`
	Format             string `json:"format"`
	Chunks             int    `json:"chunks"`
	TotalChunksInStore int64  `json:"total_chunks_in_store"`
}

// IngestFile ingests a single uploaded file. Chunks are tagged uploaded=true
// and keyed "upload_{title}_{index}" so re-uploading replaces prior chunks.
func (p *Pipeline) IngestFile(ctx context.Context, path string) (*Result, error) {
	return p.ingest(ctx, path, true)
}

// IngestBaseFile ingests one base-corpus file (untagged).
func (p *Pipeline) IngestBaseFile(ctx context.Context, path string) (*Result, error) {
	return p.ingest(ctx, path, false)
}

func (p *Pipeline) ingest(ctx context.Context, path string, uploaded bool) (*Result, error) {
	doc, err := LoadSingleFile(path)
	if err != nil {
		return nil, err
	}

	chunks := ChunkDocument(doc, p.chunkSize, p.chunkOverlap)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no chunks produced from %s", filepath.Base(path))
	}

	storeChunks := make([]vectorstore.Chunk, len(chunks))
	for i, c := range chunks {
		key := fmt.Sprintf("%s_%d", c.Title, c.ChunkIndex)
		if uploaded {
			key = "upload_" + key
		}
		storeChunks[i] = vectorstore.Chunk{
			Key:        key,
			Text:       c.Text,
			Title:      c.Title,
			Source:     c.Source,
			Format:     c.Format,
			ChunkIndex: c.ChunkIndex,
			Uploaded:   uploaded,
		}
	}

	if err := p.store.Upsert(ctx, storeChunks); err != nil {
		return nil, err
	}

	total, err := p.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	p.log.Info("ingestion", "document ingested", map[string]interface{}{
		"file":     filepath.Base(path),
		"chunks":   len(chunks),
		"uploaded": uploaded,
	})

	return &Result{
		Filename:           filepath.Base(path),
		Format:             doc.Format,
		Chunks:             len(chunks),
		TotalChunksInStore: total,
	}, nil
}

// IngestDirectory synchronously ingests every supported file in dir.
// Used by the batch ingest command; the web flow goes through the event bus.
func (p *Pipeline) IngestDirectory(ctx context.Context, dir string) (int, error) {
	names := ListDocumentNames(dir)
	ingested := 0
	for _, name := range names {
		if _, err := p.IngestBaseFile(ctx, filepath.Join(dir, name)); err != nil {
			p.log.Warn("ingestion", "skipping file", map[string]interface{}{
				"file":  name,
				"error": err.Error(),
			})
			continue
		}
		ingested++
	}
	return ingested, nil
}

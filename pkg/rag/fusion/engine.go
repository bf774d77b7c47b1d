// Package fusion merges vector search results from several scoped passes
// into a single context block for answer synthesis.
package fusion

import (
	"context"
	"fmt"
	"strings"

	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/vectorstore"
	"hr-chatbot-be/pkg/rag"
)

// NoResults is returned when every pass comes back empty. Callers treat it
// as a sentinel, so the exact wording is part of the contract.
const NoResults = "No relevant documents found."

// DefaultLimit is the per-pass result count when the caller passes 0.
const DefaultLimit = 5

// Engine runs scoped retrieval passes in priority order:
//
//  1. chunks of the session's current document (title filter)
//  2. chunks of any uploaded document (uploaded filter)
//  3. the whole knowledge base
//
// Passes 1 and 2 are best-effort: a failure there degrades retrieval but
// must not fail the turn. Only a pass-3 failure is surfaced, because then
// there is no context at all.
type Engine struct {
	store vectorstore.Store
	log   logger.ILogger
}

func NewEngine(store vectorstore.Store, log logger.ILogger) *Engine {
	return &Engine{store: store, log: log}
}

// Search retrieves and formats context for a query. currentTitle is the
// title of the session's most recently uploaded document, empty when none.
func (e *Engine) Search(ctx context.Context, query, currentTitle string, limit int) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var merged []vectorstore.Result

	if currentTitle != "" {
		filter := &vectorstore.Filter{Field: vectorstore.FieldTitle, Value: currentTitle}
		results, err := e.store.Query(ctx, query, limit, filter)
		if err != nil {
			e.log.Warn("fusion", "current-document pass failed", map[string]interface{}{
				"title": currentTitle,
				"error": err.Error(),
			})
		} else {
			merged = append(merged, results...)
		}
	}

	if rag.MentionsUpload(query) || currentTitle != "" {
		filter := &vectorstore.Filter{Field: vectorstore.FieldUploaded, Value: "true"}
		results, err := e.store.Query(ctx, query, limit, filter)
		if err != nil {
			e.log.Warn("fusion", "uploaded-documents pass failed", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			merged = append(merged, results...)
		}
	}

	general, err := e.store.Query(ctx, query, limit, nil)
	if err != nil {
		return "", fmt.Errorf("document search failed: %w", err)
	}
	merged = append(merged, general...)

	// Dedupe on exact chunk text, first occurrence wins so the scoped
	// passes stay ahead of the general one.
	seen := make(map[string]bool, len(merged))
	unique := merged[:0]
	for _, r := range merged {
		if seen[r.Text] {
			continue
		}
		seen[r.Text] = true
		unique = append(unique, r)
	}

	// Keep a few beyond the per-pass limit; scoped hits would otherwise
	// crowd out general ones entirely.
	if len(unique) > limit+3 {
		unique = unique[:limit+3]
	}

	e.log.Info("fusion", "search complete", map[string]interface{}{
		"query":         query,
		"current_title": currentTitle,
		"results":       len(unique),
	})

	if len(unique) == 0 {
		return NoResults, nil
	}

	parts := make([]string, len(unique))
	for i, r := range unique {
		title := r.Metadata.Title
		if title == "" {
			title = "unknown"
		}
		parts[i] = fmt.Sprintf("[Source: %s.%s]\n%s", title, r.Metadata.Format, r.Text)
	}
	return strings.Join(parts, "\n\n---\n\n"), nil
}

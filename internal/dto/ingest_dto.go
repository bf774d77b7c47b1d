package dto

// PublishIngestDocumentMessage is the event payload asking the consumer to
// ingest one base-corpus file.
type PublishIngestDocumentMessage struct {
	Path string `json:"path"`
}

package dto

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type IngestDetails struct {
	Filename           string `json:"filename"`
	Format             string `json:"format"`
	Chunks             int    `json:"chunks"`
	TotalChunksInStore int64  `json:"total_chunks_in_store"`
}

type UploadResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details IngestDetails `json:"details"`
}

type DocumentInfo struct {
	Name   string  `json:"name"`
	Format string  `json:"format"`
	Type   string  `json:"type"`
	SizeKB float64 `json:"size_kb"`
}

type DocumentListResponse struct {
	Documents          []DocumentInfo `json:"documents"`
	TotalChunksInStore int64          `json:"total_chunks_in_store"`
}

type ResetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/ingestion"
	"hr-chatbot-be/internal/pkg/serverutils"
	"hr-chatbot-be/internal/service"
	"hr-chatbot-be/internal/vectorstore"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookie = "session_id"

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Documents(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
	pipeline    *ingestion.Pipeline
	store       vectorstore.Store
	uploadsDir  string
}

func NewChatController(
	chatService service.IChatService,
	pipeline *ingestion.Pipeline,
	store vectorstore.Store,
	uploadsDir string,
) IChatController {
	return &chatController{
		chatService: chatService,
		pipeline:    pipeline,
		store:       store,
		uploadsDir:  uploadsDir,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/api")
	h.Post("chat", c.Chat)
	h.Post("upload", c.Upload)
	h.Get("documents", c.Documents)
	h.Post("reset", c.Reset)
	h.Get("health", c.Health)
}

// sessionID resolves the caller's session from a cookie, minting one on
// first contact. Each browser tab then carries its own history and
// current-document pointer.
func sessionID(ctx *fiber.Ctx) string {
	if id := ctx.Cookies(sessionCookie); id != "" {
		return id
	}
	id := uuid.NewString()
	ctx.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	answer, err := c.chatService.Chat(ctx.Context(), sessionID(ctx), req.Message)
	if err != nil {
		return err
	}
	return ctx.JSON(dto.ChatResponse{Response: answer})
}

func (c *chatController) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewAppError(fiber.StatusBadRequest, "missing file field")
	}

	filename := filepath.Base(file.Filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !ingestion.IsSupported(ext) {
		supported := ingestion.SupportedExtensions()
		sort.Strings(supported)
		return serverutils.NewAppError(fiber.StatusBadRequest, fmt.Sprintf(
			"Unsupported file type: '%s'. Supported formats: %s",
			ext, strings.Join(supported, ", ")))
	}

	dest := filepath.Join(c.uploadsDir, filename)
	if err := ctx.SaveFile(file, dest); err != nil {
		return serverutils.NewAppError(fiber.StatusInternalServerError,
			fmt.Sprintf("Failed to save file: %s", err.Error()))
	}

	result, err := c.pipeline.IngestFile(ctx.Context(), dest)
	if err != nil {
		// Half-ingested files must not linger in the uploads listing.
		os.Remove(dest)
		return serverutils.NewAppError(fiber.StatusInternalServerError,
			fmt.Sprintf("Ingestion failed: %s", err.Error()))
	}

	// Identity is set only now, after ingestion succeeded; the title must
	// match the chunk titles so title-scoped retrieval finds them.
	title := strings.TrimSuffix(filename, filepath.Ext(filename))
	if err := c.chatService.SetLastUploaded(ctx.Context(), sessionID(ctx), filename, title); err != nil {
		return err
	}

	return ctx.JSON(dto.UploadResponse{
		Status:  "ok",
		Message: fmt.Sprintf("✅ '%s' uploaded and processed successfully!", filename),
		Details: dto.IngestDetails{
			Filename:           result.Filename,
			Format:             result.Format,
			Chunks:             result.Chunks,
			TotalChunksInStore: result.TotalChunksInStore,
		},
	})
}

// Documents lists uploaded files only; the base corpus is not shown.
func (c *chatController) Documents(ctx *fiber.Ctx) error {
	documents := make([]dto.DocumentInfo, 0)
	entries, err := os.ReadDir(c.uploadsDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !ingestion.IsSupported(ext) {
				continue
			}
			var sizeKB float64
			if info, err := entry.Info(); err == nil {
				sizeKB = float64(info.Size()) / 1024
			}
			documents = append(documents, dto.DocumentInfo{
				Name:   entry.Name(),
				Format: strings.TrimPrefix(ext, "."),
				Type:   "uploaded",
				SizeKB: float64(int(sizeKB*10+0.5)) / 10,
			})
		}
	}

	total, err := c.store.Count(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(dto.DocumentListResponse{
		Documents:          documents,
		TotalChunksInStore: total,
	})
}

func (c *chatController) Reset(ctx *fiber.Ctx) error {
	if err := c.chatService.Reset(ctx.Context(), sessionID(ctx)); err != nil {
		return err
	}
	return ctx.JSON(dto.ResetResponse{Status: "ok", Message: "Conversation reset"})
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "healthy", "service": "hr-chatbot"})
}

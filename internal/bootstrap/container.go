package bootstrap

import (
	"log"
	"os"

	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/controller"
	"hr-chatbot-be/internal/ingestion"
	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/service"
	"hr-chatbot-be/internal/session"
	"hr-chatbot-be/internal/tools"
	"hr-chatbot-be/internal/vectorstore"
	"hr-chatbot-be/internal/vectorstore/memory"
	"hr-chatbot-be/internal/vectorstore/pgvector"
	"hr-chatbot-be/pkg/embedding"
	"hr-chatbot-be/pkg/llm/ollama"
	"hr-chatbot-be/pkg/rag/fusion"
	"hr-chatbot-be/pkg/rag/prompt"
	"hr-chatbot-be/pkg/rag/toolcall"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const ingestTopic = "document.ingest"

// Container wires every collaborator once and exposes what the shells
// need. Nothing in here is a package-level singleton.
type Container struct {
	ChatController controller.IChatController
	ChatService    service.IChatService

	PublisherService service.IPublisherService
	ConsumerService  service.IConsumerService

	Store    vectorstore.Store
	Pipeline *ingestion.Pipeline
	Logger   logger.ILogger
}

// NewContainer builds the full dependency graph. db may be nil, in which
// case the in-process vector store is used (CLI and tests).
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var embedder embedding.Provider = embedding.NewOllamaProvider(
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.EmbeddingModel,
	)

	var store vectorstore.Store
	if db != nil {
		store = pgvector.NewStore(db, embedder)
	} else {
		log.Println("[INFO] No database configured, using in-memory vector store")
		store = memory.NewStore(embedder)
	}

	llmProvider := ollama.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.LLMModel)

	pipeline := ingestion.NewPipeline(store, cfg.Docs.ChunkSize, cfg.Docs.ChunkOverlap, sysLogger)

	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)
	publisherService := service.NewPublisherService(ingestTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, ingestTopic, pipeline, sysLogger)

	hrClient := tools.NewHRClient(cfg.HR.BaseURL)
	registry := tools.NewRegistry(hrClient)
	promptBuilder := prompt.NewBuilder(registry, cfg.Docs.DocumentsDir, cfg.Docs.UploadsDir)

	sessionStore, err := session.NewStore(cfg)
	if err != nil {
		log.Panicf("Unable to initialize session store: %v", err)
	}

	// Retrieval is chatty; it traces to its own file so the main log
	// stays readable.
	retrievalLogger := logger.NewIsolatedLogger("logs/retrieval.log")
	engine := fusion.NewEngine(store, retrievalLogger)

	chatService := service.NewChatService(
		llmProvider,
		engine,
		toolcall.NewParser(),
		registry,
		promptBuilder,
		sessionStore,
		store,
		publisherService,
		cfg.Docs.DocumentsDir,
		sysLogger,
	)

	if err := os.MkdirAll(cfg.Docs.UploadsDir, 0o755); err != nil {
		log.Panicf("Unable to create uploads directory: %v", err)
	}

	chatController := controller.NewChatController(chatService, pipeline, store, cfg.Docs.UploadsDir)

	return &Container{
		ChatController:   chatController,
		ChatService:      chatService,
		PublisherService: publisherService,
		ConsumerService:  consumerService,
		Store:            store,
		Pipeline:         pipeline,
		Logger:           sysLogger,
	}
}

package service

import (
	"context"
	"fmt"
	"strings"

	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/session"
	"hr-chatbot-be/internal/tools"
	"hr-chatbot-be/internal/vectorstore"
	"hr-chatbot-be/pkg/llm"
	"hr-chatbot-be/pkg/rag"
	"hr-chatbot-be/pkg/rag/fusion"
	"hr-chatbot-be/pkg/rag/prompt"
	"hr-chatbot-be/pkg/rag/toolcall"
)

type IChatService interface {
	Chat(ctx context.Context, sessionID, message string) (string, error)
	Reset(ctx context.Context, sessionID string) error
	SetLastUploaded(ctx context.Context, sessionID, filename, title string) error
}

// chatService runs the turn state machine: pre-emptive retrieval, one
// planning call to the model, tool execution, then a grounded synthesis
// call when any usable context was collected.
type chatService struct {
	provider  llm.Provider
	engine    *fusion.Engine
	parser    toolcall.Parser
	registry  *tools.Registry
	prompts   *prompt.Builder
	sessions  session.Store
	store     vectorstore.Store
	publisher IPublisherService
	docsDir   string
	log       logger.ILogger
}

func NewChatService(
	provider llm.Provider,
	engine *fusion.Engine,
	parser toolcall.Parser,
	registry *tools.Registry,
	prompts *prompt.Builder,
	sessions session.Store,
	store vectorstore.Store,
	publisher IPublisherService,
	docsDir string,
	log logger.ILogger,
) IChatService {
	return &chatService{
		provider:  provider,
		engine:    engine,
		parser:    parser,
		registry:  registry,
		prompts:   prompts,
		sessions:  sessions,
		store:     store,
		publisher: publisher,
		docsDir:   docsDir,
		log:       log,
	}
}

// contextSection is one collected block of retrieved context. Sections
// whose only content is the empty-search sentinel are kept for the trace
// but do not count as usable context.
type contextSection struct {
	text   string
	usable bool
}

func (cs *chatService) Chat(ctx context.Context, sessionID, message string) (string, error) {
	sess, err := cs.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("session load failed: %w", err)
	}

	lastFilename, lastTitle := sess.LastUploaded()

	// Rebuilt every turn: the document listing and upload pointer change
	// between turns.
	systemPrompt := cs.prompts.System(lastFilename)

	sess.Append(llm.Message{Role: llm.RoleUser, Content: message})

	// Pre-emptive retrieval. If the question looks document-related we
	// search before the model is even consulted, so a model that forgets
	// to emit search_documents still answers with context. Failure here
	// degrades to no context instead of failing the turn.
	preemptive := ""
	if rag.LooksLikeDocumentQuestion(message) {
		result, err := cs.engine.Search(ctx, message, lastTitle, 0)
		if err != nil {
			cs.log.Warn("chat", "pre-emptive search failed", map[string]interface{}{
				"session": sessionID,
				"error":   err.Error(),
			})
		} else {
			preemptive = result
		}
	}

	messages := append([]llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}},
		sess.Window(session.HistoryWindow)...)

	firstReply, err := cs.provider.Chat(ctx, messages,
		llm.WithTemperature(0.3), llm.WithMaxTokens(1024))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}

	calls := cs.parser.Parse(firstReply)

	var sections []contextSection
	if preemptive != "" {
		sections = append(sections, contextSection{
			text:   "📄 Document Search Results (auto):\n" + preemptive,
			usable: preemptive != fusion.NoResults,
		})
		// The pre-emptive pass already searched; the model's own
		// search_documents calls would only add duplicate noise.
		calls = dropSearchCalls(calls)
	}

	toolSections, err := cs.executeCalls(ctx, calls, lastTitle)
	if err != nil {
		return "", err
	}
	sections = append(sections, toolSections...)

	usable := false
	parts := make([]string, len(sections))
	for i, sec := range sections {
		parts[i] = sec.text
		usable = usable || sec.usable
	}

	if !usable {
		if len(sections) > 0 {
			cs.log.Info("chat", "retrieval found nothing, answering without context", map[string]interface{}{
				"session": sessionID,
				"context": strings.Join(parts, "\n\n"),
			})
		}
		sess.Append(llm.Message{Role: llm.RoleAssistant, Content: firstReply})
		if err := cs.sessions.Save(ctx, sess); err != nil {
			cs.log.Warn("chat", "session save failed", map[string]interface{}{"error": err.Error()})
		}
		return firstReply, nil
	}

	combined := strings.Join(parts, "\n\n")
	if lastFilename != "" {
		combined = prompt.IdentityPointer(lastFilename, lastTitle) + "\n\n" + combined
	}

	answerMessages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.NoToolsSystem},
		{Role: llm.RoleUser, Content: cs.prompts.ContextAnswer(combined, message)},
	}

	finalReply, err := cs.provider.Chat(ctx, answerMessages,
		llm.WithTemperature(0.3), llm.WithMaxTokens(1024))
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	finalReply = strings.TrimSpace(toolcall.Strip(finalReply))

	sess.Append(llm.Message{Role: llm.RoleAssistant, Content: finalReply})
	if err := cs.sessions.Save(ctx, sess); err != nil {
		cs.log.Warn("chat", "session save failed", map[string]interface{}{"error": err.Error()})
	}
	return finalReply, nil
}

func dropSearchCalls(calls []toolcall.ToolCall) []toolcall.ToolCall {
	kept := calls[:0]
	for _, c := range calls {
		if c.Name != tools.SearchDocumentsTool {
			kept = append(kept, c)
		}
	}
	return kept
}

// executeCalls runs the model's tool calls in order. search_documents is
// routed to the fusion engine; everything else goes through the registry,
// which never fails a turn. A fusion failure here is essential retrieval
// and surfaces as a turn error.
func (cs *chatService) executeCalls(ctx context.Context, calls []toolcall.ToolCall, lastTitle string) ([]contextSection, error) {
	var sections []contextSection
	for _, call := range calls {
		if call.Name == tools.SearchDocumentsTool {
			query := call.Arguments["query"]
			if query == "" {
				// Models sometimes invent a parameter name; take the
				// first value they gave us.
				for _, v := range call.Arguments {
					query = v
					break
				}
			}
			if query == "" {
				continue
			}
			result, err := cs.engine.Search(ctx, query, lastTitle, 0)
			if err != nil {
				return nil, fmt.Errorf("document search failed: %w", err)
			}
			sections = append(sections, contextSection{
				text:   fmt.Sprintf("📄 Document Search Results for '%s':\n%s", query, result),
				usable: result != fusion.NoResults,
			})
			continue
		}

		result := cs.registry.Execute(ctx, call.Name, call.Arguments)
		sections = append(sections, contextSection{
			text:   fmt.Sprintf("🔧 %s result:\n%s", call.Name, result),
			usable: true,
		})
	}
	return sections, nil
}

func (cs *chatService) Reset(ctx context.Context, sessionID string) error {
	sess, err := cs.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.Reset()
	if err := cs.sessions.Save(ctx, sess); err != nil {
		return err
	}

	// A wiped vector store (fresh deployment, flushed volume) leaves the
	// assistant answering from nothing. Kick off a base-corpus reload in
	// the background; a failure here only delays retrieval quality.
	count, err := cs.store.Count(ctx)
	if err == nil && count == 0 {
		if _, err := cs.publisher.PublishIngestDirectory(cs.docsDir); err != nil {
			cs.log.Warn("chat", "base corpus reload failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return nil
}

func (cs *chatService) SetLastUploaded(ctx context.Context, sessionID, filename, title string) error {
	sess, err := cs.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.SetLastUploaded(filename, title)
	return cs.sessions.Save(ctx, sess)
}

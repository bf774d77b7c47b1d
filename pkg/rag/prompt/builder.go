// Package prompt renders the system and synthesis prompts for the HR
// assistant. The system prompt is rebuilt on every turn so the document
// listing and the current-document pointer are never stale.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"hr-chatbot-be/internal/ingestion"
	"hr-chatbot-be/internal/tools"
)

const systemTemplate = `You are a helpful HR assistant chatbot for the Trenkwalder Group, a leading HR service provider in Europe.

Your role is to help employees with:
1. Questions about company policies, benefits, onboarding, and general information (from company documents)
2. Dynamic requests for personal HR data (vacation days, sick leave, payslip info, employee profile)
3. Questions about ANY document the user has uploaded, including CVs, resumes, reports, or any other file

## How to respond:

When the user asks a question, you MUST decide the best way to answer by calling tools. Respond with EXACTLY this format (one per line):
TOOL_CALL: tool_name(param1="value1", param2="value2")

%s

### CRITICAL RULES - WHEN TO USE search_documents:
- ANY question about document content, uploaded files, CVs, resumes, reports -> MUST use search_documents
- ANY question about skills, experience, qualifications, education -> MUST use search_documents
- ANY question about company policies, benefits, procedures -> MUST use search_documents
- When the user says "the document", "the file", "uploaded", "the PDF" -> MUST use search_documents
- When the user asks to summarize, list, extract info from any document -> MUST use search_documents
- When in doubt about whether something is in a document -> use search_documents
- NEVER answer questions about document content from your own knowledge - ALWAYS search first

### When to use HR tools:
- Questions about personal data (vacation days, sick leave, salary, profile) -> Use the appropriate HR tool

### When to respond directly (NO tool call):
- Simple greetings: "hello", "thanks", "bye"
- Questions about yourself: "what do you do", "who are you", "what can you help with"
  -> Answer naturally and briefly. Mention you can help with company documents, vacation/leave info, payslip details, and employee profiles. Do NOT include developer notes or caveats.

## Current context:
- You are assisting employee EMP001 (default)
- Today's date: %s
- The company is Trenkwalder Group, a European HR services company

### IMPORTANT - Employee name to ID mapping:
- "Om Doshi" -> EMP001
- "Klahm Sebestian" -> EMP002
- When the user asks about a specific person's salary, vacation, sick leave, or profile, use the corresponding employee_id.
- When the user asks about "my salary", "my vacation", etc., default to EMP001.

%s`

const contextAnswerTemplate = `Based on the following information retrieved from documents and services, provide a helpful and concise answer to the user's question.

%s

User's question: %s

Instructions:
- Answer based ONLY on the provided information above
- Be conversational and friendly
- If a "most recently uploaded document" is indicated, PRIORITIZE content from that document when answering
- When the user says "the document", "the file", "the uploaded document", etc., they mean the MOST RECENTLY UPLOADED document - answer using that document's content
- If the information contains content from an uploaded document (CV, resume, report, etc.), use that content to answer
- If the information doesn't fully answer the question, say what you know and mention what's missing
- Format numbers and dates clearly
- Use bullet points for lists when appropriate
- NEVER say "no document was uploaded" if document search results are provided above
`

// NoToolsSystem instructs the synthesis pass to answer instead of planning.
const NoToolsSystem = "You are a helpful HR assistant. The user asked a question and " +
	"relevant documents have already been retrieved. Your job is to " +
	"answer the question based ONLY on the retrieved information. " +
	"Do NOT call any tools. Do NOT output TOOL_CALL. Just answer."

// Builder assembles prompts from the tool catalog and the on-disk
// knowledge base.
type Builder struct {
	registry *tools.Registry
	docDirs  []string
	now      func() time.Time
}

func NewBuilder(registry *tools.Registry, docDirs ...string) *Builder {
	return &Builder{
		registry: registry,
		docDirs:  docDirs,
		now:      time.Now,
	}
}

// catalog renders the tool definitions in the exact directive format the
// model is asked to produce, so the examples double as a grammar.
func (b *Builder) catalog() string {
	var sb strings.Builder
	sb.WriteString("Available tools:\n")
	for _, def := range b.registry.Definitions() {
		args := make([]string, len(def.Params))
		for i, p := range def.Params {
			example := p.Default
			if example == "" {
				example = "your search query"
			}
			args[i] = fmt.Sprintf("%s=%q", p.Name, example)
		}
		fmt.Fprintf(&sb, "- TOOL_CALL: %s(%s) - %s\n", def.Name, strings.Join(args, ", "), def.Description)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// System builds the first-pass system prompt. lastUploadedFilename is the
// session's current document, empty when nothing was uploaded yet.
func (b *Builder) System(lastUploadedFilename string) string {
	var parts []string

	if names := ingestion.ListDocumentNames(b.docDirs...); len(names) > 0 {
		var list strings.Builder
		for _, name := range names {
			list.WriteString("  - " + name + "\n")
		}
		parts = append(parts, fmt.Sprintf(
			"\n## Documents currently in the knowledge base:\n%s"+
				"If the user asks about ANY of these documents, you MUST call "+
				"search_documents with a relevant query.",
			list.String()))
	}

	if lastUploadedFilename != "" {
		parts = append(parts, fmt.Sprintf(
			"\n## MOST RECENTLY UPLOADED DOCUMENT (this session): %s\n"+
				"When the user says 'the document', 'the uploaded file', 'the PDF', "+
				"or asks a question without specifying which document, they are "+
				"referring to **%s**. Focus your answer on this document's content.",
			lastUploadedFilename, lastUploadedFilename))
	}

	return fmt.Sprintf(systemTemplate,
		b.catalog(),
		b.now().Format("2006-01-02"),
		strings.Join(parts, "\n"))
}

// ContextAnswer builds the synthesis user prompt from the collected
// context block and the original question.
func (b *Builder) ContextAnswer(context, question string) string {
	return fmt.Sprintf(contextAnswerTemplate, context, question)
}

// IdentityPointer renders the note prepended to the context block so the
// synthesis pass knows what "the document" refers to.
func IdentityPointer(filename, title string) string {
	return fmt.Sprintf(
		"⚡ The most recently uploaded document in this session is: **%s** (title: %s). "+
			"When the user refers to 'the document' or 'uploaded file', "+
			"answer using content from this document.",
		filename, title)
}

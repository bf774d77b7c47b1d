package prompt

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"hr-chatbot-be/internal/tools"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder(t *testing.T) (*Builder, string, string) {
	t.Helper()
	docsDir := t.TempDir()
	uploadsDir := t.TempDir()
	registry := tools.NewRegistry(tools.NewHRClient("http://localhost:0"))
	return NewBuilder(registry, docsDir, uploadsDir), docsDir, uploadsDir
}

func TestSystemCatalogAndDate(t *testing.T) {
	builder, _, _ := testBuilder(t)

	out := builder.System("")

	assert.Contains(t, out, `TOOL_CALL: get_vacation_days(employee_id="EMP001")`)
	assert.Contains(t, out, `TOOL_CALL: search_documents(query="your search query")`)
	assert.Contains(t, out, "Today's date: "+time.Now().Format("2006-01-02"))
	assert.Contains(t, out, "Trenkwalder Group")
}

func TestSystemOmitsEmptyFragments(t *testing.T) {
	builder, _, _ := testBuilder(t)

	out := builder.System("")

	assert.NotContains(t, out, "Documents currently in the knowledge base")
	assert.NotContains(t, out, "MOST RECENTLY UPLOADED DOCUMENT")
}

func TestSystemListsKnowledgeBase(t *testing.T) {
	builder, docsDir, uploadsDir := testBuilder(t)
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "faq.md"), []byte("# FAQ"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "resume.txt"), []byte("cv"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docsDir, "ignore.xyz"), []byte("nope"), 0o644))

	out := builder.System("")

	assert.Contains(t, out, "Documents currently in the knowledge base")
	assert.Contains(t, out, "  - faq.md")
	assert.Contains(t, out, "  - resume.txt")
	assert.NotContains(t, out, "ignore.xyz")
}

func TestSystemNamesCurrentUpload(t *testing.T) {
	builder, _, _ := testBuilder(t)

	out := builder.System("resume.pdf")

	assert.Contains(t, out, "MOST RECENTLY UPLOADED DOCUMENT (this session): resume.pdf")
	assert.Contains(t, out, "**resume.pdf**")
}

func TestContextAnswer(t *testing.T) {
	builder, _, _ := testBuilder(t)

	out := builder.ContextAnswer("[Source: faq.md]\nNotice period is 30 days.", "what is the notice period?")

	assert.Contains(t, out, "[Source: faq.md]\nNotice period is 30 days.")
	assert.Contains(t, out, "User's question: what is the notice period?")
	assert.Contains(t, out, "Answer based ONLY on the provided information")
}

func TestIdentityPointer(t *testing.T) {
	out := IdentityPointer("resume.pdf", "resume")

	assert.Contains(t, out, "**resume.pdf**")
	assert.Contains(t, out, "(title: resume)")
}

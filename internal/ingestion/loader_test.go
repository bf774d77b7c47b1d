package ingestion

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSingleFileTxt(t *testing.T) {
	path := writeFile(t, t.TempDir(), "Employee Handbook.txt", "  Welcome to the company.\n")

	doc, err := LoadSingleFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Content != "Welcome to the company." {
		t.Errorf("Content = %q", doc.Content)
	}
	if doc.Format != "txt" {
		t.Errorf("Format = %q", doc.Format)
	}
	// Title is the filename stem, case preserved: it is the join key for
	// current-document retrieval scoping.
	if doc.Title != "Employee Handbook" {
		t.Errorf("Title = %q", doc.Title)
	}
}

func TestLoadSingleFileMarkdown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "faq.md", "# Benefits FAQ\n\nDental is covered from **day one**.\n")

	doc, err := LoadSingleFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if doc.Format != "md" {
		t.Errorf("Format = %q", doc.Format)
	}
	if !strings.Contains(strings.ToLower(doc.Content), "benefits faq") {
		t.Errorf("heading lost: %q", doc.Content)
	}
	if !strings.Contains(doc.Content, "Dental is covered from day one.") {
		t.Errorf("markdown formatting not stripped: %q", doc.Content)
	}
	if strings.Contains(doc.Content, "**") || strings.Contains(doc.Content, "#") {
		t.Errorf("markup leaked into content: %q", doc.Content)
	}
}

func TestLoadSingleFileUnsupported(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.csv", "a,b,c")

	if _, err := LoadSingleFile(path); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestLoadSingleFileEmpty(t *testing.T) {
	path := writeFile(t, t.TempDir(), "blank.txt", "   \n ")

	if _, err := LoadSingleFile(path); err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestLoadDocumentsSkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", "usable content")
	writeFile(t, dir, "empty.txt", "")
	writeFile(t, dir, "skipped.bin", "binary")

	docs, err := LoadDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Title != "good" {
		t.Errorf("Title = %q", docs[0].Title)
	}
}

func TestListDocumentNames(t *testing.T) {
	docsDir := t.TempDir()
	uploadsDir := t.TempDir()
	writeFile(t, docsDir, "zz_policy.md", "p")
	writeFile(t, docsDir, "aa_guide.txt", "g")
	writeFile(t, uploadsDir, "resume.pdf", "r")
	writeFile(t, docsDir, "notes.xyz", "n")

	names := ListDocumentNames(docsDir, uploadsDir, filepath.Join(docsDir, "missing"))

	want := []string{"aa_guide.txt", "zz_policy.md", "resume.pdf"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}

func TestSupportedExtensions(t *testing.T) {
	exts := SupportedExtensions()
	if len(exts) != 5 {
		t.Fatalf("got %d extensions: %v", len(exts), exts)
	}
	if !IsSupported(".PDF") {
		t.Error("extension check should be case-insensitive")
	}
	if IsSupported(".csv") {
		t.Error(".csv should not be supported")
	}
}

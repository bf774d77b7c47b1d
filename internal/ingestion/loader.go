package ingestion

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jaytaylor/html2text"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"io"
)

// Document is the raw text of one loaded file. Title is the filename stem
// (case preserved); it is the join key for "the current document" scoping.
type Document struct {
	Content string
	Source  string
	Format  string
	Title   string
}

type loaderFunc func(path string) (*Document, error)

var loaders = map[string]loaderFunc{
	".pdf":  loadPDF,
	".txt":  loadTxt,
	".md":   loadMarkdown,
	".docx": loadDocx,
	".doc":  loadDoc,
}

// SupportedExtensions lists the file extensions the loader understands,
// sorted, with leading dots.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(loaders))
	for ext := range loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsSupported reports whether the extension (with dot, any case) has a loader.
func IsSupported(ext string) bool {
	_, ok := loaders[strings.ToLower(ext)]
	return ok
}

func titleOf(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}
	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf text: %w", err)
	}

	return &Document{
		Content: strings.TrimSpace(string(raw)),
		Source:  path,
		Format:  "pdf",
		Title:   titleOf(path),
	}, nil
}

func loadTxt(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{
		Content: strings.TrimSpace(string(raw)),
		Source:  path,
		Format:  "txt",
		Title:   titleOf(path),
	}, nil
}

// loadMarkdown converts Markdown to HTML and strips it down to plain text so
// tables and code fences come out readable.
func loadMarkdown(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var buf strings.Builder
	if err := md.Convert(raw, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	text, err := html2text.FromString(buf.String(), html2text.Options{TextOnly: true})
	if err != nil {
		return nil, fmt.Errorf("strip html: %w", err)
	}

	return &Document{
		Content: strings.TrimSpace(text),
		Source:  path,
		Format:  "md",
		Title:   titleOf(path),
	}, nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func loadDocx(path string) (*Document, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	// Paragraph ends become newlines before the tags are stripped.
	content = strings.ReplaceAll(content, "</w:p>", "</w:p>\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = html.UnescapeString(content)

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	return &Document{
		Content: strings.Join(lines, "\n"),
		Source:  path,
		Format:  "docx",
		Title:   titleOf(path),
	}, nil
}

// loadDoc tries the docx reader first; legacy binary .doc files fall back to
// keeping only mostly-printable lines of the raw bytes.
func loadDoc(path string) (*Document, error) {
	if doc, err := loadDocx(path); err == nil {
		doc.Format = "doc"
		return doc, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(raw), "\n") {
		if len(line) == 0 {
			continue
		}
		printable := 0
		for _, c := range line {
			if unicode.IsPrint(c) || c == '\t' {
				printable++
			}
		}
		if float64(printable)/float64(len([]rune(line))) > 0.8 {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	return &Document{
		Content: strings.TrimSpace(strings.Join(lines, "\n")),
		Source:  path,
		Format:  "doc",
		Title:   titleOf(path),
	}, nil
}

// LoadSingleFile loads one file. Unsupported or empty files are an error.
func LoadSingleFile(path string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(path))
	loader, ok := loaders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file format %q (supported: %s)",
			ext, strings.Join(SupportedExtensions(), ", "))
	}
	doc, err := loader(path)
	if err != nil {
		return nil, err
	}
	if doc.Content == "" {
		return nil, fmt.Errorf("document is empty: %s", filepath.Base(path))
	}
	return doc, nil
}

// LoadDocuments loads every supported file in a directory, skipping the rest.
// Individual load failures are skipped, not fatal.
func LoadDocuments(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("documents directory not found: %w", err)
	}

	var documents []*Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !IsSupported(filepath.Ext(e.Name())) {
			continue
		}
		doc, err := LoadSingleFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		documents = append(documents, doc)
	}
	return documents, nil
}

// ListDocumentNames returns the filenames of every supported document across
// the given directories, sorted within each directory. Missing directories
// contribute nothing.
func ListDocumentNames(dirs ...string) []string {
	var names []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		var dirNames []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if IsSupported(filepath.Ext(e.Name())) {
				dirNames = append(dirNames, e.Name())
			}
		}
		sort.Strings(dirNames)
		names = append(names, dirNames...)
	}
	return names
}

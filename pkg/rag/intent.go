package rag

import "strings"

// docKeywords flags messages that likely concern document content. Kept
// deliberately broad: a false positive only costs one extra vector search.
var docKeywords = []string{
	"document", "file", "uploaded", "pdf", "resume", "cv", "report",
	"skills", "experience", "education", "qualifications", "summary",
	"summarize", "extract", "list", "mention", "mentioned", "content",
	"policy", "benefit", "onboarding", "faq", "guide", "procedure",
	"what does", "what is", "tell me about", "information",
}

var greetingWords = []string{"hi", "hello", "hey", "thanks", "bye"}

// LooksLikeDocumentQuestion reports whether a user message likely needs
// knowledge-base context. Short greetings never qualify even when they
// happen to contain a keyword substring.
func LooksLikeDocumentQuestion(text string) bool {
	lower := strings.ToLower(text)

	if len(strings.Fields(lower)) <= 2 {
		for _, w := range greetingWords {
			if strings.Contains(lower, w) {
				return false
			}
		}
	}

	for _, kw := range docKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// uploadKeywords widens retrieval to the uploaded-documents partition when
// the query mentions uploads at all.
var uploadKeywords = []string{"upload", "document", "file", "pdf", "cv", "resume", "report"}

// MentionsUpload reports whether the query refers to uploaded material.
func MentionsUpload(query string) bool {
	lower := strings.ToLower(query)
	for _, kw := range uploadKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

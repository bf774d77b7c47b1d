package rag

import "testing"

func TestLooksLikeDocumentQuestion(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"bare greeting", "hi", false},
		{"thanks", "thanks", false},
		{"farewell", "bye", false},
		{"two-word greeting", "hello there", false},
		{"no keywords", "how are you today", false},
		{"policy question", "What does the onboarding guide say about benefits?", true},
		{"summarize request", "summarize the file", true},
		{"cv question", "what skills are listed in the CV", true},
		{"case insensitive", "TELL ME ABOUT the company", true},
		{"what is phrase", "what is the notice period", true},
		{"short but keyworded", "the pdf", true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeDocumentQuestion(tt.text); got != tt.want {
				t.Errorf("LooksLikeDocumentQuestion(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMentionsUpload(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"what does my uploaded resume say", true},
		{"search the PDF", true},
		{"how many vacation days do I have", false},
		{"summarize the report", true},
		{"who is my manager", false},
	}

	for _, tt := range tests {
		if got := MentionsUpload(tt.query); got != tt.want {
			t.Errorf("MentionsUpload(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

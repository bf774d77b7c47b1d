package toolcall

import "testing"

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name      string
		input     string
		wantCalls []ToolCall
	}{
		{
			name:  "single call with one argument",
			input: `TOOL_CALL: get_vacation_days(employee_id="EMP001")`,
			wantCalls: []ToolCall{
				{Name: "get_vacation_days", Arguments: map[string]string{"employee_id": "EMP001"}},
			},
		},
		{
			name:      "plain text, no directives",
			input:     "Hello! I can help you with vacation days, payslips and documents.",
			wantCalls: nil,
		},
		{
			name: "two directives keep source order",
			input: "Let me check.\n" +
				`TOOL_CALL: get_vacation_days(employee_id="EMP002")` + "\n" +
				`TOOL_CALL: search_documents(query="notice period")`,
			wantCalls: []ToolCall{
				{Name: "get_vacation_days", Arguments: map[string]string{"employee_id": "EMP002"}},
				{Name: "search_documents", Arguments: map[string]string{"query": "notice period"}},
			},
		},
		{
			name:  "no arguments",
			input: "TOOL_CALL: get_employee_profile()",
			wantCalls: []ToolCall{
				{Name: "get_employee_profile", Arguments: map[string]string{}},
			},
		},
		{
			name:  "multiple arguments",
			input: `TOOL_CALL: search_documents(query="benefits", scope="all")`,
			wantCalls: []ToolCall{
				{Name: "search_documents", Arguments: map[string]string{"query": "benefits", "scope": "all"}},
			},
		},
		{
			name:  "malformed fragment inside args is dropped",
			input: `TOOL_CALL: search_documents(query="ok", broken=nope)`,
			wantCalls: []ToolCall{
				{Name: "search_documents", Arguments: map[string]string{"query": "ok"}},
			},
		},
		{
			name:      "unterminated directive never matches",
			input:     `TOOL_CALL: search_documents(query="dangling`,
			wantCalls: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.input)

			if len(got) != len(tt.wantCalls) {
				t.Fatalf("Parse returned %d calls, want %d", len(got), len(tt.wantCalls))
			}
			for i, want := range tt.wantCalls {
				if got[i].Name != want.Name {
					t.Errorf("call %d: Name = %q, want %q", i, got[i].Name, want.Name)
				}
				if len(got[i].Arguments) != len(want.Arguments) {
					t.Errorf("call %d: got %d arguments, want %d", i, len(got[i].Arguments), len(want.Arguments))
				}
				for k, v := range want.Arguments {
					if got[i].Arguments[k] != v {
						t.Errorf("call %d: argument %q = %q, want %q", i, k, got[i].Arguments[k], v)
					}
				}
			}
		})
	}
}

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "leaked directive removed",
			input: `Here is your answer. TOOL_CALL: search_documents(query="x") All done.`,
			want:  "Here is your answer. All done.",
		},
		{
			name:  "clean text untouched",
			input: "You have 12 vacation days left.",
			want:  "You have 12 vacation days left.",
		},
		{
			name:  "directive-only text becomes empty",
			input: `TOOL_CALL: get_sick_leave(employee_id="EMP001")`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.input); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

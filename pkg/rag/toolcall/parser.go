// Package toolcall parses TOOL_CALL directives out of raw model output.
//
// The contract with the model is plain text, one directive per line:
//
//	TOOL_CALL: tool_name(param1="value1", param2="value2")
//
// Anything that does not match is conversational text and ignored.
package toolcall

import "regexp"

// ToolCall is one parsed directive.
type ToolCall struct {
	Name      string
	Arguments map[string]string
}

// Parser extracts tool calls from a model reply.
type Parser interface {
	Parse(response string) []ToolCall
}

var (
	callRe = regexp.MustCompile(`TOOL_CALL:\s*(\w+)\(([^)]*)\)`)
	argRe  = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
)

type regexParser struct{}

// NewParser returns the regex-based parser for the TOOL_CALL line format.
func NewParser() Parser {
	return regexParser{}
}

// Parse returns all directives in order of appearance. Malformed argument
// fragments inside the parentheses are dropped rather than failing the
// whole call; an unparseable directive simply never matches.
func (regexParser) Parse(response string) []ToolCall {
	matches := callRe.FindAllStringSubmatch(response, -1)
	if len(matches) == 0 {
		return nil
	}

	calls := make([]ToolCall, 0, len(matches))
	for _, m := range matches {
		args := make(map[string]string)
		for _, am := range argRe.FindAllStringSubmatch(m[2], -1) {
			args[am[1]] = am[2]
		}
		calls = append(calls, ToolCall{Name: m[1], Arguments: args})
	}
	return calls
}

var stripRe = regexp.MustCompile(`TOOL_CALL:\s*\w+\([^)]*\)\s*`)

// Strip removes any stray TOOL_CALL lines from a final answer. The second
// model pass is told not to call tools, but smaller models leak directives
// anyway.
func Strip(response string) string {
	return stripRe.ReplaceAllString(response, "")
}

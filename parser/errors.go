package parser

import (
	"fmt"
	"strings"

	"github.com/aledsdavies/frameseq/lexer"
)

// ErrorKind represents the categories of parsing errors
type ErrorKind int

const (
	ErrorSyntax   ErrorKind = iota // input does not match the grammar
	ErrorOverflow                  // digit run exceeds the frame integer range
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorSyntax:
		return "syntax error"
	case ErrorOverflow:
		return "overflow error"
	default:
		return "error"
	}
}

// ParseError represents a parsing error with location and context information.
// Expected holds the set of token types that would have been valid at Pos.
type ParseError struct {
	Kind     ErrorKind
	Message  string
	Pos      lexer.Position
	Got      lexer.TokenType
	Expected []lexer.TokenType
	Input    string
}

// Error returns the formatted error message with line/column and a code snippet
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if want := e.expectedList(); want != "" {
		msg += fmt.Sprintf(" (expected %s)", want)
	}
	if snippet := e.createCodeSnippet(); snippet != "" {
		msg += "\n" + snippet
	}
	return msg
}

// expectedList renders the expected token set as a human-readable list
func (e *ParseError) expectedList() string {
	if len(e.Expected) == 0 {
		return ""
	}
	names := make([]string, len(e.Expected))
	for i, t := range e.Expected {
		names[i] = t.String()
	}
	if len(names) == 1 {
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}

// createCodeSnippet creates a code snippet showing the error location
func (e *ParseError) createCodeSnippet() string {
	if e.Input == "" || e.Pos.Line == 0 {
		return ""
	}

	lines := strings.Split(e.Input, "\n")
	if e.Pos.Line > len(lines) {
		return ""
	}

	lineContent := lines[e.Pos.Line-1]

	var snippet strings.Builder
	snippet.WriteString(fmt.Sprintf("  --> %d:%d\n", e.Pos.Line, e.Pos.Column))
	snippet.WriteString("   |\n")
	snippet.WriteString(fmt.Sprintf("%2d | %s\n", e.Pos.Line, lineContent))
	snippet.WriteString("   | ")
	if e.Pos.Column > 0 && e.Pos.Column <= len(lineContent)+1 {
		snippet.WriteString(strings.Repeat(" ", e.Pos.Column-1) + "^")
	}

	return snippet.String()
}

// newSyntaxError creates a syntax error at the current token
func (p *parser) newSyntaxError(message string, expected ...lexer.TokenType) *ParseError {
	tok := p.current()
	return &ParseError{
		Kind:     ErrorSyntax,
		Message:  message,
		Pos:      tok.Pos,
		Got:      tok.Type,
		Expected: expected,
		Input:    p.input,
	}
}

// newOverflowError creates an overflow error for an oversized numeric literal
func (p *parser) newOverflowError(tok lexer.Token, literal string) *ParseError {
	return &ParseError{
		Kind:    ErrorOverflow,
		Message: fmt.Sprintf("frame number %s does not fit into 64 bits", literal),
		Pos:     tok.Pos,
		Got:     tok.Type,
		Input:   p.input,
	}
}

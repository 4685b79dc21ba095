package lexer

// TokenType represents lexical tokens of the frame sequence notation
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Structure
	COMMA // , - separates sequence parts
	MINUS // - - range separator or numeric sign
	AT    // @ - introduces a step specifier

	// Literals
	NUMBER // unsigned digit run: 10, 0042
	BINARY // b - binary subdivision step symbol
)

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case ILLEGAL:
		return "ILLEGAL"
	case COMMA:
		return "COMMA"
	case MINUS:
		return "MINUS"
	case AT:
		return "AT"
	case NUMBER:
		return "NUMBER"
	case BINARY:
		return "BINARY"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the token's source text, or the static symbol for
// operator tokens whose Text is empty.
func (t Token) Symbol() string {
	if t.Text != "" {
		return t.Text
	}
	switch t.Type {
	case COMMA:
		return ","
	case MINUS:
		return "-"
	case AT:
		return "@"
	case EOF:
		return "end of input"
	default:
		return ""
	}
}

// Token represents a lexical token
type Token struct {
	Type TokenType
	Text string // source text of the token
	Pos  Position
}

// Position represents a position in the input string
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset
}

// Package lexer tokenizes frame sequence notation.
//
// The notation is tiny: unsigned digit runs, the separators ',' '-' '@',
// and the binary subdivision symbol 'b'. Whitespace between tokens is
// insignificant. Every other byte produces an ILLEGAL token which the
// parser turns into a syntax error.
package lexer

// ASCII character lookup tables for fast classification
var (
	isDigit          [128]bool
	isBlank          [128]bool
	singleCharTokens [128]TokenType
)

func init() {
	for i := 0; i < 128; i++ {
		ch := byte(i)
		isDigit[i] = '0' <= ch && ch <= '9'
		isBlank[i] = ch == ' ' || ch == '\t' || ch == '\r'
		singleCharTokens[i] = ILLEGAL
	}

	singleCharTokens[','] = COMMA
	singleCharTokens['-'] = MINUS
	singleCharTokens['@'] = AT
	singleCharTokens['b'] = BINARY
}

// Lexer scans a frame sequence string into tokens
type Lexer struct {
	input    string
	position int  // current position in input (byte offset of ch)
	readPos  int  // next reading position in input
	ch       byte // current byte under examination (0 at EOF)
	line     int  // current line number
	column   int  // current column number
}

// New creates a Lexer over the given input string
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0, // incremented to 1 by the initial readChar
	}
	l.readChar()
	return l
}

// readChar advances to the next byte, maintaining line/column counters
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
	l.column++
}

func (l *Lexer) skipBlanks() {
	for l.ch < 128 && (isBlank[l.ch] || l.ch == '\n') {
		l.readChar()
	}
}

func (l *Lexer) pos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// Next returns the next token. After the input is exhausted it returns EOF
// tokens forever.
func (l *Lexer) Next() Token {
	l.skipBlanks()

	pos := l.pos()

	if l.position >= len(l.input) {
		return Token{Type: EOF, Pos: pos}
	}

	ch := l.ch
	if ch < 128 && isDigit[ch] {
		start := l.position
		for l.ch < 128 && isDigit[l.ch] {
			l.readChar()
		}
		return Token{Type: NUMBER, Text: l.input[start:l.position], Pos: pos}
	}

	tok := Token{Type: ILLEGAL, Text: l.input[l.position : l.position+1], Pos: pos}
	if ch < 128 && singleCharTokens[ch] != ILLEGAL {
		tok.Type = singleCharTokens[ch]
	}
	l.readChar()
	return tok
}

// Tokenize scans the whole input and returns all tokens, EOF included as
// the final element.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

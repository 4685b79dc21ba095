// Package parser turns frame sequence notation into a token tree.
//
// The grammar is the wire contract of the notation:
//
//	FrameSequenceString := FrameSequence EOI
//	FrameSequence       := FrameSequencePart ("," FrameSequencePart)*
//	FrameSequencePart    := FrameRange | Frame
//	FrameRange           := Frame "-" Frame ("@" (PositiveNumber | BinarySequenceSymbol))?
//	Frame                := "-"? Digit+
//	PositiveNumber        := Digit+          // must be > 0; a literal "0" is a syntax/semantic error
//	BinarySequenceSymbol  := "b"
//
// Frames are int64; a digit run that does not fit yields an ErrorOverflow
// ParseError rather than a wraparound. Input left over after the sequence
// is a syntax error, so a successful parse always consumes the whole
// string.
package parser

import (
	"fmt"
	"strconv"

	"github.com/aledsdavies/frameseq/lexer"
)

// Parse parses a frame sequence string into its token tree.
// On failure the returned error is a *ParseError carrying the offending
// position and the set of token types expected there.
func Parse(input string) (*Sequence, error) {
	p := &parser{
		input:  input,
		tokens: lexer.New(input).Tokenize(),
	}
	return p.sequence()
}

// parser is the internal recursive descent state
type parser struct {
	input  string
	tokens []lexer.Token
	pos    int
}

func (p *parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *parser) at(t lexer.TokenType) bool {
	return p.current().Type == t
}

// sequence parses FrameSequence EOI
func (p *parser) sequence() (*Sequence, error) {
	seq := &Sequence{}

	for {
		part, err := p.part()
		if err != nil {
			return nil, err
		}
		seq.Parts = append(seq.Parts, part)

		if !p.at(lexer.COMMA) {
			break
		}
		p.advance()
	}

	if !p.at(lexer.EOF) {
		msg := fmt.Sprintf("unexpected %q after sequence", p.current().Symbol())
		return nil, p.newSyntaxError(msg, lexer.COMMA, lexer.EOF)
	}

	return seq, nil
}

// part parses one comma-separated element: a bare frame or a range with an
// optional step specifier.
func (p *parser) part() (Part, error) {
	from, err := p.frame()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.MINUS) {
		return Frame{Value: from}, nil
	}
	p.advance() // range separator

	to, err := p.frame()
	if err != nil {
		return nil, err
	}

	r := Range{From: from, To: to}
	if p.at(lexer.AT) {
		p.advance()
		r.Step, err = p.step()
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

// frame parses "-"? Digit+ into an int64
func (p *parser) frame() (int64, error) {
	neg := false
	if p.at(lexer.MINUS) {
		neg = true
		p.advance()
	}

	if !p.at(lexer.NUMBER) {
		if neg {
			// Sign already consumed, only digits can follow.
			return 0, p.newSyntaxError("expected frame number", lexer.NUMBER)
		}
		return 0, p.newSyntaxError("expected frame number", lexer.MINUS, lexer.NUMBER)
	}

	tok := p.current()
	literal := tok.Text
	if neg {
		literal = "-" + literal
	}

	value, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		return 0, p.newOverflowError(tok, literal)
	}

	p.advance()
	return value, nil
}

// step parses the token after '@': a positive stride or the binary
// subdivision symbol.
func (p *parser) step() (*Step, error) {
	switch {
	case p.at(lexer.NUMBER):
		tok := p.current()
		count, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.newOverflowError(tok, tok.Text)
		}
		if count == 0 {
			return nil, p.newSyntaxError("step size must be positive")
		}
		p.advance()
		return &Step{Kind: StepFixed, Count: count}, nil

	case p.at(lexer.BINARY):
		p.advance()
		return &Step{Kind: StepBinary}, nil

	default:
		return nil, p.newSyntaxError("expected step size after '@'", lexer.NUMBER, lexer.BINARY)
	}
}

package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokenExpectation struct {
	Type   TokenType
	Text   string
	Line   int
	Column int
}

// assertTokens compares actual tokens with expected, providing clear error messages
func assertTokens(t *testing.T, input string, expected []tokenExpectation) {
	t.Helper()

	tokens := New(input).Tokenize()
	var actual []tokenExpectation
	for _, tok := range tokens {
		actual = append(actual, tokenExpectation{
			Type:   tok.Type,
			Text:   tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("token mismatch (-expected +actual):\n%s", diff)
	}
}

func TestEmptyInput(t *testing.T) {
	assertTokens(t, "", []tokenExpectation{
		{EOF, "", 1, 1},
	})
}

func TestSingleFrame(t *testing.T) {
	assertTokens(t, "42", []tokenExpectation{
		{NUMBER, "42", 1, 1},
		{EOF, "", 1, 3},
	})
}

func TestFrameList(t *testing.T) {
	assertTokens(t, "1,2,13", []tokenExpectation{
		{NUMBER, "1", 1, 1},
		{COMMA, ",", 1, 2},
		{NUMBER, "2", 1, 3},
		{COMMA, ",", 1, 4},
		{NUMBER, "13", 1, 5},
		{EOF, "", 1, 7},
	})
}

func TestRangeWithStep(t *testing.T) {
	assertTokens(t, "10-20@2", []tokenExpectation{
		{NUMBER, "10", 1, 1},
		{MINUS, "-", 1, 3},
		{NUMBER, "20", 1, 4},
		{AT, "@", 1, 6},
		{NUMBER, "2", 1, 7},
		{EOF, "", 1, 8},
	})
}

func TestBinarySymbol(t *testing.T) {
	assertTokens(t, "10-20@b", []tokenExpectation{
		{NUMBER, "10", 1, 1},
		{MINUS, "-", 1, 3},
		{NUMBER, "20", 1, 4},
		{AT, "@", 1, 6},
		{BINARY, "b", 1, 7},
		{EOF, "", 1, 8},
	})
}

func TestNegativeFrame(t *testing.T) {
	// The sign is a separate MINUS token; the parser folds it into the frame.
	assertTokens(t, "-5--3", []tokenExpectation{
		{MINUS, "-", 1, 1},
		{NUMBER, "5", 1, 2},
		{MINUS, "-", 1, 3},
		{MINUS, "-", 1, 4},
		{NUMBER, "3", 1, 5},
		{EOF, "", 1, 6},
	})
}

func TestBlanksAreInsignificant(t *testing.T) {
	assertTokens(t, " 1 , 2-3 ", []tokenExpectation{
		{NUMBER, "1", 1, 2},
		{COMMA, ",", 1, 4},
		{NUMBER, "2", 1, 6},
		{MINUS, "-", 1, 7},
		{NUMBER, "3", 1, 8},
		{EOF, "", 1, 10},
	})
}

func TestIllegalCharacters(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []tokenExpectation
	}{
		{
			name:  "letter outside of notation",
			input: "1-5@x",
			expected: []tokenExpectation{
				{NUMBER, "1", 1, 1},
				{MINUS, "-", 1, 2},
				{NUMBER, "5", 1, 3},
				{AT, "@", 1, 4},
				{ILLEGAL, "x", 1, 5},
				{EOF, "", 1, 6},
			},
		},
		{
			name:  "colon separator from other notations",
			input: "2:6",
			expected: []tokenExpectation{
				{NUMBER, "2", 1, 1},
				{ILLEGAL, ":", 1, 2},
				{NUMBER, "6", 1, 3},
				{EOF, "", 1, 4},
			},
		},
		{
			name:  "non-ascii byte",
			input: "1\xc3\xa9",
			expected: []tokenExpectation{
				{NUMBER, "1", 1, 1},
				{ILLEGAL, "\xc3", 1, 2},
				{ILLEGAL, "\xa9", 1, 3},
				{EOF, "", 1, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTokens(t, tt.input, tt.expected)
		})
	}
}

func TestNextAfterEOF(t *testing.T) {
	lex := New("7")
	lex.Next() // NUMBER
	for i := 0; i < 3; i++ {
		if tok := lex.Next(); tok.Type != EOF {
			t.Fatalf("expected EOF after input exhausted, got %s", tok.Type)
		}
	}
}

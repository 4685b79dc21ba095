package parser

import (
	"strings"
	"testing"
)

func TestParseErrorRendering(t *testing.T) {
	_, err := Parse("10-20@")
	if err == nil {
		t.Fatal("expected parse error")
	}

	msg := err.Error()

	for _, want := range []string{
		"syntax error",
		"expected step size after '@'",
		"NUMBER or BINARY",
		"--> 1:7",
		"10-20@",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message missing %q:\n%s", want, msg)
		}
	}

	// Caret points at the offending column.
	lines := strings.Split(msg, "\n")
	caretLine := lines[len(lines)-1]
	if !strings.HasSuffix(caretLine, strings.Repeat(" ", 6)+"^") {
		t.Errorf("caret misplaced in:\n%s", msg)
	}
}

func TestParseErrorExpectedListSingle(t *testing.T) {
	_, err := Parse("--5")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "(expected NUMBER)") {
		t.Errorf("single-token expected list rendered badly:\n%s", err)
	}
}

func TestOverflowErrorRendering(t *testing.T) {
	_, err := Parse("99999999999999999999")
	if err == nil {
		t.Fatal("expected overflow error")
	}

	msg := err.Error()
	if !strings.Contains(msg, "overflow error") {
		t.Errorf("missing kind prefix:\n%s", msg)
	}
	if !strings.Contains(msg, "99999999999999999999") {
		t.Errorf("missing offending literal:\n%s", msg)
	}
}

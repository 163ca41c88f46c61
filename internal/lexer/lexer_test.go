package lexer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phpfront/phpfront/internal/lexer"
	"github.com/phpfront/phpfront/internal/token"
	"github.com/phpfront/phpfront/internal/utils"
	"github.com/sebdah/goldie/v2"
)

func TestNextToken(t *testing.T) {
	t.Parallel()

	input := `<?php
        $five = 5;
        $ten = 10;

        $add = function($x, $y) {
            return $x + $y;
        };

        $result = add($five, $ten);`

	expected := []token.Token{
		token.New(token.STARTTAG),
		token.Var("five"),
		token.New(token.ASSIGN),
		token.Int("5"),
		token.New(token.SEMICOLON),
		token.Var("ten"),
		token.New(token.ASSIGN),
		token.Int("10"),
		token.New(token.SEMICOLON),
		token.Var("add"),
		token.New(token.ASSIGN),
		token.New(token.FUNCTION),
		token.New(token.LEFTPAREN),
		token.Var("x"),
		token.New(token.COMMA),
		token.Var("y"),
		token.New(token.RIGHTPAREN),
		token.New(token.LEFTBRACE),
		token.New(token.RETURN),
		token.Var("x"),
		token.New(token.PLUS),
		token.Var("y"),
		token.New(token.SEMICOLON),
		token.New(token.RIGHTBRACE),
		token.New(token.SEMICOLON),
		token.Var("result"),
		token.New(token.ASSIGN),
		token.Ident("add"),
		token.New(token.LEFTPAREN),
		token.Var("five"),
		token.New(token.COMMA),
		token.Var("ten"),
		token.New(token.RIGHTPAREN),
		token.New(token.SEMICOLON),
		token.New(token.EOF),
	}

	actual := lexer.Lex(input)
	if len(actual) != 35 {
		t.Errorf("Lex returned %d tokens, expected 35", len(actual))
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("Lex mismatch (-want +got):\n%s", diff)
	}
}

func TestIllegal(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		input    string
		expected []token.Token
	}{
		{"$1five", []token.Token{token.Illegal("First symbol of var can't be digit"), token.New(token.EOF)}},
		{"$", []token.Token{token.Illegal("expected variable name after $"), token.New(token.EOF)}},
		{"<?xml", []token.Token{token.Illegal(`expected php after <?, got "xml"`), token.New(token.EOF)}},
		{"<?", []token.Token{token.Illegal(`expected php after <?, got ""`), token.New(token.EOF)}},
		{"@ 1", []token.Token{token.Illegal(`unexpected character '@'`), token.Int("1"), token.New(token.EOF)}},
		{"é", []token.Token{token.Illegal("unexpected byte 0xc3"), token.Illegal("unexpected byte 0xa9"), token.New(token.EOF)}},
		{"a\x00b", []token.Token{token.Ident("a"), token.Illegal("unexpected byte 0x00"), token.Ident("b"), token.New(token.EOF)}},
	}

	for _, tc := range testcases {
		actual := lexer.Lex(tc.input)
		if diff := cmp.Diff(tc.expected, actual); diff != "" {
			t.Errorf("Lex(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestOperatorsAndKeywords(t *testing.T) {
	t.Parallel()

	input := "if (5 < 10) { return true; } else { return false; } 10 == 10; 9 != 10; -!*/> [] $a_1 foo_bar1 < x"
	expected := []token.Token{
		token.New(token.IF),
		token.New(token.LEFTPAREN),
		token.Int("5"),
		token.New(token.LT),
		token.Int("10"),
		token.New(token.RIGHTPAREN),
		token.New(token.LEFTBRACE),
		token.New(token.RETURN),
		token.New(token.TRUE),
		token.New(token.SEMICOLON),
		token.New(token.RIGHTBRACE),
		token.New(token.ELSE),
		token.New(token.LEFTBRACE),
		token.New(token.RETURN),
		token.New(token.FALSE),
		token.New(token.SEMICOLON),
		token.New(token.RIGHTBRACE),
		token.Int("10"),
		token.New(token.EQ),
		token.Int("10"),
		token.New(token.SEMICOLON),
		token.Int("9"),
		token.New(token.NOTEQ),
		token.Int("10"),
		token.New(token.SEMICOLON),
		token.New(token.MINUS),
		token.New(token.BANG),
		token.New(token.ASTERISK),
		token.New(token.SLASH),
		token.New(token.GT),
		token.New(token.LEFTBRACKET),
		token.New(token.RIGHTBRACKET),
		token.Var("a_1"),
		// identifiers stop at digits
		token.Ident("foo_bar"),
		token.Int("1"),
		token.New(token.LT),
		token.Ident("x"),
		token.New(token.EOF),
	}

	if diff := cmp.Diff(expected, lexer.Lex(input)); diff != "" {
		t.Errorf("Lex mismatch (-want +got):\n%s", diff)
	}
}

func TestEOFIsSticky(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   \n\t\r ", "$x", "<?php"} {
		l := lexer.New(input)
		steps := 0
		for l.NextToken().Kind != token.EOF {
			steps++
			if steps > len(input) {
				t.Fatalf("%q: no EOF after %d tokens", input, steps)
			}
		}
		for i := 0; i < 3; i++ {
			if tok := l.NextToken(); tok.Kind != token.EOF {
				t.Errorf("%q: NextToken after EOF returned %v", input, tok)
			}
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		tok      token.Token
		expected string
	}{
		{token.Var("x"), "Var(x)"},
		{token.Int("5"), "Int(5)"},
		{token.Ident("add"), "Ident(add)"},
		{token.Illegal("oops"), "Illegal(oops)"},
		{token.New(token.ASSIGN), "Assign"},
		{token.New(token.EOF), "Eof"},
		{token.New(token.STARTTAG), "StartTag"},
		{token.New(token.LEFTPAREN), "Lparen"},
	}

	for _, tc := range testcases {
		if actual := tc.tok.String(); actual != tc.expected {
			t.Errorf("String() = %q, expected %q", actual, tc.expected)
		}
	}
}

func TestGolden(t *testing.T) {
	t.Parallel()

	testfiles, err := utils.FindSourceFiles("../../testdata")
	if err != nil {
		t.Errorf("failed to find test files: %v", err)
		return
	}

	for _, testfile := range testfiles {
		source, err := os.ReadFile(testfile)
		if err != nil {
			t.Errorf("failed to read %s: %v", testfile, err)
			return
		}

		var builder strings.Builder
		for _, tok := range lexer.Lex(string(source)) {
			builder.WriteString(tok.String())
			builder.WriteString("\n")
		}

		g := goldie.New(t)
		g.Assert(t, filepath.Base(testfile), []byte(builder.String()))
	}
}

func FuzzLexTerminates(f *testing.F) {
	f.Add("")
	f.Add("<?php $x = 5;")
	f.Add("$1five")
	f.Add("<?xml")
	f.Add("\x00\xff$")

	f.Fuzz(func(t *testing.T, input string) {
		l := lexer.New(input)
		for steps := 0; ; steps++ {
			if steps > len(input) {
				t.Fatalf("no EOF after %d tokens", steps)
			}
			if l.NextToken().Kind == token.EOF {
				return
			}
		}
	})
}

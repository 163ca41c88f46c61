package token

import "fmt"

type Kind int

const (
	EOF Kind = iota
	ILLEGAL

	// Single-character tokens.
	ASSIGN
	PLUS
	MINUS
	BANG
	ASTERISK
	SLASH
	LT
	GT
	COMMA
	SEMICOLON
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE
	LEFTBRACKET
	RIGHTBRACKET

	// Two-character tokens.
	EQ
	NOTEQ

	// Literals, identifiers and variables.
	IDENT
	INT
	VAR

	// Keywords.
	FUNCTION
	TRUE
	FALSE
	IF
	ELSE
	RETURN

	// <?php
	STARTTAG
)

var kindNames = [...]string{
	EOF:          "Eof",
	ILLEGAL:      "Illegal",
	ASSIGN:       "Assign",
	PLUS:         "Plus",
	MINUS:        "Minus",
	BANG:         "Bang",
	ASTERISK:     "Asterisk",
	SLASH:        "Slash",
	LT:           "LT",
	GT:           "GT",
	COMMA:        "Comma",
	SEMICOLON:    "Semicolon",
	LEFTPAREN:    "Lparen",
	RIGHTPAREN:   "Rparen",
	LEFTBRACE:    "Lbrace",
	RIGHTBRACE:   "Rbrace",
	LEFTBRACKET:  "Lbracket",
	RIGHTBRACKET: "Rbracket",
	EQ:           "EQ",
	NOTEQ:        "NotEQ",
	IDENT:        "Ident",
	INT:          "Int",
	VAR:          "Var",
	FUNCTION:     "Function",
	TRUE:         "True",
	FALSE:        "False",
	IF:           "If",
	ELSE:         "Else",
	RETURN:       "Return",
	STARTTAG:     "StartTag",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// HasPayload reports whether tokens of this kind carry a Literal.
func (k Kind) HasPayload() bool {
	switch k {
	case IDENT, INT, VAR, ILLEGAL:
		return true
	default:
		return false
	}
}

// Token is one lexical unit. Literal holds the identifier, integer or
// variable text, or the reason of an ILLEGAL token; it is empty for
// every other kind.
type Token struct {
	Kind    Kind
	Literal string
}

// New builds a token without payload.
func New(kind Kind) Token {
	return Token{Kind: kind}
}

func Ident(name string) Token     { return Token{Kind: IDENT, Literal: name} }
func Int(text string) Token       { return Token{Kind: INT, Literal: text} }
func Var(name string) Token       { return Token{Kind: VAR, Literal: name} }
func Illegal(reason string) Token { return Token{Kind: ILLEGAL, Literal: reason} }

// String returns the canonical display form used in diagnostics,
// e.g. `Var(x)`, `Int(5)`, `Assign`, `Eof`.
func (t Token) String() string {
	if t.Kind.HasPayload() {
		return fmt.Sprintf("%v(%s)", t.Kind, t.Literal)
	}
	return t.Kind.String()
}

// Lexeme returns the source spelling of the token.
func (t Token) Lexeme() string {
	//exhaustive:ignore
	switch t.Kind {
	case IDENT, INT:
		return t.Literal
	case VAR:
		return "$" + t.Literal
	case ILLEGAL, EOF:
		return ""
	}
	return lexemes[t.Kind]
}

var lexemes = map[Kind]string{
	ASSIGN:       "=",
	PLUS:         "+",
	MINUS:        "-",
	BANG:         "!",
	ASTERISK:     "*",
	SLASH:        "/",
	LT:           "<",
	GT:           ">",
	COMMA:        ",",
	SEMICOLON:    ";",
	LEFTPAREN:    "(",
	RIGHTPAREN:   ")",
	LEFTBRACE:    "{",
	RIGHTBRACE:   "}",
	LEFTBRACKET:  "[",
	RIGHTBRACKET: "]",
	EQ:           "==",
	NOTEQ:        "!=",
	FUNCTION:     "function",
	TRUE:         "true",
	FALSE:        "false",
	IF:           "if",
	ELSE:         "else",
	RETURN:       "return",
	STARTTAG:     "<?php",
}

var keywords = map[string]Kind{
	"function": FUNCTION,
	"true":     TRUE,
	"false":    FALSE,
	"if":       IF,
	"else":     ELSE,
	"return":   RETURN,
}

// LookupIdent maps an identifier to its keyword kind, or IDENT.
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}

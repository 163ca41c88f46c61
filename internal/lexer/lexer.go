// Package lexer turns source text into tokens, one token per call.
package lexer

import (
	"fmt"

	"github.com/phpfront/phpfront/internal/token"
)

// Lex scans the whole source and returns every token up to and including EOF.
func Lex(source string) []token.Token {
	l := New(source)
	tokens := []token.Token{}
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

type Lexer struct {
	input []byte

	position     int  // position of ch
	readPosition int  // next position to read
	ch           byte // byte under the cursor, 0 past the end
}

func New(input string) *Lexer {
	l := &Lexer{input: []byte(input)}
	l.readChar()
	return l
}

func (l *Lexer) isAtEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		// stay put so that EOF is sticky
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	}
	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token. It never fails: malformed input
// becomes an ILLEGAL token and EOF is returned forever once reached.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	if l.isAtEnd() {
		return token.New(token.EOF)
	}

	var tok token.Token
	switch c := l.ch; {
	case c == '=':
		tok = l.either('=', token.EQ, token.ASSIGN)
	case c == '!':
		tok = l.either('=', token.NOTEQ, token.BANG)
	case c == '<':
		if l.peekChar() == '?' {
			return l.startTag()
		}
		tok = token.New(token.LT)
	case c == '$':
		l.readChar()
		return l.variable()
	case isLetter(c):
		ident := l.readIdentifier()
		if k := token.LookupIdent(ident); k != token.IDENT {
			return token.New(k)
		}
		return token.Ident(ident)
	case isDigit(c):
		return token.Int(l.readInt())
	default:
		if k, ok := singleChars[c]; ok {
			tok = token.New(k)
		} else {
			tok = token.Illegal(unexpectedCharacter(c))
		}
	}

	l.readChar()
	return tok
}

var singleChars = map[byte]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.ASTERISK,
	'/': token.SLASH,
	'>': token.GT,
	',': token.COMMA,
	';': token.SEMICOLON,
	'(': token.LEFTPAREN,
	')': token.RIGHTPAREN,
	'{': token.LEFTBRACE,
	'}': token.RIGHTBRACE,
	'[': token.LEFTBRACKET,
	']': token.RIGHTBRACKET,
}

// either picks two if the next byte is next, consuming it, or one otherwise.
func (l *Lexer) either(next byte, two, one token.Kind) token.Token {
	if l.peekChar() == next {
		l.readChar()
		return token.New(two)
	}
	return token.New(one)
}

func unexpectedCharacter(c byte) string {
	if c >= 0x20 && c < 0x7f {
		return fmt.Sprintf("unexpected character %q", rune(c))
	}
	return fmt.Sprintf("unexpected byte 0x%02x", c)
}

// startTag scans `<?` followed by an identifier. Only `<?php` is accepted.
func (l *Lexer) startTag() token.Token {
	l.readChar()
	l.readChar()
	ident := l.readIdentifier()
	if ident == "php" {
		return token.New(token.STARTTAG)
	}
	return token.Illegal(fmt.Sprintf("expected php after <?, got %q", ident))
}

const (
	errVarDigit = "First symbol of var can't be digit"
	errVarEmpty = "expected variable name after $"
)

func (l *Lexer) variable() token.Token {
	if isDigit(l.ch) {
		// swallow the rest of the name so it does not reappear as an Int
		l.readWhile(isWord)
		return token.Illegal(errVarDigit)
	}
	name := l.readWhile(isWord)
	if name == "" {
		return token.Illegal(errVarEmpty)
	}
	return token.Var(name)
}

func (l *Lexer) readIdentifier() string {
	return l.readWhile(isLetter)
}

func (l *Lexer) readInt() string {
	return l.readWhile(isDigit)
}

func (l *Lexer) readWhile(pred func(byte) bool) string {
	start := l.position
	for !l.isAtEnd() && pred(l.ch) {
		l.readChar()
	}
	return string(l.input[start:l.position])
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWord(c byte) bool {
	return isLetter(c) || isDigit(c)
}

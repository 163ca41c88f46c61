package parser

import (
	"fmt"

	"github.com/phpfront/phpfront/internal/token"
)

// UnexpectedTokenError is reported when the lookahead is not the token a
// production requires.
type UnexpectedTokenError struct {
	Expected token.Kind
	Actual   token.Token
}

func (e UnexpectedTokenError) Error() string {
	return fmt.Sprintf("expected next token to be %v, got %v instead", e.Expected, e.Actual)
}

// NoPrefixError is reported when no expression can start with Token.
type NoPrefixError struct {
	Token token.Token
}

func (e NoPrefixError) Error() string {
	return fmt.Sprintf("expected an expression, got %v instead", e.Token)
}

// IllegalTokenError carries the reason of an ILLEGAL token met by the parser.
type IllegalTokenError struct {
	Token token.Token
}

func (e IllegalTokenError) Error() string {
	return "illegal token: " + e.Token.Literal
}

// UnexpectedStatementError is reported when Token cannot begin a statement.
type UnexpectedStatementError struct {
	Token token.Token
}

func (e UnexpectedStatementError) Error() string {
	return fmt.Sprintf("unexpected token %v at start of statement", e.Token)
}

type InvalidIntegerError struct {
	Token token.Token
	Err   error
}

func (e InvalidIntegerError) Error() string {
	return fmt.Sprintf("could not parse %q as integer: %v", e.Token.Literal, e.Err)
}

func (e InvalidIntegerError) Unwrap() error {
	return e.Err
}

package parser

import "github.com/phpfront/phpfront/internal/token"

// Precedence is the binding strength of an operator. Higher binds tighter.
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // ==
	LESSGREATER // > or <
	SUM         // +
	PRODUCT     // *
	PREFIX      // -X or !X
	CALL        // myFunction(X)
	INDEX       // array[index]
)

var precedences = map[token.Kind]Precedence{
	token.EQ:          EQUALS,
	token.NOTEQ:       EQUALS,
	token.LT:          LESSGREATER,
	token.GT:          LESSGREATER,
	token.PLUS:        SUM,
	token.MINUS:       SUM,
	token.ASTERISK:    PRODUCT,
	token.SLASH:       PRODUCT,
	token.LEFTPAREN:   CALL,
	token.LEFTBRACKET: INDEX,
}

func precedenceOf(kind token.Kind) Precedence {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return LOWEST
}

// Package parser builds an AST from the token stream of a lexer.
package parser

import (
	"errors"
	"strconv"

	"github.com/phpfront/phpfront/internal/ast"
	"github.com/phpfront/phpfront/internal/lexer"
	"github.com/phpfront/phpfront/internal/token"
)

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	errs []error

	pos      int // number of tokens consumed so far
	closedAt int // pos of the last `}` that closed a block

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:       p.parseIdentifier,
		token.VAR:         p.parseVariable,
		token.INT:         p.parseIntegerLiteral,
		token.TRUE:        p.parseBoolean,
		token.FALSE:       p.parseBoolean,
		token.MINUS:       p.parsePrefixExpression,
		token.BANG:        p.parsePrefixExpression,
		token.LEFTPAREN:   p.parseGroupedExpression,
		token.LEFTBRACKET: p.parseArrayLiteral,
		token.IF:          p.parseIfExpression,
		token.FUNCTION:    p.parseFunctionLiteral,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:        p.parseInfixExpression,
		token.MINUS:       p.parseInfixExpression,
		token.ASTERISK:    p.parseInfixExpression,
		token.SLASH:       p.parseInfixExpression,
		token.EQ:          p.parseInfixExpression,
		token.NOTEQ:       p.parseInfixExpression,
		token.LT:          p.parseInfixExpression,
		token.GT:          p.parseInfixExpression,
		token.LEFTPAREN:   p.parseCallExpression,
		token.LEFTBRACKET: p.parseIndexExpression,
	}

	// fill cur and peek
	p.nextToken()
	p.nextToken()

	return p
}

// Parse is a shorthand for New(lexer.New(source)).ParseProgram().
func Parse(source string) (*ast.Program, error) {
	return New(lexer.New(source)).ParseProgram()
}

// ParseProgram consumes the remaining tokens and returns the program.
// Malformed statements are skipped; the returned error joins every
// diagnostic in source order and is nil when there were none. The
// program is never nil.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	p.errs = nil
	program := &ast.Program{Statements: p.parseStatements(token.EOF)}

	return program, errors.Join(p.errs...)
}

// Errors returns the messages of the diagnostics of the last ParseProgram.
func (p *Parser) Errors() []string {
	msgs := make([]string, len(p.errs))
	for i, err := range p.errs {
		msgs[i] = err.Error()
	}

	return msgs
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
	p.pos++
}

// closedBlock reports whether cur is a `}` already consumed as the end of
// a nested block.
func (p *Parser) closedBlock() bool {
	return p.curIs(token.RIGHTBRACE) && p.closedAt == p.pos
}

func (p *Parser) curIs(kind token.Kind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) peekIs(kind token.Kind) bool {
	return p.peek.Kind == kind
}

// expectPeek advances if the lookahead is of the given kind. Otherwise
// it leaves the stream untouched and reports what was found instead.
func (p *Parser) expectPeek(kind token.Kind) error {
	if p.peekIs(kind) {
		p.nextToken()
		return nil
	}

	return UnexpectedTokenError{Expected: kind, Actual: p.peek}
}

// skipSemicolon consumes an optional trailing `;`.
func (p *Parser) skipSemicolon() {
	if p.peekIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// parseStatements parses statements until cur is end or EOF.
// Failed statements are recorded and skipped.
func (p *Parser) parseStatements(end token.Kind) []ast.Statement {
	stmts := []ast.Statement{}
	for !p.curIs(end) && !p.curIs(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.errs = append(p.errs, err)
			// the failed statement may have stopped right on the terminator
			if p.curIs(end) && !p.closedBlock() {
				break
			}
		} else if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.nextToken()
	}

	return stmts
}

// statement = varStatement | returnStatement | exprStatement | "<?php" | ";" ;
func (p *Parser) parseStatement() (ast.Statement, error) {
	//exhaustive:ignore
	switch p.cur.Kind {
	case token.VAR:
		return p.parseVarStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.STARTTAG, token.SEMICOLON:
		return nil, nil
	case token.ILLEGAL:
		return nil, IllegalTokenError{Token: p.cur}
	default:
		if _, ok := p.prefixFns[p.cur.Kind]; ok {
			return p.parseExpressionStatement()
		}

		return nil, UnexpectedStatementError{Token: p.cur}
	}
}

// varStatement = VAR "=" expr ";"? ;
func (p *Parser) parseVarStatement() (ast.Statement, error) {
	tok := p.cur
	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()

	return &ast.VarStatement{Token: tok, Value: value}, nil
}

// returnStatement = "return" expr? ";"? ;
func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	tok := p.cur
	if p.peekIs(token.SEMICOLON) || p.peekIs(token.RIGHTBRACE) || p.peekIs(token.EOF) {
		p.skipSemicolon()
		return &ast.ReturnStatement{Token: tok}, nil
	}
	p.nextToken()

	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()

	return &ast.ReturnStatement{Token: tok, Value: value}, nil
}

// exprStatement = expr ";"? ;
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.cur
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	p.skipSemicolon()

	return &ast.ExpressionStatement{Token: tok, Expr: expr}, nil
}

// block = "{" statement* "}" ;
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	tok := p.cur
	p.nextToken()

	stmts := p.parseStatements(token.RIGHTBRACE)
	if !p.curIs(token.RIGHTBRACE) {
		return nil, UnexpectedTokenError{Expected: token.RIGHTBRACE, Actual: p.cur}
	}
	p.closedAt = p.pos

	return &ast.BlockStatement{Token: tok, Statements: stmts}, nil
}

// parseExpression parses an expression whose operators all bind tighter
// than precedence. cur is left on the last token of the expression.
func (p *Parser) parseExpression(precedence Precedence) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		if p.curIs(token.ILLEGAL) {
			return nil, IllegalTokenError{Token: p.cur}
		}

		return nil, NoPrefixError{Token: p.cur}
	}

	left, err := prefix()
	if err != nil {
		return nil, err
	}

	for precedence < precedenceOf(p.peek.Kind) {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left, nil
		}
		p.nextToken()

		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return &ast.Identifier{Token: p.cur}, nil
}

func (p *Parser) parseVariable() (ast.Expression, error) {
	return &ast.Variable{Token: p.cur}, nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		return nil, InvalidIntegerError{Token: p.cur, Err: err}
	}

	return &ast.IntegerLiteral{Token: p.cur, Value: value}, nil
}

func (p *Parser) parseBoolean() (ast.Expression, error) {
	return &ast.Boolean{Token: p.cur, Value: p.curIs(token.TRUE)}, nil
}

// prefix = ("-" | "!") expr ;
func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	tok := p.cur
	p.nextToken()

	right, err := p.parseExpression(PREFIX)
	if err != nil {
		return nil, err
	}

	return &ast.PrefixExpression{Token: tok, Right: right}, nil
}

// infix = expr operator expr ;
func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cur
	precedence := precedenceOf(tok.Kind)
	p.nextToken()

	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}

	return &ast.InfixExpression{Token: tok, Left: left, Right: right}, nil
}

// paren = "(" expr ")" ;
func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()

	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	return expr, nil
}

// if = "if" "(" expr ")" block ("else" (block | if))? ;
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	tok := p.cur
	if err := p.expectPeek(token.LEFTPAREN); err != nil {
		return nil, err
	}
	p.nextToken()

	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RIGHTPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LEFTBRACE); err != nil {
		return nil, err
	}

	cons, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	expr := &ast.IfExpression{Token: tok, Condition: cond, Consequence: cons}
	if !p.peekIs(token.ELSE) {
		return expr, nil
	}
	p.nextToken()

	if p.peekIs(token.IF) {
		// else if (...) is sugar for else { if (...) }
		elseTok := p.cur
		p.nextToken()
		ifTok := p.cur
		nested, err := p.parseIfExpression()
		if err != nil {
			return nil, err
		}
		expr.Alternative = &ast.BlockStatement{
			Token:      elseTok,
			Statements: []ast.Statement{&ast.ExpressionStatement{Token: ifTok, Expr: nested}},
		}

		return expr, nil
	}

	if err := p.expectPeek(token.LEFTBRACE); err != nil {
		return nil, err
	}
	alt, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	expr.Alternative = alt

	return expr, nil
}

// function = "function" "(" (VAR ("," VAR)* ","?)? ")" block ;
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	tok := p.cur
	if err := p.expectPeek(token.LEFTPAREN); err != nil {
		return nil, err
	}

	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LEFTBRACE); err != nil {
		return nil, err
	}

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}

	return &ast.FunctionLiteral{Token: tok, Parameters: params, Body: body}, nil
}

func (p *Parser) parseFunctionParameters() ([]*ast.Variable, error) {
	params := []*ast.Variable{}
	if p.peekIs(token.RIGHTPAREN) {
		p.nextToken()
		return params, nil
	}

	if err := p.expectPeek(token.VAR); err != nil {
		return nil, err
	}
	params = append(params, &ast.Variable{Token: p.cur})
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if p.peekIs(token.RIGHTPAREN) {
			break
		}
		if err := p.expectPeek(token.VAR); err != nil {
			return nil, err
		}
		params = append(params, &ast.Variable{Token: p.cur})
	}
	if err := p.expectPeek(token.RIGHTPAREN); err != nil {
		return nil, err
	}

	return params, nil
}

// call = expr "(" (expr ("," expr)* ","?)? ")" ;
func (p *Parser) parseCallExpression(function ast.Expression) (ast.Expression, error) {
	tok := p.cur
	args, err := p.parseExpressionList(token.RIGHTPAREN)
	if err != nil {
		return nil, err
	}

	return &ast.CallExpression{Token: tok, Function: function, Arguments: args}, nil
}

// array = "[" (expr ("," expr)* ","?)? "]" ;
func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	tok := p.cur
	elems, err := p.parseExpressionList(token.RIGHTBRACKET)
	if err != nil {
		return nil, err
	}

	return &ast.ArrayLiteral{Token: tok, Elements: elems}, nil
}

// index = expr "[" expr "]" ;
func (p *Parser) parseIndexExpression(left ast.Expression) (ast.Expression, error) {
	tok := p.cur
	p.nextToken()

	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RIGHTBRACKET); err != nil {
		return nil, err
	}

	return &ast.IndexExpression{Token: tok, Left: left, Index: index}, nil
}

// parseExpressionList parses a comma separated list closed by end.
// cur is the opening token on entry and end on success.
func (p *Parser) parseExpressionList(end token.Kind) ([]ast.Expression, error) {
	list := []ast.Expression{}
	if p.peekIs(end) {
		p.nextToken()
		return list, nil
	}

	p.nextToken()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)

	for p.peekIs(token.COMMA) {
		p.nextToken()
		if p.peekIs(end) {
			break
		}
		p.nextToken()

		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
	if err := p.expectPeek(end); err != nil {
		return nil, err
	}

	return list, nil
}

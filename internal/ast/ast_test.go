package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phpfront/phpfront/internal/ast"
	"github.com/phpfront/phpfront/internal/token"
)

func integer(text string, value int64) *ast.IntegerLiteral {
	return &ast.IntegerLiteral{Token: token.Int(text), Value: value}
}

func TestString(t *testing.T) {
	t.Parallel()

	five := integer("5", 5)
	x := &ast.Variable{Token: token.Var("x")}
	y := &ast.Variable{Token: token.Var("y")}
	sum := &ast.InfixExpression{Token: token.New(token.PLUS), Left: x, Right: y}
	body := &ast.BlockStatement{
		Token:      token.New(token.LEFTBRACE),
		Statements: []ast.Statement{&ast.ReturnStatement{Token: token.New(token.RETURN), Value: sum}},
	}

	testcases := []struct {
		node     ast.Node
		expected string
	}{
		{&ast.VarStatement{Token: token.Var("x"), Value: five}, "$x = 5;"},
		{&ast.ReturnStatement{Token: token.New(token.RETURN), Value: five}, "return 5;"},
		{&ast.ReturnStatement{Token: token.New(token.RETURN)}, "return;"},
		{&ast.PrefixExpression{Token: token.New(token.MINUS), Right: five}, "(-5)"},
		{sum, "($x + $y)"},
		{&ast.FunctionLiteral{Token: token.New(token.FUNCTION), Parameters: []*ast.Variable{x, y}, Body: body}, "function($x, $y) { return ($x + $y); }"},
		{&ast.CallExpression{Token: token.New(token.LEFTPAREN), Function: &ast.Identifier{Token: token.Ident("add")}, Arguments: []ast.Expression{x, five}}, "add($x, 5)"},
		{&ast.IfExpression{Token: token.New(token.IF), Condition: &ast.Boolean{Token: token.New(token.TRUE), Value: true}, Consequence: body}, "if (true) { return ($x + $y); }"},
		{&ast.IndexExpression{Token: token.New(token.LEFTBRACKET), Left: x, Index: five}, "($x[5])"},
		{&ast.ArrayLiteral{Token: token.New(token.LEFTBRACKET)}, "[]"},
		{&ast.BlockStatement{Token: token.New(token.LEFTBRACE)}, "{ }"},
		// a statement whose value failed to parse still renders
		{&ast.VarStatement{Token: token.Var("z")}, "$z = ;"},
	}

	for _, tc := range testcases {
		if diff := cmp.Diff(tc.expected, tc.node.String()); diff != "" {
			t.Errorf("String() mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestProgramString(t *testing.T) {
	t.Parallel()

	program := &ast.Program{Statements: []ast.Statement{
		&ast.VarStatement{Token: token.Var("x"), Value: integer("1", 1)},
		&ast.VarStatement{Token: token.Var("y"), Value: integer("2", 2)},
		&ast.ReturnStatement{Token: token.New(token.RETURN), Value: &ast.Variable{Token: token.Var("x")}},
	}}

	if diff := cmp.Diff("$x = 1;$y = 2;return $x;", program.String()); diff != "" {
		t.Errorf("String() mismatch (-want +got):\n%s", diff)
	}
	if program.Base() != token.Var("x") {
		t.Errorf("Base() = %v, expected Var(x)", program.Base())
	}
	if empty := (&ast.Program{}); empty.Base().Kind != token.EOF || empty.String() != "" {
		t.Errorf("empty program = %q with base %v", empty.String(), empty.Base())
	}
}

func TestSexpAndUniverse(t *testing.T) {
	t.Parallel()

	stmt := &ast.VarStatement{
		Token: token.Var("r"),
		Value: &ast.CallExpression{
			Token:     token.New(token.LEFTPAREN),
			Function:  &ast.Identifier{Token: token.Ident("add")},
			Arguments: []ast.Expression{integer("1", 1), &ast.PrefixExpression{Token: token.New(token.BANG), Right: &ast.Boolean{Token: token.New(token.FALSE)}}},
		},
	}

	if diff := cmp.Diff("(var r (call (ident add) (int 1) (prefix ! (bool false))))", ast.Sexp(stmt)); diff != "" {
		t.Errorf("Sexp mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("(missing)", ast.Sexp(nil)); diff != "" {
		t.Errorf("Sexp(nil) mismatch (-want +got):\n%s", diff)
	}

	var kinds []string
	for _, n := range ast.Universe(stmt) {
		kinds = append(kinds, n.Base().String())
	}
	expected := []string{"Var(r)", "Lparen", "Ident(add)", "Int(1)", "Bang", "False"}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Errorf("Universe mismatch (-want +got):\n%s", diff)
	}
}

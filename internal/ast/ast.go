package ast

import (
	"fmt"
	"strings"

	"github.com/phpfront/phpfront/internal/token"
)

// Node is implemented by every AST node. String renders the node back to
// source text; Base returns the token that introduced the node.
type Node interface {
	fmt.Stringer
	Base() token.Token
}

// Statement is the closed set of statement nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is the closed set of expression nodes.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parse. Statements are in source order.
type Program struct {
	Statements []Statement
}

func (p *Program) String() string {
	return concat(p.Statements, "")
}

func (p *Program) Base() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Base()
	}
	return token.New(token.EOF)
}

var _ Node = &Program{}

// VarStatement binds a variable: `$name = value;`.
type VarStatement struct {
	Token token.Token // always a VAR token
	Value Expression
}

// Name returns the variable name without the leading `$`.
func (v *VarStatement) Name() string {
	return v.Token.Literal
}

func (v *VarStatement) String() string {
	return "$" + v.Name() + " = " + str(v.Value) + ";"
}

func (v *VarStatement) Base() token.Token { return v.Token }
func (v *VarStatement) statementNode()    {}

var _ Statement = &VarStatement{}

// ReturnStatement is `return value;`. Value is nil for a bare `return;`.
type ReturnStatement struct {
	Token token.Token
	Value Expression
}

func (r *ReturnStatement) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

func (r *ReturnStatement) Base() token.Token { return r.Token }
func (r *ReturnStatement) statementNode()    {}

var _ Statement = &ReturnStatement{}

// ExpressionStatement wraps an expression used as a statement, e.g. a call.
type ExpressionStatement struct {
	Token token.Token // first token of the expression
	Expr  Expression
}

func (e *ExpressionStatement) String() string {
	return str(e.Expr) + ";"
}

func (e *ExpressionStatement) Base() token.Token { return e.Token }
func (e *ExpressionStatement) statementNode()    {}

var _ Statement = &ExpressionStatement{}

type BlockStatement struct {
	Token      token.Token // the `{`, or the `else` of an `else if`
	Statements []Statement
}

func (b *BlockStatement) String() string {
	if len(b.Statements) == 0 {
		return "{ }"
	}
	return "{ " + concat(b.Statements, "") + " }"
}

func (b *BlockStatement) Base() token.Token { return b.Token }
func (b *BlockStatement) statementNode()    {}

var _ Statement = &BlockStatement{}

type Identifier struct {
	Token token.Token
}

func (i *Identifier) String() string    { return i.Token.Literal }
func (i *Identifier) Base() token.Token { return i.Token }
func (i *Identifier) expressionNode()   {}

var _ Expression = &Identifier{}

// Variable is a `$name` reference inside an expression.
type Variable struct {
	Token token.Token
}

func (v *Variable) String() string    { return "$" + v.Token.Literal }
func (v *Variable) Base() token.Token { return v.Token }
func (v *Variable) expressionNode()   {}

var _ Expression = &Variable{}

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (i *IntegerLiteral) String() string    { return i.Token.Literal }
func (i *IntegerLiteral) Base() token.Token { return i.Token }
func (i *IntegerLiteral) expressionNode()   {}

var _ Expression = &IntegerLiteral{}

type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) String() string    { return b.Token.Lexeme() }
func (b *Boolean) Base() token.Token { return b.Token }
func (b *Boolean) expressionNode()   {}

var _ Expression = &Boolean{}

// PrefixExpression is `-x` or `!x`.
type PrefixExpression struct {
	Token token.Token // the operator
	Right Expression
}

func (p *PrefixExpression) Operator() string { return p.Token.Lexeme() }

func (p *PrefixExpression) String() string {
	return "(" + p.Operator() + str(p.Right) + ")"
}

func (p *PrefixExpression) Base() token.Token { return p.Token }
func (p *PrefixExpression) expressionNode()   {}

var _ Expression = &PrefixExpression{}

type InfixExpression struct {
	Token token.Token // the operator
	Left  Expression
	Right Expression
}

func (i *InfixExpression) Operator() string { return i.Token.Lexeme() }

func (i *InfixExpression) String() string {
	return "(" + str(i.Left) + " " + i.Operator() + " " + str(i.Right) + ")"
}

func (i *InfixExpression) Base() token.Token { return i.Token }
func (i *InfixExpression) expressionNode()   {}

var _ Expression = &InfixExpression{}

// IfExpression is `if (cond) { ... } else { ... }`. Alternative may be nil.
type IfExpression struct {
	Token       token.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (i *IfExpression) String() string {
	var b strings.Builder
	b.WriteString("if (")
	b.WriteString(str(i.Condition))
	b.WriteString(") ")
	b.WriteString(i.Consequence.String())
	if i.Alternative != nil {
		b.WriteString(" else ")
		b.WriteString(i.Alternative.String())
	}
	return b.String()
}

func (i *IfExpression) Base() token.Token { return i.Token }
func (i *IfExpression) expressionNode()   {}

var _ Expression = &IfExpression{}

// FunctionLiteral is `function($a, $b) { ... }`.
type FunctionLiteral struct {
	Token      token.Token
	Parameters []*Variable
	Body       *BlockStatement
}

func (f *FunctionLiteral) String() string {
	return "function(" + concat(f.Parameters, ", ") + ") " + f.Body.String()
}

func (f *FunctionLiteral) Base() token.Token { return f.Token }
func (f *FunctionLiteral) expressionNode()   {}

var _ Expression = &FunctionLiteral{}

type CallExpression struct {
	Token     token.Token // the `(`
	Function  Expression
	Arguments []Expression
}

func (c *CallExpression) String() string {
	return str(c.Function) + "(" + concat(c.Arguments, ", ") + ")"
}

func (c *CallExpression) Base() token.Token { return c.Token }
func (c *CallExpression) expressionNode()   {}

var _ Expression = &CallExpression{}

type ArrayLiteral struct {
	Token    token.Token // the `[`
	Elements []Expression
}

func (a *ArrayLiteral) String() string {
	return "[" + concat(a.Elements, ", ") + "]"
}

func (a *ArrayLiteral) Base() token.Token { return a.Token }
func (a *ArrayLiteral) expressionNode()   {}

var _ Expression = &ArrayLiteral{}

type IndexExpression struct {
	Token token.Token // the `[`
	Left  Expression
	Index Expression
}

func (i *IndexExpression) String() string {
	return "(" + str(i.Left) + "[" + str(i.Index) + "])"
}

func (i *IndexExpression) Base() token.Token { return i.Token }
func (i *IndexExpression) expressionNode()   {}

var _ Expression = &IndexExpression{}

// str renders a possibly nil node as the empty string.
func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func concat[T Node](elems []T, sep string) string {
	var b strings.Builder
	for i, elem := range elems {
		if i != 0 {
			b.WriteString(sep)
		}
		b.WriteString(elem.String())
	}
	return b.String()
}

package ast

import (
	"fmt"
	"strings"
)

// Sexp renders n as an S-expression that spells out the tree structure,
// e.g. `(var x (infix + (int 1) (int 2)))`. It is meant for debugging
// and golden tests; String renders source text instead.
func Sexp(n Node) string {
	return sexp(n).String()
}

func sexp(n Node) fmt.Stringer {
	switch n := n.(type) {
	case nil:
		return parenthesize("missing")
	case *Program:
		return parenthesize("program", sexps(n.Statements)...)
	case *VarStatement:
		return parenthesize("var "+n.Name(), sexp(n.Value))
	case *ReturnStatement:
		if n.Value == nil {
			return parenthesize("return")
		}
		return parenthesize("return", sexp(n.Value))
	case *ExpressionStatement:
		return parenthesize("expr", sexp(n.Expr))
	case *BlockStatement:
		return parenthesize("block", sexps(n.Statements)...)
	case *Identifier:
		return parenthesize("ident " + n.Token.Literal)
	case *Variable:
		return parenthesize("variable " + n.Token.Literal)
	case *IntegerLiteral:
		return parenthesize("int " + n.Token.Literal)
	case *Boolean:
		return parenthesize("bool " + n.Token.Lexeme())
	case *PrefixExpression:
		return parenthesize("prefix "+n.Operator(), sexp(n.Right))
	case *InfixExpression:
		return parenthesize("infix "+n.Operator(), sexp(n.Left), sexp(n.Right))
	case *IfExpression:
		elems := []fmt.Stringer{sexp(n.Condition), sexp(n.Consequence)}
		if n.Alternative != nil {
			elems = append(elems, sexp(n.Alternative))
		}
		return parenthesize("if", elems...)
	case *FunctionLiteral:
		return parenthesize("function", parenthesize("params", sexps(n.Parameters)...), sexp(n.Body))
	case *CallExpression:
		return parenthesize("call", append([]fmt.Stringer{sexp(n.Function)}, sexps(n.Arguments)...)...)
	case *ArrayLiteral:
		return parenthesize("array", sexps(n.Elements)...)
	case *IndexExpression:
		return parenthesize("index", sexp(n.Left), sexp(n.Index))
	}
	panic(fmt.Sprintf("unknown node %T", n))
}

func sexps[T Node](nodes []T) []fmt.Stringer {
	out := make([]fmt.Stringer, len(nodes))
	for i, n := range nodes {
		out[i] = sexp(n)
	}
	return out
}

// parenthesize writes `(head e1 e2 ...)`.
func parenthesize(head string, elems ...fmt.Stringer) fmt.Stringer {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(head)
	for _, elem := range elems {
		b.WriteString(" ")
		b.WriteString(elem.String())
	}
	b.WriteString(")")
	return &b
}

// Children returns the direct children of n in source order.
// Missing optional children are skipped.
func Children(n Node) []Node {
	var children []Node
	add := func(c Node) {
		if c != nil {
			children = append(children, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		for _, s := range n.Statements {
			add(s)
		}
	case *VarStatement:
		add(n.Value)
	case *ReturnStatement:
		add(n.Value)
	case *ExpressionStatement:
		add(n.Expr)
	case *BlockStatement:
		for _, s := range n.Statements {
			add(s)
		}
	case *PrefixExpression:
		add(n.Right)
	case *InfixExpression:
		add(n.Left)
		add(n.Right)
	case *IfExpression:
		add(n.Condition)
		add(n.Consequence)
		if n.Alternative != nil {
			add(n.Alternative)
		}
	case *FunctionLiteral:
		for _, p := range n.Parameters {
			add(p)
		}
		add(n.Body)
	case *CallExpression:
		add(n.Function)
		for _, a := range n.Arguments {
			add(a)
		}
	case *ArrayLiteral:
		for _, e := range n.Elements {
			add(e)
		}
	case *IndexExpression:
		add(n.Left)
		add(n.Index)
	case *Identifier, *Variable, *IntegerLiteral, *Boolean:
	}
	return children
}

// Universe returns n and all of its descendants in depth-first pre-order.
func Universe(n Node) []Node {
	nodes := []Node{n}
	for _, c := range Children(n) {
		nodes = append(nodes, Universe(c)...)
	}
	return nodes
}

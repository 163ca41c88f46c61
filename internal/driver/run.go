package driver

import (
	"fmt"

	"github.com/phpfront/phpfront/internal/ast"
	"github.com/phpfront/phpfront/internal/parser"
)

// Pass is a consumer of a parsed program, such as a printer or an
// evaluator living outside this module.
type Pass interface {
	Init(*ast.Program) error
	Run(*ast.Program) (*ast.Program, error)
}

type PassRunner struct {
	passes []Pass
}

func NewPassRunner() *PassRunner {
	return &PassRunner{}
}

// AddPass adds a pass to the end of the pass list.
func (r *PassRunner) AddPass(pass Pass) {
	r.passes = append(r.passes, pass)
}

// Run executes passes in order.
// If an error occurs, it stops the execution and returns the current program.
func (r *PassRunner) Run(program *ast.Program) (*ast.Program, error) {
	for _, pass := range r.passes {
		err := pass.Init(program)
		if err != nil {
			return program, fmt.Errorf("init: %w", err)
		}
		program, err = pass.Run(program)
		if err != nil {
			return program, fmt.Errorf("run: %w", err)
		}
	}

	return program, nil
}

// RunSource parses the source code and executes passes in order.
// Passes only run on programs without parse errors; the partial program
// is still returned alongside the parse error.
func (r *PassRunner) RunSource(source string) (*ast.Program, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return program, fmt.Errorf("parse:\n%w", err)
	}

	return r.Run(program)
}

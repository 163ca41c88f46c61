package driver

import (
	"fmt"
	"io"

	"github.com/phpfront/phpfront/internal/ast"
)

// Dump writes each statement of the program on its own line, either as
// source text or as an S-expression.
type Dump struct {
	W    io.Writer
	Sexp bool
}

func (d Dump) Init(*ast.Program) error {
	if d.W == nil {
		return fmt.Errorf("dump: no writer")
	}

	return nil
}

func (d Dump) Run(program *ast.Program) (*ast.Program, error) {
	for _, stmt := range program.Statements {
		line := stmt.String()
		if d.Sexp {
			line = ast.Sexp(stmt)
		}
		if _, err := fmt.Fprintln(d.W, line); err != nil {
			return program, err
		}
	}

	return program, nil
}

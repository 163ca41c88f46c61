package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/peterh/liner"
	"github.com/phpfront/phpfront/internal/driver"
)

func main() {
	const (
		inputUsage = "input file path"
		sexpUsage  = "print the tree as S-expressions instead of source text"
	)
	var inputPath string
	var sexp bool
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.BoolVar(&sexp, "sexp", false, sexpUsage)

	flag.Parse()

	if inputPath == "" {
		err := RunPrompt(sexp)
		if err != nil && err != io.EOF && err != liner.ErrPromptAborted {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if err := RunFile(inputPath, sexp); err != nil {
			printError(err)
			os.Exit(1)
		}
	}
}

var history = filepath.Join(xdg.DataHome, "phpfront", ".phpfront_history")

func newRunner(sexp bool) *driver.PassRunner {
	r := driver.NewPassRunner()
	r.AddPass(driver.Dump{W: os.Stdout, Sexp: sexp})
	return r
}

// RunPrompt parses each line typed at the prompt and prints the tree.
func RunPrompt(sexp bool) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	r := newRunner(sexp)
	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)
		if _, err := r.RunSource(input); err != nil {
			printError(err)
		}
	}
}

func RunFile(path string, sexp bool) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	_, err = newRunner(sexp).RunSource(string(bytes))
	return err
}

func printError(err error) {
	for _, err := range flatten(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// flatten unwraps joined errors down to the individual diagnostics.
func flatten(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		var errs []error
		for _, err := range e.Unwrap() {
			errs = append(errs, flatten(err)...)
		}
		return errs
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			if _, ok := inner.(interface{ Unwrap() []error }); ok {
				return flatten(inner)
			}
		}
	}
	return []error{err}
}

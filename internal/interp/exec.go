package interp

import (
	"context"
	"fmt"

	"github.com/itsmostafa/minipy/internal/lexer"
)

// Compile tokenizes and segments source.
func Compile(source string) (Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return Segment(tokens, source), nil
}

// Exec compiles and runs source.
func Exec(ctx context.Context, source string, opts ...Option) error {
	program, err := Compile(source)
	if err != nil {
		return err
	}
	return New(program, opts...).Run(ctx)
}

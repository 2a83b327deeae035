// Package compiler compiles a field format and its field name list into a
// pattern with named slots. It chains the lexer, parser, names and codegen
// phases and stamps every error with the definition it came from.
package compiler

import (
	"github.com/finwire/finfield/compiler/codegen"
	"github.com/finwire/finfield/compiler/errors"
	"github.com/finwire/finfield/compiler/lexer"
	"github.com/finwire/finfield/compiler/names"
	"github.com/finwire/finfield/compiler/parser"
)

// Pattern is the compiled form of a field definition
type Pattern struct {
	Format string
	Names  string
	Source string // pattern text for the regexp2 engine
	Slots  []codegen.Slot
	Spec   *parser.Spec
}

// Option configures Compile
type Option func(*codegen.Options)

// WithStrictCharsets restricts every segment to its SWIFT character set
func WithStrictCharsets(strict bool) Option {
	return func(o *codegen.Options) {
		o.StrictCharsets = strict
	}
}

// Compile runs all phases over format and fieldNames. The result depends only
// on its inputs.
func Compile(format, fieldNames string, opts ...Option) (*Pattern, error) {
	var options codegen.Options
	for _, opt := range opts {
		opt(&options)
	}

	list, err := names.Parse(fieldNames)
	if err != nil {
		return nil, stamp(err, format, fieldNames)
	}

	tokens, lexErrs := lexer.New(format).ScanTokens()
	if len(lexErrs) > 0 {
		return nil, lexErrs.WithSource(format, fieldNames).Err()
	}

	spec, parseErrs := parser.New(tokens, format).Parse()
	if len(parseErrs) > 0 {
		return nil, parseErrs.WithSource(format, fieldNames).Err()
	}

	res, err := codegen.Generate(spec, list, options)
	if err != nil {
		return nil, stamp(err, format, fieldNames)
	}

	return &Pattern{
		Format: format,
		Names:  fieldNames,
		Source: res.Pattern,
		Slots:  res.Slots,
		Spec:   spec,
	}, nil
}

func stamp(err error, format, fieldNames string) error {
	switch e := err.(type) {
	case *errors.DefinitionError:
		return e.WithSource(format, fieldNames)
	case errors.List:
		return e.WithSource(format, fieldNames).Err()
	default:
		return err
	}
}

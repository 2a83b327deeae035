package codegen

import (
	"strconv"

	"github.com/finwire/finfield/compiler/parser"
)

// lineSeparator is the physical line break of FIN field content
const lineSeparator = `\r\n`

// lenientClasses accept any character of a line for every set but z and e;
// content validation is left to the caller.
var lenientClasses = map[parser.CharType]string{
	parser.Numeric:      `[^\r\n]`,
	parser.Alpha:        `[^\r\n]`,
	parser.Alphanumeric: `[^\r\n]`,
	parser.Any:          `[^\r\n]`,
	parser.Decimal:      `[^\r\n]`,
	parser.Space:        ` `,
	parser.Extended:     `[\s\S]`,
}

// strictClasses are the SWIFT character sets
var strictClasses = map[parser.CharType]string{
	parser.Numeric:      `[0-9]`,
	parser.Alpha:        `[A-Z]`,
	parser.Alphanumeric: `[0-9A-Z]`,
	parser.Any:          `[0-9A-Za-z/\-?:().,'+ ]`,
	parser.Decimal:      `[0-9,]`,
	parser.Space:        ` `,
	parser.Extended:     `[0-9A-Za-z/\-?:().,'+ =!"%&*<>;{@#_\r\n]`,
}

func (g *generator) class(t parser.CharType) string {
	if g.opts.StrictCharsets {
		return strictClasses[t]
	}
	return lenientClasses[t]
}

// quantifier renders "{N}" for exact lengths and "{1,N}" otherwise
func quantifier(n int, exact bool) string {
	if exact {
		return "{" + strconv.Itoa(n) + "}"
	}
	return "{1," + strconv.Itoa(n) + "}"
}

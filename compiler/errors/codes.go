package errors

// Error code constants organized by phase
// E001-E099: Lexer errors
// E100-E199: Parser errors
// E200-E299: Field name list errors
// E300-E399: Codegen errors

const (
	// Lexer errors (E001-E099)
	ErrInvalidCharacter = "E001"
	ErrInvalidNumber    = "E002"
	ErrMissingLength    = "E003"
	ErrUnexpectedEOF    = "E004"

	// Parser errors (E100-E199)
	ErrUnexpectedToken   = "E100"
	ErrUnmatchedBracket  = "E101"
	ErrEmptyGroup        = "E102"
	ErrLineBreakInGroup  = "E103"
	ErrInvalidLength     = "E104"
	ErrInvalidLineRepeat = "E105"

	// Field name list errors (E200-E299)
	ErrMalformedNames = "E200"
	ErrEmptyName      = "E201"
	ErrUnterminated   = "E202"

	// Codegen errors (E300-E399)
	ErrTooManyLines   = "E300"
	ErrTooManyNames   = "E301"
	ErrDuplicateName  = "E302"
	ErrInvalidName    = "E303"
	ErrUnmergeable    = "E304"
	ErrEngineRejected = "E305"
)

// ErrorCategory returns the category of an error code
func ErrorCategory(code string) string {
	if len(code) < 2 {
		return "unknown"
	}

	switch code[1] {
	case '0':
		return "lexer"
	case '1':
		return "parser"
	case '2':
		return "names"
	case '3':
		return "codegen"
	default:
		return "unknown"
	}
}

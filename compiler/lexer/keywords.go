package lexer

// typeLetters holds the character-set letters of the notation
var typeLetters = map[rune]bool{
	'n': true, // digits
	'a': true, // upper case letters
	'c': true, // upper case alphanumeric
	'x': true, // any character of the SWIFT x set
	'd': true, // decimals, comma as separator
	'e': true, // space
	'z': true, // extended text, line breaks allowed
}

// IsTypeLetter reports whether r selects a character set
func IsTypeLetter(r rune) bool {
	return typeLetters[r]
}

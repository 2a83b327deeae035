package parser

import (
	"strings"
	"testing"

	"github.com/finwire/finfield/compiler/lexer"
)

// BenchmarkParser_Qualified benchmarks parsing a qualified date-time notation
func BenchmarkParser_Qualified(b *testing.B) {
	source := ":4!c//8!n6!n[,3n][/[N]2!n[2!n]]"
	tokens, _ := lexer.New(source).ScanTokens()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New(tokens, source)
		p.Parse()
	}
}

// BenchmarkParser_Multiline benchmarks parsing a notation with many lines
func BenchmarkParser_Multiline(b *testing.B) {
	source := strings.Repeat("[/1!a][/34x]$", 20) + "4*35x"
	tokens, _ := lexer.New(source).ScanTokens()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := New(tokens, source)
		p.Parse()
	}
}

// BenchmarkParse_EndToEnd benchmarks lexing and parsing together
func BenchmarkParse_EndToEnd(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Parse("[ISIN1!e12!c]$[4*35x]")
	}
}

package wisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typesOf(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestScanSingleCharAndOperators(t *testing.T) {
	tokens, diags := Scan("{} () , . - + ; * == != <= >= < > = /")
	require.Nil(t, diags)
	want := []TokenType{
		TokenLeftBrace, TokenRightBrace, TokenLeftParen, TokenRightParen,
		TokenComma, TokenDot, TokenMinus, TokenPlus, TokenSemicolon, TokenStar,
		TokenEqualEqual, TokenBangEqual, TokenLessEqual, TokenGreaterEqual,
		TokenLess, TokenGreater, TokenEqual, TokenSlash, TokenEOF,
	}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanComment(t *testing.T) {
	tokens, diags := Scan("1; // comment\n2;")
	require.Nil(t, diags)
	want := []TokenType{TokenNumber, TokenSemicolon, TokenNumber, TokenSemicolon, TokenEOF}
	assert.Equal(t, want, typesOf(tokens))
}

func TestScanString(t *testing.T) {
	tokens, diags := Scan(`"hello world";`)
	require.Nil(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, "hello world", tokens[0].Text)
}

func TestScanUnterminatedString(t *testing.T) {
	_, diags := Scan(`"unterminated`)
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnterminatedString, diags[0].Kind)
}

func TestScanNumber(t *testing.T) {
	tokens, diags := Scan("42 3.14")
	require.Nil(t, diags)
	require.Len(t, tokens, 3)
	assert.Equal(t, 42.0, tokens[0].Number)
	assert.Equal(t, 3.14, tokens[1].Number)
}

func TestScanIdentifierAndKeywords(t *testing.T) {
	tokens, diags := Scan("foo bar_1 print var if")
	require.Nil(t, diags)
	want := []TokenType{TokenIdentifier, TokenIdentifier, TokenPrint, TokenVar, TokenIf, TokenEOF}
	assert.Equal(t, want, typesOf(tokens))
	assert.Equal(t, "foo", tokens[0].Text)
}

func TestScanIllegalCharactersAccumulate(t *testing.T) {
	_, diags := Scan("abc @bla\n# blup")
	require.Len(t, diags, 2)
	assert.Equal(t, DiagIllegalCharacter, diags[0].Kind)
	assert.Equal(t, DiagIllegalCharacter, diags[1].Kind)
}

func TestScanEmptyInputProducesJustEOF(t *testing.T) {
	tokens, diags := Scan("")
	require.Nil(t, diags)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}

func TestScanTokenSpansAreValidByteRanges(t *testing.T) {
	src := "var a = 1;"
	tokens, diags := Scan(src)
	require.Nil(t, diags)
	for _, tok := range tokens {
		if tok.Type == TokenEOF {
			continue
		}
		slice := src[tok.Span.Start.Pos:tok.Span.End.Pos]
		assert.NotEmpty(t, slice)
	}
}

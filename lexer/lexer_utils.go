/*
File: vexel/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"
)

// isDigitASCII reports whether c is an ASCII decimal digit ('0'..'9').
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace checks if the given byte is whitespace, using Unicode's
// definition (space, tab, newline, carriage return, form feed, vertical tab).
func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

// isNumeric checks if the given byte is a decimal digit.
func isNumeric(curr byte) bool {
	return unicode.IsDigit(rune(curr))
}

// isAlpha checks if the given byte is a letter.
func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// isSpecial checks if a character is a special symbol that is not part of
// Vexel's defined token set and is not alphanumeric or whitespace.
func isSpecial(c byte) bool {
	return !isAlphanumeric(c) && !isWhitespace(c) && !strings.ContainsRune("=!<>+.,:(){}[]\"#$", rune(c))
}

// readStringLiteral reads a double-quoted string literal starting at the
// opening quote. It supports \" \\ \n \t escapes and ${expr} interpolation
// placeholders. If no placeholder is found the result is a plain STRING_LIT
// token; otherwise it is an INTERP_LIT token whose Parts alternate literal
// text and raw placeholder source for the parser to re-parse.
func readStringLiteral(lex *Lexer) Token {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var parts []InterpPart
	var builder strings.Builder
	hasInterp := false

	flushLiteral := func() {
		parts = append(parts, InterpPart{IsExpr: false, Text: builder.String()})
		builder.Reset()
	}

	for lex.Current != '"' {
		if lex.Current == 0 {
			lex.setError("string literal not terminated — unexpected EOF", startLine, startCol)
			return NewTokenWithMetadata(INVALID_TYPE, "", startLine, startCol)
		}
		if lex.Current == '\n' {
			lex.setError("string literal not terminated before end of line", startLine, startCol)
			return NewTokenWithMetadata(INVALID_TYPE, "", startLine, startCol)
		}

		if lex.Current == '\\' {
			lex.Advance()
			escaped, valid := escapeChar(lex.Current)
			if !valid {
				lex.setError("invalid escape sequence", lex.Line, lex.Column)
				return NewTokenWithMetadata(INVALID_TYPE, "", startLine, startCol)
			}
			builder.WriteByte(escaped)
			lex.Advance()
			continue
		}

		if lex.Current == '$' && lex.Peek() == '{' {
			hasInterp = true
			flushLiteral()
			lex.Advance() // consume '$'
			lex.Advance() // consume '{'
			exprStart := lex.Position
			depth := 1
			for depth > 0 {
				if lex.Current == 0 || lex.Current == '\n' {
					lex.setError("unterminated ${...} interpolation", startLine, startCol)
					return NewTokenWithMetadata(INVALID_TYPE, "", startLine, startCol)
				}
				if lex.Current == '{' {
					depth++
				} else if lex.Current == '}' {
					depth--
					if depth == 0 {
						break
					}
				}
				lex.Advance()
			}
			parts = append(parts, InterpPart{IsExpr: true, Source: lex.Src[exprStart:lex.Position]})
			lex.Advance() // consume closing '}'
			continue
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // consume closing quote

	if !hasInterp {
		return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startCol)
	}
	flushLiteral()
	tok := NewTokenWithMetadata(INTERP_LIT, "", startLine, startCol)
	tok.Parts = parts
	return tok
}

// escapeChar converts the character following a backslash into its literal
// byte value.
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	default:
		return 0, false
	}
}

// readNumber reads a decimal integer literal. A leading '-' is consumed by
// the caller only at expression position (see NextToken); this function
// only ever sees digits.
func readNumber(lex *Lexer) Token {
	start := lex.Position
	for isDigitASCII(lex.Current) {
		lex.Advance()
	}
	return NewTokenWithMetadata(INT_LIT, lex.Src[start:lex.Position], lex.Line, lex.Column)
}

// readIdentifier reads an identifier or keyword: [A-Za-z_][A-Za-z0-9_]*.
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, lex.Column)
}

package lexer

import (
	"strconv"
	"unicode"
)

var singles = map[rune]Token{
	'+': OperatorToken(Plus),
	'-': OperatorToken(Minus),
	'*': OperatorToken(Multiply),
	'/': OperatorToken(Divide),
	'=': EqualToken,
	'(': LParenToken,
	')': RParenToken,
}

// Lex splits text into tokens, left to right. It never fails: characters it
// does not recognise are dropped.
func Lex(text string) []Token {
	src := []rune(text)
	tokens := make([]Token, 0, len(src))
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			var tok Token
			tok, i = lexNumber(src, i)
			tokens = append(tokens, tok)
		case unicode.IsLetter(c):
			start := i
			for i < len(src) && (unicode.IsLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			tokens = append(tokens, IdentifierToken(string(src[start:i])))
		default:
			if tok, ok := singles[c]; ok {
				tokens = append(tokens, tok)
			}
			i++
		}
	}
	return tokens
}

// lexNumber consumes digits and at most one decimal point starting at i and
// returns the token along with the index just past the run. A second point
// ends the run and is dropped along with it.
func lexNumber(src []rune, i int) (Token, int) {
	start := i
	seenPoint := false
	for i < len(src) {
		c := src[i]
		if c == '.' && !seenPoint {
			seenPoint = true
		} else if !isDigit(c) {
			break
		}
		i++
	}
	lexeme := string(src[start:i])
	if seenPoint && i < len(src) && src[i] == '.' {
		i++
	}
	if !seenPoint {
		if n, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
			return IntToken(n), i
		}
	}
	// only overflow can make this fail for an all-digit lexeme, in which case
	// ParseFloat still returns the nearest value (±Inf beyond float range)
	f, _ := strconv.ParseFloat(lexeme, 64)
	return FloatToken(f), i
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

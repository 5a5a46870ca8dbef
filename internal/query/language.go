package query

import (
	"fmt"
	"unicode"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenError

	TokenWord
	TokenQuoted

	TokenColon // :
	TokenAt    // @
)

type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s)", t.Value)
	case TokenWord:
		return fmt.Sprintf("WORD(%s)", t.Value)
	case TokenQuoted:
		return fmt.Sprintf("QUOTED(%s)", t.Value)
	case TokenColon:
		return "COLON"
	case TokenAt:
		return "AT"
	default:
		return fmt.Sprintf("UNKNOWN(%s)", t.Value)
	}
}

type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)

	var tokens []Token
	for {
		token := l.nextToken()
		tokens = append(tokens, token)

		switch token.Type {
		case TokenEOF:
			return tokens, nil
		case TokenError:
			return tokens, &ParseError{Message: token.Value, Pos: token.Pos}
		}
	}
}

func (l *Lexer) nextToken() Token {
	l.skipWhitespace()

	pos := l.pos
	switch ch := l.ch(); {
	case ch == 0:
		return Token{Type: TokenEOF, Pos: pos}
	case ch == ':':
		l.pos++
		return Token{Type: TokenColon, Value: ":", Pos: pos}
	case ch == '@' && l.atWordStart():
		l.pos++
		return Token{Type: TokenAt, Value: "@", Pos: pos}
	case ch == '"' || ch == '\'':
		return l.readQuoted()
	default:
		return l.readWord()
	}
}

func (l *Lexer) readWord() Token {
	pos := l.pos
	start := l.pos
	for ch := l.ch(); ch != 0 && !unicode.IsSpace(ch) && ch != ':' && ch != '"'; ch = l.ch() {
		l.pos++
	}
	return Token{Type: TokenWord, Value: string(l.input[start:l.pos]), Pos: pos}
}

func (l *Lexer) readQuoted() Token {
	pos := l.pos
	quote := l.ch()
	l.pos++

	var value []rune
	for {
		ch := l.ch()
		switch {
		case ch == 0:
			return Token{Type: TokenError, Value: "unterminated quoted string", Pos: pos}
		case ch == '\\' && l.peek() == quote:
			value = append(value, quote)
			l.pos += 2
		case ch == quote:
			l.pos++
			return Token{Type: TokenQuoted, Value: string(value), Pos: pos}
		default:
			value = append(value, ch)
			l.pos++
		}
	}
}

// an @ only starts a mention at the beginning of a word
func (l *Lexer) atWordStart() bool {
	next := l.peek()
	return next != 0 && !unicode.IsSpace(next) && next != ':'
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch()) {
		l.pos++
	}
}

func (l *Lexer) ch() rune {
	if l.pos < len(l.input) {
		return l.input[l.pos]
	}
	return 0
}

func (l *Lexer) peek() rune {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

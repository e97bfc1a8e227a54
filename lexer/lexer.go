// Package lexer implements a lexer for the SQLite dialect understood by litesql.
package lexer

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sqlc-dev/litesql/token"
)

// Lexer tokenizes SQL input.
type Lexer struct {
	reader *bufio.Reader
	ch     rune // current character
	width  int  // byte width of ch
	pos    token.Position
	eof    bool
	upper  cases.Caser
}

// Item represents a lexical token with its value and position.
type Item struct {
	Token  token.Token
	Value  string
	Number float64 // numeric value of NUMBER items
	Pos    token.Position
}

// New creates a new Lexer from an io.Reader.
func New(r io.Reader) *Lexer {
	l := &Lexer{
		reader: bufio.NewReader(r),
		pos:    token.Position{Offset: 0, Line: 1, Column: 0},
		upper:  cases.Upper(language.Und),
	}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.eof {
		l.ch = 0
		return
	}

	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	l.pos.Offset += l.width

	r, size, err := l.reader.ReadRune()
	if err != nil {
		l.ch = 0
		l.width = 0
		l.eof = true
		return
	}
	l.ch = r
	l.width = size
}

func (l *Lexer) peekChar() rune {
	if l.eof {
		return 0
	}
	// Peek returns fewer bytes near the end of input; decode what is there.
	bytes, _ := l.reader.Peek(utf8.UTFMax)
	if len(bytes) == 0 {
		return 0
	}
	r, _ := utf8.DecodeRune(bytes)
	return r
}

func (l *Lexer) skipWhitespace() {
	for !l.eof && unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

// NextToken returns the next token from the input. Once the input is
// exhausted it returns EOF on every call.
func (l *Lexer) NextToken() Item {
	l.skipWhitespace()

	pos := l.pos

	if l.eof {
		return Item{Token: token.EOF, Value: "", Pos: pos}
	}

	// Handle comments
	if l.ch == '-' && l.peekChar() == '-' {
		return l.readLineComment()
	}
	if l.ch == '/' && l.peekChar() == '*' {
		return l.readBlockComment()
	}

	switch l.ch {
	case '+':
		l.readChar()
		return Item{Token: token.PLUS, Value: "+", Pos: pos}
	case '-':
		l.readChar()
		return Item{Token: token.MINUS, Value: "-", Pos: pos}
	case '*':
		l.readChar()
		return Item{Token: token.ASTERISK, Value: "*", Pos: pos}
	case '/':
		l.readChar()
		return Item{Token: token.SLASH, Value: "/", Pos: pos}
	case '%':
		l.readChar()
		return Item{Token: token.PERCENT, Value: "%", Pos: pos}
	case '~':
		l.readChar()
		return Item{Token: token.TILDE, Value: "~", Pos: pos}
	case '&':
		l.readChar()
		return Item{Token: token.AMPERSAND, Value: "&", Pos: pos}
	case '=':
		l.readChar()
		if l.ch == '=' {
			l.readChar()
			return Item{Token: token.EQEQ, Value: "==", Pos: pos}
		}
		return Item{Token: token.EQ, Value: "=", Pos: pos}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return Item{Token: token.NEQ, Value: "!=", Pos: pos}
		}
		l.readChar()
		return Item{Token: token.ILLEGAL, Value: "!", Pos: pos}
	case '<':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return Item{Token: token.LTE, Value: "<=", Pos: pos}
		case '>':
			l.readChar()
			return Item{Token: token.LTGT, Value: "<>", Pos: pos}
		case '<':
			l.readChar()
			return Item{Token: token.SHL, Value: "<<", Pos: pos}
		}
		return Item{Token: token.LT, Value: "<", Pos: pos}
	case '>':
		l.readChar()
		switch l.ch {
		case '=':
			l.readChar()
			return Item{Token: token.GTE, Value: ">=", Pos: pos}
		case '>':
			l.readChar()
			return Item{Token: token.SHR, Value: ">>", Pos: pos}
		}
		return Item{Token: token.GT, Value: ">", Pos: pos}
	case '|':
		l.readChar()
		if l.ch == '|' {
			l.readChar()
			return Item{Token: token.CONCAT, Value: "||", Pos: pos}
		}
		return Item{Token: token.PIPE, Value: "|", Pos: pos}
	case '(':
		l.readChar()
		return Item{Token: token.LPAREN, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Item{Token: token.RPAREN, Value: ")", Pos: pos}
	case ',':
		l.readChar()
		return Item{Token: token.COMMA, Value: ",", Pos: pos}
	case '.':
		if isDigit(l.peekChar()) {
			return l.readNumber()
		}
		l.readChar()
		return Item{Token: token.DOT, Value: ".", Pos: pos}
	case ';':
		l.readChar()
		return Item{Token: token.SEMICOLON, Value: ";", Pos: pos}
	case '?':
		return l.readPositionalParameter()
	case ':', '@', '$':
		return l.readNamedParameter()
	case '\'':
		return l.readString()
	case '"':
		return l.readQuotedIdentifier('"')
	case '`':
		return l.readQuotedIdentifier('`')
	case '[':
		return l.readQuotedIdentifier(']')
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isIdentStart(l.ch) {
			return l.readIdentifier()
		}
		ch := l.ch
		l.readChar()
		return Item{Token: token.ILLEGAL, Value: string(ch), Pos: pos}
	}
}

func (l *Lexer) readLineComment() Item {
	pos := l.pos
	var sb strings.Builder
	for !l.eof && l.ch != '\n' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.COMMENT, Value: sb.String(), Pos: pos}
}

// readBlockComment reads a /* */ comment. SQLite comments do not nest, and an
// unterminated comment runs to the end of input.
func (l *Lexer) readBlockComment() Item {
	pos := l.pos
	var sb strings.Builder
	// Skip /*
	sb.WriteRune(l.ch)
	l.readChar()
	sb.WriteRune(l.ch)
	l.readChar()

	for !l.eof {
		if l.ch == '*' && l.peekChar() == '/' {
			sb.WriteString("*/")
			l.readChar()
			l.readChar()
			break
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.COMMENT, Value: sb.String(), Pos: pos}
}

// readString reads a single-quoted string. A doubled quote is an escaped
// quote; backslashes have no special meaning.
func (l *Lexer) readString() Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof {
		if l.ch == '\'' {
			if l.peekChar() == '\'' {
				sb.WriteRune('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // skip closing quote
			return Item{Token: token.STRING, Value: sb.String(), Pos: pos}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.ILLEGAL, Value: "'" + sb.String(), Pos: pos}
}

// readBlob reads the quoted part of X'...'. The value is the hex digits.
func (l *Lexer) readBlob(pos token.Position) Item {
	var sb strings.Builder
	l.readChar() // skip opening quote

	for !l.eof && l.ch != '\'' {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	if l.eof {
		return Item{Token: token.ILLEGAL, Value: "X'" + sb.String(), Pos: pos}
	}
	l.readChar() // skip closing quote

	hex := sb.String()
	if len(hex)%2 != 0 || strings.IndexFunc(hex, func(r rune) bool { return !isHexDigit(r) }) >= 0 {
		return Item{Token: token.ILLEGAL, Value: "X'" + hex + "'", Pos: pos}
	}
	return Item{Token: token.BLOB, Value: hex, Pos: pos}
}

// readQuotedIdentifier reads "ident", `ident` or [ident]. Doubling the
// closing delimiter escapes it, except for brackets.
func (l *Lexer) readQuotedIdentifier(closing rune) Item {
	pos := l.pos
	var sb strings.Builder
	l.readChar() // skip opening delimiter

	for !l.eof {
		if l.ch == closing {
			if closing != ']' && l.peekChar() == closing {
				sb.WriteRune(closing)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			return Item{Token: token.IDENT, Value: sb.String(), Pos: pos}
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readNumber() Item {
	pos := l.pos
	var sb strings.Builder

	// Hex integer: 0x...
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		sb.WriteRune(l.ch)
		l.readChar()
		sb.WriteRune(l.ch)
		l.readChar()
		for isHexDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		for isIdentChar(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		lit := sb.String()
		u, err := strconv.ParseUint(lit[2:], 16, 64)
		if err != nil {
			return Item{Token: token.ILLEGAL, Value: lit, Pos: pos}
		}
		// SQLite reinterprets hex literals as 64-bit two's complement.
		return Item{Token: token.NUMBER, Value: lit, Number: float64(int64(u)), Pos: pos}
	}

	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	if l.ch == '.' {
		sb.WriteRune(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		sb.WriteRune(l.ch)
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			sb.WriteRune(l.ch)
			l.readChar()
		}
		for isDigit(l.ch) {
			sb.WriteRune(l.ch)
			l.readChar()
		}
	}

	// Trailing identifier characters make the literal malformed (e.g. 12abc).
	for isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	lit := sb.String()
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Item{Token: token.ILLEGAL, Value: lit, Pos: pos}
	}
	return Item{Token: token.NUMBER, Value: lit, Number: f, Pos: pos}
}

func (l *Lexer) readIdentifier() Item {
	pos := l.pos
	var sb strings.Builder

	// Blob literal: x'...' or X'...'
	if (l.ch == 'x' || l.ch == 'X') && l.peekChar() == '\'' {
		l.readChar() // skip x
		return l.readBlob(pos)
	}

	for isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}

	ident := sb.String()
	return Item{Token: lookup(l.upper, ident), Value: ident, Pos: pos}
}

// Keyword returns the keyword token spelled by word, ignoring case, or
// token.IDENT when word is not a keyword.
func Keyword(word string) token.Token {
	return lookup(cases.Upper(language.Und), word)
}

// lookup folds word with upper and looks it up. Keywords are ASCII, so a
// word holding any other character is always an identifier, even when it
// upper-cases to a keyword (ın, ſelect).
func lookup(upper cases.Caser, word string) token.Token {
	for i := 0; i < len(word); i++ {
		if word[i] >= utf8.RuneSelf {
			return token.IDENT
		}
	}
	return token.Lookup(upper.String(word))
}

// readPositionalParameter reads ? or ?NNN.
func (l *Lexer) readPositionalParameter() Item {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar()
	for isDigit(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.QUESTION, Value: sb.String(), Pos: pos}
}

// readNamedParameter reads :name, @name or $name.
func (l *Lexer) readNamedParameter() Item {
	pos := l.pos
	var sb strings.Builder
	sb.WriteRune(l.ch)
	l.readChar()
	if !isIdentChar(l.ch) {
		return Item{Token: token.ILLEGAL, Value: sb.String(), Pos: pos}
	}
	for isIdentChar(l.ch) {
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return Item{Token: token.PARAM, Value: sb.String(), Pos: pos}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentChar(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

// IsBareWord reports whether s lexes as a single unquoted word. Keywords
// are bare words too; callers that need an identifier must check
// Keyword as well.
func IsBareWord(s string) bool {
	for i, ch := range s {
		if i == 0 && !isIdentStart(ch) {
			return false
		}
		if !isIdentChar(ch) {
			return false
		}
	}
	return s != ""
}

// Tokenize returns all tokens from the reader, ending with a single EOF.
func Tokenize(r io.Reader) []Item {
	l := New(r)
	var items []Item
	for {
		item := l.NextToken()
		items = append(items, item)
		if item.Token == token.EOF {
			break
		}
	}
	return items
}

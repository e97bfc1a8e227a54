// Package token defines constants representing the lexical tokens of the
// SQLite dialect understood by litesql.
package token

import "strconv"

// Token represents a lexical token.
type Token int

const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	// Literals
	IDENT  // identifiers, including "quoted", [bracketed] and `backticked` forms
	NUMBER // integer or float literals
	STRING // string literals
	BLOB   // blob literals like X'CAFE'
	PARAM  // named bind parameters like :name, @name, $name

	// Operators
	CONCAT    // ||
	ASTERISK  // *
	SLASH     // /
	PERCENT   // %
	PLUS      // +
	MINUS     // -
	SHL       // <<
	SHR       // >>
	AMPERSAND // &
	PIPE      // |
	TILDE     // ~
	LT        // <
	LTE       // <=
	GT        // >
	GTE       // >=
	EQ        // =
	EQEQ      // ==
	NEQ       // !=
	LTGT      // <>

	// Delimiters
	LPAREN    // (
	RPAREN    // )
	COMMA     // ,
	DOT       // .
	SEMICOLON // ;
	QUESTION  // ? or ?NNN

	// Keywords
	keyword_beg
	AND
	AS
	BETWEEN
	CASE
	CAST
	COLLATE
	CREATE
	DROP
	ELSE
	END
	ESCAPE
	EXISTS
	GLOB
	IF
	IN
	IS
	ISNULL
	LIKE
	MATCH
	NOT
	NOTNULL
	NULL
	OR
	REGEXP
	SELECT
	TABLE
	TEMP
	TEMPORARY
	THEN
	WHEN
	keyword_end
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "identifier",
	NUMBER: "numeric literal",
	STRING: "string literal",
	BLOB:   "blob literal",
	PARAM:  "bind parameter",

	CONCAT:    "||",
	ASTERISK:  "*",
	SLASH:     "/",
	PERCENT:   "%",
	PLUS:      "+",
	MINUS:     "-",
	SHL:       "<<",
	SHR:       ">>",
	AMPERSAND: "&",
	PIPE:      "|",
	TILDE:     "~",
	LT:        "<",
	LTE:       "<=",
	GT:        ">",
	GTE:       ">=",
	EQ:        "=",
	EQEQ:      "==",
	NEQ:       "!=",
	LTGT:      "<>",

	LPAREN:    "(",
	RPAREN:    ")",
	COMMA:     ",",
	DOT:       ".",
	SEMICOLON: ";",
	QUESTION:  "?",

	AND:       "AND",
	AS:        "AS",
	BETWEEN:   "BETWEEN",
	CASE:      "CASE",
	CAST:      "CAST",
	COLLATE:   "COLLATE",
	CREATE:    "CREATE",
	DROP:      "DROP",
	ELSE:      "ELSE",
	END:       "END",
	ESCAPE:    "ESCAPE",
	EXISTS:    "EXISTS",
	GLOB:      "GLOB",
	IF:        "IF",
	IN:        "IN",
	IS:        "IS",
	ISNULL:    "ISNULL",
	LIKE:      "LIKE",
	MATCH:     "MATCH",
	NOT:       "NOT",
	NOTNULL:   "NOTNULL",
	NULL:      "NULL",
	OR:        "OR",
	REGEXP:    "REGEXP",
	SELECT:    "SELECT",
	TABLE:     "TABLE",
	TEMP:      "TEMP",
	TEMPORARY: "TEMPORARY",
	THEN:      "THEN",
	WHEN:      "WHEN",
}

// String returns the human-readable name of the token, as used in
// diagnostics.
func (tok Token) String() string {
	if tok >= 0 && int(tok) < len(tokens) {
		return tokens[tok]
	}
	return "token(" + strconv.Itoa(int(tok)) + ")"
}

// Keywords maps keyword strings to their token types.
var Keywords map[string]Token

func init() {
	Keywords = make(map[string]Token)
	for i := keyword_beg + 1; i < keyword_end; i++ {
		Keywords[tokens[i]] = i
	}
}

// Lookup returns the token type for an upper-cased word.
// If the word is a keyword, it returns the keyword token.
// Otherwise, it returns IDENT.
func Lookup(word string) Token {
	if tok, ok := Keywords[word]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token is a keyword.
func (tok Token) IsKeyword() bool {
	return tok > keyword_beg && tok < keyword_end
}

// IsLiteral returns true for the literal classes that carry a value.
func (tok Token) IsLiteral() bool {
	return tok >= IDENT && tok <= PARAM
}

// Position represents a source position.
type Position struct {
	Offset int // byte offset
	Line   int // line number (1-based)
	Column int // column number (1-based)
}

// IsValid reports whether the position has been set.
func (p Position) IsValid() bool {
	return p.Line > 0
}

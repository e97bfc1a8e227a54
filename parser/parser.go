// Package parser implements an error-tolerant parser for the litesql
// dialect. Syntax errors never abort a parse: the parser records a
// diagnostic, substitutes an error node and keeps going.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/lexer"
	"github.com/sqlc-dev/litesql/token"
)

// Parser parses litesql statements and expressions.
type Parser struct {
	lexer   *lexer.Lexer
	current lexer.Item
	errors  []Error
}

// New creates a new Parser from an io.Reader.
func New(r io.Reader) *Parser {
	p := &Parser{
		lexer: lexer.New(r),
	}
	p.next()
	return p
}

// next pulls the following non-comment token into the lookahead.
func (p *Parser) next() {
	for {
		p.current = p.lexer.NextToken()
		if p.current.Token != token.COMMENT {
			return
		}
	}
}

func (p *Parser) match(t token.Token) bool {
	return p.current.Token == t
}

// consume returns the lookahead and advances past it.
func (p *Parser) consume() lexer.Item {
	item := p.current
	p.next()
	return item
}

// expect consumes the lookahead, recording a diagnostic first if it is not
// of type t. The token is consumed either way so the parse always advances.
func (p *Parser) expect(t token.Token) lexer.Item {
	if !p.match(t) {
		p.expected(t.String())
	}
	return p.consume()
}

func (p *Parser) consumeIf(t token.Token) bool {
	if !p.match(t) {
		return false
	}
	p.consume()
	return true
}

// expected records a diagnostic at the lookahead's position.
func (p *Parser) expected(what string) {
	p.errors = append(p.errors, Error{
		Message: fmt.Sprintf("unexpected token %s, expected %s", p.current.Token, what),
		Pos:     p.current.Pos,
	})
}

// identifier consumes an identifier slot. A mismatched token is consumed
// and yields an empty name.
func (p *Parser) identifier() string {
	item := p.expect(token.IDENT)
	if item.Token != token.IDENT {
		return ""
	}
	return item.Value
}

// qualifiedName parses [schema.]name.
func (p *Parser) qualifiedName() (schema, name string) {
	name = p.identifier()
	if p.consumeIf(token.DOT) {
		schema = name
		name = p.identifier()
	}
	return schema, name
}

// Errors returns the diagnostics recorded so far, in discovery order.
func (p *Parser) Errors() ErrorList {
	return append(ErrorList(nil), p.errors...)
}

// Done reports whether the input is exhausted.
func (p *Parser) Done() bool {
	return p.match(token.EOF)
}

// Parse parses SQL statements from the input.
func Parse(ctx context.Context, r io.Reader) ([]ast.Statement, error) {
	p := New(r)
	return p.ParseStatements(ctx)
}

// ParseString parses SQL statements from a string.
func ParseString(ctx context.Context, sql string) ([]ast.Statement, error) {
	return Parse(ctx, strings.NewReader(sql))
}

// ParseFile parses SQL statements from the named file.
func ParseFile(ctx context.Context, path string) ([]ast.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(ctx, f)
}

// ParseExpr parses a single expression. Any input left after the
// expression is reported as a diagnostic.
func ParseExpr(expr string) (ast.Expression, error) {
	p := New(strings.NewReader(expr))
	e := p.ParseExpression()
	if !p.Done() {
		p.expected(token.EOF.String())
	}
	return e, p.Errors().Err()
}

// ParseStatements parses statements until the input is exhausted. Stray
// semicolons are skipped. After a statement that could not be dispatched,
// tokens are discarded through the next semicolon. The context is checked
// between statements only.
//
// Every statement produced is returned, including error statements. The
// returned error is an ErrorList when any diagnostics were recorded. On
// cancellation it joins the context error with the diagnostics so far.
func (p *Parser) ParseStatements(ctx context.Context) ([]ast.Statement, error) {
	var statements []ast.Statement

	for {
		// Skip semicolons between statements
		for p.match(token.SEMICOLON) {
			p.consume()
		}
		if p.Done() {
			break
		}

		select {
		case <-ctx.Done():
			return statements, errors.Join(ctx.Err(), p.Errors().Err())
		default:
		}

		stmt := p.NextStatement()
		statements = append(statements, stmt)
		if _, ok := stmt.(*ast.ErrorStatement); ok {
			p.skipStatement()
		}
	}

	return statements, p.Errors().Err()
}

// skipStatement discards tokens through the next semicolon or EOF.
func (p *Parser) skipStatement() {
	for !p.Done() {
		if p.consume().Token == token.SEMICOLON {
			return
		}
	}
}

// NextStatement parses one statement. It always returns a node; when the
// lookahead cannot start a statement it records a diagnostic and returns
// an *ast.ErrorStatement without consuming anything.
func (p *Parser) NextStatement() ast.Statement {
	switch p.current.Token {
	case token.CREATE:
		return p.parseCreateTable()
	case token.DROP:
		return p.parseDropTable()
	default:
		pos := p.current.Pos
		p.expected("CREATE or DROP")
		return &ast.ErrorStatement{Position: pos}
	}
}

// parseCreateTable parses
//
//	CREATE [TEMP|TEMPORARY] TABLE [IF NOT EXISTS] [schema.]name (column-def, ...);
//
// The AS select-stmt form and table constraints are not supported.
func (p *Parser) parseCreateTable() *ast.CreateTable {
	stmt := &ast.CreateTable{
		Position:      p.current.Pos,
		ErrorIfExists: true,
	}
	p.expect(token.CREATE)

	if p.consumeIf(token.TEMP) || p.consumeIf(token.TEMPORARY) {
		stmt.Temporary = true
	}

	p.expect(token.TABLE)

	if p.consumeIf(token.IF) {
		p.expect(token.NOT)
		p.expect(token.EXISTS)
		stmt.ErrorIfExists = false
	}

	stmt.Schema, stmt.Table = p.qualifiedName()

	p.expect(token.LPAREN)
	for {
		stmt.Columns = append(stmt.Columns, p.parseColumnDefinition())
		if p.match(token.RPAREN) {
			break
		}
		p.expect(token.COMMA)
		// Malformed input must not loop forever.
		if p.Done() {
			break
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)

	return stmt
}

// parseDropTable parses DROP TABLE [IF EXISTS] [schema.]name;
func (p *Parser) parseDropTable() *ast.DropTable {
	stmt := &ast.DropTable{
		Position:         p.current.Pos,
		ErrorIfNotExists: true,
	}
	p.expect(token.DROP)
	p.expect(token.TABLE)

	if p.consumeIf(token.IF) {
		p.expect(token.EXISTS)
		stmt.ErrorIfNotExists = false
	}

	stmt.Schema, stmt.Table = p.qualifiedName()
	p.expect(token.SEMICOLON)

	return stmt
}

// parseColumnDefinition parses a column name and optional type. Columns
// without a type get BLOB affinity. Column constraints are not supported.
func (p *Parser) parseColumnDefinition() *ast.ColumnDefinition {
	col := &ast.ColumnDefinition{Position: p.current.Pos}
	col.Name = p.identifier()

	if p.match(token.IDENT) {
		col.Type = p.parseTypeName()
	} else {
		col.Type = &ast.TypeName{Position: p.current.Pos, Name: "BLOB"}
	}
	return col
}

// parseTypeName parses name [(signed-number [, signed-number])].
func (p *Parser) parseTypeName() *ast.TypeName {
	typ := &ast.TypeName{Position: p.current.Pos}
	typ.Name = p.identifier()

	if p.consumeIf(token.LPAREN) {
		typ.Constraints = append(typ.Constraints, p.parseSignedNumber())
		if p.consumeIf(token.COMMA) {
			typ.Constraints = append(typ.Constraints, p.parseSignedNumber())
		}
		p.expect(token.RPAREN)
	}
	return typ
}

// parseSignedNumber parses [+|-] numeric-literal. A missing literal is
// reported and yields zero without consuming the offending token.
func (p *Parser) parseSignedNumber() *ast.SignedNumber {
	num := &ast.SignedNumber{Position: p.current.Pos}
	negative := false
	if p.consumeIf(token.PLUS) {
		negative = false
	} else if p.consumeIf(token.MINUS) {
		negative = true
	}

	if !p.match(token.NUMBER) {
		p.expected(token.NUMBER.String())
		return num
	}
	num.Value = p.consume().Number
	if negative {
		num.Value = -num.Value
	}
	return num
}

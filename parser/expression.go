package parser

import (
	"github.com/sqlc-dev/litesql/ast"
	"github.com/sqlc-dev/litesql/token"
)

// binaryOperators maps operator tokens to the operator they build. == and
// <> are alternate spellings of = and !=.
var binaryOperators = map[token.Token]ast.BinaryOperator{
	token.CONCAT:    ast.OpConcatenate,
	token.ASTERISK:  ast.OpMultiply,
	token.SLASH:     ast.OpDivide,
	token.PERCENT:   ast.OpModulo,
	token.PLUS:      ast.OpAdd,
	token.MINUS:     ast.OpSubtract,
	token.SHL:       ast.OpShiftLeft,
	token.SHR:       ast.OpShiftRight,
	token.AMPERSAND: ast.OpBitwiseAnd,
	token.PIPE:      ast.OpBitwiseOr,
	token.LT:        ast.OpLessThan,
	token.LTE:       ast.OpLessOrEqual,
	token.GT:        ast.OpGreaterThan,
	token.GTE:       ast.OpGreaterOrEqual,
	token.EQ:        ast.OpEquals,
	token.EQEQ:      ast.OpEquals,
	token.NEQ:       ast.OpNotEquals,
	token.LTGT:      ast.OpNotEquals,
	token.AND:       ast.OpAnd,
	token.OR:        ast.OpOr,
}

var unaryOperators = map[token.Token]ast.UnaryOperator{
	token.MINUS: ast.UnaryMinus,
	token.PLUS:  ast.UnaryPlus,
	token.TILDE: ast.UnaryBitwiseNot,
	token.NOT:   ast.UnaryNot,
}

var matchOperators = map[token.Token]ast.MatchOperator{
	token.LIKE:   ast.MatchLike,
	token.GLOB:   ast.MatchGlob,
	token.MATCH:  ast.MatchMatch,
	token.REGEXP: ast.MatchRegexp,
}

// ParseExpression parses one expression. It always returns a node; parts
// that could not be parsed are replaced by *ast.ErrorExpr.
//
// Binary operators have no precedence and chain to the right, so
// a * b + c parses as a * (b + c).
func (p *Parser) ParseExpression() ast.Expression {
	expr := p.parsePrimaryExpression()
	if p.matchSecondaryExpression() {
		expr = p.parseSecondaryExpression(expr)
	}
	return expr
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	if expr := p.parseLiteral(); expr != nil {
		return expr
	}
	if expr := p.parseColumnName(); expr != nil {
		return expr
	}
	if expr := p.parseUnaryExpression(); expr != nil {
		return expr
	}
	if expr := p.parseChainedExpression(); expr != nil {
		return expr
	}
	if expr := p.parseCast(); expr != nil {
		return expr
	}
	if expr := p.parseCase(); expr != nil {
		return expr
	}

	pos := p.current.Pos
	p.expected("Primary Expression")
	p.consume()
	return &ast.ErrorExpr{Position: pos}
}

func (p *Parser) parseSecondaryExpression(primary ast.Expression) ast.Expression {
	if expr := p.parseBinaryExpression(primary); expr != nil {
		return expr
	}
	if expr := p.parseCollate(primary); expr != nil {
		return expr
	}
	if expr := p.parseIs(primary); expr != nil {
		return expr
	}

	// A NOT that none of the forms below accept is dropped and the
	// following token is reported instead.
	not := p.consumeIf(token.NOT)

	if expr := p.parseMatch(primary, not); expr != nil {
		return expr
	}
	if expr := p.parseNullCheck(primary, not); expr != nil {
		return expr
	}
	if expr := p.parseBetween(primary, not); expr != nil {
		return expr
	}
	if expr := p.parseIn(primary, not); expr != nil {
		return expr
	}

	pos := p.current.Pos
	p.expected("Secondary Expression")
	p.consume()
	return &ast.ErrorExpr{Position: pos}
}

// matchSecondaryExpression reports whether the lookahead can start a
// secondary form, so an expression that simply ends is not an error.
func (p *Parser) matchSecondaryExpression() bool {
	if _, ok := binaryOperators[p.current.Token]; ok {
		return true
	}
	switch p.current.Token {
	case token.NOT, token.COLLATE, token.IS,
		token.LIKE, token.GLOB, token.MATCH, token.REGEXP,
		token.ISNULL, token.NOTNULL, token.BETWEEN, token.IN:
		return true
	}
	return false
}

// -----------------------------------------------------------------------------
// Primary forms

func (p *Parser) parseLiteral() ast.Expression {
	pos := p.current.Pos
	switch p.current.Token {
	case token.NUMBER:
		return &ast.NumericLiteral{Position: pos, Value: p.consume().Number}
	case token.STRING:
		return &ast.StringLiteral{Position: pos, Value: p.consume().Value}
	case token.BLOB:
		return &ast.BlobLiteral{Position: pos, Value: p.consume().Value}
	case token.NULL:
		p.consume()
		return &ast.NullLiteral{Position: pos}
	}
	return nil
}

// parseColumnName parses column, table.column or schema.table.column.
func (p *Parser) parseColumnName() ast.Expression {
	if !p.match(token.IDENT) {
		return nil
	}

	col := &ast.ColumnName{Position: p.current.Pos}
	first := p.identifier()
	if !p.consumeIf(token.DOT) {
		col.Column = first
		return col
	}

	second := p.identifier()
	if p.consumeIf(token.DOT) {
		col.Schema = first
		col.Table = second
		col.Column = p.identifier()
	} else {
		col.Table = first
		col.Column = second
	}
	return col
}

// parseUnaryExpression parses a prefix operator. The operand is a full
// expression, so -a + b parses as -(a + b).
func (p *Parser) parseUnaryExpression() ast.Expression {
	op, ok := unaryOperators[p.current.Token]
	if !ok {
		return nil
	}
	pos := p.consume().Pos
	return &ast.UnaryExpr{Position: pos, Op: op, Operand: p.ParseExpression()}
}

// parseChainedExpression parses a parenthesized list of one or more
// expressions.
func (p *Parser) parseChainedExpression() ast.Expression {
	if !p.match(token.LPAREN) {
		return nil
	}
	chain := &ast.ChainedExpr{Position: p.current.Pos}
	p.expect(token.LPAREN)
	chain.Exprs = p.parseExpressionList()
	p.expect(token.RPAREN)
	return chain
}

// parseExpressionList parses expr [, expr]... up to but not including the
// closing parenthesis. It stops at EOF.
func (p *Parser) parseExpressionList() []ast.Expression {
	var exprs []ast.Expression
	for {
		exprs = append(exprs, p.ParseExpression())
		if p.match(token.RPAREN) {
			break
		}
		p.expect(token.COMMA)
		if p.Done() {
			break
		}
	}
	return exprs
}

// parseCast parses CAST(expr AS type-name).
func (p *Parser) parseCast() ast.Expression {
	if !p.match(token.CAST) {
		return nil
	}
	cast := &ast.CastExpr{Position: p.current.Pos}
	p.expect(token.CAST)
	p.expect(token.LPAREN)
	cast.Expr = p.ParseExpression()
	p.expect(token.AS)
	cast.Type = p.parseTypeName()
	p.expect(token.RPAREN)
	return cast
}

// parseCase parses CASE [operand] WHEN w THEN t [WHEN ...] [ELSE e] END.
func (p *Parser) parseCase() ast.Expression {
	if !p.match(token.CASE) {
		return nil
	}
	expr := &ast.CaseExpr{Position: p.consume().Pos}

	if !p.match(token.WHEN) {
		expr.Operand = p.ParseExpression()
	}

	for {
		when := &ast.WhenClause{Position: p.current.Pos}
		p.expect(token.WHEN)
		when.Condition = p.ParseExpression()
		p.expect(token.THEN)
		when.Result = p.ParseExpression()
		expr.Whens = append(expr.Whens, when)

		if !p.match(token.WHEN) {
			break
		}
	}

	if p.consumeIf(token.ELSE) {
		expr.Else = p.ParseExpression()
	}
	p.expect(token.END)
	return expr
}

// -----------------------------------------------------------------------------
// Secondary forms

func (p *Parser) parseBinaryExpression(lhs ast.Expression) ast.Expression {
	op, ok := binaryOperators[p.current.Token]
	if !ok {
		return nil
	}
	pos := p.consume().Pos
	return &ast.BinaryExpr{Position: pos, Op: op, Left: lhs, Right: p.ParseExpression()}
}

func (p *Parser) parseCollate(expr ast.Expression) ast.Expression {
	if !p.match(token.COLLATE) {
		return nil
	}
	pos := p.consume().Pos
	return &ast.CollateExpr{Position: pos, Expr: expr, Collation: p.identifier()}
}

func (p *Parser) parseIs(lhs ast.Expression) ast.Expression {
	if !p.match(token.IS) {
		return nil
	}
	is := &ast.IsExpr{Position: p.consume().Pos, Left: lhs}
	is.Not = p.consumeIf(token.NOT)
	is.Right = p.ParseExpression()
	return is
}

// parseMatch parses [NOT] LIKE|GLOB|MATCH|REGEXP rhs [ESCAPE expr].
func (p *Parser) parseMatch(lhs ast.Expression, not bool) ast.Expression {
	op, ok := matchOperators[p.current.Token]
	if !ok {
		return nil
	}
	m := &ast.MatchExpr{Position: p.consume().Pos, Op: op, Left: lhs, Not: not}
	m.Right = p.ParseExpression()
	if p.consumeIf(token.ESCAPE) {
		m.Escape = p.ParseExpression()
	}
	return m
}

// parseNullCheck parses ISNULL, NOTNULL and NOT NULL.
func (p *Parser) parseNullCheck(expr ast.Expression, not bool) ast.Expression {
	if !p.match(token.ISNULL) && !p.match(token.NOTNULL) && !(not && p.match(token.NULL)) {
		return nil
	}
	item := p.consume()
	return &ast.NullExpr{
		Position: item.Pos,
		Expr:     expr,
		Not:      not || item.Token == token.NOTNULL,
	}
}

// parseBetween parses [NOT] BETWEEN low AND high. The bounds are parsed as
// a single expression which must be a binary AND.
func (p *Parser) parseBetween(expr ast.Expression, not bool) ast.Expression {
	if !p.match(token.BETWEEN) {
		return nil
	}
	pos := p.consume().Pos

	nested := p.ParseExpression()
	bin, ok := nested.(*ast.BinaryExpr)
	if !ok {
		p.expected("Binary Expression")
		return &ast.ErrorExpr{Position: pos}
	}
	if bin.Op != ast.OpAnd {
		p.expected("AND Expression")
		return &ast.ErrorExpr{Position: pos}
	}

	return &ast.BetweenExpr{Position: pos, Expr: expr, Low: bin.Left, High: bin.Right, Not: not}
}

// parseIn parses [NOT] IN (expr, ...) and [NOT] IN [schema.]table.
// Subqueries and table-valued functions are not supported and report no
// match after their leading tokens have been consumed.
func (p *Parser) parseIn(expr ast.Expression, not bool) ast.Expression {
	if !p.match(token.IN) {
		return nil
	}
	pos := p.consume().Pos

	if p.match(token.LPAREN) {
		list := &ast.ChainedExpr{Position: p.consume().Pos}
		if p.match(token.SELECT) {
			return nil
		}
		// Unlike a chained expression the list may be empty.
		if !p.match(token.RPAREN) {
			list.Exprs = p.parseExpressionList()
		}
		p.expect(token.RPAREN)
		return &ast.InListExpr{Position: pos, Expr: expr, List: list, Not: not}
	}

	in := &ast.InTableExpr{Position: pos, Expr: expr, Not: not}
	in.Schema, in.Table = p.qualifiedName()
	if p.match(token.LPAREN) {
		return nil
	}
	return in
}

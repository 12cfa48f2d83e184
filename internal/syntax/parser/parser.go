// Package parser implements the lox recursive descent parser.
//
// The parser pulls tokens from the scanner on demand and builds ast nodes, stopping
// at the first syntax error. Unlike a parser intended for editor tooling, no partial
// tree is ever returned: either the whole input parses or the caller gets
// a single [*Error] describing the first problem.
//
// Every expression node is given a unique [ast.ID] in creation order, the resolver
// uses these to key the binding table.
package parser

import (
	"errors"
	"strconv"

	"go.followtheprocess.codes/lox/internal/syntax/ast"
	"go.followtheprocess.codes/lox/internal/syntax/scanner"
	"go.followtheprocess.codes/lox/internal/syntax/token"
)

// Parser is the lox parser.
type Parser struct {
	scanner  *scanner.Scanner // Scanner to produce tokens
	name     string           // Name of the file being parsed
	src      []byte           // Raw source text
	current  token.Token      // Current token under inspection, not yet consumed
	previous token.Token      // The most recently consumed token
	lastID   ast.ID           // The last expression ID handed out
}

// New initialises and returns a new [Parser] that parses src.
func New(name string, src []byte) *Parser {
	p := &Parser{
		scanner: scanner.New(name, src),
		name:    name,
		src:     src,
	}

	// Read 1 token so current is set
	p.current = p.scanner.Scan()

	return p
}

// Name returns the name of the file being parsed.
func (p *Parser) Name() string {
	return p.name
}

// Parse parses the source to completion returning the list of top level statements.
//
// The returned error, if any, is always an [*Error].
func (p *Parser) Parse() (ast.Program, error) {
	if p == nil {
		return nil, errors.New("Parse called on nil parser")
	}

	var prog ast.Program

	for !p.current.Is(token.EOF) {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}

		prog = append(prog, stmt)
	}

	return prog, nil
}

// ParseExpression parses the source as a single expression, the whole input
// must be consumed.
//
// It is used by the REPL to decide whether a line is a bare expression whose
// value should be echoed back.
func (p *Parser) ParseExpression() (ast.Expr, error) {
	if p == nil {
		return nil, errors.New("ParseExpression called on nil parser")
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.EOF, "end of input"); err != nil {
		return nil, err
	}

	return expr, nil
}

// advance consumes the current token and moves on to the next one.
func (p *Parser) advance() token.Token {
	p.previous = p.current
	p.current = p.scanner.Scan()

	return p.previous
}

// match consumes the current token and returns true if it is any of the given kinds,
// otherwise the parser is left where it was and false is returned.
func (p *Parser) match(kinds ...token.Kind) bool {
	if !p.current.Is(kinds...) {
		return false
	}

	p.advance()

	return true
}

// expect asserts that the current token is of the given kind, consuming and returning it
// if so. Otherwise an [*Error] is returned describing what was expected.
func (p *Parser) expect(kind token.Kind, expected string) (token.Token, error) {
	if p.current.Kind.IsError() {
		// Nobody expects an error!
		return token.Token{}, p.lexicalError()
	}

	if !p.current.Is(kind) {
		return token.Token{}, p.unexpected(expected)
	}

	return p.advance(), nil
}

// unexpected returns an [*Error] for the current token not being what the parser wanted.
func (p *Parser) unexpected(expected string) *Error {
	if p.current.Is(token.EOF) {
		return &Error{
			Kind:     UnexpectedEnd,
			Expected: expected,
			Token:    p.current,
			Actual:   token.EOF,
			Line:     p.current.Line,
		}
	}

	return &Error{
		Kind:     UnexpectedToken,
		Expected: expected,
		Lexeme:   p.text(),
		Token:    p.current,
		Actual:   p.current.Kind,
		Line:     p.current.Line,
	}
}

// lexicalError converts the current error token from the scanner into an [*Error].
func (p *Parser) lexicalError() *Error {
	var kind ErrorKind

	switch p.current.Kind {
	case token.ErrorUnterminatedString:
		kind = UnterminatedString
	case token.ErrorMalformedNumber:
		kind = MalformedNumber
	default:
		kind = UnknownCharacter
	}

	return &Error{
		Kind:   kind,
		Lexeme: p.text(),
		Token:  p.current,
		Actual: p.current.Kind,
		Line:   p.current.Line,
	}
}

// text returns the chunk of source text described by the p.current token.
func (p *Parser) text() string {
	return p.current.Lexeme(p.src)
}

// id hands out the next expression ID.
func (p *Parser) id() ast.ID {
	p.lastID++
	return p.lastID
}

// parseDeclaration parses a declaration, which is either a 'var' or 'fun'
// declaration or any other statement.
func (p *Parser) parseDeclaration() (ast.Stmt, error) {
	switch {
	case p.match(token.Var):
		return p.parseVar()
	case p.match(token.Fun):
		return p.parseFunction()
	default:
		return p.parseStatement()
	}
}

// parseVar parses a variable declaration, the 'var' keyword has already been consumed.
func (p *Parser) parseVar() (*ast.Var, error) {
	result := &ast.Var{
		Keyword: p.previous,
		Type:    ast.KindVar,
	}

	ident, err := p.expect(token.Ident, "variable name")
	if err != nil {
		return nil, err
	}

	result.Ident = ident
	result.Name = ident.Lexeme(p.src)

	if p.match(token.Equal) {
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		result.Init = init
	}

	semi, err := p.expect(token.Semicolon, "';' after variable declaration")
	if err != nil {
		return nil, err
	}

	result.Semi = semi

	return result, nil
}

// parseFunction parses a function declaration, the 'fun' keyword has already been consumed.
func (p *Parser) parseFunction() (*ast.Function, error) {
	result := &ast.Function{
		Keyword: p.previous,
		Params:  []string{},
		Type:    ast.KindFunction,
	}

	ident, err := p.expect(token.Ident, "function name")
	if err != nil {
		return nil, err
	}

	result.Ident = ident
	result.Name = ident.Lexeme(p.src)

	if _, err = p.expect(token.LeftParen, "'(' after function name"); err != nil {
		return nil, err
	}

	if !p.match(token.RightParen) {
		param, err := p.expect(token.Ident, "parameter name")
		if err != nil {
			return nil, err
		}

		result.Params = append(result.Params, param.Lexeme(p.src))

		for p.match(token.Comma) {
			if len(result.Params) >= maxArgs {
				return nil, &Error{Kind: TooManyParameters, Token: p.previous, Actual: token.Comma, Line: p.previous.Line}
			}

			param, err := p.expect(token.Ident, "parameter name")
			if err != nil {
				return nil, err
			}

			result.Params = append(result.Params, param.Lexeme(p.src))
		}

		if _, err = p.expect(token.RightParen, "')' after parameters"); err != nil {
			return nil, err
		}
	}

	if _, err = p.expect(token.LeftBrace, "'{' before function body"); err != nil {
		return nil, err
	}

	body, closing, err := p.parseBlockStmts()
	if err != nil {
		return nil, err
	}

	result.Body = body
	result.Close = closing

	return result, nil
}

// parseStatement parses any statement that isn't a declaration.
func (p *Parser) parseStatement() (ast.Stmt, error) {
	switch {
	case p.match(token.Print):
		return p.parsePrint()
	case p.match(token.LeftBrace):
		return p.parseBlock()
	case p.match(token.If):
		return p.parseIf()
	case p.match(token.While):
		return p.parseWhile()
	case p.match(token.For):
		return p.parseFor()
	case p.match(token.Return):
		return p.parseReturn()
	default:
		return p.parseExpressionStmt()
	}
}

// parsePrint parses a print statement, the 'print' keyword has already been consumed.
func (p *Parser) parsePrint() (*ast.Print, error) {
	result := &ast.Print{
		Keyword: p.previous,
		Type:    ast.KindPrint,
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	result.Expr = expr

	semi, err := p.expect(token.Semicolon, "';' after value")
	if err != nil {
		return nil, err
	}

	result.Semi = semi

	return result, nil
}

// parseBlock parses a block statement, the opening '{' has already been consumed.
func (p *Parser) parseBlock() (*ast.Block, error) {
	result := &ast.Block{
		Open: p.previous,
		Type: ast.KindBlock,
	}

	stmts, closing, err := p.parseBlockStmts()
	if err != nil {
		return nil, err
	}

	result.Stmts = stmts
	result.Close = closing

	return result, nil
}

// parseBlockStmts parses declarations up to and including the closing '}', which
// is returned alongside them.
func (p *Parser) parseBlockStmts() ([]ast.Stmt, token.Token, error) {
	stmts := []ast.Stmt{}

	for !p.current.Is(token.RightBrace, token.EOF) {
		stmt, err := p.parseDeclaration()
		if err != nil {
			return nil, token.Token{}, err
		}

		stmts = append(stmts, stmt)
	}

	closing, err := p.expect(token.RightBrace, "'}' after block")
	if err != nil {
		return nil, token.Token{}, err
	}

	return stmts, closing, nil
}

// parseIf parses an if statement with an optional else branch, the 'if' keyword
// has already been consumed.
func (p *Parser) parseIf() (*ast.If, error) {
	result := &ast.If{
		Keyword: p.previous,
		Type:    ast.KindIf,
	}

	cond, err := p.parseCondition("if")
	if err != nil {
		return nil, err
	}

	result.Cond = cond

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	result.Then = then

	if p.match(token.Else) {
		otherwise, err := p.parseStatement()
		if err != nil {
			return nil, err
		}

		result.Else = otherwise
	}

	return result, nil
}

// parseWhile parses a while loop, the 'while' keyword has already been consumed.
func (p *Parser) parseWhile() (*ast.While, error) {
	result := &ast.While{
		Keyword: p.previous,
		Type:    ast.KindWhile,
	}

	cond, err := p.parseCondition("while")
	if err != nil {
		return nil, err
	}

	result.Cond = cond

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	result.Body = body

	return result, nil
}

// parseCondition parses a parenthesised condition following the given keyword.
func (p *Parser) parseCondition(keyword string) (ast.Expr, error) {
	if _, err := p.expect(token.LeftParen, "'(' after '"+keyword+"'"); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RightParen, "')' after condition"); err != nil {
		return nil, err
	}

	return cond, nil
}

// parseFor parses a for loop, desugaring it into an equivalent while loop:
//
//	for (init; cond; incr) body
//
// Becomes:
//
//	{
//	  init;
//	  while (cond) {
//	    body;
//	    incr;
//	  }
//	}
//
// Where a missing cond is 'true' and the outer block and the increment are only
// added when init and incr are present.
//
// The 'for' keyword has already been consumed.
func (p *Parser) parseFor() (ast.Stmt, error) {
	keyword := p.previous

	if _, err := p.expect(token.LeftParen, "'(' after 'for'"); err != nil {
		return nil, err
	}

	var init ast.Stmt

	switch {
	case p.match(token.Semicolon):
		// No initialiser
	case p.match(token.Var):
		decl, err := p.parseVar()
		if err != nil {
			return nil, err
		}

		init = decl
	default:
		stmt, err := p.parseExpressionStmt()
		if err != nil {
			return nil, err
		}

		init = stmt
	}

	var cond ast.Expr

	if p.match(token.Semicolon) {
		cond = &ast.Literal{Value: true, Token: p.previous, ID: p.id(), Type: ast.KindLiteral}
	} else {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err = p.expect(token.Semicolon, "';' after loop condition"); err != nil {
			return nil, err
		}

		cond = expr
	}

	var incr ast.Expr

	if !p.match(token.RightParen) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if _, err = p.expect(token.RightParen, "')' after for clauses"); err != nil {
			return nil, err
		}

		incr = expr
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.Block{
			Stmts: []ast.Stmt{
				body,
				&ast.Expression{Expr: incr, Semi: incr.End(), Type: ast.KindExpression},
			},
			Open:  body.Start(),
			Close: body.End(),
			Type:  ast.KindBlock,
		}
	}

	var loop ast.Stmt = &ast.While{
		Cond:    cond,
		Body:    body,
		Keyword: keyword,
		Type:    ast.KindWhile,
	}

	if init != nil {
		loop = &ast.Block{
			Stmts: []ast.Stmt{init, loop},
			Open:  keyword,
			Close: body.End(),
			Type:  ast.KindBlock,
		}
	}

	return loop, nil
}

// parseReturn parses a return statement, the 'return' keyword has already been consumed.
func (p *Parser) parseReturn() (*ast.Return, error) {
	result := &ast.Return{
		Keyword: p.previous,
		Type:    ast.KindReturn,
	}

	if !p.current.Is(token.Semicolon) {
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		result.Value = value
	}

	semi, err := p.expect(token.Semicolon, "';' after return value")
	if err != nil {
		return nil, err
	}

	result.Semi = semi

	return result, nil
}

// parseExpressionStmt parses an expression followed by a ';'.
func (p *Parser) parseExpressionStmt() (*ast.Expression, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	semi, err := p.expect(token.Semicolon, "';' after expression")
	if err != nil {
		return nil, err
	}

	return &ast.Expression{Expr: expr, Semi: semi, Type: ast.KindExpression}, nil
}

// parseExpression parses an expression, starting at the lowest precedence.
func (p *Parser) parseExpression() (ast.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses a right associative assignment, or anything of
// higher precedence.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if !p.match(token.Equal) {
		return expr, nil
	}

	equal := p.previous

	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	target, ok := expr.(*ast.Variable)
	if !ok {
		return nil, &Error{Kind: InvalidAssignment, Lexeme: "=", Token: equal, Actual: token.Equal, Line: equal.Line}
	}

	return &ast.Assign{
		Value: value,
		Name:  target.Name,
		Token: target.Token,
		ID:    p.id(),
		Type:  ast.KindAssign,
	}, nil
}

// parseOr parses a chain of 'or' expressions.
func (p *Parser) parseOr() (ast.Expr, error) {
	return p.parseLogical(token.Or, p.parseAnd)
}

// parseAnd parses a chain of 'and' expressions.
func (p *Parser) parseAnd() (ast.Expr, error) {
	return p.parseLogical(token.And, p.parseEquality)
}

// parseLogical parses a left folded chain of logical expressions joined by op, each
// operand parsed by next.
func (p *Parser) parseLogical(op token.Kind, next func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(op) {
		operator := p.previous

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = &ast.Logical{Left: left, Right: right, Op: operator, ID: p.id(), Type: ast.KindLogical}
	}

	return left, nil
}

// parseEquality parses at most one '==' or '!=', equality does not chain.
func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseNonChaining(p.parseComparison, token.EqualEqual, token.BangEqual)
}

// parseComparison parses at most one of '<', '<=', '>' or '>=', comparisons do not chain.
func (p *Parser) parseComparison() (ast.Expr, error) {
	return p.parseNonChaining(p.parseTerm, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

// parseNonChaining parses an operand, then at most one operator from ops and a second operand.
//
// Something like '1 < 2 < 3' therefore stops after '1 < 2', leaving the second '<' for
// whoever called us to trip over.
func (p *Parser) parseNonChaining(next func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	if !p.match(ops...) {
		return left, nil
	}

	operator := p.previous

	right, err := next()
	if err != nil {
		return nil, err
	}

	return &ast.Binary{Left: left, Right: right, Op: operator, ID: p.id(), Type: ast.KindBinary}, nil
}

// parseTerm parses a left folded chain of '+' and '-'.
func (p *Parser) parseTerm() (ast.Expr, error) {
	return p.parseLeftFold(p.parseFactor, token.Minus, token.Plus)
}

// parseFactor parses a left folded chain of '*' and '/'.
func (p *Parser) parseFactor() (ast.Expr, error) {
	return p.parseLeftFold(p.parseUnary, token.Slash, token.Star)
}

// parseLeftFold parses a chain of binary operators from ops, folding to the left
// so that '1 - 2 - 3' is '(1 - 2) - 3'.
func (p *Parser) parseLeftFold(next func() (ast.Expr, error), ops ...token.Kind) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		operator := p.previous

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = &ast.Binary{Left: left, Right: right, Op: operator, ID: p.id(), Type: ast.KindBinary}
	}

	return left, nil
}

// parseUnary parses a (possibly nested) prefix '!' or '-'.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if !p.match(token.Bang, token.Minus) {
		return p.parseCall()
	}

	operator := p.previous

	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &ast.Unary{Right: right, Op: operator, ID: p.id(), Type: ast.KindUnary}, nil
}

// parseCall parses a primary expression followed by any number of call suffixes
// e.g. 'f(1)(2)'.
func (p *Parser) parseCall() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.match(token.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// finishCall parses the argument list of a call to callee, the opening '(' has
// already been consumed.
func (p *Parser) finishCall(callee ast.Expr) (*ast.Call, error) {
	result := &ast.Call{
		Callee: callee,
		Args:   []ast.Expr{},
		Type:   ast.KindCall,
	}

	if !p.current.Is(token.RightParen) {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		result.Args = append(result.Args, arg)

		for p.match(token.Comma) {
			if len(result.Args) >= maxArgs {
				return nil, &Error{Kind: TooManyArguments, Token: p.previous, Actual: token.Comma, Line: p.previous.Line}
			}

			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			result.Args = append(result.Args, arg)
		}
	}

	closing, err := p.expect(token.RightParen, "')' after arguments")
	if err != nil {
		return nil, err
	}

	result.Close = closing
	result.ID = p.id()

	return result, nil
}

// parsePrimary parses a literal, variable reference or parenthesised expression.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	if p.current.Kind.IsError() {
		return nil, p.lexicalError()
	}

	switch p.current.Kind {
	case token.Nil:
		return p.literal(nil), nil
	case token.True:
		return p.literal(true), nil
	case token.False:
		return p.literal(false), nil
	case token.String:
		return p.literal(p.text()), nil
	case token.Number:
		text := p.text()

		// The scanner has already checked the syntax, the only thing that can go
		// wrong is a number too big for a float64 which parses to +Inf
		value, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, &Error{Kind: MalformedNumber, Lexeme: text, Token: p.current, Actual: token.Number, Line: p.current.Line}
		}

		return p.literal(value), nil
	case token.Ident:
		tok := p.advance()

		return &ast.Variable{Name: tok.Lexeme(p.src), Token: tok, ID: p.id(), Type: ast.KindVariable}, nil
	case token.LeftParen:
		return p.parseGrouping()
	default:
		return nil, p.unexpected("expression")
	}
}

// literal consumes the current token and returns it as an [ast.Literal] with the given value.
func (p *Parser) literal(value any) *ast.Literal {
	tok := p.advance()
	return &ast.Literal{Value: value, Token: tok, ID: p.id(), Type: ast.KindLiteral}
}

// parseGrouping parses a parenthesised expression.
func (p *Parser) parseGrouping() (*ast.Grouping, error) {
	result := &ast.Grouping{
		Open: p.advance(),
		Type: ast.KindGrouping,
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	result.Expr = expr

	closing, err := p.expect(token.RightParen, "')' after expression")
	if err != nil {
		return nil, err
	}

	result.Close = closing
	result.ID = p.id()

	return result, nil
}

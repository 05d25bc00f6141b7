/*
File    : vexel/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements Vexel's top-down recursive-descent parser
// (spec §4.2). Statements are newline-terminated; blocks are introduced
// by `start` at the end of the opening statement and closed by a line
// containing only `end`. A missing or unexpected `start`/`end` is a fatal
// *ParseError*, as is chaining two comparisons in a row.
package parser

import (
	"strconv"

	"github.com/stuncs69/vexel/ast"
	"github.com/stuncs69/vexel/lexer"
	"github.com/stuncs69/vexel/vexerr"
)

// Parser holds the lexer, a one-token lookahead, and the file name used
// to annotate diagnostics.
type Parser struct {
	file string
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New constructs a Parser over src, tagging diagnostics with file.
func New(src string, file string) *Parser {
	lx := lexer.NewLexer(src)
	p := &Parser{file: file, lex: &lx}
	p.advance()
	p.advance()
	return p
}

// ParseProgram parses the entire token stream into a statement list. The
// first error (lexical or grammatical) aborts parsing (fail-fast, spec §7).
func ParseProgram(src string, file string) ([]ast.Statement, error) {
	p := New(src, file)
	return p.parseStatements(func() bool { return p.cur.Type == lexer.EOF_TYPE })
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) lexErr() error {
	if p.lex.Err != nil {
		return vexerr.NewLexError(p.file, p.lex.ErrLine, "%s", p.lex.ErrMsg)
	}
	return nil
}

func (p *Parser) errAt(line int, format string, a ...interface{}) error {
	return vexerr.NewParseError(p.file, line, format, a...)
}

func (p *Parser) skipBlankLines() {
	for p.cur.Type == lexer.EOL_TYPE {
		p.advance()
	}
}

// expectConsume requires the current token to have the given type,
// advances past it, and returns the consumed token.
func (p *Parser) expectConsume(t lexer.TokenType, what string) (lexer.Token, error) {
	if err := p.lexErr(); err != nil {
		return lexer.Token{}, err
	}
	if p.cur.Type != t {
		return lexer.Token{}, p.errAt(p.cur.Line, "expected %s, got '%s'", what, p.cur.Literal)
	}
	tok := p.cur
	p.advance()
	return tok, nil
}

// expectTerminator requires the current statement to end at EOL or EOF.
func (p *Parser) expectTerminator() error {
	if err := p.lexErr(); err != nil {
		return err
	}
	if p.cur.Type != lexer.EOL_TYPE && p.cur.Type != lexer.EOF_TYPE {
		return p.errAt(p.cur.Line, "unexpected token '%s' at end of statement", p.cur.Literal)
	}
	if p.cur.Type == lexer.EOL_TYPE {
		p.advance()
	}
	return nil
}

// parseStatements parses statements until stop() is true.
func (p *Parser) parseStatements(stop func() bool) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		p.skipBlankLines()
		if err := p.lexErr(); err != nil {
			return nil, err
		}
		if stop() {
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseBlock parses `start <EOL> stmt* end`, with `start` already current.
func (p *Parser) parseBlock() ([]ast.Statement, error) {
	if _, err := p.expectConsume(lexer.START_KEY, "'start'"); err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	body, err := p.parseStatements(func() bool { return p.cur.Type == lexer.END_KEY || p.cur.Type == lexer.EOF_TYPE })
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.END_KEY {
		return nil, p.errAt(p.cur.Line, "missing 'end' for block")
	}
	p.advance()
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	line := p.cur.Line
	switch p.cur.Type {
	case lexer.SET_KEY:
		return p.parseAssign(line)
	case lexer.PRINT_KEY:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Line: line, Expr: expr}, nil
	case lexer.IF_KEY:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.IfStmt{Line: line, Cond: cond, Body: body}, nil
	case lexer.WHILE_KEY:
		p.advance()
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Line: line, Cond: cond, Body: body}, nil
	case lexer.FOR_KEY:
		return p.parseForIn(line)
	case lexer.FUNCTION_KEY:
		return p.parseFunctionDef(line, false)
	case lexer.EXPORT_KEY:
		p.advance()
		if _, err := p.expectConsume(lexer.FUNCTION_KEY, "'function' after 'export'"); err != nil {
			return nil, err
		}
		return p.parseFunctionDefBody(line, true)
	case lexer.RETURN_KEY:
		return p.parseReturn(line)
	case lexer.IMPORT_KEY:
		return p.parseImport(line)
	case lexer.TEST_KEY:
		return p.parseTest(line)
	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.ExpressionStmt{Line: line, Expr: expr}, nil
	}
}

func (p *Parser) parseAssign(line int) (ast.Statement, error) {
	p.advance() // 'set'
	first, err := p.expectConsume(lexer.IDENTIFIER_ID, "assignment target")
	if err != nil {
		return nil, err
	}
	path := []string{first.Literal}
	for p.cur.Type == lexer.DOT_OP {
		p.advance()
		key, err := p.expectConsume(lexer.IDENTIFIER_ID, "property name")
		if err != nil {
			return nil, err
		}
		path = append(path, key.Literal)
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.AssignStmt{Line: line, Path: path, Expr: expr}, nil
}

func (p *Parser) parseForIn(line int) (ast.Statement, error) {
	p.advance() // 'for'
	v, err := p.expectConsume(lexer.IDENTIFIER_ID, "loop variable")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectConsume(lexer.IN_KEY, "'in'"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ForInStmt{Line: line, Var: v.Literal, Iterable: iterable, Body: body}, nil
}

func (p *Parser) parseFunctionDef(line int, exported bool) (ast.Statement, error) {
	p.advance() // 'function'
	return p.parseFunctionDefBody(line, exported)
}

func (p *Parser) parseFunctionDefBody(line int, exported bool) (ast.Statement, error) {
	name, err := p.expectConsume(lexer.IDENTIFIER_ID, "function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectConsume(lexer.LEFT_PAREN, "'('"); err != nil {
		return nil, err
	}
	var params []string
	for p.cur.Type != lexer.RIGHT_PAREN {
		param, err := p.expectConsume(lexer.IDENTIFIER_ID, "parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, param.Literal)
		if p.cur.Type == lexer.COMMA_DELIM {
			p.advance()
		} else {
			break
		}
	}
	if _, err := p.expectConsume(lexer.RIGHT_PAREN, "')'"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefStmt{Line: line, Name: name.Literal, Params: params, Body: body, Exported: exported}, nil
}

func (p *Parser) parseReturn(line int) (ast.Statement, error) {
	p.advance() // 'return'
	if p.cur.Type == lexer.EOL_TYPE || p.cur.Type == lexer.EOF_TYPE {
		if err := p.expectTerminator(); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Line: line}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Line: line, Expr: expr}, nil
}

func (p *Parser) parseImport(line int) (ast.Statement, error) {
	p.advance() // 'import'
	alias, err := p.expectConsume(lexer.IDENTIFIER_ID, "import alias")
	if err != nil {
		return nil, err
	}
	if _, err := p.expectConsume(lexer.FROM_KEY, "'from'"); err != nil {
		return nil, err
	}
	path, err := p.expectConsume(lexer.STRING_LIT, "import path string")
	if err != nil {
		return nil, err
	}
	if err := p.expectTerminator(); err != nil {
		return nil, err
	}
	return &ast.ImportStmt{Line: line, Alias: alias.Literal, Path: path.Literal}, nil
}

func (p *Parser) parseTest(line int) (ast.Statement, error) {
	p.advance() // 'test'
	label, err := p.expectConsume(lexer.STRING_LIT, "test label string")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.TestStmt{Line: line, Label: label.Literal, Body: body}, nil
}

// --- Expressions ---
// Precedence, lowest to highest: `+` chain, comparison, call/property, atom.

func (p *Parser) parseExpr() (ast.Expression, error) {
	return p.parseConcatChain()
}

func (p *Parser) parseConcatChain() (ast.Expression, error) {
	line := p.cur.Line
	first, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.PLUS_OP {
		return first, nil
	}
	parts := []ast.Expression{first}
	for p.cur.Type == lexer.PLUS_OP {
		p.advance()
		next, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	return &ast.ConcatChainExpr{Line: line, Parts: parts}, nil
}

func isComparisonOp(t lexer.TokenType) bool {
	switch t {
	case lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return true
	default:
		return false
	}
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	line := p.cur.Line
	lhs, err := p.parseCallOrAtom()
	if err != nil {
		return nil, err
	}
	if !isComparisonOp(p.cur.Type) {
		return lhs, nil
	}
	op := p.cur.Literal
	p.advance()
	rhs, err := p.parseCallOrAtom()
	if err != nil {
		return nil, err
	}
	if isComparisonOp(p.cur.Type) {
		return nil, p.errAt(p.cur.Line, "chained comparisons are not allowed")
	}
	return &ast.ComparisonExpr{Line: line, Op: op, Lhs: lhs, Rhs: rhs}, nil
}

func (p *Parser) parseCallOrAtom() (ast.Expression, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case lexer.DOT_OP:
			line := p.cur.Line
			var keys []string
			for p.cur.Type == lexer.DOT_OP {
				p.advance()
				key, err := p.expectConsume(lexer.IDENTIFIER_ID, "property name")
				if err != nil {
					return nil, err
				}
				keys = append(keys, key.Literal)
			}
			expr = &ast.PropertyAccessExpr{Line: line, Base: expr, Keys: keys}
		case lexer.LEFT_PAREN:
			line := p.cur.Line
			p.advance()
			args, err := p.parseExprList(lexer.RIGHT_PAREN)
			if err != nil {
				return nil, err
			}
			if _, err := p.expectConsume(lexer.RIGHT_PAREN, "')'"); err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{Line: line, Callee: expr, Args: args}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseExprList(terminator lexer.TokenType) ([]ast.Expression, error) {
	var list []ast.Expression
	if p.cur.Type == terminator {
		return list, nil
	}
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
		if p.cur.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	return list, nil
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	if err := p.lexErr(); err != nil {
		return nil, err
	}
	line := p.cur.Line
	switch p.cur.Type {
	case lexer.INT_LIT:
		n, err := strconv.ParseInt(p.cur.Literal, 10, 32)
		if err != nil {
			return nil, p.errAt(line, "integer literal out of range: %s", p.cur.Literal)
		}
		p.advance()
		return &ast.LiteralExpr{Line: line, Kind: ast.NumberLiteral, Number: int32(n)}, nil
	case lexer.STRING_LIT:
		s := p.cur.Literal
		p.advance()
		return &ast.LiteralExpr{Line: line, Kind: ast.StringLiteral, Str: s}, nil
	case lexer.INTERP_LIT:
		parts, err := p.parseInterpParts(p.cur.Parts, line)
		if err != nil {
			return nil, err
		}
		p.advance()
		return &ast.InterpolatedExpr{Line: line, Parts: parts}, nil
	case lexer.TRUE_KEY:
		p.advance()
		return &ast.LiteralExpr{Line: line, Kind: ast.BooleanLiteral, Bool: true}, nil
	case lexer.FALSE_KEY:
		p.advance()
		return &ast.LiteralExpr{Line: line, Kind: ast.BooleanLiteral, Bool: false}, nil
	case lexer.IDENTIFIER_ID:
		name := p.cur.Literal
		p.advance()
		return &ast.VarRefExpr{Line: line, Name: name}, nil
	case lexer.LEFT_BRACKET:
		p.advance()
		elements, err := p.parseExprList(lexer.RIGHT_BRACKET)
		if err != nil {
			return nil, err
		}
		if _, err := p.expectConsume(lexer.RIGHT_BRACKET, "']'"); err != nil {
			return nil, err
		}
		return &ast.ArrayLitExpr{Line: line, Elements: elements}, nil
	case lexer.LEFT_BRACE:
		return p.parseObjectLit(line)
	case lexer.LEFT_PAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectConsume(lexer.RIGHT_PAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.errAt(line, "unexpected token '%s' in expression", p.cur.Literal)
	}
}

func (p *Parser) parseObjectLit(line int) (ast.Expression, error) {
	p.advance() // '{'
	var keys []string
	var values []ast.Expression
	for p.cur.Type != lexer.RIGHT_BRACE {
		key, err := p.expectConsume(lexer.IDENTIFIER_ID, "object key")
		if err != nil {
			return nil, err
		}
		if _, err := p.expectConsume(lexer.COLON_DELIM, "':'"); err != nil {
			return nil, err
		}
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		keys = append(keys, key.Literal)
		values = append(values, val)
		if p.cur.Type == lexer.COMMA_DELIM {
			p.advance()
			continue
		}
		break
	}
	if _, err := p.expectConsume(lexer.RIGHT_BRACE, "'}'"); err != nil {
		return nil, err
	}
	return &ast.ObjectLitExpr{Line: line, Keys: keys, Values: values}, nil
}

// parseInterpParts re-parses each "${...}" placeholder's raw source as a
// standalone expression (spec §4.1: the lexer "emits ... raw source
// slices for each ${...}, which the parser re-parses as expressions").
func (p *Parser) parseInterpParts(rawParts []lexer.InterpPart, line int) ([]ast.InterpPart, error) {
	parts := make([]ast.InterpPart, 0, len(rawParts))
	for _, part := range rawParts {
		if !part.IsExpr {
			parts = append(parts, ast.InterpPart{IsExpr: false, Text: part.Text})
			continue
		}
		sub := New(part.Source, p.file)
		expr, err := sub.parseExpr()
		if err != nil {
			return nil, err
		}
		if sub.cur.Type != lexer.EOF_TYPE {
			return nil, p.errAt(line, "unexpected trailing tokens in '${%s}'", part.Source)
		}
		parts = append(parts, ast.InterpPart{IsExpr: true, Expr: expr})
	}
	return parts, nil
}

package wisp

import "fmt"

// parser is a recursive-descent cursor over a token slice. Each
// non-terminal in the grammar is one method that consumes the longest
// valid prefix and advances idx; see parser_expression.go for the
// precedence-layered expression grammar.
type parser struct {
	tokens []Token
	idx    int
	diags  Diagnostics
}

// Parse builds a Program from tokens, or returns the diagnostics
// accumulated across every declaration that failed to parse. The
// parser synchronizes past a bad declaration and keeps going, so one
// call can report several independent errors.
func Parse(tokens []Token) (*Program, Diagnostics) {
	p := &parser{tokens: tokens}
	prog := &Program{}
	for !p.atEnd() {
		decl, diag := p.declaration()
		if diag != nil {
			p.diags = append(p.diags, diag)
			p.synchronize()
			continue
		}
		prog.Decls = append(prog.Decls, decl)
	}
	if len(p.diags) > 0 {
		parserLogger.Debugf("parse finished with %d diagnostics", len(p.diags))
		return nil, p.diags
	}
	parserLogger.Debugf("parse finished with %d declarations", len(prog.Decls))
	return prog, nil
}

func (p *parser) current() Token {
	return p.tokens[p.idx]
}

func (p *parser) atEnd() bool {
	return p.current().Type == TokenEOF
}

func (p *parser) advance() Token {
	t := p.tokens[p.idx]
	if t.Type != TokenEOF {
		p.idx++
	}
	return t
}

func (p *parser) check(t TokenType) bool {
	return p.current().Type == t
}

func (p *parser) checkNext(t TokenType) bool {
	if p.idx+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[p.idx+1].Type == t
}

// match consumes and returns the current token if it has one of the
// given types.
func (p *parser) match(types ...TokenType) (Token, bool) {
	for _, t := range types {
		if p.check(t) {
			return p.advance(), true
		}
	}
	return Token{}, false
}

// expect consumes the current token if it has type t, otherwise
// produces a diagnostic naming what was expected. An expectation
// failing at end-of-input is UnexpectedEndOfInput; any other mismatch
// is UnexpectedToken.
func (p *parser) expect(t TokenType, what string) (Token, *Diagnostic) {
	if p.check(t) {
		return p.advance(), nil
	}
	cur := p.current()
	if cur.Type == TokenEOF {
		return Token{}, &Diagnostic{
			Kind:    DiagUnexpectedEndOfInput,
			Message: fmt.Sprintf("expected %s but reached end of input", what),
			Span:    cur.Span,
		}
	}
	return Token{}, &Diagnostic{
		Kind:    DiagUnexpectedToken,
		Message: fmt.Sprintf("expected %s but found %s", what, cur.Type),
		Span:    cur.Span,
	}
}

// synchronize discards tokens until it finds a semicolon (consuming
// it) or end-of-input, so the next declaration starts on a clean
// boundary after a parse error.
func (p *parser) synchronize() {
	for !p.atEnd() {
		if p.current().Type == TokenSemicolon {
			p.advance()
			return
		}
		p.advance()
	}
}

func (p *parser) declaration() (Stmt, *Diagnostic) {
	if p.check(TokenLeftBrace) {
		return p.block()
	}
	if _, ok := p.match(TokenVar); ok {
		return p.varDecl()
	}
	return p.statement()
}

func (p *parser) varDecl() (Stmt, *Diagnostic) {
	name, diag := p.expect(TokenIdentifier, "a variable name")
	if diag != nil {
		return nil, diag
	}
	decl := &VarDecl{Name: name.Text, Sp: name.Span}
	if _, ok := p.match(TokenEqual); ok {
		init, diag := p.expression()
		if diag != nil {
			return nil, diag
		}
		decl.Init = init
	}
	if _, diag := p.expect(TokenSemicolon, "';' after variable declaration"); diag != nil {
		return nil, diag
	}
	return decl, nil
}

func (p *parser) block() (*Block, *Diagnostic) {
	if _, diag := p.expect(TokenLeftBrace, "'{'"); diag != nil {
		return nil, diag
	}
	b := &Block{}
	for !p.check(TokenRightBrace) && !p.atEnd() {
		decl, diag := p.declaration()
		if diag != nil {
			return nil, diag
		}
		b.Decls = append(b.Decls, decl)
	}
	if _, diag := p.expect(TokenRightBrace, "'}'"); diag != nil {
		return nil, diag
	}
	return b, nil
}

func (p *parser) statement() (Stmt, *Diagnostic) {
	switch {
	case p.check(TokenPrint):
		return p.printStmt()
	case p.check(TokenIf):
		return p.ifStmt()
	case p.check(TokenWhile):
		return p.whileStmt()
	case p.check(TokenFor):
		return p.forStmt()
	case p.check(TokenIdentifier) && p.checkNext(TokenEqual):
		return p.assignment()
	default:
		return p.exprStmt()
	}
}

func (p *parser) printStmt() (Stmt, *Diagnostic) {
	p.advance()
	expr, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	if _, diag := p.expect(TokenSemicolon, "';' after value"); diag != nil {
		return nil, diag
	}
	return &PrintStmt{Expr: expr}, nil
}

func (p *parser) exprStmt() (Stmt, *Diagnostic) {
	expr, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	if _, diag := p.expect(TokenSemicolon, "';' after expression"); diag != nil {
		return nil, diag
	}
	return &ExprStmt{Expr: expr}, nil
}

func (p *parser) assignment() (Stmt, *Diagnostic) {
	name := p.advance()
	p.advance() // '='
	value, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	if _, diag := p.expect(TokenSemicolon, "';' after assignment"); diag != nil {
		return nil, diag
	}
	return &Assignment{Name: name.Text, NameSpan: name.Span, Value: value}, nil
}

func (p *parser) ifStmt() (Stmt, *Diagnostic) {
	p.advance()
	cond, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	then, diag := p.block()
	if diag != nil {
		return nil, diag
	}
	stmt := &IfStmt{Cond: cond, Then: then}
	if _, ok := p.match(TokenElse); ok {
		elseBlock, diag := p.block()
		if diag != nil {
			return nil, diag
		}
		stmt.Else = elseBlock
	}
	return stmt, nil
}

func (p *parser) whileStmt() (Stmt, *Diagnostic) {
	p.advance()
	cond, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	body, diag := p.block()
	if diag != nil {
		return nil, diag
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// forStmt parses `for BLOCK_init BLOCK_cond BLOCK_update BLOCK_body`
// and immediately rewrites it into an outer Block holding the init
// declarations followed by a While whose body concatenates the user
// body and the update block.
func (p *parser) forStmt() (Stmt, *Diagnostic) {
	p.advance()

	initBlock, diag := p.block()
	if diag != nil {
		return nil, diag
	}

	if _, diag := p.expect(TokenLeftBrace, "'{' starting the for-loop condition"); diag != nil {
		return nil, diag
	}
	cond, diag := p.expression()
	if diag != nil {
		return nil, diag
	}
	if _, diag := p.expect(TokenRightBrace, "'}' closing the for-loop condition"); diag != nil {
		return nil, diag
	}

	updateBlock, diag := p.block()
	if diag != nil {
		return nil, diag
	}

	bodyBlock, diag := p.block()
	if diag != nil {
		return nil, diag
	}

	loopBody := &Block{Decls: append(append([]Stmt{}, bodyBlock.Decls...), updateBlock.Decls...)}
	outer := &Block{
		Decls: append(append([]Stmt{}, initBlock.Decls...), &WhileStmt{Cond: cond, Body: loopBody}),
	}
	return outer, nil
}

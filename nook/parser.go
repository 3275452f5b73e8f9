package nook

import (
	"strconv"
)

type parser struct {
	tokens []Token
	pos    int

	errors []*Error
}

// Parse builds statements from a token sequence ending in EOF. Statements
// that fail to parse are reported in the returned diagnostics and left out
// of the result; parsing resumes at the next statement boundary.
func Parse(tokens []Token) ([]Stmt, []*Error) {
	p := newParser(tokens)
	return p.ParseProgram()
}

func newParser(tokens []Token) *parser {
	if n := len(tokens); n == 0 || tokens[n-1].Type != TokenEOF {
		end := Position{Line: 1, Column: 1}
		if n > 0 {
			last := tokens[n-1]
			end = Position{Line: last.Pos.Line, Column: last.Pos.Column + len([]rune(last.Literal))}
		}
		tokens = append(tokens[:n:n], Token{Type: TokenEOF, Pos: end})
	}
	return &parser{tokens: tokens}
}

func (p *parser) ParseProgram() ([]Stmt, []*Error) {
	statements := []Stmt{}

	for !p.done() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	return statements, p.errors
}

// declaration parses one statement, or records the failure and skips to
// the next statement boundary.
func (p *parser) declaration() Stmt {
	var (
		stmt Stmt
		err  *Error
	)
	if p.match(TokenVar) {
		stmt, err = p.varDeclaration()
	} else {
		stmt, err = p.statement()
	}

	if err != nil {
		p.errors = append(p.errors, err)
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *parser) varDeclaration() (Stmt, *Error) {
	pos := p.previous().Pos
	name, err := p.consume(TokenIdent, "Expect variable name")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenAssign) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer, position: pos}, nil
}

func (p *parser) statement() (Stmt, *Error) {
	if p.match(TokenPrint) {
		return p.printStatement()
	}
	return p.expressionStatement()
}

func (p *parser) printStatement() (Stmt, *Error) {
	pos := p.previous().Pos
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: expr, position: pos}, nil
}

func (p *parser) expressionStatement() (Stmt, *Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

func (p *parser) expression() (Expr, *Error) {
	return p.assignment()
}

// assignment -> logic_or ( "=" assignment )?
func (p *parser) assignment() (Expr, *Error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if !p.match(TokenAssign) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *VariableExpr:
		return &AssignExpr{Name: target.Name, Value: value}, nil
	case *GetExpr:
		return &SetExpr{Object: target.Object, Property: target.Property, Value: value}, nil
	default:
		return nil, p.errorAt(equals, "Invalid assignment target")
	}
}

// logic_or -> logic_and ( "||" logic_and )*
func (p *parser) logicOr() (Expr, *Error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}
	for p.match(TokenPipePipe) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// logic_and -> equality ( "&&" equality )*
func (p *parser) logicAnd() (Expr, *Error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(TokenAmpAmp) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// equality -> comparison ( ( "!=" | "==" ) comparison )*
func (p *parser) equality() (Expr, *Error) {
	return p.binaryTier(p.comparison, TokenBangEq, TokenEq)
}

// comparison -> term ( ( "<" | "<=" | ">" | ">=" ) term )*
func (p *parser) comparison() (Expr, *Error) {
	return p.binaryTier(p.term, TokenLT, TokenLTE, TokenGT, TokenGTE)
}

// term -> factor ( ( "+" | "-" ) factor )*
func (p *parser) term() (Expr, *Error) {
	return p.binaryTier(p.factor, TokenPlus, TokenMinus)
}

// factor -> unary ( ( "*" | "/" ) unary )*
func (p *parser) factor() (Expr, *Error) {
	return p.binaryTier(p.unary, TokenStar, TokenSlash)
}

// binaryTier folds operands from next into a left-leaning chain of
// BinaryExpr for as long as one of ops follows.
func (p *parser) binaryTier(next func() (Expr, *Error), ops ...TokenType) (Expr, *Error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(ops...) {
		operator := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr, nil
}

// unary -> ( "!" | "-" ) unary | call
func (p *parser) unary() (Expr, *Error) {
	if p.match(TokenBang, TokenMinus) {
		operator := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Operand: operand}, nil
	}
	return p.call()
}

// call -> primary ( "(" arguments? ")" | "." Identifier )*
func (p *parser) call() (Expr, *Error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(TokenLParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(TokenDot):
			name, err := p.consume(TokenIdent, "Expect property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &GetExpr{Object: expr, Property: name}
		default:
			return expr, nil
		}
	}
}

func (p *parser) finishCall(callee Expr) (Expr, *Error) {
	args := []Expr{}
	if !p.check(TokenRParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TokenComma) {
				break
			}
		}
	}

	paren, err := p.consume(TokenRParen, "Expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

func (p *parser) primary() (Expr, *Error) {
	tok := p.peek()

	switch {
	case p.match(TokenInt):
		value, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			return nil, p.errorAt(tok, "Integer literal out of range")
		}
		return &LiteralExpr{Value: NewInteger(value), position: tok.Pos}, nil
	case p.match(TokenFloat):
		value, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			return nil, p.errorAt(tok, "Float literal out of range")
		}
		return &LiteralExpr{Value: NewFloat(value), position: tok.Pos}, nil
	case p.match(TokenChar):
		runes := []rune(tok.Literal)
		if len(runes) != 1 {
			return nil, p.errorAt(tok, "Char literal must hold exactly one character")
		}
		return &LiteralExpr{Value: NewChar(runes[0]), position: tok.Pos}, nil
	case p.match(TokenString):
		return &LiteralExpr{Value: NewString(tok.Literal), position: tok.Pos}, nil
	case p.match(TokenFormString):
		return &LiteralExpr{Value: NewFormString(tok.Literal), position: tok.Pos}, nil
	case p.match(TokenTrue):
		return &LiteralExpr{Value: NewBool(true), position: tok.Pos}, nil
	case p.match(TokenFalse):
		return &LiteralExpr{Value: NewBool(false), position: tok.Pos}, nil
	case p.match(TokenNil):
		return &LiteralExpr{Value: NewNil(), position: tok.Pos}, nil
	case p.match(TokenIdent):
		return &VariableExpr{Name: tok}, nil
	case p.match(TokenLParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expression: expr, position: tok.Pos}, nil
	}

	return nil, p.errorExpected(tok, "Expect expression")
}

// synchronize discards tokens until a statement boundary: just past a ';',
// before a token that starts a declaration or control-flow statement, or
// at EOF.
func (p *parser) synchronize() {
	p.advance()

	for !p.done() {
		if p.previous().Type == TokenSemicolon {
			return
		}

		switch p.peek().Type {
		case TokenStruct, TokenStatic, TokenDyn, TokenMtd, TokenVar, TokenLoop,
			TokenIf, TokenElse, TokenEval, TokenContinue, TokenBreak, TokenReturn:
			return
		}

		p.advance()
	}
}

func (p *parser) consume(tt TokenType, msg string) (Token, *Error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.errorExpected(p.peek(), msg)
}

func (p *parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tt TokenType) bool {
	if p.done() {
		return false
	}
	return p.peek().Type == tt
}

func (p *parser) advance() Token {
	if !p.done() {
		p.pos++
	}
	return p.previous()
}

func (p *parser) done() bool {
	return p.peek().Type == TokenEOF
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// previous is only valid after at least one token has been consumed.
func (p *parser) previous() Token {
	return p.tokens[p.pos-1]
}

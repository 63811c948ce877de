package formula

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	powLowest = iota
	powEq
	powCmp
	powConcat
	powAdd
	powMul
	powUnary
	powPow
	powRange
	powCall
)

var bindings = map[rune]int{
	Eq:       powEq,
	Ne:       powEq,
	Lt:       powCmp,
	Le:       powCmp,
	Gt:       powCmp,
	Ge:       powCmp,
	Concat:   powConcat,
	Add:      powAdd,
	Sub:      powAdd,
	Mul:      powMul,
	Div:      powMul,
	Pow:      powPow,
	RangeRef: powRange,
	BegGrp:   powCall,
}

type (
	prefixFunc func() (Expr, error)
	infixFunc  func(Expr) (Expr, error)
)

type Parser struct {
	scan *Scanner
	curr Token
	peek Token

	prefix map[rune]prefixFunc
	infix  map[rune]infixFunc
}

// ParseFormula parses the text of a formula, with or without its
// leading '='. Lexically broken input yields a LexError, structurally
// broken input a ParseError.
func ParseFormula(str string) (Expr, error) {
	p := NewParser(str)
	return p.Parse()
}

func NewParser(str string) *Parser {
	var p Parser
	p.scan = Scan(str)
	p.prefix = map[rune]prefixFunc{
		Number:  p.parseNumber,
		Literal: p.parseLiteral,
		Ident:   p.parseIdent,
		Sub:     p.parseUnary,
		Add:     p.parseUnary,
		BegGrp:  p.parseGroup,
	}
	p.infix = map[rune]infixFunc{
		Add:      p.parseBinary,
		Sub:      p.parseBinary,
		Mul:      p.parseBinary,
		Div:      p.parseBinary,
		Pow:      p.parseBinary,
		Concat:   p.parseBinary,
		Eq:       p.parseBinary,
		Ne:       p.parseBinary,
		Lt:       p.parseBinary,
		Le:       p.parseBinary,
		Gt:       p.parseBinary,
		Ge:       p.parseBinary,
		RangeRef: p.parseRange,
		BegGrp:   p.parseCall,
	}
	p.next()
	p.next()
	return &p
}

func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if p.curr.Type != EOF {
		return nil, p.unexpected()
	}
	if _, ok := expr.(rangeAddr); ok {
		return nil, ParseError{
			Message: "range reference only allowed as function argument",
		}
	}
	return expr, nil
}

func (p *Parser) parse(pow int) (Expr, error) {
	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return nil, p.unexpected()
	}
	left, err := fn()
	if err != nil {
		return nil, err
	}
	for p.curr.Type != EOF && pow < p.power() {
		fn, ok := p.infix[p.curr.Type]
		if !ok {
			return left, nil
		}
		left, err = fn(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parseNumber() (Expr, error) {
	tok := p.curr
	p.next()
	val, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, parseError(tok, fmt.Sprintf("%s is not a valid number", tok.Literal))
	}
	return number{value: val}, nil
}

func (p *Parser) parseLiteral() (Expr, error) {
	tok := p.curr
	p.next()
	return literal{value: tok.Literal}, nil
}

func (p *Parser) parseIdent() (Expr, error) {
	tok := p.curr
	p.next()
	switch strings.ToLower(tok.Literal) {
	case "true":
		return boolean{value: true}, nil
	case "false":
		return boolean{value: false}, nil
	default:
	}
	if isAddrLike(tok.Literal) {
		addr, err := parseCellAddr(tok.Literal)
		if err != nil {
			return nil, parseError(tok, err.Error())
		}
		return addr, nil
	}
	if p.curr.Type != BegGrp {
		return nil, parseError(tok, fmt.Sprintf("%s is neither a reference nor a function call", tok.Literal))
	}
	return identifier{name: tok.Literal}, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	op := p.curr
	p.next()
	right, err := p.parse(powUnary)
	if err != nil {
		return nil, err
	}
	if _, ok := right.(rangeAddr); ok {
		return nil, parseError(op, "range reference only allowed as function argument")
	}
	if op.Type == Add {
		return right, nil
	}
	return unary{right: right, op: op.Type}, nil
}

func (p *Parser) parseGroup() (Expr, error) {
	open := p.curr
	p.next()
	expr, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if p.curr.Type != EndGrp {
		return nil, p.unexpected()
	}
	p.next()
	if _, ok := expr.(rangeAddr); ok {
		return nil, parseError(open, "range reference only allowed as function argument")
	}
	return expr, nil
}

func (p *Parser) parseBinary(left Expr) (Expr, error) {
	op := p.curr
	pow := p.power()
	p.next()
	if op.Type == Pow {
		// exponentiation is right associative
		pow--
	}
	right, err := p.parse(pow)
	if err != nil {
		return nil, err
	}
	expr := binary{
		left:  left,
		right: right,
		op:    op.Type,
	}
	if isRange(expr.left) || isRange(expr.right) {
		return nil, parseError(op, "range reference only allowed as function argument")
	}
	return expr, nil
}

func (p *Parser) parseRange(left Expr) (Expr, error) {
	op := p.curr
	start, ok := left.(cellAddr)
	if !ok {
		return nil, parseError(op, "range bound is not a cell reference")
	}
	p.next()
	if p.curr.Type != Ident || !isAddrLike(p.curr.Literal) {
		return nil, parseError(p.curr, "range bound is not a cell reference")
	}
	end, err := parseCellAddr(p.curr.Literal)
	if err != nil {
		return nil, parseError(p.curr, err.Error())
	}
	p.next()
	expr := rangeAddr{
		startAddr: start,
		endAddr:   end,
	}
	return expr, nil
}

func (p *Parser) parseCall(left Expr) (Expr, error) {
	ident, ok := left.(identifier)
	if !ok {
		return nil, parseError(p.curr, "only functions can be called")
	}
	expr := call{
		ident: ident,
	}
	p.next()
	for p.curr.Type != EndGrp && p.curr.Type != EOF {
		arg, err := p.parse(powLowest)
		if err != nil {
			return nil, err
		}
		expr.args = append(expr.args, arg)
		if p.curr.Type == Comma {
			p.next()
			if p.curr.Type == EndGrp || p.curr.Type == EOF {
				return nil, parseError(p.curr, "missing argument after comma")
			}
		} else if p.curr.Type != EndGrp {
			return nil, p.unexpected()
		}
	}
	if p.curr.Type != EndGrp {
		return nil, p.unexpected()
	}
	p.next()
	return expr, nil
}

func (p *Parser) power() int {
	return bindings[p.curr.Type]
}

func (p *Parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
}

func (p *Parser) unexpected() error {
	if p.curr.Type == Invalid {
		return LexError{
			Position: p.curr.Position,
			Char:     p.curr.Literal,
		}
	}
	if p.curr.Type == EOF {
		return parseError(p.curr, "unexpected end of formula")
	}
	return parseError(p.curr, fmt.Sprintf("unexpected %s", p.curr))
}

func isRange(expr Expr) bool {
	_, ok := expr.(rangeAddr)
	return ok
}

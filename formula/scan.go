package formula

import (
	"fmt"
	"unicode/utf8"
)

const (
	Invalid rune = 0

	EOF rune = 1 << iota
	Ident
	Number
	Literal
	Add
	Sub
	Mul
	Div
	Pow
	Concat
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	Comma
	BegGrp
	EndGrp
	RangeRef
)

type Token struct {
	Literal  string
	Type     rune
	Position int
}

func (t Token) String() string {
	var str string
	switch t.Type {
	case Invalid:
		return fmt.Sprintf("<invalid(%s)>", t.Literal)
	case EOF:
		return "<eof>"
	case Ident:
		str = "identifier"
	case Number:
		str = "number"
	case Literal:
		str = "literal"
	case Add:
		return "<add>"
	case Sub:
		return "<subtract>"
	case Mul:
		return "<multiply>"
	case Div:
		return "<divide>"
	case Pow:
		return "<power>"
	case Concat:
		return "<concat>"
	case Eq:
		return "<equal>"
	case Ne:
		return "<notequal>"
	case Lt:
		return "<lesser>"
	case Le:
		return "<lesseq>"
	case Gt:
		return "<greater>"
	case Ge:
		return "<greateq>"
	case Comma:
		return "<comma>"
	case BegGrp:
		return "<beg-group>"
	case EndGrp:
		return "<end-group>"
	case RangeRef:
		return "<range>"
	}
	return fmt.Sprintf("%s(%s)", str, t.Literal)
}

type Scanner struct {
	input []byte
	pos   int
	next  int
	char  rune

	buf []rune
}

func Scan(str string) *Scanner {
	var scan Scanner
	scan.input = []byte(str)
	scan.read()
	if scan.char == equal {
		scan.read()
	}
	return &scan
}

func (s *Scanner) Scan() Token {
	s.skipBlanks()

	var tok Token
	tok.Position = s.pos
	if s.done() {
		tok.Type = EOF
		return tok
	}
	defer s.reset()
	switch {
	case isOperator(s.char):
		s.scanOperator(&tok)
	case isDelimiter(s.char):
		s.scanDelimiter(&tok)
	case isQuote(s.char):
		s.scanLiteral(&tok)
	case isDigit(s.char):
		s.scanNumber(&tok)
	case isAlpha(s.char):
		s.scanIdent(&tok)
	default:
		tok.Type = Invalid
		tok.Literal = string(s.char)
		s.read()
	}
	return tok
}

func (s *Scanner) scanIdent(tok *Token) {
	for !s.done() && isAlpha(s.char) {
		s.write()
		s.read()
	}
	tok.Type = Ident
	tok.Literal = s.literal()
}

func (s *Scanner) scanNumber(tok *Token) {
	tok.Type = Number
	for !s.done() && isDigit(s.char) {
		s.write()
		s.read()
	}
	if s.char == dot {
		s.write()
		s.read()
		for !s.done() && isDigit(s.char) {
			s.write()
			s.read()
		}
	}
	tok.Literal = s.literal()
	// something like "1A" is neither a number nor a reference
	if isLetter(s.char) {
		tok.Type = Invalid
		tok.Literal = string(s.char)
	}
}

func (s *Scanner) scanLiteral(tok *Token) {
	quote := s.char
	s.read()
	for !s.done() && s.char != quote {
		s.write()
		s.read()
	}
	tok.Type = Literal
	tok.Literal = s.literal()
	if s.char == quote {
		s.read()
	} else {
		tok.Type = Invalid
	}
}

func (s *Scanner) scanOperator(tok *Token) {
	tok.Type = Invalid
	switch s.char {
	case amper:
		tok.Type = Concat
	case plus:
		tok.Type = Add
	case minus:
		tok.Type = Sub
	case star:
		tok.Type = Mul
	case slash:
		tok.Type = Div
	case caret:
		tok.Type = Pow
	case langle:
		tok.Type = Lt
		if s.peek() == equal {
			s.read()
			tok.Type = Le
		} else if s.peek() == rangle {
			s.read()
			tok.Type = Ne
		}
	case rangle:
		tok.Type = Gt
		if s.peek() == equal {
			s.read()
			tok.Type = Ge
		}
	case equal:
		tok.Type = Eq
	case colon:
		tok.Type = RangeRef
	default:
	}
	s.read()
}

func (s *Scanner) scanDelimiter(tok *Token) {
	switch s.char {
	case comma:
		tok.Type = Comma
	case lparen:
		tok.Type = BegGrp
	case rparen:
		tok.Type = EndGrp
	default:
		tok.Type = Invalid
		tok.Literal = string(s.char)
	}
	s.read()
}

func (s *Scanner) literal() string {
	return string(s.buf)
}

func (s *Scanner) write() {
	s.buf = append(s.buf, s.char)
}

func (s *Scanner) reset() {
	s.buf = s.buf[:0]
}

func (s *Scanner) read() {
	if s.next >= len(s.input) {
		s.char = 0
		s.pos = len(s.input)
		return
	}
	// a broken encoding decodes to RuneError, which no predicate
	// accepts, so Scan turns it into an Invalid token
	r, n := utf8.DecodeRune(s.input[s.next:])
	s.char, s.pos, s.next = r, s.next, s.next+n
}

func (s *Scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.input[s.next:])
	return r
}

func (s *Scanner) done() bool {
	return s.char == 0
}

func (s *Scanner) skipBlanks() {
	for isBlank(s.char) {
		s.read()
	}
}

const (
	underscore = '_'
	comma      = ','
	rparen     = ')'
	lparen     = '('
	squote     = '\''
	dquote     = '"'
	space      = ' '
	tab        = '\t'
	plus       = '+'
	minus      = '-'
	star       = '*'
	slash      = '/'
	caret      = '^'
	equal      = '='
	langle     = '<'
	rangle     = '>'
	colon      = ':'
	dot        = '.'
	amper      = '&'
	dollar     = '$'
)

func isQuote(c rune) bool {
	return c == squote || c == dquote
}

func isLower(c rune) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c rune) bool {
	return c >= 'A' && c <= 'Z'
}

func isLetter(c rune) bool {
	return isLower(c) || isUpper(c) || c == underscore
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return isLetter(c) || isDigit(c) || c == dollar
}

func isBlank(c rune) bool {
	return c == space || c == tab || c == '\n' || c == '\r'
}

func isDelimiter(c rune) bool {
	return c == lparen || c == rparen || c == comma
}

func isOperator(c rune) bool {
	return c == plus || c == minus || c == slash || c == star ||
		c == langle || c == rangle || c == colon ||
		c == equal || c == caret || c == amper
}

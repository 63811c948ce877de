package formula

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Lakret/cells/layout"
)

// Expr is an immutable parsed formula. String renders the expression
// back to parseable formula text (without the leading '=').
type Expr interface {
	fmt.Stringer
	CloneWithOffset(layout.Position) Expr
}

type binary struct {
	left  Expr
	right Expr
	op    rune
}

func (b binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.left.String(), symbol(b.op), b.right.String())
}

func (b binary) CloneWithOffset(pos layout.Position) Expr {
	x := binary{
		left:  b.left.CloneWithOffset(pos),
		right: b.right.CloneWithOffset(pos),
		op:    b.op,
	}
	return x
}

type unary struct {
	right Expr
	op    rune
}

func (u unary) String() string {
	return fmt.Sprintf("%s%s", symbol(u.op), u.right.String())
}

func (u unary) CloneWithOffset(pos layout.Position) Expr {
	x := unary{
		right: u.right.CloneWithOffset(pos),
		op:    u.op,
	}
	return x
}

type literal struct {
	value string
}

func (i literal) String() string {
	return fmt.Sprintf("\"%s\"", i.value)
}

func (i literal) CloneWithOffset(_ layout.Position) Expr {
	return i
}

type number struct {
	value float64
}

func (n number) String() string {
	return strconv.FormatFloat(n.value, 'f', -1, 64)
}

func (n number) CloneWithOffset(_ layout.Position) Expr {
	return n
}

type boolean struct {
	value bool
}

func (b boolean) String() string {
	return strconv.FormatBool(b.value)
}

func (b boolean) CloneWithOffset(_ layout.Position) Expr {
	return b
}

type identifier struct {
	name string
}

func (i identifier) String() string {
	return i.name
}

func (i identifier) CloneWithOffset(_ layout.Position) Expr {
	return i
}

type call struct {
	ident identifier
	args  []Expr
}

func (c call) String() string {
	var args []string
	for i := range c.args {
		args = append(args, c.args[i].String())
	}
	return fmt.Sprintf("%s(%s)", c.ident.String(), strings.Join(args, ", "))
}

func (c call) CloneWithOffset(pos layout.Position) Expr {
	x := call{
		ident: c.ident,
	}
	for i := range c.args {
		a := c.args[i].CloneWithOffset(pos)
		x.args = append(x.args, a)
	}
	return x
}

type cellAddr struct {
	layout.Position
	AbsCols bool
	AbsLine bool
}

func (a cellAddr) String() string {
	return formatCellAddr(a)
}

// CloneWithOffset shifts relative coordinates by the given offset;
// coordinates pinned with '$' stay where they are.
func (a cellAddr) CloneWithOffset(pos layout.Position) Expr {
	x := a
	if !x.AbsLine {
		x.Line += pos.Line
	}
	if !x.AbsCols {
		x.Column += pos.Column
	}
	return x
}

type rangeAddr struct {
	startAddr cellAddr
	endAddr   cellAddr
}

func (a rangeAddr) String() string {
	return fmt.Sprintf("%s:%s", a.startAddr.String(), a.endAddr.String())
}

func (a rangeAddr) CloneWithOffset(pos layout.Position) Expr {
	x := rangeAddr{
		startAddr: a.startAddr.CloneWithOffset(pos).(cellAddr),
		endAddr:   a.endAddr.CloneWithOffset(pos).(cellAddr),
	}
	return x
}

func (a rangeAddr) bounds() layout.Range {
	rg := layout.NewRange(a.startAddr.Position, a.endAddr.Position)
	return rg.Normalize()
}

func symbol(op rune) string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Concat:
		return "&"
	case Eq:
		return "="
	case Ne:
		return "<>"
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	default:
		return "?"
	}
}

func formatCellAddr(addr cellAddr) string {
	// a clone can shift a relative reference off the sheet; render
	// it as an explicit bad reference so the formula never reparses
	// as something else
	if !addr.Position.Valid() {
		return "#REF!"
	}
	var parts []string
	if addr.AbsCols {
		parts = append(parts, "$")
	}
	parts = append(parts, addr.Position.Addr())
	str := strings.Join(parts, "")
	if addr.AbsLine {
		// the '$' sits between the column letters and the line digits
		ix := strings.IndexFunc(str, func(c rune) bool { return c >= '0' && c <= '9' })
		str = str[:ix] + "$" + str[ix:]
	}
	return str
}

func parseCellAddr(str string) (cellAddr, error) {
	var (
		addr   cellAddr
		offset int
		size   int
	)
	if offset < len(str) && str[offset] == dollar {
		addr.AbsCols = true
		offset++
	}
	addr.Column, size = layout.ParseIndex(str[offset:])
	offset += size
	if size == 0 {
		return addr, fmt.Errorf("malformed reference %q", str)
	}
	if offset < len(str) && str[offset] == dollar {
		addr.AbsLine = true
		offset++
	}
	if offset >= len(str) {
		return addr, fmt.Errorf("malformed reference %q", str)
	}
	line, err := strconv.ParseInt(str[offset:], 10, 64)
	if err != nil || line <= 0 {
		return addr, fmt.Errorf("malformed reference %q", str)
	}
	addr.Line = line
	return addr, nil
}

// isAddrLike reports whether an identifier should be read as a cell
// reference rather than a function name.
func isAddrLike(str string) bool {
	str = strings.ReplaceAll(str, "$", "")
	return layout.IsAddress(str)
}

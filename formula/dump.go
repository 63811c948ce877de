package formula

import (
	"fmt"
	"strings"
)

// DumpExpr renders the shape of an expression tree, mostly useful
// for debugging and tests.
func DumpExpr(expr Expr) string {
	switch e := expr.(type) {
	case number:
		return fmt.Sprintf("number(%s)", e.String())
	case literal:
		return fmt.Sprintf("literal(%s)", e.value)
	case boolean:
		return fmt.Sprintf("boolean(%t)", e.value)
	case identifier:
		return fmt.Sprintf("identifier(%s)", e.name)
	case cellAddr:
		return fmt.Sprintf("cell(%s)", e.String())
	case rangeAddr:
		return fmt.Sprintf("range(%s, %s)", e.startAddr.String(), e.endAddr.String())
	case unary:
		return fmt.Sprintf("unary(%s, %s)", DumpExpr(e.right), symbol(e.op))
	case binary:
		return fmt.Sprintf("binary(%s, %s, %s)", DumpExpr(e.left), DumpExpr(e.right), symbol(e.op))
	case call:
		var args []string
		for i := range e.args {
			args = append(args, DumpExpr(e.args[i]))
		}
		return fmt.Sprintf("call(%s, [%s])", e.ident.name, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("unknown(%T)", expr)
	}
}

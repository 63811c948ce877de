package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/midbel/cli"

	"github.com/Lakret/cells/book"
	"github.com/Lakret/cells/doc"
	"github.com/Lakret/cells/layout"
)

var (
	summary = "cells"
	help    = ""
)

func main() {
	var (
		set  = cli.NewFlagSet("cells")
		root = prepare()
	)
	root.SetSummary(summary)
	root.SetHelp(help)
	if err := set.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			root.Help()
			os.Exit(2)
		}
	}
	err := root.Execute(set.Args())
	if err != nil {
		if s, ok := err.(cli.SuggestionError); ok && len(s.Others) > 0 {
			fmt.Fprintln(os.Stderr, "similar command(s)")
			for _, n := range s.Others {
				fmt.Fprintln(os.Stderr, "-", n)
			}
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func prepare() *cli.CommandTrie {
	root := cli.New()
	root.Register([]string{"print"}, &printCmd)
	root.Register([]string{"eval"}, &evalCmd)
	root.Register([]string{"set"}, &setCmd)
	root.Register([]string{"deps"}, &depsCmd)
	root.Register([]string{"convert"}, &convertCmd)
	return root
}

var printCmd = cli.Command{
	Name:    "print",
	Alias:   []string{"view", "show"},
	Summary: "print the computed values of a workbook",
	Usage:   "print [-w width] [-s sep] [-n] [-r] <file>",
	Handler: &PrintBookCommand{},
}

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate a formula, optionally against a workbook",
	Usage:   "eval [-f file] <formula>",
	Handler: &EvalFormulaCommand{},
}

var setCmd = cli.Command{
	Name:    "set",
	Summary: "apply cell edits to a workbook and report what changed",
	Usage:   "set [-o file] [-q] <file> <address>=<text>...",
	Handler: &SetCellCommand{},
}

var depsCmd = cli.Command{
	Name:    "deps",
	Summary: "inspect the dependencies of workbook cells",
	Usage:   "deps [-o] <file> <address>...",
	Handler: &ShowDepsCommand{},
}

var convertCmd = cli.Command{
	Name:    "convert",
	Summary: "convert a workbook to another format",
	Usage:   "convert -o <outfile> <file>",
	Handler: &ConvertBookCommand{},
}

type PrintBookCommand struct {
	Width int
	Sep   string
	Raw   bool
	Lino  bool
}

func (c PrintBookCommand) Run(args []string) error {
	set := cli.NewFlagSet("print")
	set.IntVar(&c.Width, "w", 12, "column width")
	set.StringVar(&c.Sep, "s", "|", "column separator")
	set.BoolVar(&c.Raw, "r", false, "print raw text instead of values")
	set.BoolVar(&c.Lino, "n", false, "print line numbers")
	if err := set.Parse(args); err != nil {
		return err
	}
	bk, err := doc.Open(set.Arg(0))
	if err != nil {
		return err
	}
	if c.Width <= 0 {
		c.Width = 12
	}
	dim := bk.Dimension()
	for line := int64(1); line <= dim.Lines; line++ {
		if c.Lino {
			fmt.Fprintf(os.Stdout, "%-5d %s", line, c.Sep)
		}
		for col := int64(1); col <= dim.Columns; col++ {
			if col > 1 {
				fmt.Fprint(os.Stdout, c.Sep)
			}
			pos := layout.Position{
				Line:   line,
				Column: col,
			}
			str := bk.Value(pos).String()
			if c.Raw {
				str = bk.Raw(pos)
			}
			fmt.Fprintf(os.Stdout, " %-*s ", c.Width, str)
		}
		fmt.Fprintln(os.Stdout)
	}
	return nil
}

type EvalFormulaCommand struct {
	File string
}

func (c EvalFormulaCommand) Run(args []string) error {
	set := cli.NewFlagSet("eval")
	set.StringVar(&c.File, "f", "", "evaluate against workbook file")
	if err := set.Parse(args); err != nil {
		return err
	}
	bk := book.New()
	if c.File != "" {
		var err error
		if bk, err = doc.Open(c.File); err != nil {
			return err
		}
	}
	val, err := bk.Eval(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, val)
	return nil
}

type SetCellCommand struct {
	OutFile string
	Quiet   bool
}

func (c SetCellCommand) Run(args []string) error {
	set := cli.NewFlagSet("set")
	set.StringVar(&c.OutFile, "o", "", "write result to output file")
	set.BoolVar(&c.Quiet, "q", false, "do not report changed cells")
	if err := set.Parse(args); err != nil {
		return err
	}
	bk, err := doc.Open(set.Arg(0))
	if err != nil {
		return err
	}
	for i := 1; i < set.NArg(); i++ {
		addr, text, ok := strings.Cut(set.Arg(i), "=")
		if !ok || !layout.IsAddress(addr) {
			return fmt.Errorf("%s: expected <address>=<text>", set.Arg(i))
		}
		changes := bk.Set(layout.ParsePosition(addr), text)
		if c.Quiet {
			continue
		}
		for _, ch := range changes {
			fmt.Fprintf(os.Stdout, "%s: %s\n", ch.Position, ch.Value)
		}
	}
	if c.OutFile == "" {
		c.OutFile = set.Arg(0)
	}
	return doc.Save(c.OutFile, bk)
}

type ShowDepsCommand struct {
	Order bool
}

func (c ShowDepsCommand) Run(args []string) error {
	set := cli.NewFlagSet("deps")
	set.BoolVar(&c.Order, "o", false, "print the recomputation order")
	if err := set.Parse(args); err != nil {
		return err
	}
	bk, err := doc.Open(set.Arg(0))
	if err != nil {
		return err
	}
	for i := 1; i < set.NArg(); i++ {
		if !layout.IsAddress(set.Arg(i)) {
			return fmt.Errorf("%s: invalid cell address", set.Arg(i))
		}
		pos := layout.ParsePosition(set.Arg(i))
		fmt.Fprintf(os.Stdout, "%s: reads %s, read by %s\n", pos,
			joinAddrs(bk.Dependencies(pos)), joinAddrs(bk.Dependents(pos)))
		if !c.Order {
			continue
		}
		order, err := bk.Affected(pos)
		if err != nil {
			fmt.Fprintf(os.Stdout, "  %s\n", err)
			continue
		}
		fmt.Fprintf(os.Stdout, "  order: %s\n", joinAddrs(order))
	}
	return nil
}

type ConvertBookCommand struct {
	OutFile string
}

func (c ConvertBookCommand) Run(args []string) error {
	set := cli.NewFlagSet("convert")
	set.StringVar(&c.OutFile, "o", "", "write result to output file")
	if err := set.Parse(args); err != nil {
		return err
	}
	if c.OutFile == "" {
		return fmt.Errorf("missing output file")
	}
	bk, err := doc.Open(set.Arg(0))
	if err != nil {
		return err
	}
	return doc.Save(c.OutFile, bk)
}

func joinAddrs(list []layout.Position) string {
	if len(list) == 0 {
		return "-"
	}
	var parts []string
	for _, pos := range list {
		parts = append(parts, pos.Addr())
	}
	return strings.Join(parts, ", ")
}

// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command existsc type checks programs.
//
// Usage:
//
//	existsc [flags] file...     check each file and print the type of its entry expression
//	existsc [flags] -e expr     check a single program given on the command line
//	existsc [flags] -repl       start an interactive session
//
// With no files, a program is read from standard input, or a session is started when standard input is a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/wdamron/exists"
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/parse"
	"github.com/wdamron/exists/types"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("existsc: ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("existsc", flag.ContinueOnError)
	fset.SetOutput(stderr)
	configPath := fset.String("config", "", "configuration file (default ./"+ConfigFileName+" when present)")
	color := fset.String("color", "", "color diagnostics: auto, always or never")
	keepGoing := fset.Bool("keep-going", false, "report the first error of every declaration")
	dump := fset.Bool("dump", false, "dump the checked expression tree")
	history := fset.String("history", "", "REPL history file")
	expr := fset.String("e", "", "check a program given as an argument")
	repl := fset.Bool("repl", false, "start an interactive session")
	if err := fset.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Print(err)
		return 2
	}
	// Flags override the configuration file:
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "color":
			cfg.Color = *color
		case "keep-going":
			cfg.KeepGoing = *keepGoing
		case "dump":
			cfg.Dump = *dump
		case "history":
			cfg.HistoryFile = *history
		}
	})
	if err := cfg.validate("-color"); err != nil {
		log.Print(err)
		return 2
	}

	d := &driver{cfg: cfg, out: stdout, show: newPalette(stdout, cfg), diag: newPalette(stderr, cfg)}
	switch {
	case *repl:
		return d.repl()
	case *expr != "":
		return d.checkSource("<arg>", *expr)
	case fset.NArg() == 0:
		if isTerminal(stdin) {
			return d.repl()
		}
		src, err := io.ReadAll(stdin)
		if err != nil {
			log.Print(err)
			return 1
		}
		return d.checkSource("<stdin>", string(src))
	}

	status := 0
	for _, path := range fset.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			log.Print(err)
			status = 1
			continue
		}
		if code := d.checkSource(path, string(src)); code != 0 {
			status = code
		}
	}
	return status
}

type driver struct {
	cfg  *Config
	out  io.Writer
	show *palette
	diag *palette
}

// checkSource parses and checks a program, printing its type to out and any errors to the diagnostic stream.
func (d *driver) checkSource(name, src string) int {
	prog, err := parse.ParseProgram(src)
	if err != nil {
		d.diag.errorf("%s:%v", name, err)
		return 1
	}
	ctx := exists.NewChecker()
	var (
		ty   types.Type
		errs []error
	)
	if d.cfg.KeepGoing {
		ty, errs = ctx.CheckProgramAll(prog)
	} else if ty, err = ctx.CheckProgram(prog); err != nil {
		errs = []error{err}
	}
	for _, err := range errs {
		d.reportCheckError(name, err)
	}
	for _, fn := range exists.AnalyzeDependencies(prog).Unused {
		d.diag.notef("%s: warning: %s is never used", name, fn.Name)
	}
	if d.cfg.Dump {
		dumpConfig.Fdump(d.out, prog)
	}
	if ty == nil {
		return 1
	}
	fmt.Fprintf(d.out, "%s: %s\n", name, d.show.typeString(ty))
	if len(errs) > 0 {
		return 1
	}
	return 0
}

func (d *driver) reportCheckError(name string, err error) {
	d.diag.errorf("%s: %v", name, err)
	var te *exists.TypeError
	if errors.As(err, &te) && te.Expr != nil {
		d.diag.notef("  at %s", ast.ExprString(te.Expr))
	}
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

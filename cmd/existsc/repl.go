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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/wdamron/exists"
	"github.com/wdamron/exists/ast"
	"github.com/wdamron/exists/parse"
)

const (
	promptMain = "exists> "
	promptCont = "   ...> "
)

// session holds the declarations entered so far.
type session struct {
	funcs []*exists.FuncDecl
}

// declare checks d against the existing declarations and adds it, replacing any declaration with the same name.
func (s *session) declare(d *exists.FuncDecl) (*exists.Program, error) {
	funcs := make([]*exists.FuncDecl, 0, len(s.funcs)+1)
	for _, f := range s.funcs {
		if f.Name != d.Name {
			funcs = append(funcs, f)
		}
	}
	funcs = append(funcs, d)
	prog := &exists.Program{Funcs: funcs, Entry: &ast.Var{Name: d.Name}}
	if _, err := exists.CheckProgram(prog); err != nil {
		return nil, err
	}
	s.funcs = funcs
	return prog, nil
}

// eval checks e within the declarations of the session.
func (s *session) eval(e ast.Expr) (*exists.Program, error) {
	prog := &exists.Program{Funcs: s.funcs, Entry: e}
	_, err := exists.CheckProgram(prog)
	return prog, err
}

func (d *driver) repl() int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if d.cfg.HistoryFile != "" {
		if f, err := os.Open(d.cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(d.cfg.HistoryFile)
			if err != nil {
				log.Print(err)
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	fmt.Fprintln(d.out, "Type an expression or (define ...) to check it, :help for commands.")
	s := &session{}
	for {
		src, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(d.out)
			return 0
		}
		src = strings.TrimSpace(src)
		if src == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		if strings.HasPrefix(src, ":") {
			if quit := d.command(s, src); quit {
				return 0
			}
			continue
		}
		d.evalSource(s, src)
	}
}

// readInput reads lines until they form complete S-expressions.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			log.Print(err)
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		if _, err := parse.ReadAll(b.String()); parse.IsIncomplete(err) {
			continue
		}
		return b.String(), true
	}
}

func (d *driver) command(s *session, cmd string) (quit bool) {
	switch strings.Fields(cmd)[0] {
	case ":quit", ":q":
		return true
	case ":decls":
		for _, f := range s.funcs {
			fmt.Fprintf(d.out, "%s : %s\n", f.Name, d.show.typeString(f.Signature()))
		}
	case ":deps":
		deps := exists.AnalyzeDependencies(&exists.Program{Funcs: s.funcs})
		for _, group := range deps.Groups {
			names := make([]string, len(group))
			for i, f := range group {
				names[i] = f.Name
			}
			fmt.Fprintln(d.out, strings.Join(names, " "))
		}
	case ":reset":
		s.funcs = nil
	case ":help":
		fmt.Fprintln(d.out, ":decls  list declarations\n:deps   list declarations in dependency order\n:reset  forget declarations\n:quit   exit")
	default:
		d.diag.errorf("unknown command %s; type :help for commands", cmd)
	}
	return false
}

func (d *driver) evalSource(s *session, src string) {
	vals, err := parse.ReadAll(src)
	if err != nil {
		d.diag.errorf("%v", err)
		return
	}
	for _, v := range vals {
		var (
			prog *exists.Program
			err  error
		)
		if v.Head() == "define" {
			decl, perr := parse.ParseDecl(v)
			if perr != nil {
				d.diag.errorf("%v", perr)
				return
			}
			if prog, err = s.declare(decl); err == nil {
				fmt.Fprintf(d.out, "%s : %s\n", decl.Name, d.show.typeString(decl.Signature()))
			}
		} else {
			e, perr := parse.ParseExpr(v)
			if perr != nil {
				d.diag.errorf("%v", perr)
				return
			}
			if prog, err = s.eval(e); err == nil {
				fmt.Fprintln(d.out, d.show.typeString(e.Type()))
			}
		}
		if err != nil {
			d.reportCheckError("error", err)
			return
		}
		if d.cfg.Dump {
			dumpConfig.Fdump(d.out, prog)
		}
	}
}

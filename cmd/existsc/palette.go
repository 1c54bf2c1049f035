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
	"fmt"
	"io"
	"os"

	"github.com/wdamron/exists/types"
)

const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiRed   = "\x1b[31m"
	ansiCyan  = "\x1b[36m"
)

// palette writes diagnostics, colored when enabled.
type palette struct {
	w     io.Writer
	color bool
}

func newPalette(w io.Writer, cfg *Config) *palette {
	p := &palette{w: w}
	if f, ok := w.(*os.File); ok {
		p.color = cfg.UseColor(f)
	} else {
		p.color = cfg.Color == "always"
	}
	return p
}

func (p *palette) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

func (p *palette) errorf(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.paint(ansiRed, fmt.Sprintf(format, args...)))
}

func (p *palette) notef(format string, args ...interface{}) {
	fmt.Fprintln(p.w, p.paint(ansiCyan, fmt.Sprintf(format, args...)))
}

func (p *palette) typeString(t types.Type) string { return p.paint(ansiBold, types.TypeString(t)) }

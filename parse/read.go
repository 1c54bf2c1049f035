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

// Package parse reads S-expressions and converts them into types, expressions and programs.
package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Kind identifies the kind of an S-expression value.
type Kind uint8

const (
	Symbol Kind = iota + 1
	Int
	String
	Bool
	List
)

// Pos is a 1-based position within the source.
type Pos struct {
	Line, Col int
}

// Value is a single S-expression datum.
type Value struct {
	Kind Kind
	Pos  Pos
	// Symbol name or decoded string contents
	Text string
	Int  int64
	Bool bool
	List []*Value
}

// IsSymbol reports whether v is the symbol name.
func (v *Value) IsSymbol(name string) bool { return v.Kind == Symbol && v.Text == name }

// Head returns the leading symbol of a non-empty list, or the empty string.
func (v *Value) Head() string {
	if v.Kind != List || len(v.List) == 0 || v.List[0].Kind != Symbol {
		return ""
	}
	return v.List[0].Text
}

func (v *Value) String() string {
	var sb strings.Builder
	v.write(&sb)
	return sb.String()
}

func (v *Value) write(sb *strings.Builder) {
	switch v.Kind {
	case Symbol:
		sb.WriteString(v.Text)
	case Int:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case String:
		sb.WriteString(strconv.Quote(v.Text))
	case Bool:
		if v.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
	case List:
		sb.WriteByte('(')
		for i, sub := range v.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sub.write(sb)
		}
		sb.WriteByte(')')
	}
}

// ParseError is returned for malformed source text or surface syntax.
type ParseError struct {
	Line, Col int
	Msg       string
	// The source ended within a list or string
	Incomplete bool
}

func (e *ParseError) Error() string { return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg) }

// IsIncomplete reports whether err was caused by source text which ended within a list or string,
// so that more input may complete it.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

func errorAt(pos Pos, format string, args ...interface{}) *ParseError {
	return &ParseError{Line: pos.Line, Col: pos.Col, Msg: fmt.Sprintf(format, args...)}
}

// Read reads exactly one S-expression from src.
func Read(src string) (*Value, error) {
	vals, err := ReadAll(src)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return nil, errorAt(Pos{1, 1}, "empty input")
	case 1:
		return vals[0], nil
	}
	return nil, errorAt(vals[1].Pos, "unexpected trailing expression %s", vals[1])
}

// ReadAll reads every S-expression from src.
//
// Lists are delimited by matching parentheses or brackets; ';' starts a comment which runs to the end of the line.
// #t and #f are booleans; other atoms which are not integers or strings are symbols.
func ReadAll(src string) ([]*Value, error) {
	r := &reader{input: []rune(src), line: 1, col: 1}
	var vals []*Value
	for {
		r.skipSpace()
		if r.peek() == eof {
			return vals, nil
		}
		v, err := r.read()
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

const eof = -1

type reader struct {
	input     []rune
	pos       int
	line, col int
}

func (r *reader) peek() rune {
	if r.pos >= len(r.input) {
		return eof
	}
	return r.input[r.pos]
}

func (r *reader) next() rune {
	ch := r.peek()
	if ch == eof {
		return eof
	}
	r.pos++
	if ch == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return ch
}

func (r *reader) position() Pos { return Pos{r.line, r.col} }

func (r *reader) skipSpace() {
	for {
		switch ch := r.peek(); {
		case ch == ';':
			for ch != '\n' && ch != eof {
				r.next()
				ch = r.peek()
			}
		case ch != eof && unicode.IsSpace(ch):
			r.next()
		default:
			return
		}
	}
}

func isDelimiter(ch rune) bool {
	switch ch {
	case eof, '(', ')', '[', ']', '"', ';':
		return true
	}
	return unicode.IsSpace(ch)
}

func (r *reader) read() (*Value, error) {
	r.skipSpace()
	pos := r.position()
	switch ch := r.peek(); ch {
	case eof:
		return nil, errorAt(pos, "unexpected end of input")
	case '(', '[':
		r.next()
		closing := ')'
		if ch == '[' {
			closing = ']'
		}
		list := &Value{Kind: List, Pos: pos}
		for {
			r.skipSpace()
			switch c := r.peek(); c {
			case eof:
				err := errorAt(pos, "unclosed list")
				err.Incomplete = true
				return nil, err
			case closing:
				r.next()
				return list, nil
			case ')', ']':
				return nil, errorAt(r.position(), "mismatched %q", c)
			}
			v, err := r.read()
			if err != nil {
				return nil, err
			}
			list.List = append(list.List, v)
		}
	case ')', ']':
		return nil, errorAt(pos, "unexpected %q", ch)
	case '"':
		return r.readString(pos)
	}
	return r.readAtom(pos)
}

func (r *reader) readString(pos Pos) (*Value, error) {
	var raw strings.Builder
	raw.WriteRune(r.next())
	for {
		ch := r.next()
		switch ch {
		case eof:
			err := errorAt(pos, "unterminated string")
			err.Incomplete = true
			return nil, err
		case '\\':
			raw.WriteRune(ch)
			if esc := r.next(); esc != eof {
				raw.WriteRune(esc)
			}
			continue
		case '\n':
			raw.WriteString("\\n")
			continue
		}
		raw.WriteRune(ch)
		if ch == '"' {
			break
		}
	}
	s, err := strconv.Unquote(raw.String())
	if err != nil {
		return nil, errorAt(pos, "invalid string literal %s", raw.String())
	}
	return &Value{Kind: String, Pos: pos, Text: s}, nil
}

func (r *reader) readAtom(pos Pos) (*Value, error) {
	start := r.pos
	for !isDelimiter(r.peek()) {
		r.next()
	}
	text := string(r.input[start:r.pos])
	switch text {
	case "#t":
		return &Value{Kind: Bool, Pos: pos, Bool: true}, nil
	case "#f":
		return &Value{Kind: Bool, Pos: pos, Bool: false}, nil
	}
	if looksNumeric(text) {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, errorAt(pos, "invalid number %s (must be a 64-bit integer)", text)
		}
		return &Value{Kind: Int, Pos: pos, Int: n}, nil
	}
	return &Value{Kind: Symbol, Pos: pos, Text: text}, nil
}

func looksNumeric(text string) bool {
	if text == "" {
		return false
	}
	if text[0] == '-' || text[0] == '+' {
		text = text[1:]
	}
	return text != "" && text[0] >= '0' && text[0] <= '9'
}

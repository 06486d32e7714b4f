/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package parser turns a lexer.Token stream into value.Value trees per
// spec.md §4.E's grammar. It is the generalized successor of the
// teacher's inline recursive-descent reader (memcp/scm/parser.go):
// same shape (a cursor over tokens, one read function per grammar
// production) but reading into the sealed value.Value sum type instead
// of the teacher's Scmer, and accepting '[' ']' as well as '(' ')'.
package parser

import (
	"fmt"

	"github.com/launix-de/nada/internal/lexer"
	"github.com/launix-de/nada/internal/rational"
	"github.com/launix-de/nada/internal/value"
)

// reader walks a fixed token slice with a single cursor.
type reader struct {
	toks []lexer.Token
	pos  int
}

func (r *reader) peek() (lexer.Token, bool) {
	if r.pos >= len(r.toks) {
		return lexer.Token{}, false
	}
	return r.toks[r.pos], true
}

func (r *reader) next() (lexer.Token, bool) {
	t, ok := r.peek()
	if ok {
		r.pos++
	}
	return t, ok
}

// ParseAll tokenizes and reads every top-level expression in src,
// returning them in order. Used by file loading and multi-expression
// REPL input.
func ParseAll(src string) ([]value.Value, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks}
	var out []value.Value
	for {
		if _, ok := r.peek(); !ok {
			return out, nil
		}
		v, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

// ParseOne tokenizes src and reads exactly one expression, ignoring
// any trailing tokens. Used by the `read-from-string` builtin.
func ParseOne(src string) (value.Value, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	r := &reader{toks: toks}
	return r.readExpr()
}

func (r *reader) readExpr() (value.Value, error) {
	tok, ok := r.next()
	if !ok {
		return nil, &lexer.SyntaxError{Pos: -1, Message: "unexpected end of input"}
	}
	switch tok.Kind {
	case lexer.Quote:
		inner, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		return value.FromSlice([]value.Value{value.Sym("quote"), inner}), nil
	case lexer.LParen:
		return r.readList(lexer.RParen)
	case lexer.LBracket:
		return r.readList(lexer.RBracket)
	case lexer.RParen, lexer.RBracket:
		return nil, &lexer.SyntaxError{Pos: tok.Pos, Message: "unexpected closing bracket"}
	case lexer.Str:
		return value.Str(tok.Text), nil
	case lexer.Atom:
		return atomValue(tok.Text), nil
	default:
		return nil, &lexer.SyntaxError{Pos: tok.Pos, Message: fmt.Sprintf("unexpected token %q", tok.Text)}
	}
}

// readList reads listbody per §4.E: `ε | expr listbody | expr . expr`,
// where the dotted form is only legal directly before the closer.
// close identifies which bracket kind must terminate this list; the
// opener that led here may have been of either kind (they nest freely
// and need not match each other).
func (r *reader) readList(close lexer.TokenKind) (value.Value, error) {
	var items []value.Value
	var tail value.Value = value.Nil{}
	for {
		tok, ok := r.peek()
		if !ok {
			return nil, &lexer.SyntaxError{Pos: -1, Message: "unexpected end of input in list"}
		}
		if tok.Kind == lexer.RParen || tok.Kind == lexer.RBracket {
			if tok.Kind != close {
				return nil, &lexer.SyntaxError{Pos: tok.Pos, Message: "mismatched closing bracket"}
			}
			r.pos++
			break
		}
		if tok.Kind == lexer.Atom && tok.Text == "." {
			r.pos++
			dotted, err := r.readExpr()
			if err != nil {
				return nil, err
			}
			tail = dotted
			closer, ok := r.next()
			if !ok || (closer.Kind != lexer.RParen && closer.Kind != lexer.RBracket) {
				return nil, &lexer.SyntaxError{Pos: tok.Pos, Message: "expected closing bracket after dotted tail"}
			}
			if closer.Kind != close {
				return nil, &lexer.SyntaxError{Pos: closer.Pos, Message: "mismatched closing bracket"}
			}
			break
		}
		item, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	out := tail
	for i := len(items) - 1; i >= 0; i-- {
		out = value.Pair{Car: items[i], Cdr: out}
	}
	return out, nil
}

// atomValue classifies a bare atom token into #t/#f, a number literal,
// or a symbol, per §4.E's atom production.
func atomValue(text string) value.Value {
	switch text {
	case "#t":
		return value.Bool(true)
	case "#f":
		return value.Bool(false)
	}
	if n, err := rational.Parse(text); err == nil {
		return value.Num{R: n}
	}
	return value.Sym(text)
}

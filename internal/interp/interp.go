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

// Package interp ties the environment, error channel and evaluator
// into one top-level object: the Interpreter. It owns the global Env
// and the *errs.Context every Eval call threads through, and
// implements the multi-expression driver spec.md §7 calls
// parse-and-eval-each: run expressions in sequence, and between each,
// check-and-consume the error channel, converting a set error into a
// first-class Err and short-circuiting the remaining source.
package interp

import (
	"github.com/launix-de/nada/internal/builtins"
	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/eval"
	"github.com/launix-de/nada/internal/parser"
	"github.com/launix-de/nada/internal/value"
)

// Interpreter is one top-level evaluation session: a global frame plus
// the error channel shared across every Eval call it makes. Not safe
// for concurrent use (spec.md §5: exactly one in-flight evaluation at
// a time).
type Interpreter struct {
	Global *env.Env
	Ctx    *errs.Context
}

// New creates an Interpreter with the full standard library installed.
func New() *Interpreter {
	return &Interpreter{
		Global: builtins.Register(),
		Ctx:    errs.NewContext(),
	}
}

// SetSink installs a pluggable error sink (e.g. for a REPL or a
// Jupyter kernel that wants to capture error text instead of writing
// to stderr).
func (it *Interpreter) SetSink(s errs.Sink) {
	it.Ctx.SetSink(s)
}

// SetOutputLimit installs the -max-output cap (internal/config) that
// `display` enforces via errs.Context.AccountOutput.
func (it *Interpreter) SetOutputLimit(bytes int64) {
	it.Ctx.SetOutputLimit(bytes)
}

// EvalSource parses src into its top-level expressions and runs
// EvalAll over them.
func (it *Interpreter) EvalSource(src string) value.Value {
	exprs, err := parser.ParseAll(src)
	if err != nil {
		it.Ctx.Report(errs.Syntax, err.Error())
		return value.Err(err.Error())
	}
	return it.EvalAll(exprs)
}

// EvalAll is the multi-expression driver of §7: evaluate each
// expression in turn against the global frame; after each, consume
// the error channel -- if a failure was reported (even though the
// expression itself returned a normal value), convert it to a
// first-class Err and stop early.
func (it *Interpreter) EvalAll(exprs []value.Value) value.Value {
	var result value.Value = value.Nil{}
	for _, x := range exprs {
		result = eval.Eval(x, it.Global, it.Ctx)
		if _, msg, failed := it.Ctx.CheckAndConsume(); failed {
			return value.Err(msg)
		}
	}
	return result
}

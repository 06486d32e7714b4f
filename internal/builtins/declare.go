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

// Package builtins implements the standard environment of spec.md
// §4.G/§6: every builtin enumerated in the builtin-surface table,
// registered into a fresh global Env by Register. The registration
// idiom -- a Declaration carrying a name, one-line description, arity
// bounds and the Go function, fed through a single declare helper --
// is the teacher's own (memcp/declare.go's Declare(&Globalenv, &Declaration{...})),
// generalized from Scmer/variadic-Go-func to the sealed value.Value sum
// type and this interpreter's explicit (args, env, ctx) builtin shape.
//
// Unlike the teacher, which calls Declare(&Globalenv, ...) exactly
// once per builtin from package init() before any concurrency starts,
// this interpreter's Register() runs once per Interpreter -- once per
// incoming connection in internal/jupyter, from concurrent goroutines.
// The declaration table therefore lives on a per-call *Registry
// instead of a shared package-level global, so two sessions never
// race on it and the table never accumulates duplicate entries across
// the life of the process.
package builtins

import (
	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/value"
)

// Declaration documents one builtin for env-describe/help-style
// introspection, in addition to installing it.
type Declaration struct {
	Name    string
	Desc    string
	MinArgs int
	MaxArgs int // -1 means unbounded
	Fn      func(args []value.Value, e value.Environment, ctx *errs.Context) value.Value
}

// Registry collects every Declaration installed during one Register
// call, in registration order. It is private to that call: each
// Interpreter (internal/interp) or jupyter Session gets its own, so
// concurrent Register() calls never share mutable state.
type Registry struct {
	list   []*Declaration
	byName map[string]*Declaration
}

func newRegistry() *Registry {
	return &Registry{byName: map[string]*Declaration{}}
}

// declare installs def's Fn into g under def.Name, wrapping it with an
// arity check shared by every builtin so individual Fn bodies don't
// each re-derive "wrong number of arguments", and records def in this
// registry for later introspection.
func (r *Registry) declare(g *env.Env, def *Declaration) {
	r.list = append(r.list, def)
	r.byName[def.Name] = def
	fn := def.Fn
	min, max := def.MinArgs, def.MaxArgs
	name := def.Name
	g.Set(def.Name, value.Builtin{
		Name: name,
		Fn: func(args []value.Value, e value.Environment, ctx *errs.Context) value.Value {
			if len(args) < min || (max >= 0 && len(args) > max) {
				if ctx != nil {
					ctx.Report(errs.InvalidArgument, name+": wrong number of arguments")
				}
				return value.Nil{}
			}
			return fn(args, e, ctx)
		},
	})
}

// Declarations returns every registered Declaration in registration
// order, used by env-describe.
func (r *Registry) Declarations() []*Declaration {
	out := make([]*Declaration, len(r.list))
	copy(out, r.list)
	return out
}

// Lookup returns the Declaration for name, if one was registered.
func (r *Registry) Lookup(name string) (*Declaration, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Register installs the complete standard library into a fresh global
// frame and returns it, ready for top-level evaluation.
func Register() *env.Env {
	g := env.New(nil)
	reg := newRegistry()
	registerArithmetic(g, reg)
	registerComparison(g, reg)
	registerLogic(g, reg)
	registerPredicates(g, reg)
	registerList(g, reg)
	registerStrings(g, reg)
	registerIO(g, reg)
	registerMeta(g, reg)
	return g
}

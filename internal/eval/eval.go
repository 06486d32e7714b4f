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

// Package eval implements the recursive evaluator of spec.md §4.F:
// special-form dispatch, closure application and the tail-form
// trampoline. The control flow is the teacher's own (memcp/scm.go's
// Eval): a `restart:` goto label standing in for Go's missing tail
// calls, so that `if`/`cond`/`begin`/`let`/closure-body tail positions
// reuse the same stack frame instead of recursing. This implementation
// generalizes that trampoline from the teacher's untyped Scmer/Proc
// pair to the sealed value.Value sum type and the full special-form
// set §4.F names (quote, define, undef, lambda, if, cond, let/named
// let, begin, and, or, set!).
package eval

import (
	"fmt"

	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/value"
)

// Eval evaluates expr in e, reporting failures on ctx (which may be
// nil to silence reporting entirely, e.g. in tests that only care
// about the resulting Value).
func Eval(expr value.Value, e *env.Env, ctx *errs.Context) value.Value {
restart:
	switch x := expr.(type) {
	case value.Nil, value.Bool, value.Num, value.Str, value.Err, value.Builtin, value.Closure:
		return value.DeepCopy(x)
	case value.Sym:
		v, ok := e.Get(string(x), ctx != nil && ctx.SilentLookup(), ctx)
		if !ok {
			return value.Nil{}
		}
		return v
	case value.Pair:
		if sym, ok := x.Car.(value.Sym); ok {
			switch sym {
			case "quote":
				arg, _ := value.Car(x.Cdr)
				return value.DeepCopy(arg)
			case "define":
				return evalDefine(x.Cdr, e, ctx)
			case "undef":
				return evalUndef(x.Cdr, e, ctx)
			case "lambda":
				params, _ := value.Car(x.Cdr)
				body, _ := value.Cdr(x.Cdr)
				return value.Closure{Params: value.DeepCopy(params), Body: value.DeepCopy(body), Env: e}
			case "if":
				cond, _ := value.Car(x.Cdr)
				rest, _ := value.Cdr(x.Cdr)
				thenE, _ := value.Car(rest)
				elseRest, _ := value.Cdr(rest)
				if value.ToBool(Eval(cond, e, ctx)) {
					expr = thenE
					goto restart
				}
				if elseE, ok := value.Car(elseRest); ok {
					expr = elseE
					goto restart
				}
				return value.Nil{}
			case "cond":
				next, matched := evalCondSelect(x.Cdr, e, ctx)
				if !matched {
					return value.Nil{}
				}
				expr = next
				goto restart
			case "let":
				newExpr, newEnv, result, isTail := evalLet(x.Cdr, e, ctx)
				if !isTail {
					return result
				}
				expr, e = newExpr, newEnv
				goto restart
			case "begin":
				newExpr, newEnv, result, isTail := evalSequence(x.Cdr, e, ctx)
				if !isTail {
					return result
				}
				expr, e = newExpr, newEnv
				goto restart
			case "and":
				items := value.ToSlice(x.Cdr)
				if len(items) == 0 {
					return value.Bool(true)
				}
				for _, it := range items[:len(items)-1] {
					v := Eval(it, e, ctx)
					if !value.ToBool(v) {
						return v
					}
				}
				expr = items[len(items)-1]
				goto restart
			case "or":
				items := value.ToSlice(x.Cdr)
				if len(items) == 0 {
					return value.Bool(false)
				}
				for _, it := range items[:len(items)-1] {
					v := Eval(it, e, ctx)
					if value.ToBool(v) {
						return v
					}
				}
				expr = items[len(items)-1]
				goto restart
			case "set!":
				name, _ := value.Car(x.Cdr)
				rest, _ := value.Cdr(x.Cdr)
				valExpr, _ := value.Car(rest)
				n, ok := name.(value.Sym)
				if !ok {
					report(ctx, errs.InvalidArgument, "set!: first argument must be a symbol")
					return value.Nil{}
				}
				v := Eval(valExpr, e, ctx)
				e.SetBang(string(n), v, ctx)
				return v
			}
		}
		// ordinary application: evaluate operator and every operand,
		// then either tail into a closure body or dispatch to Apply.
		operator := Eval(x.Car, e, ctx)
		args := evalArgs(x.Cdr, e, ctx)
		switch f := operator.(type) {
		case value.Builtin:
			return f.Fn(args, e, ctx)
		case value.Closure:
			frame, body, err := bindClosureFrame(f, args, ctx)
			if err != "" {
				report(ctx, errs.InvalidArgument, err)
				return value.Nil{}
			}
			items := value.ToSlice(body)
			if len(items) == 0 {
				return value.Nil{}
			}
			for _, it := range items[:len(items)-1] {
				Eval(it, frame, ctx)
			}
			expr, e = items[len(items)-1], frame
			goto restart
		default:
			report(ctx, errs.InvalidArgument, fmt.Sprintf("not callable: %s", value.Print(operator)))
			return value.Nil{}
		}
	default:
		return value.Nil{}
	}
}

// Apply invokes a callable with already-evaluated arguments, per the
// `apply` builtin contract in §4.F: builtins receive args directly,
// closures bind them as if called normally (no re-evaluation).
func Apply(f value.Value, args []value.Value, ctx *errs.Context) value.Value {
	switch fn := f.(type) {
	case value.Builtin:
		return fn.Fn(args, nil, ctx)
	case value.Closure:
		frame, body, err := bindClosureFrame(fn, args, ctx)
		if err != "" {
			report(ctx, errs.InvalidArgument, err)
			return value.Nil{}
		}
		items := value.ToSlice(body)
		var result value.Value = value.Nil{}
		for _, it := range items {
			result = Eval(it, frame, ctx)
		}
		return value.DeepCopy(result)
	default:
		report(ctx, errs.InvalidArgument, fmt.Sprintf("not callable: %s", value.Print(f)))
		return value.Nil{}
	}
}

func report(ctx *errs.Context, kind errs.Kind, msg string) {
	if ctx != nil {
		ctx.Report(kind, msg)
	}
}

func evalArgs(list value.Value, e *env.Env, ctx *errs.Context) []value.Value {
	items := value.ToSlice(list)
	out := make([]value.Value, len(items))
	for i, it := range items {
		out[i] = Eval(it, e, ctx)
	}
	return out
}

// bindClosureFrame constructs the fresh call frame for applying f to
// already-evaluated args, per the variadic parameter rules of §4.F's
// lambda description: Params is a bare symbol (collect all args), a
// proper list of symbols, or a dotted list (rest parameter). Returns a
// non-empty err string on arity mismatch instead of reporting directly
// so both Eval's tail path and Apply can report identically.
func bindClosureFrame(f value.Closure, args []value.Value, ctx *errs.Context) (*env.Env, value.Value, string) {
	parent, ok := f.Env.(*env.Env)
	if !ok {
		return nil, nil, "closure has no usable environment"
	}
	frame := parent.Extend()
	switch p := f.Params.(type) {
	case value.Sym:
		frame.Set(string(p), value.FromSlice(args))
		return frame, f.Body, ""
	default:
		names, rest, properOK := paramNames(p)
		if !properOK {
			return nil, nil, "lambda: malformed parameter list"
		}
		if rest == "" {
			if len(args) != len(names) {
				return nil, nil, fmt.Sprintf("arity mismatch: want %d args, got %d", len(names), len(args))
			}
		} else if len(args) < len(names) {
			return nil, nil, fmt.Sprintf("arity mismatch: want at least %d args, got %d", len(names), len(args))
		}
		for i, n := range names {
			frame.Set(n, args[i])
		}
		if rest != "" {
			frame.Set(rest, value.FromSlice(args[len(names):]))
		}
		return frame, f.Body, ""
	}
}

// paramNames walks a parameter list of symbols, possibly ending in a
// dotted rest symbol. ok is false if any element (other than the
// dotted tail) is not a symbol.
func paramNames(params value.Value) (names []string, rest string, ok bool) {
	v := params
	for {
		switch t := v.(type) {
		case value.Nil:
			return names, "", true
		case value.Sym:
			return names, string(t), true
		case value.Pair:
			sym, isSym := t.Car.(value.Sym)
			if !isSym {
				return nil, "", false
			}
			names = append(names, string(sym))
			v = t.Cdr
		default:
			return nil, "", false
		}
	}
}

// evalDefine implements `define SYM EXPR` and the
// `define (FN P…) BODY…` desugaring to `define FN (lambda (P…) BODY…)`.
func evalDefine(rest value.Value, e *env.Env, ctx *errs.Context) value.Value {
	head, _ := value.Car(rest)
	tail, _ := value.Cdr(rest)
	if sym, ok := head.(value.Sym); ok {
		valExpr, _ := value.Car(tail)
		v := Eval(valExpr, e, ctx)
		e.Set(string(sym), v)
		return sym
	}
	// (define (FN P…) BODY…)
	sig, ok := head.(value.Pair)
	if !ok {
		report(ctx, errs.InvalidArgument, "define: malformed form")
		return value.Nil{}
	}
	name, isSym := sig.Car.(value.Sym)
	if !isSym {
		report(ctx, errs.InvalidArgument, "define: function name must be a symbol")
		return value.Nil{}
	}
	closure := value.Closure{Params: value.DeepCopy(sig.Cdr), Body: value.DeepCopy(tail), Env: e}
	e.Set(string(name), closure)
	return name
}

// evalUndef implements `undef SYM` / `undef (quote SYM)`.
func evalUndef(rest value.Value, e *env.Env, ctx *errs.Context) value.Value {
	head, _ := value.Car(rest)
	var name value.Sym
	switch h := head.(type) {
	case value.Sym:
		name = h
	case value.Pair:
		quoted, _ := value.Car(h.Cdr)
		s, ok := quoted.(value.Sym)
		if !ok {
			report(ctx, errs.InvalidArgument, "undef: expected a symbol")
			return value.Bool(false)
		}
		name = s
	default:
		report(ctx, errs.InvalidArgument, "undef: expected a symbol")
		return value.Bool(false)
	}
	e.Remove(string(name))
	return value.Bool(true)
}

// evalCondSelect scans cond clauses and returns the tail expression of
// the first matching clause's body, evaluating the TEST of every
// clause up to and including the match. A matching clause with an
// empty body yields the expression #t. matched is false if no clause
// matched (caller should return Nil).
func evalCondSelect(clauses value.Value, e *env.Env, ctx *errs.Context) (value.Value, bool) {
	for _, clause := range value.ToSlice(clauses) {
		test, _ := value.Car(clause)
		body, _ := value.Cdr(clause)
		isElse := false
		if s, ok := test.(value.Sym); ok && s == "else" {
			isElse = true
		}
		if isElse || value.ToBool(Eval(test, e, ctx)) {
			items := value.ToSlice(body)
			if len(items) == 0 {
				return value.Bool(true), true
			}
			for _, it := range items[:len(items)-1] {
				Eval(it, e, ctx)
			}
			return items[len(items)-1], true
		}
	}
	return value.Nil{}, false
}

// evalSequence is the body walk of `begin` and `let`: evaluate every
// expression but the last, and hand the
// last back to the caller's trampoline instead of recursing into it.
func evalSequence(body value.Value, e *env.Env, ctx *errs.Context) (value.Value, *env.Env, value.Value, bool) {
	items := value.ToSlice(body)
	if len(items) == 0 {
		return nil, nil, value.Nil{}, false
	}
	for _, it := range items[:len(items)-1] {
		Eval(it, e, ctx)
	}
	return items[len(items)-1], e, nil, true
}

// evalLet implements both plain `let` and named `let`. For named let,
// per §4.C, the bound closure captures the fresh child frame and is
// also placed inside that very frame -- the closure<->environment
// cycle the host's garbage collector reclaims (see internal/env's
// package doc).
func evalLet(rest value.Value, e *env.Env, ctx *errs.Context) (value.Value, *env.Env, value.Value, bool) {
	head, _ := value.Car(rest)
	tail, _ := value.Cdr(rest)

	var loopName value.Sym
	named := false
	bindingsExpr := head
	body := tail
	if sym, ok := head.(value.Sym); ok {
		named = true
		loopName = sym
		bindingsExpr, _ = value.Car(tail)
		body, _ = value.Cdr(tail)
	}

	var names []string
	var vals []value.Value
	for _, b := range value.ToSlice(bindingsExpr) {
		v, _ := value.Car(b)
		n, ok := v.(value.Sym)
		if !ok {
			report(ctx, errs.InvalidArgument, "let: binding name must be a symbol")
			return nil, nil, value.Nil{}, false
		}
		rest, _ := value.Cdr(b)
		initExpr, _ := value.Car(rest)
		names = append(names, string(n))
		vals = append(vals, Eval(initExpr, e, ctx))
	}

	child := e.Extend()
	for i, n := range names {
		child.Set(n, vals[i])
	}

	if named {
		params := value.FromSlice(symValues(names))
		loop := value.Closure{Params: params, Body: value.DeepCopy(body), Env: child}
		child.Set(string(loopName), loop)
	}

	return evalSequence(body, child, ctx)
}

func symValues(names []string) []value.Value {
	out := make([]value.Value, len(names))
	for i, n := range names {
		out[i] = value.Sym(n)
	}
	return out
}

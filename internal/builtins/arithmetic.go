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
package builtins

import (
	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/rational"
	"github.com/launix-de/nada/internal/value"
)

func registerArithmetic(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"+", "sum of one or more numbers", 1, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		acc, ok := asNum(ctx, "+", a[0])
		if !ok {
			return value.Nil{}
		}
		for _, x := range a[1:] {
			n, ok := asNum(ctx, "+", x)
			if !ok {
				return value.Nil{}
			}
			acc = acc.Add(n)
		}
		return value.Num{R: acc}
	}})
	reg.declare(g, &Declaration{"-", "subtract, or negate a single argument", 1, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		acc, ok := asNum(ctx, "-", a[0])
		if !ok {
			return value.Nil{}
		}
		if len(a) == 1 {
			return value.Num{R: acc.Neg()}
		}
		for _, x := range a[1:] {
			n, ok := asNum(ctx, "-", x)
			if !ok {
				return value.Nil{}
			}
			acc = acc.Sub(n)
		}
		return value.Num{R: acc}
	}})
	reg.declare(g, &Declaration{"*", "product of one or more numbers", 1, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		acc, ok := asNum(ctx, "*", a[0])
		if !ok {
			return value.Nil{}
		}
		for _, x := range a[1:] {
			n, ok := asNum(ctx, "*", x)
			if !ok {
				return value.Nil{}
			}
			acc = acc.Mul(n)
		}
		return value.Num{R: acc}
	}})
	reg.declare(g, &Declaration{"/", "divide left-to-right", 1, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		acc, ok := asNum(ctx, "/", a[0])
		if !ok {
			return value.Nil{}
		}
		if len(a) == 1 {
			one := rational.FromInt64(1)
			res, err := one.Div(acc)
			if err != nil {
				ctx.Report(errs.DivisionByZero, "/: division by zero")
				return value.NewInt(0)
			}
			return value.Num{R: res}
		}
		for _, x := range a[1:] {
			n, ok := asNum(ctx, "/", x)
			if !ok {
				return value.Nil{}
			}
			res, err := acc.Div(n)
			if err != nil {
				ctx.Report(errs.DivisionByZero, "/: division by zero")
				return value.NewInt(0)
			}
			acc = res
		}
		return value.Num{R: acc}
	}})
	reg.declare(g, &Declaration{"%", "truncated remainder (alias for remainder)", 2, 2, remainderFn})
	reg.declare(g, &Declaration{"remainder", "truncated remainder, sign follows the dividend", 2, 2, remainderFn})
	reg.declare(g, &Declaration{"modulo", "floored modulo, sign follows the divisor", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		x, ok1 := asNum(ctx, "modulo", a[0])
		y, ok2 := asNum(ctx, "modulo", a[1])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		r, err := x.Modulo(y)
		if err != nil {
			ctx.Report(errs.DivisionByZero, "modulo: division by zero")
			return value.NewInt(0)
		}
		return value.Num{R: r}
	}})
	reg.declare(g, &Declaration{"expt", "exponentiation, integer exponent only", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		base, ok := asNum(ctx, "expt", a[0])
		if !ok {
			return value.Nil{}
		}
		exp, ok := asInt(ctx, "expt", a[1])
		if !ok {
			return value.Nil{}
		}
		r, err := base.Pow(exp)
		if err != nil {
			invalidArg(ctx, "expt", err.Error())
			return value.NewInt(0)
		}
		return value.Num{R: r}
	}})
	reg.declare(g, &Declaration{"numerator", "numerator of a rational in lowest terms", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "numerator", a[0])
		if !ok {
			return value.Nil{}
		}
		r, _ := rational.Parse(n.NumeratorString())
		return value.Num{R: r}
	}})
	reg.declare(g, &Declaration{"denominator", "denominator of a rational in lowest terms", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "denominator", a[0])
		if !ok {
			return value.Nil{}
		}
		r, _ := rational.Parse(n.DenominatorString())
		return value.Num{R: r}
	}})
	reg.declare(g, &Declaration{"sign", "-1, 0 or 1", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "sign", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.NewInt(int64(n.Sign()))
	}})
	reg.declare(g, &Declaration{"factor", "prime factorization as a list of (prime . exponent) pairs", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "factor", a[0])
		if !ok {
			return value.Nil{}
		}
		factors := n.Factor()
		out := make([]value.Value, len(factors))
		for i, f := range factors {
			out[i] = value.Cons(value.Num{R: f.Prime}, value.NewInt(int64(f.Exponent)))
		}
		return value.FromSlice(out)
	}})
}

func remainderFn(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
	x, ok1 := asNum(ctx, "remainder", a[0])
	y, ok2 := asNum(ctx, "remainder", a[1])
	if !ok1 || !ok2 {
		return value.Nil{}
	}
	r, err := x.Remainder(y)
	if err != nil {
		ctx.Report(errs.DivisionByZero, "remainder: division by zero")
		return value.NewInt(0)
	}
	return value.Num{R: r}
}

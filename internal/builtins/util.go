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
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/rational"
	"github.com/launix-de/nada/internal/value"
)

// typeErr reports a TypeError naming the offending builtin and returns
// a benign Nil, per §7's "reported; builtin returns benign value".
func typeErr(ctx *errs.Context, who, msg string) value.Value {
	if ctx != nil {
		ctx.Report(errs.TypeError, who+": "+msg)
	}
	return value.Nil{}
}

func invalidArg(ctx *errs.Context, who, msg string) value.Value {
	if ctx != nil {
		ctx.Report(errs.InvalidArgument, who+": "+msg)
	}
	return value.Nil{}
}

func asNum(ctx *errs.Context, who string, v value.Value) (rational.Rational, bool) {
	n, ok := v.(value.Num)
	if !ok {
		typeErr(ctx, who, "expected a number, got "+value.TypeName(v))
		return rational.Zero(), false
	}
	return n.R, true
}

func asStr(ctx *errs.Context, who string, v value.Value) (string, bool) {
	s, ok := v.(value.Str)
	if !ok {
		typeErr(ctx, who, "expected a string, got "+value.TypeName(v))
		return "", false
	}
	return string(s), true
}

func asSym(ctx *errs.Context, who string, v value.Value) (string, bool) {
	s, ok := v.(value.Sym)
	if !ok {
		typeErr(ctx, who, "expected a symbol, got "+value.TypeName(v))
		return "", false
	}
	return string(s), true
}

func asInt(ctx *errs.Context, who string, v value.Value) (int64, bool) {
	r, ok := asNum(ctx, who, v)
	if !ok {
		return 0, false
	}
	i, ok := r.Int64()
	if !ok {
		invalidArg(ctx, who, "expected an integer value")
		return 0, false
	}
	return i, true
}

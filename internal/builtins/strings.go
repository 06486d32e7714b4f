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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/lexer"
	"github.com/launix-de/nada/internal/parser"
	"github.com/launix-de/nada/internal/rational"
	"github.com/launix-de/nada/internal/value"
)

// upper/lower are locale-aware case mappers (golang.org/x/text/cases);
// byte-range toUpper/toLower from strings would mishandle anything
// outside ASCII, which the source's own string functions never had to
// worry about but a UTF-8-clean reimplementation should.
var upper = cases.Upper(language.Und)
var lower = cases.Lower(language.Und)

func registerStrings(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"string-length", "number of bytes in a string", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "string-length", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.NewInt(int64(len(s)))
	}})
	reg.declare(g, &Declaration{"substring", "byte-range slice [start, end)", 3, 3, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "substring", a[0])
		if !ok {
			return value.Nil{}
		}
		start, ok1 := asInt(ctx, "substring", a[1])
		end, ok2 := asInt(ctx, "substring", a[2])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		if start < 0 || end > int64(len(s)) || start > end {
			return invalidArg(ctx, "substring", "index out of range")
		}
		return value.Str(s[start:end])
	}})
	reg.declare(g, &Declaration{"string-split", "split on a separator string", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok1 := asStr(ctx, "string-split", a[0])
		sep, ok2 := asStr(ctx, "string-split", a[1])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		parts := strings.Split(s, sep)
		out := make([]value.Value, len(parts))
		for i, p := range parts {
			out[i] = value.Str(p)
		}
		return value.FromSlice(out)
	}})
	reg.declare(g, &Declaration{"string-join", "join a list of strings with a separator", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		sep, ok := asStr(ctx, "string-join", a[1])
		if !ok {
			return value.Nil{}
		}
		items := value.ToSlice(a[0])
		parts := make([]string, len(items))
		for i, it := range items {
			s, ok := asStr(ctx, "string-join", it)
			if !ok {
				return value.Nil{}
			}
			parts[i] = s
		}
		return value.Str(strings.Join(parts, sep))
	}})
	reg.declare(g, &Declaration{"string-upcase", "locale-aware uppercase", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "string-upcase", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.Str(upper.String(s))
	}})
	reg.declare(g, &Declaration{"string-downcase", "locale-aware lowercase", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "string-downcase", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.Str(lower.String(s))
	}})
	reg.declare(g, &Declaration{"string->number", "parse a string literal as an exact rational", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "string->number", a[0])
		if !ok {
			return value.Nil{}
		}
		r, err := rational.Parse(strings.TrimSpace(s))
		if err != nil {
			return invalidArg(ctx, "string->number", "not a number literal: "+s)
		}
		return value.Num{R: r}
	}})
	reg.declare(g, &Declaration{"number->string", "render a number in its canonical textual form", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "number->string", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.Str(n.String())
	}})
	reg.declare(g, &Declaration{"float", "render a number as a fixed-precision decimal string", 1, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		n, ok := asNum(ctx, "float", a[0])
		if !ok {
			return value.Nil{}
		}
		precision := 6
		if len(a) == 2 {
			p, ok := asInt(ctx, "float", a[1])
			if !ok {
				return value.Nil{}
			}
			precision = int(p)
		}
		return value.Str(n.DecimalString(precision))
	}})
	reg.declare(g, &Declaration{"string->symbol", "turn a string into a symbol", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "string->symbol", a[0])
		if !ok {
			return value.Nil{}
		}
		return value.Sym(s)
	}})
	reg.declare(g, &Declaration{"read-from-string", "parse a string as a single expression, without evaluating it", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "read-from-string", a[0])
		if !ok {
			return value.Nil{}
		}
		v, err := parser.ParseOne(s)
		if err != nil {
			ctx.Report(errs.Syntax, "read-from-string: "+err.Error())
			return value.Nil{}
		}
		return v
	}})
	reg.declare(g, &Declaration{"write-to-string", "render a value in the concrete syntax the parser accepts", 1, 1, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Str(value.Print(a[0]))
	}})
	reg.declare(g, &Declaration{"tokenize-expr", "split a string into its lexical tokens, as a list of strings", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		s, ok := asStr(ctx, "tokenize-expr", a[0])
		if !ok {
			return value.Nil{}
		}
		toks, err := lexer.Tokenize(s)
		if err != nil {
			ctx.Report(errs.Syntax, "tokenize-expr: "+err.Error())
			return value.Nil{}
		}
		out := make([]value.Value, len(toks))
		for i, t := range toks {
			out[i] = value.Str(t.Text)
		}
		return value.FromSlice(out)
	}})
}

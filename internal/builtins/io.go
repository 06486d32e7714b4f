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
	"bufio"
	"fmt"
	"os"

	"github.com/launix-de/nada/internal/env"
	"github.com/launix-de/nada/internal/errs"
	"github.com/launix-de/nada/internal/eval"
	"github.com/launix-de/nada/internal/fileio"
	"github.com/launix-de/nada/internal/parser"
	"github.com/launix-de/nada/internal/value"
)

var stdinReader = bufio.NewReader(os.Stdin)

// registerIO installs the I/O stubs of §6: real file access through
// internal/fileio, but no stream/socket surface (out of scope).
func registerIO(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"read-file", "read an entire file as a string", 1, 1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		path, ok := asStr(ctx, "read-file", a[0])
		if !ok {
			return value.Nil{}
		}
		data, err := fileio.ReadFile(path)
		if err != nil {
			return invalidArg(ctx, "read-file", err.Error())
		}
		return value.Str(data)
	}})
	reg.declare(g, &Declaration{"write-file", "overwrite a file with a string", 2, 2, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		path, ok1 := asStr(ctx, "write-file", a[0])
		content, ok2 := asStr(ctx, "write-file", a[1])
		if !ok1 || !ok2 {
			return value.Nil{}
		}
		if err := fileio.WriteFile(path, content); err != nil {
			return invalidArg(ctx, "write-file", err.Error())
		}
		return value.Bool(true)
	}})
	reg.declare(g, &Declaration{"display", "print every argument's textual form to standard output", 0, -1, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		for _, v := range a {
			var s string
			if str, ok := v.(value.Str); ok {
				s = string(str)
			} else {
				s = value.Print(v)
			}
			if ctx != nil && !ctx.AccountOutput(len(s)) {
				return value.Nil{}
			}
			fmt.Print(s)
		}
		return value.Nil{}
	}})
	reg.declare(g, &Declaration{"read-line", "read one line from standard input, without the trailing newline", 0, 0, func(a []value.Value, _ value.Environment, ctx *errs.Context) value.Value {
		line, err := stdinReader.ReadString('\n')
		if err != nil && line == "" {
			return invalidArg(ctx, "read-line", "end of input")
		}
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		return value.Str(line)
	}})
	reg.declare(g, &Declaration{"load-file", "parse and evaluate every top-level expression in a file", 1, 1, func(a []value.Value, e value.Environment, ctx *errs.Context) value.Value {
		path, ok := asStr(ctx, "load-file", a[0])
		if !ok {
			return value.Nil{}
		}
		src, err := fileio.ReadFile(path)
		if err != nil {
			return invalidArg(ctx, "load-file", err.Error())
		}
		exprs, err := parser.ParseAll(src)
		if err != nil {
			ctx.Report(errs.Syntax, "load-file: "+err.Error())
			return value.Nil{}
		}
		frame, ok := e.(*env.Env)
		if !ok {
			return invalidArg(ctx, "load-file", "no environment to load into")
		}
		var result value.Value = value.Nil{}
		for _, x := range exprs {
			result = eval.Eval(x, frame, ctx)
		}
		return result
	}})
	reg.declare(g, &Declaration{"save-environment", "write every non-builtin binding of the current frame to a file as (define ...) forms", 1, 1, func(a []value.Value, e value.Environment, ctx *errs.Context) value.Value {
		path, ok := asStr(ctx, "save-environment", a[0])
		if !ok {
			return value.Nil{}
		}
		frame, ok := e.(*env.Env)
		if !ok {
			return invalidArg(ctx, "save-environment", "no environment to serialize")
		}
		if err := fileio.WriteFile(path, env.Serialize(frame)); err != nil {
			return invalidArg(ctx, "save-environment", err.Error())
		}
		return value.Bool(true)
	}})
}

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

// Command nada is the entry point of spec.md §6:
//
//	nada [-n] [-e EXPR | -c EXPR | FILE]
//
// -n disables nadalib autoload, -e evaluates a single expression and
// exits, -c wraps EXPR as (calc "EXPR"), a bare FILE is loaded, and no
// arguments at all drops into the interactive REPL. dc0d/onexit
// registers the cleanup that used to happen in main's own defer chain
// on the teacher's long-running server processes: stop the nadalib
// watcher.
package main

import (
	"fmt"
	"os"

	"github.com/dc0d/onexit"

	"github.com/launix-de/nada/internal/autoload"
	"github.com/launix-de/nada/internal/config"
	"github.com/launix-de/nada/internal/interp"
	"github.com/launix-de/nada/internal/replio"
	"github.com/launix-de/nada/internal/value"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	it := interp.New()
	it.SetOutputLimit(cfg.MaxOutput)

	stopWatch := make(chan struct{})
	var closeOnce bool
	closeWatch := func() {
		if !closeOnce {
			closeOnce = true
			close(stopWatch)
		}
	}
	// onexit runs registered hooks on SIGINT/SIGTERM, the same way the
	// teacher uses it to flush trace state before its long-running
	// server processes die; here it stops the nadalib watcher goroutine
	// so an interrupted REPL doesn't leak it.
	onexit.Register(func() { closeWatch() })
	defer closeWatch()

	if !cfg.NoAutoload {
		dir, err := autoload.Load(it)
		if err != nil {
			fmt.Fprintf(os.Stderr, "autoload: %v\n", err)
		} else if dir != "" {
			autoload.Watch(dir, stopWatch, func(path string) {
				if src, err := os.ReadFile(path); err == nil {
					it.EvalSource(string(src))
				}
			})
		}
	}

	switch {
	case cfg.EvalExpr != "":
		return evalAndPrint(it, cfg.EvalExpr)
	case cfg.CalcExpr != "":
		return evalAndPrint(it, fmt.Sprintf("(calc %q)", cfg.CalcExpr))
	case cfg.File != "":
		src, err := os.ReadFile(cfg.File)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return evalAndPrint(it, string(src))
	default:
		if err := replio.Run(it); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}
}

// evalAndPrint runs src through the interpreter, prints the final
// result, and maps an Err result to a non-zero exit code.
func evalAndPrint(it *interp.Interpreter, src string) int {
	result := it.EvalSource(src)
	fmt.Println(value.Print(result))
	if _, isErr := result.(value.Err); isErr {
		return 1
	}
	return 0
}

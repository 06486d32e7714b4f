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

// Package config parses the CLI surface of spec.md §6:
// `prog [-n] [-e EXPR | -c EXPR | FILE]`. -max-output accepts a
// human-readable byte size (docker/go-units, the same library the
// teacher's stack already depends on) used to cap how much text
// `display` may print before the interpreter reports MemoryExhausted
// instead of flooding stdout.
package config

import (
	"errors"
	"flag"

	"github.com/docker/go-units"
)

// Config is the parsed command line.
type Config struct {
	NoAutoload bool
	EvalExpr   string // -e EXPR
	CalcExpr   string // -c EXPR, wrapped as (calc "EXPR")
	File       string
	MaxOutput  int64 // bytes; 0 means unbounded
}

// Parse parses args (excluding the program name, i.e. os.Args[1:]).
func Parse(args []string) (Config, error) {
	fs := flag.NewFlagSet("nada", flag.ContinueOnError)
	noAutoload := fs.Bool("n", false, "disable nadalib autoload")
	evalExpr := fs.String("e", "", "parse and evaluate EXPR, print result")
	calcExpr := fs.String("c", "", `evaluate EXPR wrapped as (calc "EXPR")`)
	maxOutput := fs.String("max-output", "", "cap output size (e.g. 10MB); unbounded if empty")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *evalExpr != "" && *calcExpr != "" {
		return Config{}, errors.New("-e and -c are mutually exclusive")
	}

	var maxBytes int64
	if *maxOutput != "" {
		n, err := units.FromHumanSize(*maxOutput)
		if err != nil {
			return Config{}, err
		}
		maxBytes = n
	}

	cfg := Config{
		NoAutoload: *noAutoload,
		EvalExpr:   *evalExpr,
		CalcExpr:   *calcExpr,
		MaxOutput:  maxBytes,
	}
	if rest := fs.Args(); len(rest) > 0 {
		cfg.File = rest[0]
	}
	return cfg, nil
}

// FormatSize renders n bytes in the same human-readable units
// MaxOutput accepts (the format errs.Context.AccountOutput also uses
// in its MemoryExhausted message).
func FormatSize(n int64) string {
	return units.HumanSize(float64(n))
}

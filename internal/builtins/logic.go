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
	"github.com/launix-de/nada/internal/value"
)

// registerLogic installs not; and/or are special forms handled
// directly by internal/eval (they need to evaluate their operands
// lazily, which a builtin receiving pre-evaluated args cannot do).
func registerLogic(g *env.Env, reg *Registry) {
	reg.declare(g, &Declaration{"not", "logical negation; only #f is falsy", 1, 1, func(a []value.Value, _ value.Environment, _ *errs.Context) value.Value {
		return value.Bool(!value.ToBool(a[0]))
	}})
}

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
package env

import (
	"strings"

	"github.com/launix-de/nada/internal/value"
)

// Serialize emits "(define NAME VALUE)" for every non-builtin binding
// in this frame, in traversal order, recursively rendering VALUE in
// the same concrete syntax the parser accepts (§4.C). Builtins are
// skipped: they are always present in a fresh global frame and
// re-binding them from source would be meaningless (and, for a
// Builtin, there is no literal syntax to print).
func Serialize(e *Env) string {
	var b strings.Builder
	e.Each(func(name string, v value.Value) bool {
		if _, ok := v.(value.Builtin); ok {
			return true
		}
		b.WriteString("(define ")
		b.WriteString(name)
		b.WriteByte(' ')
		b.WriteString(serializeValue(v))
		b.WriteString(")\n")
		return true
	})
	return b.String()
}

func serializeValue(v value.Value) string {
	switch t := v.(type) {
	case value.Closure:
		var b strings.Builder
		b.WriteString("(lambda ")
		b.WriteString(serializeValue(t.Params))
		b.WriteByte(' ')
		writeBody(&b, t.Body)
		b.WriteByte(')')
		return b.String()
	default:
		return value.Print(v)
	}
}

func writeBody(b *strings.Builder, body value.Value) {
	// Body is a list of expressions; print them space-separated without
	// an extra enclosing pair of parens (the lambda form supplies those).
	items := value.ToSlice(body)
	if len(items) == 0 {
		b.WriteString(value.Print(body))
		return
	}
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(value.Print(it))
	}
}

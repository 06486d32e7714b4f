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

// Package replio implements the interactive REPL front-end of §6
// ("With nothing: interactive REPL"). It is the teacher's own Repl
// (memcp/prompt.go): a chzyer/readline loop with a continuation
// prompt for multi-line input. The teacher detects "needs more input"
// by panicking out of its own parser and recovering on a fixed
// message string; this version asks lexer.CheckBrackets directly,
// which is the purpose-built operation spec.md's tokenizer component
// adds for exactly this (a REPL prompting for more input).
package replio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"

	"github.com/launix-de/nada/internal/interp"
	"github.com/launix-de/nada/internal/lexer"
	"github.com/launix-de/nada/internal/value"
)

const (
	newPrompt  = "\033[32m>\033[0m "
	contPrompt = "\033[32m.\033[0m "
	resultMark = "\033[31m=\033[0m "

	// historyLimit is the persistent-state cap of §6.
	historyLimit = 1000
)

// HistoryPath returns $HOME/.config/nada/history, creating the
// containing directory if necessary. Errors are non-fatal: a REPL
// with no history file still works, just without persistence.
func HistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(home, ".config", "nada")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ""
	}
	return filepath.Join(dir, "history")
}

// Run drives an interactive read-eval-print loop against it until EOF
// or interrupt. Multi-line input is supported: if the accumulated
// buffer has unmatched open brackets, the prompt switches to the
// continuation prompt and readline keeps appending lines.
func Run(it *interp.Interpreter) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       HistoryPath(),
		HistoryLimit:      historyLimit,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	var pending string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" {
				break
			}
			pending = ""
			rl.SetPrompt(newPrompt)
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		buf := pending
		if buf != "" {
			buf += "\n"
		}
		buf += line
		if buf == "" {
			continue
		}

		if imbalance, syntaxErr := lexer.CheckBrackets(buf); syntaxErr == nil && imbalance > 0 {
			pending = buf
			rl.SetPrompt(contPrompt)
			continue
		}

		result := it.EvalSource(buf)
		fmt.Print(resultMark)
		fmt.Println(value.Print(result))
		pending = ""
		rl.SetPrompt(newPrompt)
	}
	return nil
}

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

// Package autoload implements the library autoloader of §6: "The
// autoloader looks for a nadalib directory in a small fixed search
// path and sequentially loads every file with suffix .scm." The
// three-tier search path (current directory, $NADA_LIB_PATH, a
// compiled-in prefix) mirrors the teacher's own config/XDG-style
// layered lookup. github.com/fsnotify/fsnotify is a direct dependency
// of the teacher's go.mod with no exercised call site in the retrieved
// source (see DESIGN.md); this package gives it a genuine home:
// Watch lets a long-running REPL or kernel pick up edits to nadalib
// without a restart.
package autoload

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/nada/internal/interp"
)

// compiledInPrefix is the third, lowest-priority search path entry: an
// installation-wide library directory baked in at build time.
const compiledInPrefix = "/usr/local/share/nada/nadalib"

// SearchPaths returns the fixed three-tier search path in priority
// order: ./nadalib, $NADA_LIB_PATH, and the compiled-in prefix. Only
// existing directories are returned.
func SearchPaths() []string {
	var out []string
	candidates := []string{"nadalib"}
	if p := os.Getenv("NADA_LIB_PATH"); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, compiledInPrefix)
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			out = append(out, c)
		}
	}
	return out
}

// Load finds the first existing nadalib directory on the search path
// and evaluates every *.scm file in it, in sorted name order, against
// it. Returns the directory loaded from, or "" if none of the search
// path entries exist.
func Load(it *interp.Interpreter) (string, error) {
	paths := SearchPaths()
	if len(paths) == 0 {
		return "", nil
	}
	dir := paths[0]
	entries, err := os.ReadDir(dir)
	if err != nil {
		return dir, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".scm" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		src, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return dir, err
		}
		it.EvalSource(string(src))
	}
	return dir, nil
}

// Watch watches dir for .scm file changes and calls reload (typically
// autoload.Load again, or a fresh file's worth of EvalSource) on every
// write or create event. It runs until stop is closed; the caller owns
// the goroutine.
func Watch(dir string, stop <-chan struct{}, reload func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-stop:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Ext(ev.Name) != ".scm" {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					reload(ev.Name)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return nil
}

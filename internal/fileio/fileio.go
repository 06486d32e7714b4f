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

// Package fileio backs the `read-file`/`write-file`/`load-file`/
// `save-environment` builtins of §6. Plain file access has no
// plausible third-party substitute in the example pack (no repo
// there wraps os.ReadFile/os.WriteFile for anything other than what
// they already do) -- see DESIGN.md's stdlib-justification entry.
package fileio

import "os"

// ReadFile reads an entire file's contents as a string.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteFile overwrites path with content, creating it with mode 0644
// if it doesn't exist.
func WriteFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

//
// ChessCore - a bitboard UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2023-2026 knightkmv
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package util

import (
	"errors"
	"os"
	"path/filepath"
)

// ResolveFile takes a path to a file and tries to resolve it to an
// existing file. An absolute path is only cleaned. A relative path is
// tried against the current working directory first and then against
// each parent directory up to the module root (the first directory
// containing a go.mod). Returns the cleaned path of the first match or
// an error when no candidate exists.
func ResolveFile(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	base, err := os.Getwd()
	if err != nil {
		return path, err
	}
	for {
		candidate := filepath.Join(base, path)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Clean(candidate), nil
		}
		if isModuleRoot(base) {
			break
		}
		parent := filepath.Dir(base)
		if parent == base {
			break
		}
		base = parent
	}
	return path, errors.New("file not found: " + path)
}

// ResolveFolder resolves a folder path the same way ResolveFile resolves
// files but creates the folder (relative to the working directory) when
// no existing candidate is found. Used for log and cache directories
// which may not exist on first start.
func ResolveFolder(path string) (string, error) {
	if filepath.IsAbs(path) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return path, err
		}
		return filepath.Clean(path), nil
	}
	base, err := os.Getwd()
	if err != nil {
		return path, err
	}
	dir := base
	for {
		candidate := filepath.Join(dir, path)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Clean(candidate), nil
		}
		if isModuleRoot(dir) {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	candidate := filepath.Join(base, path)
	if err := os.MkdirAll(candidate, 0755); err != nil {
		return path, err
	}
	return filepath.Clean(candidate), nil
}

func isModuleRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, "go.mod"))
	return err == nil
}

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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileAbsolute(t *testing.T) {
	tmp, err := os.CreateTemp("", "resolve_*.toml")
	assert.NoError(t, err)
	defer os.Remove(tmp.Name())
	_ = tmp.Close()

	resolved, err := ResolveFile(tmp.Name())
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(tmp.Name()), resolved)
}

func TestResolveFileRelative(t *testing.T) {
	wd, _ := os.Getwd()
	defer func() { _ = os.Chdir(wd) }()

	dir := t.TempDir()
	assert.NoError(t, os.Chdir(dir))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[Search]\n"), 0644))

	resolved, err := ResolveFile("./config.toml")
	assert.NoError(t, err)
	assert.FileExists(t, resolved)

	_, err = ResolveFile("./does-not-exist.toml")
	assert.Error(t, err)
}

func TestResolveFolderCreates(t *testing.T) {
	wd, _ := os.Getwd()
	defer func() { _ = os.Chdir(wd) }()

	dir := t.TempDir()
	assert.NoError(t, os.Chdir(dir))

	resolved, err := ResolveFolder("./logs")
	assert.NoError(t, err)
	assert.DirExists(t, resolved)

	// resolving again finds the folder created above
	again, err := ResolveFolder("./logs")
	assert.NoError(t, err)
	assert.Equal(t, resolved, again)
}

/*
 * ChessCore - a bitboard UCI chess engine in Go
 *
 * MIT License
 *
 * Copyright (c) 2023-2026 knightkmv
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package transpositiontable

import (
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
)

var logTest *logging2.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

// the capacity math assumes 16-byte entries
func TestEntrySize(t *testing.T) {
	assert.EqualValues(t, TtEntrySize, unsafe.Sizeof(TtEntry{}))
}

func TestNewTtTableSizes(t *testing.T) {
	cases := []struct {
		sizeMB  int
		entries uint64
	}{
		{2, 131_072},
		{64, 4_194_304},
		{100, 4_194_304}, // rounded down to the next power of 2
	}
	for _, tc := range cases {
		tt := NewTtTable(tc.sizeMB)
		assert.Equal(t, tc.entries, tt.maxNumberOfEntries, "size %d MB", tc.sizeMB)
		assert.EqualValues(t, tc.entries, cap(tt.data))
	}
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(123), EXACT, Value(77), false)

	// GetEntry does not age or count
	e := tt.GetEntry(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.EqualValues(t, 123, e.Value())
	assert.EqualValues(t, 77, e.Eval())
	assert.Equal(t, EXACT, e.Vtype())
	assert.EqualValues(t, 1, e.Age())

	// Probe refreshes the age
	e = tt.Probe(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.EqualValues(t, 0, e.Age())

	// age saturates at 0
	e = tt.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())

	// unknown position misses
	pos.DoMove(move)
	assert.Nil(t, tt.Probe(pos.ZobristKey()))
	assert.EqualValues(t, 3, tt.Stats.numberOfProbes)
	assert.EqualValues(t, 2, tt.Stats.numberOfHits)
	assert.EqualValues(t, 1, tt.Stats.numberOfMisses)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	pos := position.NewPosition()
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(pos.ZobristKey(), move, 5, Value(1), EXACT, ValueNA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.NotNil(t, tt.Probe(pos.ZobristKey()))

	tt.Clear()

	assert.Nil(t, tt.Probe(pos.ZobristKey()))
	assert.EqualValues(t, 0, tt.Len())
}

func TestAgeEntries(t *testing.T) {
	tt := NewTtTable(16)

	// fill every slot with a distinct key at age 1, slot 0 stays empty
	for i := uint64(1); i < tt.maxNumberOfEntries; i++ {
		tt.data[i].key = position.Key(i)
		tt.data[i].vmeta = 1
		tt.numberOfEntries++
	}

	assert.EqualValues(t, 1, tt.GetEntry(1).Age())
	assert.EqualValues(t, 1, tt.GetEntry(1_000).Age())
	assert.EqualValues(t, 1, tt.GetEntry(position.Key(tt.maxNumberOfEntries-1)).Age())

	tt.AgeEntries()

	assert.EqualValues(t, 2, tt.GetEntry(1).Age())
	assert.EqualValues(t, 2, tt.GetEntry(1_000).Age())
	assert.EqualValues(t, 2, tt.GetEntry(position.Key(tt.maxNumberOfEntries-1)).Age())
}

// repeated aging must not overflow into the value type bits
func TestAgeSaturates(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(42, MoveNone, 3, Value(7), BETA, ValueNA, false)
	for i := 0; i < 20; i++ {
		tt.AgeEntries()
	}
	e := tt.GetEntry(42)
	assert.NotNil(t, e)
	assert.EqualValues(t, 7, e.Age())
	assert.Equal(t, BETA, e.Vtype())
	assert.EqualValues(t, 3, e.Depth())
}

func TestPutReplacementPolicy(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	// fresh store
	tt.Put(111, move, 4, Value(111), ALPHA, ValueNA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 111, e.Value())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	// same position: update in place
	tt.Put(111, move, 5, Value(112), BETA, ValueNA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)
	e = tt.Probe(111)
	assert.EqualValues(t, 112, e.Value())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BETA, e.Vtype())

	// different position, same slot, deeper: overwrite
	collisionKey := position.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 6, Value(113), EXACT, ValueNA, false)
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
	assert.EqualValues(t, 113, e.Value())
	assert.EqualValues(t, 6, e.Depth())

	// different position, same slot, two or more plies shallower:
	// keep the old entry
	collisionKey2 := position.Key(111 + (tt.maxNumberOfEntries << 1))
	tt.Put(collisionKey2, move, 4, Value(114), BETA, ValueNA, false)
	assert.EqualValues(t, 2, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	assert.Nil(t, tt.Probe(collisionKey2))
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, 113, e.Value())
	assert.EqualValues(t, 6, e.Depth())
}

// a shallower store from a cut node replaces regardless of depth
func TestPutCutNodeReplaces(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(333, move, 10, Value(10), EXACT, ValueNA, false)
	collisionKey := position.Key(333 + tt.maxNumberOfEntries)

	// shallower non-cut store is rejected...
	tt.Put(collisionKey, move, 3, Value(20), BETA, ValueNA, false)
	assert.Nil(t, tt.Probe(collisionKey))

	// ...the same store from a cut node goes through
	tt.Put(collisionKey, move, 3, Value(20), BETA, ValueNA, true)
	e := tt.Probe(collisionKey)
	assert.NotNil(t, e)
	assert.EqualValues(t, 20, e.Value())
	assert.EqualValues(t, 3, e.Depth())
}

// an entry aged out of the current generation loses its slot even to a
// much shallower store
func TestPutAgedEntryReplaced(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(444, move, 12, Value(30), EXACT, ValueNA, false)
	tt.AgeEntries() // age 2 - previous generation

	collisionKey := position.Key(444 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 1, Value(40), ALPHA, ValueNA, false)
	e := tt.Probe(collisionKey)
	assert.NotNil(t, e)
	assert.EqualValues(t, 40, e.Value())
	assert.EqualValues(t, 1, e.Depth())
}

// same-slot same-key stores with MoveNone or ValueNA must preserve the
// existing move/eval
func TestPutPreservesMoveAndEval(t *testing.T) {
	tt := NewTtTable(4)
	move := CreateMove(SqG1, SqF3, Normal, PtNone)

	tt.Put(222, move, 4, Value(50), EXACT, Value(42), false)
	tt.Put(222, MoveNone, 5, Value(60), EXACT, ValueNA, false)

	e := tt.Probe(222)
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 42, e.Eval())
	assert.EqualValues(t, 60, e.Value())
	assert.EqualValues(t, 5, e.Depth())
}

func TestZeroSizedTable(t *testing.T) {
	tt := NewTtTable(0)
	tt.Put(1, MoveNone, 1, Value(1), EXACT, ValueNA, false)
	assert.EqualValues(t, 0, tt.Len())
	assert.Equal(t, 0, tt.Hashfull())
}

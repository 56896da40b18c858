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

// Package transpositiontable implements the engine's transposition
// table: a fixed-size, power-of-2 array of 16-byte entries indexed by
// the low bits of the Zobrist key and validated by comparing the full
// key. Replacement is depth-preferred with generation aging.
//
// The table is not thread safe; Resize and Clear in particular must not
// run concurrently with a search probing the table.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/knightkmv/chesscore/internal/logging"
	"github.com/knightkmv/chesscore/internal/position"
	. "github.com/knightkmv/chesscore/internal/types"
	"github.com/knightkmv/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB caps the table memory usage.
	MaxSizeInMB = 65_536
)

// TtTable holds the table data and usage statistics.
// Create with NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats collects counters on table usage for reporting.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a table using at most the given MB of memory. The
// usable entry count is rounded down to a power of 2 so the index can
// be a plain bit mask of the key.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize reallocates the table for the new size. All entries are lost.
// Not safe to call during a running search.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/TtEntrySize))))
	tt.hashKeyMask = tt.maxNumberOfEntries - 1

	if tt.sizeInByte == 0 {
		tt.maxNumberOfEntries = 0
	}

	// actual usage after rounding down to the power of 2
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	tt.data = make([]TtEntry, tt.maxNumberOfEntries)

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns the entry for the key or nil. The full stored key is
// compared, an index collision is a miss. Statistics are not touched.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe returns the entry for the key or nil, counting the probe in the
// statistics. A hit refreshes the entry's age.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		e.decreaseAge()
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result. Three cases:
//   - empty slot: store
//   - different position in the slot: replace when the old entry is from
//     a previous generation (aged out), when the new depth is less than
//     two plies below the old one (newDepth+2 > oldDepth), or when the new
//     store comes from a cut node - cut nodes feed the move ordering of
//     their siblings and are worth keeping even at lower depth
//   - same position: always update the value (a re-store means the old
//     value did not cut the re-search), but preserve an existing move or
//     eval when the caller has none
func (tt *TtTable) Put(key position.Key, move Move, depth int8, value Value, valueType ValueType, eval Value, cutNode bool) {
	// a zero-sized table stores nothing
	if tt.maxNumberOfEntries == 0 {
		return
	}

	entry := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	switch {
	case entry.key == 0:
		tt.numberOfEntries++
		entry.key = key
		entry.move = uint16(move)
		entry.eval = int16(eval)
		entry.value = int16(value)
		entry.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift + uint16(1)

	case entry.key != key:
		tt.Stats.numberOfCollisions++
		if entry.Age() > 1 ||
			int(depth)+2 > int(entry.Depth()) ||
			cutNode {
			tt.Stats.numberOfOverwrites++
			entry.key = key
			entry.move = uint16(move)
			entry.eval = int16(eval)
			entry.value = int16(value)
			entry.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift + uint16(1)
		}

	default: // same position
		tt.Stats.numberOfUpdates++
		if move != MoveNone {
			entry.move = uint16(move)
		}
		if eval != ValueNA {
			entry.eval = int16(eval)
		}
		if value != ValueNA {
			entry.value = int16(value)
			entry.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift + uint16(1)
		}
	}
}

// Clear drops all entries and statistics, keeping the configured size.
// Not safe to call during a running search.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns the table fill state in permill, as UCI reports it.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a one-line summary of size and hit statistics.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied entries.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries ages every occupied entry by one generation. The sweep is
// split over a fixed number of goroutines; between searches the table
// is otherwise idle so no synchronization beyond the WaitGroup is
// needed.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		const workers = uint64(32)
		var wg sync.WaitGroup
		wg.Add(int(workers))
		slice := tt.maxNumberOfEntries / workers
		for i := uint64(0); i < workers; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == workers-1 {
					end = tt.maxNumberOfEntries
				}
				for n := start; n < end; n++ {
					if tt.data[n].key != 0 {
						tt.data[n].increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d in %d ms\n", tt.numberOfEntries, len(tt.data), elapsed.Milliseconds()))
}

// hash maps a key to a table index.
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}

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

package types

// Magic is the per-square lookup entry a fancy-magic slider table needs:
// the relevant-occupancy mask, the multiplier, the post-multiply shift and
// the slice of the shared attack table this square owns.
//
// The magic-number search below follows the classic "fancy magic" scheme
// popularized by Stockfish (https://www.chessprogramming.org/Magic_Bitboards);
// the carry-rippler occupancy enumeration and the sparse xorshift64* PRNG
// it uses to guess candidate multipliers are public-domain techniques, not
// original to any single engine.
type Magic struct {
	Mask    Bitboard
	Magic   Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index maps an occupancy bitboard to a slot in m.Attacks.
func (m *Magic) index(occupied Bitboard) uint {
	relevant := (occupied & m.Mask) * m.Magic
	return uint(relevant >> m.Shift)
}

// buildMagicTable fills table (the shared attack-table backing store) and
// magics (one entry per square) for a slider that moves along directions.
// It enumerates every occupancy subset of each square's relevant-blocker
// mask, then searches for a multiplier that maps each subset to a distinct
// table slot without collision.
func buildMagicTable(table *[]Bitboard, magics *[64]Magic, directions *[4]Direction) {
	// Precomputed PRNG seeds, one per rank, chosen to find a working magic
	// quickly for squares on that rank.
	seedByRank := [RankLength]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occSubset, attackRef [4096]Bitboard
	var lastSeenAttempt [4096]int
	attempt := 0
	subsetCount := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		m := &(*magics)[sq]

		// The board-edge squares never matter as blockers: a slider's ray
		// always stops there anyway, so excluding them shrinks the mask.
		edges := ((Rank1_Bb | Rank8_Bb) &^ sq.RankOf().Bb()) | ((FileA_Bb | FileH_Bb) &^ sq.FileOf().Bb())
		m.Mask = rayUnion(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		// Each square gets its own window into the shared backing array;
		// offsets are cumulative, so reuse the previous square's tail.
		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[subsetCount:]
		}

		// Carry-Rippler enumeration of every subset of the mask bits.
		subsetCount = 0
		occ := Bitboard(0)
		for {
			occSubset[subsetCount] = occ
			attackRef[subsetCount] = rayUnion(directions, sq, occ)
			subsetCount++
			occ = (occ - m.Mask) & m.Mask
			if occ == 0 {
				break
			}
		}

		rng := newSparsePrng(seedByRank[sq.RankOf()])
		findMagicFor(m, occSubset[:subsetCount], attackRef[:subsetCount], lastSeenAttempt[:], &attempt, rng)
	}
}

// findMagicFor guesses multipliers for m until one maps every occupancy in
// occ to a table slot consistent with the matching entry in attacks — i.e.
// no two different occupancies land on the same slot with different
// attack sets. lastSeen/attempt avoid clearing m.Attacks between guesses.
func findMagicFor(m *Magic, occ, attacks []Bitboard, lastSeen []int, attempt *int, rng *sparsePrng) {
	for i := 0; i < len(occ); {
		for {
			m.Magic = Bitboard(rng.next())
			if ((m.Magic * m.Mask) >> 56).PopCount() < 6 {
				break
			}
		}

		*attempt++
		for i = 0; i < len(occ); i++ {
			slot := m.index(occ[i])
			if lastSeen[slot] < *attempt {
				lastSeen[slot] = *attempt
				m.Attacks[slot] = attacks[i]
			} else if m.Attacks[slot] != attacks[i] {
				break
			}
		}
	}
}

// rayUnion traces a slider's rays from sq in each of directions across an
// occupied board, stopping at (and including) the first blocker per ray.
// Only used at startup to populate magic tables and masks — not on the
// search hot path.
func rayUnion(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	var rays Bitboard
	for _, dir := range directions {
		from := sq
		for {
			to := from.To(dir)
			if !to.IsValid() {
				break
			}
			rays.PushSquare(to)
			if occupied.Has(to) {
				break
			}
			if next := to.To(dir); !next.IsValid() || SquareDistance(to, next) != 1 {
				break
			}
			from = to
		}
	}
	return rays
}

// sparsePrng is a xorshift64* generator (Vigna, public domain) tuned with
// an extra AND-fold so its output has roughly one bit in eight set — magic
// candidates with few set bits are found to converge faster in practice.
type sparsePrng struct {
	state uint64
}

func newSparsePrng(seed uint64) *sparsePrng {
	return &sparsePrng{state: seed}
}

func (r *sparsePrng) rand64() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 2685821657736338717
}

// next returns a sparse candidate: roughly 1/8th of bits set on average.
func (r *sparsePrng) next() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}

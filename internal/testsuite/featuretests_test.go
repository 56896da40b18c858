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

package testsuite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/knightkmv/chesscore/internal/config"
)

// runs every EPD suite in the feature test folder with a fixed baseline
// feature set and checks the report comes out well-formed
func TestFeatureTests(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test in short mode.")
	}

	searchTime := 200 * time.Millisecond
	searchDepth := 0

	config.Settings.Search.UseQuiescence = true
	config.Settings.Search.UseQSStandpat = true
	config.Settings.Search.UseSEE = true

	config.Settings.Search.UseTT = true
	config.Settings.Search.TTSize = 256
	config.Settings.Search.UseTTValue = true
	config.Settings.Search.UseQSTT = true

	config.Settings.Search.UsePVS = true
	config.Settings.Search.UseTTMove = true
	config.Settings.Search.UseIID = true
	config.Settings.Search.UseKiller = true
	config.Settings.Search.UseHistoryCounter = true
	config.Settings.Search.UseCounterMoves = true

	config.Settings.Search.UseMDP = true
	config.Settings.Search.UseNullMove = true
	config.Settings.Search.UseRFP = true
	config.Settings.Search.UseFP = true
	config.Settings.Search.UseLmr = true
	config.Settings.Search.UseLmp = true

	report := FeatureTests("test/testdata/featuretests/", searchTime, searchDepth)
	assert.Contains(t, report, "Feature Test Result Report")
	out.Println(report)
}

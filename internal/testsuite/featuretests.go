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
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/knightkmv/chesscore/internal/config"
	"github.com/knightkmv/chesscore/internal/util"
)

// FeatureTests runs every EPD file in the folder as a test suite and
// returns a combined report. Used to compare feature configurations
// against each other over a fixed set of suites.
func FeatureTests(folder string, searchTime time.Duration, searchDepth int) string {
	entries, err := os.ReadDir(folder)
	if err != nil {
		log.Fatal(err)
	}
	var epdFiles []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".epd" {
			epdFiles = append(epdFiles, entry.Name())
		}
	}

	// run every suite and keep its result
	result := make(map[string]TestSuite, len(epdFiles))
	executedTests := 0
	start := time.Now()
	for _, name := range epdFiles {
		ts, _ := NewTestSuite(folder+name, searchTime, searchDepth)
		ts.RunTests()
		executedTests += len(ts.Tests)
		result[name] = *ts
	}
	duration := time.Since(start)

	// stable report order
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}
	sort.Strings(names)

	var totals SuiteResult
	line := strings.Repeat("=", 143)

	var sb strings.Builder
	sb.WriteString(out.Sprintf("Feature Test Result Report\n"))
	sb.WriteString(out.Sprintf("==============================================================================\n"))
	sb.WriteString(out.Sprintf("Date                 : %s\n", time.Now()))
	sb.WriteString(out.Sprintf("Test took            : %s\n", duration))
	sb.WriteString(out.Sprintf("Test setup           : search time: %s max depth: %d\n", searchTime, searchDepth))
	sb.WriteString(out.Sprintf("Number of testsuites : %d\n", len(result)))
	sb.WriteString(out.Sprintf("Number of tests      : %d\n", executedTests))
	sb.WriteString(out.Sprintln())
	sb.WriteString(out.Sprintf("%s\n", line))
	sb.WriteString(out.Sprintf(" %-25s | %-12s | %-15s | %-10s | %-10s | %-10s | %-10s | %-6s | %s\n",
		"Test Suite", "Success Rate", "          Nodes", "Successful", "    Failed", "   Skipped", "       N/A", "  Tests", "File"))
	sb.WriteString(out.Sprintf("%s\n", line))
	for _, name := range names {
		r := result[name]
		lr := r.LastResult
		successRate := float64(lr.SuccessCounter) / float64(lr.Counter) * 100
		totals.Nodes += lr.Nodes
		totals.Time += lr.Time
		totals.SuccessCounter += lr.SuccessCounter
		totals.FailedCounter += lr.FailedCounter
		totals.SkippedCounter += lr.SkippedCounter
		totals.NotTestedCounter += lr.NotTestedCounter
		totals.Counter += lr.Counter
		sb.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
			name, successRate, lr.Nodes, lr.SuccessCounter, lr.FailedCounter, lr.SkippedCounter, lr.NotTestedCounter, len(r.Tests), folder+name))
	}
	totalRate := float64(totals.SuccessCounter) / float64(totals.Counter) * 100
	sb.WriteString(out.Sprintf("%s\n", strings.Repeat("-", 143)))
	sb.WriteString(out.Sprintf(" %-25s |      %5.1f %% | %15d |   %8d |   %8d |   %8d |   %8d |  %6d | %s\n",
		"TOTAL", totalRate, totals.Nodes, totals.SuccessCounter, totals.FailedCounter, totals.SkippedCounter, totals.NotTestedCounter, totals.Counter, ""))
	sb.WriteString(out.Sprintf("%s\n", line))
	sb.WriteString(out.Sprintln())
	sb.WriteString(out.Sprintf("Total Time: %s\n", totals.Time))
	sb.WriteString(out.Sprintf("Total NPS : %d\n", util.Nps(totals.Nodes, totals.Time)))
	sb.WriteString(out.Sprintln())
	sb.WriteString(out.Sprintf("Configuration: %s\n", config.Settings.String()))
	sb.WriteString(out.Sprintln())

	return sb.String()
}

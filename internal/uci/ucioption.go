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

package uci

import (
	"strconv"
	"strings"

	. "github.com/knightkmv/chesscore/internal/config"
)

// uciOptionType enumerates the UCI option types.
type uciOptionType int

const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is called when "setoption" changes the option; the new
// value is already stored in CurrentValue.
type optionHandler func(*UciHandler, *uciOption)

// uciOption describes one UCI option as advertised to the GUI.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap maps the option name to its definition.
type optionMap map[string]*uciOption

// uciOptions stores all available uci options.
var uciOptions optionMap

// sortOrderUciOptions fixes the order options are advertised in.
var sortOrderUciOptions []string

// boolOption builds a check option bound to a boolean configuration
// field. The vast majority of our options are exactly this shape.
func boolOption(name string, target *bool) *uciOption {
	def := strconv.FormatBool(*target)
	return &uciOption{
		NameID:     name,
		OptionType: Check,
		HandlerFunc: func(u *UciHandler, o *uciOption) {
			v, _ := strconv.ParseBool(o.CurrentValue)
			*target = v
			log.Debugf("Set option %s to %v", o.NameID, v)
		},
		DefaultValue: def,
		CurrentValue: def,
	}
}

// spinOption builds a spin option with an int handler applying the
// parsed value.
func spinOption(name string, def int, min int, max int, apply func(u *UciHandler, v int)) *uciOption {
	defStr := strconv.Itoa(def)
	return &uciOption{
		NameID:     name,
		OptionType: Spin,
		HandlerFunc: func(u *UciHandler, o *uciOption) {
			v, err := strconv.Atoi(o.CurrentValue)
			if err != nil {
				log.Warningf("Option %s: invalid value %s", o.NameID, o.CurrentValue)
				return
			}
			apply(u, v)
			log.Debugf("Set option %s to %d", o.NameID, v)
		},
		DefaultValue: defStr,
		CurrentValue: defStr,
		MinValue:     strconv.Itoa(min),
		MaxValue:     strconv.Itoa(max),
	}
}

// init defines all available uci options.
func init() {
	uciOptions = optionMap{
		"Print Config": {NameID: "Print Config", OptionType: Button, HandlerFunc: printConfig},
		"Clear Hash":   {NameID: "Clear Hash", OptionType: Button, HandlerFunc: clearCache},
		"Use_Hash":     boolOption("Use_Hash", &Settings.Search.UseTT),
		"Hash": spinOption("Hash", Settings.Search.TTSize, 0, 65000, func(u *UciHandler, v int) {
			Settings.Search.TTSize = v
			u.mySearch.ResizeCache()
		}),
		"Contempt": spinOption("Contempt", int(Settings.Search.Contempt), -100, 100, func(u *UciHandler, v int) {
			Settings.Search.Contempt = int16(v)
		}),
		"Threads": spinOption("Threads", Settings.Search.Threads, 1, 64, func(u *UciHandler, v int) {
			// advisory only - the core search stays single threaded
			Settings.Search.Threads = v
		}),
		"SyzygyPath": {
			NameID:       "SyzygyPath",
			OptionType:   String,
			DefaultValue: Settings.Search.TbPath,
			CurrentValue: Settings.Search.TbPath,
			HandlerFunc: func(u *UciHandler, o *uciOption) {
				// opaque - handed to an external tablebase prober
				Settings.Search.TbPath = o.CurrentValue
				log.Debugf("Set SyzygyPath to %v", Settings.Search.TbPath)
			},
		},

		"Ponder": boolOption("Ponder", &Settings.Search.UsePonder),

		"Quiescence": boolOption("Quiescence", &Settings.Search.UseQuiescence),
		"Use_QHash":  boolOption("Use_QHash", &Settings.Search.UseQSTT),
		"Use_SEE":    boolOption("Use_SEE", &Settings.Search.UseSEE),

		"Use_PVS":         boolOption("Use_PVS", &Settings.Search.UsePVS),
		"Use_IID":         boolOption("Use_IID", &Settings.Search.UseIID),
		"Use_Killer":      boolOption("Use_Killer", &Settings.Search.UseKiller),
		"Use_HistCount":   boolOption("Use_HistCount", &Settings.Search.UseHistoryCounter),
		"Use_CounterMove": boolOption("Use_CounterMove", &Settings.Search.UseCounterMoves),

		"Use_Mdp":      boolOption("Use_Mdp", &Settings.Search.UseMDP),
		"Use_Rfp":      boolOption("Use_Rfp", &Settings.Search.UseRFP),
		"Use_NullMove": boolOption("Use_NullMove", &Settings.Search.UseNullMove),
		"Use_ProbCut":  boolOption("Use_ProbCut", &Settings.Search.UseProbCut),
		"Use_Fp":       boolOption("Use_Fp", &Settings.Search.UseFP),
		"Use_Lmr":      boolOption("Use_Lmr", &Settings.Search.UseLmr),
		"Use_Lmp":      boolOption("Use_Lmp", &Settings.Search.UseLmp),

		"Use_Ext":         boolOption("Use_Ext", &Settings.Search.UseExt),
		"Use_ExtAddDepth": boolOption("Use_ExtAddDepth", &Settings.Search.UseExtAddDepth),
		"Use_CheckExt":    boolOption("Use_CheckExt", &Settings.Search.UseCheckExt),
		"Use_ThreatExt":   boolOption("Use_ThreatExt", &Settings.Search.UseThreatExt),
		"Use_Singular":    boolOption("Use_Singular", &Settings.Search.UseSingular),

		"Eval_Lazy":     boolOption("Eval_Lazy", &Settings.Eval.UseLazyEval),
		"Eval_Mobility": boolOption("Eval_Mobility", &Settings.Eval.UseMobility),
		"Eval_AdvPiece": boolOption("Eval_AdvPiece", &Settings.Eval.UseAdvancedPieceEval),
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Contempt",
		"Threads",
		"SyzygyPath",
		"Ponder",

		"Quiescence",
		"Use_QHash",
		"Use_SEE",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_HistCount",
		"Use_CounterMove",

		"Use_Mdp",
		"Use_Rfp",
		"Use_NullMove",
		"Use_ProbCut",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_Ext",
		"Use_ExtAddDepth",
		"Use_CheckExt",
		"Use_ThreatExt",
		"Use_Singular",

		"Eval_Lazy",
		"Eval_Mobility",
		"Eval_AdvPiece",
	}
}

// GetOptions returns the advertisement lines for all options in their
// defined order.
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String renders the option as the UCI "option name ..." line.
func (o *uciOption) String() string {
	var sb strings.Builder
	sb.WriteString("option name ")
	sb.WriteString(o.NameID)
	sb.WriteString(" type ")
	switch o.OptionType {
	case Check:
		sb.WriteString("check default ")
		sb.WriteString(o.DefaultValue)
	case Spin:
		sb.WriteString("spin default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" min ")
		sb.WriteString(o.MinValue)
		sb.WriteString(" max ")
		sb.WriteString(o.MaxValue)
	case Combo:
		sb.WriteString("combo default ")
		sb.WriteString(o.DefaultValue)
		sb.WriteString(" var ")
		sb.WriteString(o.VarValue)
	case Button:
		sb.WriteString("button")
	case String:
		sb.WriteString("string default ")
		sb.WriteString(o.DefaultValue)
	}
	return sb.String()
}

func printConfig(handler *UciHandler, option *uciOption) {
	for _, line := range strings.Split(Settings.String(), "\n") {
		if line != "" {
			handler.SendInfoString(line)
		}
	}
	log.Debug(Settings.String())
}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

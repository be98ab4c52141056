//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Command perft is the developer tool for move generator correctness
// and speed: run it against a position at a given depth and compare the
// node count to a known table.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/fairyengine/internal/board"
	"github.com/frankkopp/fairyengine/internal/config"
	"github.com/frankkopp/fairyengine/internal/movegen"
	"github.com/frankkopp/fairyengine/pkg/engine"
	. "github.com/frankkopp/fairyengine/pkg/types"
)

var out = message.NewPrinter(language.German)

func main() {
	depth := flag.Int("depth", 5, "perft depth")
	fenFlag := flag.String("fen", "startpos", "position to test: \"startpos\" for the classic 8x8 army, or a placement list \"x,y,color,kind;...\" (color: w|b, kind: the piece's lowercase code from pkg/types)")
	parallel := flag.Int("parallel", 1, "root moves to search in parallel (1 disables fan-out)")
	profileMode := flag.String("profile", "", "profiling mode: cpu|trace (writes cpu.pprof or trace.out to the current directory)")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		out.Printf("unknown -profile mode %q, ignoring\n", *profileMode)
	}

	gs, err := setupPosition(*fenFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var p movegen.Perft
	p.StartPerft(gs, *depth, *parallel)
}

// setupPosition builds the GameState for -fen's value. "startpos" gets
// the classic 8x8 army; anything else is parsed as a semicolon-separated
// placement list, since this engine's piece set and board have no fixed
// notion of a FEN board to parse.
func setupPosition(spec string) (*board.GameState, error) {
	if spec == "startpos" {
		gs := engine.NewGame(board.NewGameRules())
		engine.SetupStandard(gs)
		return gs, nil
	}

	gs := engine.NewGame(board.NewGameRules())
	for _, placement := range strings.Split(spec, ";") {
		placement = strings.TrimSpace(placement)
		if placement == "" {
			continue
		}
		fields := strings.Split(placement, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("invalid placement %q: want x,y,color,kind", placement)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x in %q: %w", placement, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y in %q: %w", placement, err)
		}
		color, err := parseColor(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, placement)
		}
		kind, err := parseKind(strings.TrimSpace(fields[3]))
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, placement)
		}
		engine.SetPiece(gs, Coordinate{X: x, Y: y}, MakePiece(color, kind))
	}
	return gs, nil
}

func parseColor(s string) (Color, error) {
	switch s {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	default:
		return White, fmt.Errorf("unknown color %q", s)
	}
}

func parseKind(s string) (PieceKind, error) {
	for k := PieceKind(0); k < PkLength; k++ {
		if k.Char() == s {
			return k, nil
		}
	}
	return PkNone, fmt.Errorf("unknown piece kind %q", s)
}

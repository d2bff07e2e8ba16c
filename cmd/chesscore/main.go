// Command chesscore is a UCI-speaking chess engine: negamax alpha-beta
// search with a transposition table, iterative deepening, and a tapered
// PeSTO-style evaluator, over a bitboard move generator.
package main

import (
	"os"

	"chesscore/uci"
)

func main() {
	engine := uci.NewEngine(os.Stdout, os.Stderr)
	engine.Run(os.Stdin)
}

package uci

import (
	"fmt"
	"io"
	"time"

	"chesscore/board"
	"chesscore/search"
)

// benchDepth is the fixed search depth for `bench`, per the testable
// property that node counts must be bit-identical across runs. §8.
const benchDepth = 9

// benchPositions is a fixed 50-position suite spanning openings, tactical
// middlegames, and endgames, so `bench` exercises every search component.
var benchPositions = []string{
	board.StartFEN,
	"rnbqkb1r/pp1p1ppp/2p2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
	"rnbqkb1r/ppp1pppp/5n2/3p4/2PP4/8/PP2PPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
	"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
	"rnbqkbnr/pppppp1p/6p1/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
	"rnbq1rk1/ppp1bppp/4pn2/3p4/2PP4/2N1PN2/PP3PPP/R1BQKB1R w KQ - 0 1",
	"r2qkbnr/ppp2ppp/2np4/4p3/2B1P1b1/5N2/PPPP1PPP/RNBQ1RK1 w kq - 0 1",
	"rnbqkbnr/ppp1pppp/8/3p4/3P4/8/PPP1PPPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/B3P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
	"rnbqkb1r/pp2pppp/3p1n2/2p5/4P3/2N2N2/PPPP1PPP/R1BQKB1R w KQkq - 0 1",
	"r1bq1rk1/ppppbppp/2n2n2/4p3/2B1P3/3P1N2/PPP2PPP/RNBQ1RK1 w - - 0 1",
	"2kr1b1r/pp1n1ppp/2p1p3/q2n4/3P4/2N2N2/PPPQ1PPP/2KR1B1R w - - 0 1",
	"r3kb1r/ppp2ppp/2n5/3qp3/3P4/2N2N2/PPP2PPP/R1BQKB1R w KQkq - 0 1",
	"8/8/8/4k3/4P3/4K3/8/8 w - - 0 1",
	"8/8/8/8/8/4k3/4p3/4K3 w - - 0 1",
	"4k3/8/8/8/8/8/4P3/4K2R w K - 0 1",
	"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
	"r1bq2r1/b4pk1/p1pp1p2/1p2pP2/1P2P1PB/3P4/1PPQ2P1/R3K2R w - - 0 1",
	"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
	"r1bqkbnr/pppppppp/n7/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"8/8/1p6/p1p5/P1P5/1P6/8/k1K5 w - - 0 1",
	"4r3/1k6/pp3r2/1b2P2p/3R1p2/P1R2P2/1P4PP/6K1 w - - 0 1",
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP2PPP/R2Q1RK1 w - - 0 1",
	"3r2k1/p2r1p1p/1p2p1p1/q4n2/3P4/PQ5P/1P1RNPP1/3R2K1 w - - 0 1",
	"6k1/pp4p1/2p5/2bp4/8/P5Pb/1P3rrP/2BRRN1K b - - 0 1",
	"1k6/1b6/8/8/7R/8/1p6/1K6 w - - 0 1",
	"r1b1k2r/ppppnppp/2n2q2/2b5/3NP3/2N1B3/PPP2PPP/R2QKB1R w KQkq - 0 1",
	"2r3k1/5pp1/1p2p2p/p1q5/P1P1N3/1P1Q2PP/5P1K/8 w - - 0 1",
	"3rr1k1/pp3pp1/1qn1b2p/8/2Bp4/1QP1P3/P4PPP/2R1R1K1 b - - 0 1",
	"8/p7/1p6/5k2/1P6/K1N5/8/8 w - - 0 1",
	"r4rk1/ppq2ppp/2p1bn2/4p3/4P3/2N1BP2/PPPQ2PP/2KR3R w - - 0 1",
	"2kr3r/ppp2ppp/2n1b3/2bqp3/4P3/2NPBN2/PPP2PPP/R2QK2R w KQ - 0 1",
	"r1b2rk1/1pq1bppp/p1n1pn2/3p4/2PP4/2N1PN2/PP2BPPP/R1BQ1RK1 w - - 0 1",
	"8/6pk/8/7p/5K1P/8/8/8 w - - 0 1",
	"r2qr1k1/1b1nbppp/p3pn2/1p6/3P4/1BN1PN2/PP2QPPP/R1BR2K1 w - - 0 1",
	"5rk1/p4ppp/1p1qp3/3n4/3P4/2N1P3/PP3PPP/R2Q1RK1 w - - 0 1",
	"8/8/4k3/8/8/3K4/3P4/8 w - - 0 1",
	"rnbqk2r/ppp1bppp/4pn2/3p4/2PP4/2N2N2/PP2PPPP/R1BQKB1R w KQkq - 0 1",
	"2r2rk1/1p3pbp/p2p1np1/q3p3/4P3/1NN1BP2/PPPQ2PP/2KR3R w - - 0 1",
	"8/8/8/8/3k4/8/3p4/3K4 b - - 0 1",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"4k3/8/8/8/8/8/4p3/4K3 b - - 0 1",
	"rnbqkbnr/p1pppppp/8/1p6/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
}

// RunBench runs the fixed position suite at benchDepth and prints
// `[#] NODES: n | TIME: t ms | NPS: n/s` per position, per §6.
func RunBench(out io.Writer, keys *board.ZobristKeys) {
	var totalNodes int64
	start := time.Now()

	for i, fen := range benchPositions {
		b, err := board.NewFromFEN(keys, fen)
		if err != nil {
			fmt.Fprintf(out, "[%d] skipped invalid FEN: %v\n", i, err)
			continue
		}

		info := search.NewInfo()
		posStart := time.Now()
		search.IterativeDeepening(b, info, search.Limit{Depth: benchDepth}, nil)
		elapsed := time.Since(posStart)

		totalNodes += info.Nodes
		ms := elapsed.Milliseconds()
		nps := int64(0)
		if ms > 0 {
			nps = info.Nodes * 1000 / ms
		}
		fmt.Fprintf(out, "[%d] NODES: %d | TIME: %d ms | NPS: %d/s\n", i, info.Nodes, ms, nps)
	}

	totalMs := time.Since(start).Milliseconds()
	totalNps := int64(0)
	if totalMs > 0 {
		totalNps = totalNodes * 1000 / totalMs
	}
	fmt.Fprintf(out, "NODES: %d | TIME: %d ms | NPS: %d/s\n", totalNodes, totalMs, totalNps)
}

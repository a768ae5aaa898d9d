// Package searcher selects moves for an automated Ataxx player using
// depth-bounded minimax with alpha-beta pruning.
package searcher

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"ataxx/game"
)

const (
	// MaxDepth is the default search depth in plies.
	MaxDepth = 4

	// WinningValue is the magnitude of a decided position's score: positive
	// for a Red win, negative for a Blue win. The remaining depth is added
	// on top so that among equally winning lines the search prefers the
	// soonest win.
	WinningValue = math.MaxInt32 - 20

	// Infinity bounds the alpha-beta window.
	Infinity = math.MaxInt32
)

type Option func(*Searcher)

// WithDepth sets the search depth in plies.
func WithDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithSeed seeds the searcher's random source. The deterministic search does
// not consume it; identical seeds and boards always produce identical moves.
func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables collection of per-search statistics.
func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// Searcher picks moves by sign-parameterized minimax: one pass maximizes for
// Red, the mirrored pass minimizes for Blue. Each recursive call works on its
// own clone of the board, so sibling branches never interfere. Only a strict
// improvement replaces the current best move, which makes enumeration order
// the deterministic tie-break.
type Searcher struct {
	depth   int
	rng     *rand.Rand // reserved for stochastic tie-breaking extensions
	metrics Collector
	found   game.Move
}

// New returns a Searcher with the default depth and a zero seed.
func New(options ...Option) *Searcher {
	s := &Searcher{
		depth:   MaxDepth,
		rng:     rand.New(rand.NewSource(0)),
		metrics: NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// FindMove returns a legal move for the side to move on b, together with any
// collected search metrics. When that side has no legal placement the unique
// answer is a pass and no search is performed. On a decided board there is
// nothing to choose; the result is a pass. The board itself is never mutated;
// the search runs on clones.
func (s *Searcher) FindMove(b *game.Board) (game.Move, Metrics) {
	s.metrics.Start(s.depth)
	if _, over := b.Winner(); over {
		return game.Pass(), s.metrics.Complete()
	}
	if !b.CanMove(b.WhoseMove()) {
		return game.Pass(), s.metrics.Complete()
	}

	s.found = game.Move{}
	sense := 1
	if b.WhoseMove() == game.Blue {
		sense = -1
	}
	s.minMax(b.Clone(), s.depth, sense, true, -Infinity, Infinity)
	return s.found, s.metrics.Complete()
}

// minMax returns the value of board for the searching side, looking depth
// plies ahead. With sense 1 it maximizes for Red, pruning once alpha meets
// beta; with sense -1 it minimizes for Blue symmetrically. The chosen move is
// recorded only at the root (saveMove).
func (s *Searcher) minMax(board *game.Board, depth, sense int, saveMove bool, alpha, beta int) int {
	if _, over := board.Winner(); depth == 0 || over {
		s.metrics.AddEvaluation()
		return staticScore(board, WinningValue+depth)
	}
	s.metrics.AddNode()

	var best game.Move
	bestScore := 0
	if sense == 1 {
		if board.LegalMove(game.Pass()) {
			// Forced pass: score as level without searching deeper.
		} else {
			bestScore = -Infinity
			for _, m := range possibleMoves(game.Red, board) {
				child := board.Clone()
				if err := child.MakeMove(m); err != nil {
					panic(fmt.Sprintf("searcher: enumerated illegal move %s: %v", m, err))
				}
				response := s.minMax(child, depth-1, -1, false, alpha, beta)
				if response > bestScore {
					best = m
					bestScore = response
					if bestScore > alpha {
						alpha = bestScore
					}
					if alpha >= beta {
						s.metrics.AddCutoff()
						break
					}
				}
			}
		}
	} else {
		if board.LegalMove(game.Pass()) {
			// Forced pass: score as level without searching deeper.
		} else {
			bestScore = Infinity
			for _, m := range possibleMoves(game.Blue, board) {
				child := board.Clone()
				if err := child.MakeMove(m); err != nil {
					panic(fmt.Sprintf("searcher: enumerated illegal move %s: %v", m, err))
				}
				response := s.minMax(child, depth-1, 1, false, alpha, beta)
				if response < bestScore {
					best = m
					bestScore = response
					if bestScore < beta {
						beta = bestScore
					}
					if alpha >= beta {
						s.metrics.AddCutoff()
						break
					}
				}
			}
		}
	}

	if saveMove {
		s.found = best
	}
	return bestScore
}

// staticScore evaluates board without searching: plus or minus winningValue
// for a decided win, 0 for a draw, otherwise the piece-count difference from
// the perspective of the side to move.
func staticScore(board *game.Board, winningValue int) int {
	if winner, over := board.Winner(); over {
		switch winner {
		case game.Red:
			return winningValue
		case game.Blue:
			return -winningValue
		default:
			return 0
		}
	}
	if board.WhoseMove() == game.Red {
		return board.RedPieces() - board.BluePieces()
	}
	return board.BluePieces() - board.RedPieces()
}

// possibleMoves enumerates every legal placement for who, in the fixed order
// that serves as the search's tie-break: columns left to right, rows bottom
// to top within each column, then the 5x5 offset neighborhood column-major.
func possibleMoves(who game.PieceColor, board *game.Board) []game.Move {
	var moves []game.Move
	for c := byte('a'); c <= 'g'; c++ {
		for r := byte('1'); r <= '7'; r++ {
			if board.Get(c, r) != who {
				continue
			}
			for dc := -2; dc <= 2; dc++ {
				for dr := -2; dr <= 2; dr++ {
					m := game.NewMove(c, r, byte(int(c)+dc), byte(int(r)+dr))
					if board.LegalMove(m) {
						moves = append(moves, m)
					}
				}
			}
		}
	}
	return moves
}

package game

import (
	"hash/fnv"
	"strings"
)

const (
	// Side is the width of the logical playing area.
	Side = 7

	// extendedSide is Side plus a two-deep border of permanently blocked
	// squares on every edge. Any distance-2 neighborhood of an interior
	// square stays inside the backing array, so neighborhood scans need no
	// bounds checks: border squares read as Blocked and the normal rule
	// against moving onto a non-empty square takes care of the rest.
	extendedSide = Side + 4

	boardSize = extendedSide * extendedSide

	// JumpLimit is the number of consecutive jump moves after which the
	// game ends by piece-count majority.
	JumpLimit = 25

	startingPieces = 2
)

// Index returns the linearized index of the square at column c, row r. The
// coordinates may reach two squares past the playing area into the border.
func Index(c, r byte) int {
	return (int(r)-'1'+2)*extendedSide + (int(c) - 'a' + 2)
}

// neighbor returns the index of the square dc columns and dr rows away from sq.
func neighbor(sq, dc, dr int) int {
	return sq + dc + dr*extendedSide
}

func inExtended(c, r byte) bool {
	return int(c) >= 'a'-2 && int(c) <= 'g'+2 && int(r) >= '1'-2 && int(r) <= '7'+2
}

// Board is the Ataxx game state: the extended grid, whose turn it is, piece
// counts, the consecutive-jump counter, the winner once the game is decided,
// the move history, and an undo log that can revert any committed move.
//
// The undo log is a pair of parallel stacks of (square, previous contents)
// entries. A sentinel entry marks the start of each move's change-set, so one
// committed move - including a multi-square capture - reverts atomically.
// All cell writes during a move go through set, never raw array writes, which
// keeps the log complete by construction.
type Board struct {
	cells     [boardSize]PieceColor
	whoseMove PieceColor
	numPieces [4]int // indexed by PieceColor; the Empty slot counts open interior squares
	numJumps  int
	numMoves  int
	winner    PieceColor
	gameOver  bool
	allMoves  []Move

	undoSquares []int // undoSentinel entries delimit move groups
	undoPieces  []PieceColor
	undoJumps   []int // pre-move jump counters, one per group

	notify func(*Board)
}

const undoSentinel = -1

// New returns a board in the initial configuration: Red on the g1 and a7
// corners, Blue on a1 and g7, every other interior square empty, Red to move.
func New() *Board {
	b := &Board{notify: func(*Board) {}}
	b.Clear()
	return b
}

// Clear resets the board to its starting state, with pieces in their initial
// corners, no blocks, and an empty history and undo log.
func (b *Board) Clear() {
	for sq := range b.cells {
		if interior(sq) {
			b.cells[sq] = Empty
		} else {
			b.cells[sq] = Blocked
		}
	}
	b.cells[Index('a', '1')] = Blue
	b.cells[Index('g', '7')] = Blue
	b.cells[Index('g', '1')] = Red
	b.cells[Index('a', '7')] = Red

	b.whoseMove = Red
	b.numPieces = [4]int{}
	b.numPieces[Empty] = Side*Side - 2*startingPieces
	b.numPieces[Red] = startingPieces
	b.numPieces[Blue] = startingPieces
	b.numJumps = 0
	b.numMoves = 0
	b.winner = Empty
	b.gameOver = false
	b.allMoves = nil
	b.undoSquares = nil
	b.undoPieces = nil
	b.undoJumps = nil
	b.announce()
}

// Clone returns a scratch copy of the board: same cells, counts, winner, and
// history, but an empty undo log and a no-op notifier. A clone shares no
// mutable structure with the original, so a searcher can mutate it freely.
func (b *Board) Clone() *Board {
	return &Board{
		cells:     b.cells,
		whoseMove: b.whoseMove,
		numPieces: b.numPieces,
		numJumps:  b.numJumps,
		numMoves:  b.numMoves,
		winner:    b.winner,
		gameOver:  b.gameOver,
		allMoves:  append([]Move(nil), b.allMoves...),
		notify:    func(*Board) {},
	}
}

// SetNotifier registers the callback fired after every committed mutation.
// Passing nil restores the default no-op.
func (b *Board) SetNotifier(notify func(*Board)) {
	if notify == nil {
		notify = func(*Board) {}
	}
	b.notify = notify
	b.announce()
}

func (b *Board) announce() {
	b.notify(b)
}

// Get returns the contents of the square at column c, row r. Coordinates up
// to two squares outside the playing area are valid and read as Blocked.
func (b *Board) Get(c, r byte) PieceColor {
	return b.cells[Index(c, r)]
}

// WhoseMove returns the color of the player who moves next. The value is
// arbitrary once the game is over.
func (b *Board) WhoseMove() PieceColor {
	return b.whoseMove
}

// NumPieces returns the number of pieces of the given color on the board.
func (b *Board) NumPieces(color PieceColor) int {
	return b.numPieces[color]
}

// RedPieces returns the number of red pieces on the board.
func (b *Board) RedPieces() int { return b.numPieces[Red] }

// BluePieces returns the number of blue pieces on the board.
func (b *Board) BluePieces() int { return b.numPieces[Blue] }

// NumJumps returns the number of consecutive jump moves immediately preceding
// the current position. Any extend move resets it to zero.
func (b *Board) NumJumps() int { return b.numJumps }

// NumMoves returns the total number of committed moves and passes since the
// board was created or last cleared.
func (b *Board) NumMoves() int { return b.numMoves }

// AllMoves returns the ordered history of committed moves, including passes.
func (b *Board) AllMoves() []Move {
	return append([]Move(nil), b.allMoves...)
}

// TotalOpen returns the number of empty interior squares.
func (b *Board) TotalOpen() int {
	open := 0
	for sq, v := range b.cells {
		if interior(sq) && v == Empty {
			open++
		}
	}
	return open
}

// Winner returns the game result. The boolean is false while the game is
// ongoing; once it is true, the color is Red or Blue for a win and Empty for
// a draw.
func (b *Board) Winner() (PieceColor, bool) {
	return b.winner, b.gameOver
}

// LegalMove reports whether m is legal on the current board. A pass is legal
// only when the mover still has pieces but no legal placement. A placement is
// legal when its source holds the mover's color, its destination is empty,
// and it is an extend or a jump.
func (b *Board) LegalMove(m Move) bool {
	if m.IsPass() {
		return b.numPieces[b.whoseMove] != 0 && !b.CanMove(b.whoseMove)
	}
	if !inExtended(m.col0, m.row0) || !inExtended(m.col1, m.row1) {
		return false
	}
	if b.cells[m.FromIndex()] != b.whoseMove {
		return false
	}
	if b.cells[m.ToIndex()] != Empty {
		return false
	}
	return m.IsExtend() || m.IsJump()
}

// CanMove reports whether the given player has any legal placement, ignoring
// whose turn it is and whether the game is over. It scans the full board:
// a player can move iff some owned square has an empty square within
// Chebyshev distance 2.
func (b *Board) CanMove(who PieceColor) bool {
	for r := byte('1'); r <= '7'; r++ {
		for c := byte('a'); c <= 'g'; c++ {
			sq := Index(c, r)
			if b.cells[sq] != who {
				continue
			}
			for dr := -2; dr <= 2; dr++ {
				for dc := -2; dc <= 2; dc++ {
					if b.cells[neighbor(sq, dc, dr)] == Empty {
						return true
					}
				}
			}
		}
	}
	return false
}

// MakeMove applies m to the board. Applying an illegal move returns an
// IllegalMoveError and leaves the board untouched; callers are expected to
// have checked legality first.
func (b *Board) MakeMove(m Move) error {
	if !b.LegalMove(m) {
		return &IllegalMoveError{Move: m}
	}
	if m.IsPass() {
		b.pass()
		return nil
	}

	b.allMoves = append(b.allMoves, m)
	b.startUndo()
	b.numMoves++
	mover := b.whoseMove
	opponent := mover.Opposite()

	to := m.ToIndex()
	b.set(to, mover)
	b.numPieces[mover]++
	b.numPieces[Empty]--

	// Capture: every opponent piece adjacent to the destination flips.
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dc == 0 && dr == 0 {
				continue
			}
			sq := neighbor(to, dc, dr)
			if b.cells[sq] == opponent {
				b.set(sq, mover)
				b.numPieces[mover]++
				b.numPieces[opponent]--
			}
		}
	}

	if m.IsJump() {
		b.numJumps++
		b.set(m.FromIndex(), Empty)
		b.numPieces[mover]--
		b.numPieces[Empty]++
	} else {
		b.numJumps = 0
	}

	b.checkTerminal()
	b.whoseMove = opponent
	b.announce()
	return nil
}

// pass records that the current player passes, which is only called once
// LegalMove has vouched for it. No squares change; the undo group is empty.
func (b *Board) pass() {
	b.allMoves = append(b.allMoves, Pass())
	b.startUndo()
	b.numMoves++
	b.whoseMove = b.whoseMove.Opposite()
	b.announce()
}

// Undo reverts the most recent committed move, restoring the board bit for
// bit: every changed square, the piece counts, the jump counter, the mover,
// the history, and any terminal result.
func (b *Board) Undo() error {
	if len(b.allMoves) == 0 || len(b.undoJumps) == 0 {
		// Clones carry the move history but start with an empty undo log.
		return ErrEmptyHistory
	}
	b.allMoves = b.allMoves[:len(b.allMoves)-1]
	b.whoseMove = b.whoseMove.Opposite()
	b.winner = Empty
	b.gameOver = false
	b.numMoves--

	for {
		sq := b.undoSquares[len(b.undoSquares)-1]
		b.undoSquares = b.undoSquares[:len(b.undoSquares)-1]
		if sq == undoSentinel {
			break
		}
		prev := b.undoPieces[len(b.undoPieces)-1]
		b.undoPieces = b.undoPieces[:len(b.undoPieces)-1]
		cur := b.cells[sq]
		b.numPieces[cur]--
		b.numPieces[prev]++
		b.cells[sq] = prev
	}

	b.numJumps = b.undoJumps[len(b.undoJumps)-1]
	b.undoJumps = b.undoJumps[:len(b.undoJumps)-1]
	b.announce()
	return nil
}

// startUndo marks the beginning of one move's change-set and snapshots the
// jump counter, which an extend move clobbers irreversibly otherwise.
func (b *Board) startUndo() {
	b.undoSquares = append(b.undoSquares, undoSentinel)
	b.undoJumps = append(b.undoJumps, b.numJumps)
}

// set writes v to square sq, recording the previous contents in the undo log.
func (b *Board) set(sq int, v PieceColor) {
	b.undoSquares = append(b.undoSquares, sq)
	b.undoPieces = append(b.undoPieces, b.cells[sq])
	b.cells[sq] = v
}

// checkTerminal re-evaluates the end-of-game conditions after a placement:
// a side with no pieces loses outright; otherwise the jump limit or mutual
// immobility ends the game by piece-count majority, with equal counts a draw.
func (b *Board) checkTerminal() {
	if b.numPieces[Red] == 0 {
		b.winner, b.gameOver = Blue, true
	}
	if b.numPieces[Blue] == 0 {
		b.winner, b.gameOver = Red, true
	}
	if b.numJumps >= JumpLimit || (!b.CanMove(Red) && !b.CanMove(Blue)) {
		switch {
		case b.numPieces[Red] > b.numPieces[Blue]:
			b.winner, b.gameOver = Red, true
		case b.numPieces[Red] < b.numPieces[Blue]:
			b.winner, b.gameOver = Blue, true
		default:
			b.winner, b.gameOver = Empty, true
		}
	}
}

// LegalBlock reports whether a block may be placed at column c, row r: both
// players must still hold exactly their starting pieces and the square must
// be empty.
func (b *Board) LegalBlock(c, r byte) bool {
	if !inside(c, r) {
		return false
	}
	if b.numPieces[Red] != startingPieces || b.numPieces[Blue] != startingPieces {
		return false
	}
	return b.cells[Index(c, r)] == Empty
}

// SetBlock places a block at column c, row r and at its reflections across
// the board's center row and center column. The center square reflects only
// to itself; squares on a center line produce one mirror; all others produce
// three. Squares already blocked or occupied are left alone. Block placement
// is part of pre-game setup and is not undoable.
func (b *Board) SetBlock(c, r byte) error {
	if !inside(c, r) {
		return &IllegalSetupError{Col: c, Row: r, Reason: "square out of range"}
	}
	if b.numPieces[Red] != startingPieces || b.numPieces[Blue] != startingPieces {
		return &IllegalSetupError{Col: c, Row: r, Reason: "game already under way"}
	}
	if b.cells[Index(c, r)] != Empty {
		return &IllegalSetupError{Col: c, Row: r, Reason: "square is not empty"}
	}

	mc := byte('a' + 'g' - int(c))
	mr := byte('1' + '7' - int(r))
	var squares []int
	switch {
	case c == 'd' && r == '4':
		squares = []int{Index(c, r)}
	case c == 'd':
		squares = []int{Index(c, r), Index(c, mr)}
	case r == '4':
		squares = []int{Index(c, r), Index(mc, r)}
	default:
		squares = []int{Index(c, r), Index(c, mr), Index(mc, r), Index(mc, mr)}
	}
	for _, sq := range squares {
		if b.cells[sq] == Empty {
			b.cells[sq] = Blocked
			b.numPieces[Empty]--
		}
	}

	if !b.CanMove(Red) && !b.CanMove(Blue) {
		b.winner, b.gameOver = Empty, true
	}
	b.announce()
	return nil
}

// Equal reports whether the two boards have identical contents on every
// square, border included.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells
}

// Hash returns an fnv-64a hash over the full grid. Boards that are Equal
// hash identically.
func (b *Board) Hash() uint64 {
	hasher := fnv.New64a()
	buf := make([]byte, boardSize)
	for i, v := range b.cells {
		buf[i] = byte(v)
	}
	hasher.Write(buf)
	return hasher.Sum64()
}

// String returns a text depiction of the board without a legend.
func (b *Board) String() string {
	return b.Text(false)
}

// Text returns a text depiction of the board, one row per line from row 7
// down to row 1. With legend, row digits and column letters frame the grid.
func (b *Board) Text(legend bool) string {
	var out strings.Builder
	for r := byte('7'); r >= '1'; r-- {
		if legend {
			out.WriteByte(r)
		}
		out.WriteByte(' ')
		for c := byte('a'); c <= 'g'; c++ {
			switch b.Get(c, r) {
			case Red:
				out.WriteString(" r")
			case Blue:
				out.WriteString(" b")
			case Blocked:
				out.WriteString(" X")
			case Empty:
				out.WriteString(" -")
			}
		}
		out.WriteByte('\n')
	}
	if legend {
		out.WriteString("   a b c d e f g")
	}
	return out.String()
}

func interior(sq int) bool {
	col := sq % extendedSide
	row := sq / extendedSide
	return col >= 2 && col <= extendedSide-3 && row >= 2 && row <= extendedSide-3
}

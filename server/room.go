package server

import (
	"sync"

	"ataxx/game"
	"ataxx/searcher"
)

// A Room holds one game: the human connected to it plays Red, the room's
// searcher answers as Blue.
type Room struct {
	ID string

	mu    sync.Mutex
	board *game.Board
	ai    *searcher.Searcher
}

// NewRoom returns a room with a fresh board and an AI opponent searching
// depth plies.
func NewRoom(id string, depth int, seed uint64) *Room {
	return &Room{
		ID:    id,
		board: game.New(),
		ai:    searcher.New(searcher.WithDepth(depth), searcher.WithSeed(seed)),
	}
}

// Update is the server's answer to a client message: the current position
// plus any moves committed since the client's own.
type Update struct {
	Type      string   `json:"type"` // "state" or "error"
	Error     string   `json:"error,omitempty"`
	Board     string   `json:"board,omitempty"`
	WhoseMove string   `json:"whoseMove,omitempty"`
	Red       int      `json:"red"`
	Blue      int      `json:"blue"`
	Winner    string   `json:"winner,omitempty"` // "red", "blue", or "draw"
	Moves     []string `json:"moves,omitempty"`
}

// State returns a snapshot of the room's position.
func (r *Room) State() Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshot(nil)
}

// Reset starts the room's game over, applying the given pre-game blocks. The
// new position is built up separately and only swapped in once every block is
// accepted, so a rejected list leaves the current game untouched.
func (r *Room) Reset(blocks []string) Update {
	r.mu.Lock()
	defer r.mu.Unlock()

	fresh := game.New()
	for _, s := range blocks {
		if len(s) != 2 {
			return errorUpdate("malformed block square " + s)
		}
		if err := fresh.SetBlock(s[0], s[1]); err != nil {
			return errorUpdate(err.Error())
		}
	}
	r.board = fresh
	return r.snapshot(nil)
}

// HandleMove applies the human's move in text form ("a1-b2" or "-"), then
// lets the AI answer for Blue. Illegal moves produce an error update and
// leave the board untouched.
func (r *Room) HandleMove(text string) Update {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, over := r.board.Winner(); over {
		return errorUpdate("game is over")
	}
	if r.board.WhoseMove() != game.Red {
		return errorUpdate("not your turn")
	}
	move, err := game.ParseMove(text)
	if err != nil {
		return errorUpdate(err.Error())
	}
	if !r.board.LegalMove(move) {
		return errorUpdate("illegal move " + move.String())
	}
	if err := r.board.MakeMove(move); err != nil {
		return errorUpdate(err.Error())
	}
	applied := []string{move.String()}

	if _, over := r.board.Winner(); !over && r.board.WhoseMove() == game.Blue {
		reply, _ := r.ai.FindMove(r.board)
		if err := r.board.MakeMove(reply); err != nil {
			return errorUpdate("ai reply " + reply.String() + ": " + err.Error())
		}
		applied = append(applied, reply.String())
	}

	return r.snapshot(applied)
}

// snapshot must be called with the room lock held.
func (r *Room) snapshot(applied []string) Update {
	u := Update{
		Type:      "state",
		Board:     r.board.Text(true),
		WhoseMove: r.board.WhoseMove().String(),
		Red:       r.board.RedPieces(),
		Blue:      r.board.BluePieces(),
		Moves:     applied,
	}
	if winner, over := r.board.Winner(); over {
		if winner == game.Empty {
			u.Winner = "draw"
		} else {
			u.Winner = winner.String()
		}
	}
	return u
}

func errorUpdate(msg string) Update {
	return Update{Type: "error", Error: msg}
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ataxx/engine"
	"ataxx/game"
	"ataxx/searcher"
	"ataxx/server"
)

func main() {
	depth := flag.Int("depth", searcher.MaxDepth, "search depth in plies")
	seed := flag.Uint64("seed", 0, "seed for the AI random source (0 picks one from the clock)")
	red := flag.String("red", "manual", "red player: ai or manual")
	blue := flag.String("blue", "ai", "blue player: ai or manual")
	blocks := flag.String("blocks", "", "space-separated squares to block before play, e.g. \"c3 e5\"")
	serve := flag.String("serve", "", "serve websocket games on this address instead of playing locally")
	debug := flag.Bool("debug", false, "log search statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	if *serve != "" {
		if err := server.New(*depth, *seed).Run(*serve); err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	}

	redPlayer, err := newPlayer(game.Red, *red, *depth, *seed)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -red")
	}
	bluePlayer, err := newPlayer(game.Blue, *blue, *depth, *seed+1)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -blue")
	}

	e, err := engine.New(redPlayer, bluePlayer)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}
	if *blocks != "" {
		if err := e.SetBlocks(strings.Fields(*blocks)...); err != nil {
			log.Fatal().Err(err).Msg("block setup failed")
		}
	}

	out := termenv.NewOutput(os.Stdout)
	e.Board.SetNotifier(func(b *game.Board) {
		renderBoard(out, b)
	})

	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == game.Empty {
		fmt.Println("Drawn game.")
	} else {
		name := winner.String()
		fmt.Printf("%s wins (%d-%d).\n", strings.ToUpper(name[:1])+name[1:],
			e.Board.RedPieces(), e.Board.BluePieces())
	}
}

func newPlayer(color game.PieceColor, kind string, depth int, seed uint64) (engine.Player, error) {
	switch kind {
	case "ai":
		return engine.NewAIPlayer(color, depth, seed), nil
	case "manual":
		return &manualPlayer{color: color, in: bufio.NewScanner(os.Stdin)}, nil
	}
	return nil, fmt.Errorf("unknown player kind %q (want ai or manual)", kind)
}

// manualPlayer reads moves from stdin in text form: "a1-b2" or "-" to pass.
// It re-prompts on malformed or illegal input.
type manualPlayer struct {
	color game.PieceColor
	in    *bufio.Scanner
}

func (p *manualPlayer) Color() game.PieceColor { return p.color }

func (p *manualPlayer) FindMove(b *game.Board) (game.Move, error) {
	for {
		fmt.Printf("%s> ", p.color)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return game.Move{}, err
			}
			return game.Move{}, fmt.Errorf("input closed")
		}
		text := strings.TrimSpace(p.in.Text())
		if text == "" {
			continue
		}
		move, err := game.ParseMove(text)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if !b.LegalMove(move) {
			fmt.Printf("illegal move %s\n", move)
			continue
		}
		return move, nil
	}
}

// renderBoard prints the position with colored pieces, rows 7 down to 1.
func renderBoard(out *termenv.Output, b *game.Board) {
	var sb strings.Builder
	for r := byte('7'); r >= '1'; r-- {
		sb.WriteByte(r)
		for c := byte('a'); c <= 'g'; c++ {
			switch b.Get(c, r) {
			case game.Red:
				sb.WriteString(" " + out.String("r").Foreground(out.Color("1")).Bold().String())
			case game.Blue:
				sb.WriteString(" " + out.String("b").Foreground(out.Color("4")).Bold().String())
			case game.Blocked:
				sb.WriteString(" " + out.String("X").Faint().String())
			case game.Empty:
				sb.WriteString(" " + out.String("-").Faint().String())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g\n")
	fmt.Fprint(out, sb.String())
}

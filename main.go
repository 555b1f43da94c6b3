package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"teeko/engine"
	"teeko/game"
	"teeko/searcher"
)

func main() {
	depth := flag.Int("depth", searcher.DefaultDepth, "Search depth in plies below the top-level move")
	games := flag.Int("games", 1, "Number of games to play")
	opponent := flag.String("opponent", "random", "Opponent type: random or search")
	piece := flag.String("piece", "", "Agent's piece (b or r), random if empty")
	quiet := flag.Bool("quiet", false, "Only log warnings")
	flag.Parse()

	if *quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	options := []engine.Option{engine.WithSearchOptions(searcher.WithDepth(*depth))}
	switch *piece {
	case "":
	case "b":
		options = append(options, engine.WithAgentPiece(game.Black))
	case "r":
		options = append(options, engine.WithAgentPiece(game.Red))
	default:
		fmt.Fprintf(os.Stderr, "unknown piece %q\n", *piece)
		os.Exit(1)
	}

	for i := 0; i < *games; i++ {
		session := engine.NewSession(options...)

		var opp engine.Mover
		switch *opponent {
		case "random":
			opp = engine.NewRandomMover(session.OpponentPiece())
		case "search":
			opp = searcher.NewMinimax(session.OpponentPiece(), searcher.WithDepth(*depth))
		default:
			fmt.Fprintf(os.Stderr, "unknown opponent %q\n", *opponent)
			os.Exit(1)
		}

		winner, err := session.Run(opp)
		if err != nil {
			fmt.Fprintf(os.Stderr, "game %d failed: %v\n", i+1, err)
			os.Exit(1)
		}

		fmt.Print(engine.Render(session.Board()))
		switch winner {
		case game.NoPiece:
			fmt.Printf("game %d: no winner\n", i+1)
		case session.AgentPiece():
			fmt.Printf("game %d: agent (%v) wins\n", i+1, winner)
		default:
			fmt.Printf("game %d: opponent (%v) wins\n", i+1, winner)
		}
	}
}

// Command santorini-selfplay drives the rules engine through
// uniformly-random legal actions and archives the resulting games. It
// is a smoke-test and demo harness for internal/archive, not a search
// or training actor — every action it picks is chosen uniformly at
// random, never evaluated.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/kbrandt/santorini"
	"github.com/kbrandt/santorini/internal/archive"
)

var (
	games = flag.Int("games", 1, "number of games to play")
	dbDir = flag.String("db", "", "archive database directory (default: the platform data directory)")
	seed  = flag.Int64("seed", 0, "PRNG seed; 0 picks a time-based seed")
)

func main() {
	flag.Parse()

	dir := *dbDir
	if dir == "" {
		var err error
		dir, err = archive.DefaultDataDir()
		if err != nil {
			log.Fatalf("santorini-selfplay: %v", err)
		}
	}

	a, err := archive.Open(dir)
	if err != nil {
		log.Fatalf("santorini-selfplay: %v", err)
	}
	defer a.Close()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	for i := 0; i < *games; i++ {
		start := time.Now()
		state := playRandomGame(rng)
		duration := time.Since(start)

		record := archive.NewRecord(state, duration, start)
		if err := a.RecordGame(record); err != nil {
			log.Fatalf("santorini-selfplay: record game %d: %v", i, err)
		}
		log.Printf("game %d: %s in %d plies (%s)", i, record.Outcome, record.Plies, duration)
	}

	stats, err := a.LoadStats()
	if err != nil {
		log.Fatalf("santorini-selfplay: %v", err)
	}
	log.Printf("archive totals: %d games, Player0 wins %d, Player1 wins %d, average %.1f plies",
		stats.GamesPlayed, stats.WinsByPlayer0, stats.WinsByPlayer1, stats.AveragePlies())
}

// playRandomGame runs a single game to completion by choosing uniformly
// among the legal actions at every step. Santorini's monotonically
// increasing building heights guarantee termination well within
// santorini.Game{}.MaxGameLength() plies.
func playRandomGame(rng *rand.Rand) *santorini.State {
	s := santorini.NewGame().NewInitialState()
	for !s.IsTerminal() {
		actions := s.LegalActions()
		s.Apply(actions[rng.Intn(len(actions))])
	}
	return s
}

package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/kbrandt/santorini"
)

const keyStats = "stats"

// Record is a finished game: its full action history, final board, and
// outcome, enough to replay or audit it later.
type Record struct {
	Hash       uint64        `json:"hash"`
	Actions    []string      `json:"actions"`
	FinalBoard string        `json:"final_board"`
	Outcome    string        `json:"outcome"`
	Plies      int           `json:"plies"`
	Duration   time.Duration `json:"duration"`
	PlayedAt   time.Time     `json:"played_at"`
}

// NewRecord builds a Record from a terminal state. It panics if s is
// not terminal — callers only archive finished games.
func NewRecord(s *santorini.State, duration time.Duration, playedAt time.Time) Record {
	if !s.IsTerminal() {
		panic("archive: NewRecord called on a non-terminal state")
	}
	actions, err := parseHistory(s.InformationStateString(santorini.Player0))
	if err != nil {
		// InformationStateString is produced by our own Action.String, so
		// this would only fire on a programmer error upstream.
		panic(fmt.Sprintf("archive: %v", err))
	}
	return Record{
		Hash:       s.Hash(),
		Actions:    actions,
		FinalBoard: s.ObservationString(santorini.Player0),
		Outcome:    s.Outcome().String(),
		Plies:      len(actions),
		Duration:   duration,
		PlayedAt:   playedAt,
	}
}

func parseHistory(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var actions []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				actions = append(actions, s[start:i])
			}
			start = i + 1
		}
	}
	return actions, nil
}

// Stats is the running aggregate over every archived game.
type Stats struct {
	GamesPlayed       int           `json:"games_played"`
	WinsByPlayer0     int           `json:"wins_by_player0"`
	WinsByPlayer1     int           `json:"wins_by_player1"`
	TotalPlies        int           `json:"total_plies"`
	TotalDuration     time.Duration `json:"total_duration"`
	LongestGamePlies  int           `json:"longest_game_plies"`
	ShortestGamePlies int           `json:"shortest_game_plies"`
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{}
}

// AveragePlies returns the mean game length in plies, or 0 if no games
// have been recorded yet.
func (s *Stats) AveragePlies() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.GamesPlayed)
}

func (s *Stats) record(r Record) {
	s.GamesPlayed++
	s.TotalPlies += r.Plies
	s.TotalDuration += r.Duration
	if r.Outcome == santorini.Player0Wins.String() {
		s.WinsByPlayer0++
	} else if r.Outcome == santorini.Player1Wins.String() {
		s.WinsByPlayer1++
	}
	if s.GamesPlayed == 1 || r.Plies > s.LongestGamePlies {
		s.LongestGamePlies = r.Plies
	}
	if s.GamesPlayed == 1 || r.Plies < s.ShortestGamePlies {
		s.ShortestGamePlies = r.Plies
	}
}

// Archive wraps a BadgerDB instance holding game records keyed by
// "game:<unix-nano>:<hash>" (the hash disambiguates games recorded at
// the same instant) plus a single running Stats blob.
type Archive struct {
	db *badger.DB
}

// Open opens (creating if necessary) an Archive backed by the BadgerDB
// database rooted at dir.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", dir, err)
	}
	return &Archive{db: db}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// RecordGame persists a finished game and folds it into the running
// statistics.
func (a *Archive) RecordGame(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("archive: marshal record: %w", err)
	}

	stats, err := a.LoadStats()
	if err != nil {
		return err
	}
	stats.record(r)
	statsData, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("archive: marshal stats: %w", err)
	}

	key := gameKey(r.Hash, r.PlayedAt)
	return a.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(key), data); err != nil {
			return err
		}
		return txn.Set([]byte(keyStats), statsData)
	})
}

// LoadStats returns the current aggregate statistics, or an empty Stats
// if no game has been recorded yet.
func (a *Archive) LoadStats() (*Stats, error) {
	stats := NewStats()
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("archive: load stats: %w", err)
	}
	return stats, nil
}

// RecentGames returns up to limit archived records, most recently
// played first. Keys embed the play timestamp so lexicographic order
// equals chronological order.
func (a *Archive) RecentGames(limit int) ([]Record, error) {
	var records []Record
	prefix := []byte("game:")
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return err
			}
			records = append(records, r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("archive: recent games: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func gameKey(hash uint64, playedAt time.Time) string {
	return fmt.Sprintf("game:%020d:%016x", playedAt.UnixNano(), hash)
}

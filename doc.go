// Package santorini implements the rules engine for the two-player
// abstract strategy game Santorini: state representation, action
// encoding, legal-move generation, transition, terminal/scoring, and
// dense tensor observations. It is meant to plug into a general
// game-playing framework the way bitbucket.org/zurichess/board or
// github.com/hailam/chessplay/internal/board plug into a chess
// engine — the package owns the rules, not search or training.
package santorini

// DebugAssertions gates the extra consistency checks that are too
// expensive (or too strict) to run unconditionally, mirroring the
// board.DebugMoveValidation switch used elsewhere in this codebase's
// lineage. Off by default; the package's own tests leave it off.
var DebugAssertions = false

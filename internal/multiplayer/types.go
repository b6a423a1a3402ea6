// Package multiplayer provides match metadata for local two-seat sessions.
// Both tanks share one keyboard; a match starts when a game is entered and
// ends when the battle is lost or abandoned.
package multiplayer

import (
	"time"

	"github.com/segmentio/ksuid"
)

// SessionID uniquely identifies a terminal session (local or SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// NewSessionID returns a fresh, time-sortable session id.
func NewSessionID() SessionID {
	return SessionID(ksuid.New().String())
}

// NewMatchID returns a fresh, time-sortable match id.
func NewMatchID() MatchID {
	return MatchID(ksuid.New().String())
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeCampaign defends the diamond against portal waves.
	MatchModeCampaign MatchMode = iota

	// MatchModeSurvival holds out against ever faster waves.
	MatchModeSurvival
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeCampaign:
		return "Campaign"
	case MatchModeSurvival:
		return "Survival"
	default:
		return "Unknown"
	}
}

// MatchEndReason describes why a match ended.
type MatchEndReason string

const (
	MatchEndReasonWiped       MatchEndReason = "wiped"        // Both tanks destroyed
	MatchEndReasonDiamondLost MatchEndReason = "diamond_lost" // Carrier escaped with the diamond
	MatchEndReasonAbandoned   MatchEndReason = "abandoned"    // Players left before game over
)

// Match is one round of a game inside a session.
// The platform creates one when a game starts and a new one on every restart.
type Match struct {
	id      MatchID
	mode    MatchMode
	gameID  string
	session SessionID
}

// NewMatch creates a new match with the given parameters.
func NewMatch(gameID string, mode MatchMode, session SessionID) *Match {
	return &Match{
		id:      NewMatchID(),
		mode:    mode,
		gameID:  gameID,
		session: session,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Result builds the persistence record for a finished match.
func (m *Match) Result(score1, score2 int, played time.Duration, reason MatchEndReason) MatchResultData {
	return MatchResultData{
		MatchID:      string(m.id),
		GameID:       m.gameID,
		Mode:         m.mode.String(),
		SessionID:    string(m.session),
		Score1:       score1,
		Score2:       score2,
		EndReason:    string(reason),
		DurationSecs: int(played / time.Second),
	}
}

// MatchResultSaver is an interface for saving match results.
// This allows the platform to save results without depending on the storage package.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GameID       string
	Mode         string
	SessionID    string
	Score1       int
	Score2       int
	EndReason    string
	DurationSecs int
}

// Total returns the combined score of both tanks.
func (r MatchResultData) Total() int {
	return r.Score1 + r.Score2
}

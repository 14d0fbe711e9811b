package server

import (
	"time"

	"trivia-titans/internal/trivia"
)

// Stages a lobby moves through before and during play. Once questions are
// loaded the stage follows the session phase.
const (
	stageSetup   = "setup"
	stageLoading = "loading"
)

const (
	sourceAI     = "ai"
	sourceStatic = "static"
)

// Lobby is one shared-screen game: the roster being built during setup, then
// the running session and finally its packaged result.
type Lobby struct {
	ID            string
	Mode          trivia.Mode
	Source        string
	Locale        string
	QuestionCount int
	Roster        *trivia.Roster
	Session       *trivia.Session
	Loading       bool
	Slow          bool
	Notice        string
	Result        *trivia.Game
	ResultsURL    string
	Persisted     bool
	CreatedAt     time.Time
	Attempt       int
}

func (l *Lobby) Stage() string {
	if l.Loading {
		return stageLoading
	}
	if l.Session == nil {
		return stageSetup
	}
	return string(l.Session.Phase())
}

func (l *Lobby) Players() []trivia.Player {
	if l.Session != nil {
		return l.Session.Players()
	}
	return l.Roster.Players()
}

func (l *Lobby) Finished() bool {
	return l.Session != nil && l.Session.Phase() == trivia.PhaseFinished
}

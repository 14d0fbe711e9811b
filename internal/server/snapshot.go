package server

import (
	"trivia-titans/internal/trivia"
)

type playerView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Glyph    string `json:"glyph"`
	Score    int    `json:"score"`
	Answered bool   `json:"answered"`
	Active   bool   `json:"active"`
	Answer   string `json:"answer,omitempty"`
}

type standingView struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Glyph    string `json:"glyph"`
	Score    int    `json:"score"`
	Leader   bool   `json:"leader"`
}

type questionView struct {
	Number     int    `json:"number"`
	Count      int    `json:"count"`
	Question   string `json:"question"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Answer     string `json:"answer,omitempty"`
}

type gameSnapshot struct {
	GameID          string         `json:"game_id"`
	Stage           string         `json:"stage"`
	Mode            trivia.Mode    `json:"mode"`
	Source          string         `json:"source"`
	Slow            bool           `json:"slow"`
	Notice          string         `json:"notice,omitempty"`
	MaxPlayers      int            `json:"max_players"`
	Players         []playerView   `json:"players"`
	Leaderboard     []standingView `json:"leaderboard"`
	Question        *questionView  `json:"question,omitempty"`
	Remaining       int            `json:"remaining"`
	QuestionSeconds int            `json:"question_seconds"`
	ActivePlayerID  string         `json:"active_player_id,omitempty"`
	HistoryLength   int            `json:"history_length"`
	ResultsURL      string         `json:"results_url,omitempty"`
	Persisted       bool           `json:"persisted"`
}

// snapshot renders the lobby for clients. The caller must hold the store lock.
func snapshot(lobby *Lobby) gameSnapshot {
	snap := gameSnapshot{
		GameID:     lobby.ID,
		Stage:      lobby.Stage(),
		Mode:       lobby.Mode,
		Source:     lobby.Source,
		Slow:       lobby.Slow,
		Notice:     lobby.Notice,
		MaxPlayers: trivia.MaxPlayers,
		ResultsURL: lobby.ResultsURL,
		Persisted:  lobby.Persisted,
	}

	var view trivia.Snapshot
	if lobby.Session != nil {
		view = lobby.Session.Snapshot()
		snap.Remaining = view.Remaining
		snap.QuestionSeconds = view.QuestionSeconds
		snap.HistoryLength = view.HistoryLength
		if view.ActivePlayer != nil && view.Phase != trivia.PhaseFinished {
			snap.ActivePlayerID = view.ActivePlayer.ID
		}
		if q := view.Question; q != nil {
			snap.Question = &questionView{
				Number:     view.QuestionNumber,
				Count:      view.QuestionCount,
				Question:   q.Question,
				Category:   q.Category,
				Difficulty: string(q.Difficulty),
			}
			if view.Phase == trivia.PhaseReveal || view.Phase == trivia.PhaseFinished {
				snap.Question.Answer = q.Answer
			}
		}
	}

	players := lobby.Players()
	snap.Players = make([]playerView, 0, len(players))
	for _, p := range players {
		snap.Players = append(snap.Players, playerView{
			ID:       p.ID,
			Name:     p.Name,
			Avatar:   string(p.Avatar),
			Glyph:    p.Avatar.Glyph(),
			Score:    p.Score,
			Answered: view.Answered[p.ID],
			Active:   p.ID == snap.ActivePlayerID,
			Answer:   view.Answers[p.ID],
		})
	}
	standings := trivia.Leaderboard(players)
	snap.Leaderboard = make([]standingView, 0, len(standings))
	for _, st := range standings {
		snap.Leaderboard = append(snap.Leaderboard, standingView{
			Rank:     st.Rank,
			PlayerID: st.Player.ID,
			Name:     st.Player.Name,
			Glyph:    st.Player.Avatar.Glyph(),
			Score:    st.Player.Score,
			Leader:   st.Leader,
		})
	}
	return snap
}

func (s *Server) lobbySnapshot(gameID string) (gameSnapshot, bool) {
	var snap gameSnapshot
	ok := s.store.View(gameID, func(lobby *Lobby) {
		snap = snapshot(lobby)
	})
	return snap, ok
}

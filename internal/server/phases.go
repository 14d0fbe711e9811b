package server

import (
	"context"
	"errors"
	"net/url"

	"trivia-titans/internal/db"
	"trivia-titans/internal/trivia"
)

var errNotInSetup = errors.New("game has already started")

const (
	loadFailedNotice = "Could not load questions. Check the settings and try starting again."
	saveFailedNotice = "Could not save this game. The results below are kept on this link; try saving again."
)

// drawQuestions fetches the question list for a new game from the chosen source.
func (s *Server) drawQuestions(ctx context.Context, source, locale string, n int) ([]trivia.Question, error) {
	var src trivia.QuestionSource
	switch source {
	case sourceAI:
		src = &trivia.GenerativeSource{Generator: s.deps.Generator, Timeout: s.cfg.AITimeout()}
	default:
		src = trivia.NewStaticSource(s.staticCatalog(locale))
	}
	return src.Draw(ctx, n)
}

// staticCatalog prefers the curated library in the database and falls back
// to the built-in catalog.
func (s *Server) staticCatalog(locale string) []trivia.Question {
	if s.db != nil {
		questions, err := db.LibraryQuestions(s.db, locale)
		if err != nil {
			s.logger.Warn("question library unavailable", "locale", locale, "error", err)
		} else if len(questions) > 0 {
			return questions
		}
	}
	return trivia.Catalog(locale)
}

func (s *Server) resolveSource(requested string) string {
	source := requested
	if source == "" {
		source = s.cfg.QuestionSource
		if source == sourceAI && s.deps.Generator == nil {
			source = sourceStatic
		}
	}
	if source != sourceAI {
		source = sourceStatic
	}
	return source
}

func (s *Server) resolveMode(requested string) trivia.Mode {
	if mode, err := trivia.ParseMode(requested); err == nil && requested != "" {
		return mode
	}
	if mode, err := trivia.ParseMode(s.cfg.GameMode); err == nil {
		return mode
	}
	return trivia.ModeFreeForAll
}

// saveResult performs the awaited final write and picks where the results
// page should be loaded from.
func (s *Server) saveResult(game trivia.Game, locale string) (resultsURL, notice string, persisted bool) {
	if s.db == nil {
		return localResultsURL(game), "", false
	}
	if err := s.persistFinish(game, locale); err != nil {
		s.logger.Error("persist finished game failed", "game_id", game.ID, "error", err)
		return localResultsURL(game), saveFailedNotice, false
	}
	return "/results/" + game.ID, "", true
}

func (s *Server) finishGame(gameID string, game trivia.Game, locale string) {
	resultsURL, notice, persisted := s.saveResult(game, locale)
	_ = s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		lobby.ResultsURL = resultsURL
		lobby.Notice = notice
		lobby.Persisted = persisted
		return nil
	})
	attrs := []any{"game_id", gameID, "questions", len(game.History), "persisted", persisted}
	if winner, ok := trivia.Winner(game.Players); ok {
		attrs = append(attrs, "winner", winner.Name, "score", winner.Score)
	}
	s.logger.Info("game finished", attrs...)
}

func localResultsURL(game trivia.Game) string {
	blob, err := trivia.EncodeGame(game)
	if err != nil {
		return ""
	}
	return "/results/" + trivia.LocalGameID + "?" + url.Values{"game": {blob}}.Encode()
}

// findResult locates a finished game in memory first, then in the database.
func (s *Server) findResult(id string) (trivia.Game, error) {
	if game, ok := s.store.FinishedGame(id); ok {
		return game, nil
	}
	game, err := s.loadGame(id)
	if err != nil {
		return trivia.Game{}, err
	}
	if game.Status != trivia.StatusFinished {
		return trivia.Game{}, errResultNotFound
	}
	return game, nil
}

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trivia-titans/internal/db"
	"trivia-titans/internal/trivia"
)

var errResultNotFound = errors.New("game not found")

// persistStart writes the in-progress record when play begins.
func (s *Server) persistStart(game trivia.Game, locale, source string) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		record := db.Game{
			ID:        game.ID,
			Mode:      string(game.Mode),
			Status:    string(trivia.StatusInProgress),
			Locale:    locale,
			CreatedAt: game.CreatedAt,
		}
		if err := tx.Create(&record).Error; err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("game %s already recorded: %w", game.ID, err)
			}
			return err
		}
		if err := savePlayers(tx, game); err != nil {
			return err
		}
		if err := saveQuestions(tx, game); err != nil {
			return err
		}
		return persistEvent(tx, game.ID, "game_started", EventPayload{
			Mode:      string(game.Mode),
			Source:    source,
			Players:   len(game.Players),
			Questions: len(game.Questions),
		})
	})
}

// persistFinish writes the final roster, questions and history. It is safe to
// call again after a failure.
func (s *Server) persistFinish(game trivia.Game, locale string) error {
	if s.db == nil {
		return nil
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		finishedAt := time.Now().UTC()
		record := db.Game{
			ID:         game.ID,
			Mode:       string(game.Mode),
			Status:     string(trivia.StatusFinished),
			Locale:     locale,
			CreatedAt:  game.CreatedAt,
			FinishedAt: &finishedAt,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "finished_at", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return err
		}
		if err := savePlayers(tx, game); err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", game.ID).Delete(&db.Question{}).Error; err != nil {
			return err
		}
		if err := saveQuestions(tx, game); err != nil {
			return err
		}
		if err := tx.Where("game_id = ?", game.ID).Delete(&db.HistoryEntry{}).Error; err != nil {
			return err
		}
		for i, entry := range game.History {
			answers, err := json.Marshal(entry.Players)
			if err != nil {
				return err
			}
			row := db.HistoryEntry{
				GameID:        game.ID,
				Position:      i,
				Question:      entry.Question,
				Category:      entry.Category,
				CorrectAnswer: entry.CorrectAnswer,
				Answers:       datatypes.JSON(answers),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		payload := EventPayload{Players: len(game.Players), Questions: len(game.History)}
		if winner, ok := trivia.Winner(game.Players); ok {
			payload.Winner = winner.Name
			payload.TopScore = winner.Score
		}
		return persistEvent(tx, game.ID, "game_finished", payload)
	})
}

func savePlayers(tx *gorm.DB, game trivia.Game) error {
	for i, p := range game.Players {
		row := db.Player{
			ID:       p.ID,
			GameID:   game.ID,
			Name:     p.Name,
			Avatar:   string(p.Avatar),
			Score:    p.Score,
			Position: i,
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func saveQuestions(tx *gorm.DB, game trivia.Game) error {
	for i, q := range game.Questions {
		row := db.Question{
			GameID:     game.ID,
			Position:   i,
			Text:       q.Question,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: string(q.Difficulty),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func persistEvent(tx *gorm.DB, gameID, eventType string, payload EventPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		GameID:  gameID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	return tx.Create(&event).Error
}

// loadGame reads a persisted game back into its domain form.
func (s *Server) loadGame(id string) (trivia.Game, error) {
	if s.db == nil {
		return trivia.Game{}, errResultNotFound
	}
	var record db.Game
	err := s.db.
		Preload("Players", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("id = ?", id).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return trivia.Game{}, errResultNotFound
	}
	if err != nil {
		return trivia.Game{}, err
	}

	game := trivia.Game{
		ID:        record.ID,
		Mode:      trivia.Mode(record.Mode),
		Status:    trivia.Status(record.Status),
		CreatedAt: record.CreatedAt,
		Players:   make([]trivia.Player, 0, len(record.Players)),
		Questions: make([]trivia.Question, 0, len(record.Questions)),
		History:   make([]trivia.HistoryEntry, 0, len(record.History)),
	}
	for _, p := range record.Players {
		game.Players = append(game.Players, trivia.Player{
			ID:     p.ID,
			Name:   p.Name,
			Avatar: trivia.Avatar(p.Avatar),
			Score:  p.Score,
		})
	}
	for _, q := range record.Questions {
		game.Questions = append(game.Questions, trivia.Question{
			Question:   q.Text,
			Answer:     q.Answer,
			Category:   q.Category,
			Difficulty: trivia.Difficulty(q.Difficulty),
		})
	}
	for _, h := range record.History {
		entry := trivia.HistoryEntry{
			Question:      h.Question,
			Category:      h.Category,
			CorrectAnswer: h.CorrectAnswer,
		}
		if err := json.Unmarshal(h.Answers, &entry.Players); err != nil {
			return trivia.Game{}, fmt.Errorf("decode history %d: %w", h.Position, err)
		}
		game.History = append(game.History, entry)
	}
	return game, nil
}

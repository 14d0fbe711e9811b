package db

import (
	"time"

	"gorm.io/datatypes"
)

type Game struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Mode       string    `gorm:"size:32;not null"`
	Status     string    `gorm:"size:32;not null;index"`
	Locale     string    `gorm:"size:8;not null;default:en"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
	FinishedAt *time.Time
	Players    []Player       `gorm:"constraint:OnDelete:CASCADE"`
	Questions  []Question     `gorm:"constraint:OnDelete:CASCADE"`
	History    []HistoryEntry `gorm:"constraint:OnDelete:CASCADE"`
	Events     []Event        `gorm:"constraint:OnDelete:CASCADE"`
}

type Player struct {
	ID        string    `gorm:"primaryKey;size:36"`
	GameID    string    `gorm:"size:36;index;not null;uniqueIndex:idx_players_game_name"`
	Name      string    `gorm:"size:64;not null;uniqueIndex:idx_players_game_name"`
	Avatar    string    `gorm:"size:16;not null"`
	Score     int       `gorm:"not null;default:0"`
	Position  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// Question is one question played in a game, in play order.
type Question struct {
	ID         uint      `gorm:"primaryKey"`
	GameID     string    `gorm:"size:36;index;not null;uniqueIndex:idx_questions_game_position"`
	Position   int       `gorm:"not null;uniqueIndex:idx_questions_game_position"`
	Text       string    `gorm:"size:512;not null"`
	Answer     string    `gorm:"size:256;not null"`
	Category   string    `gorm:"size:64;not null"`
	Difficulty string    `gorm:"size:16;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// HistoryEntry stores one resolved question. Answers holds the per-player
// results as a JSON array.
type HistoryEntry struct {
	ID            uint           `gorm:"primaryKey"`
	GameID        string         `gorm:"size:36;index;not null;uniqueIndex:idx_history_game_position"`
	Position      int            `gorm:"not null;uniqueIndex:idx_history_game_position"`
	Question      string         `gorm:"size:512;not null"`
	Category      string         `gorm:"size:64;not null"`
	CorrectAnswer string         `gorm:"size:256;not null"`
	Answers       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt     time.Time      `gorm:"not null"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    string         `gorm:"size:36;index;not null"`
	PlayerID  *string        `gorm:"size:36;index"`
	Type      string         `gorm:"size:64;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"not null"`
}

type Session struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Flash     string    `gorm:"size:280"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// QuestionLibrary is the curated static catalog loaded from CSV.
type QuestionLibrary struct {
	ID         uint      `gorm:"primaryKey"`
	Locale     string    `gorm:"size:8;not null;default:en;uniqueIndex:idx_question_library_locale_text"`
	Category   string    `gorm:"size:64;not null"`
	Question   string    `gorm:"size:512;not null;uniqueIndex:idx_question_library_locale_text"`
	Answer     string    `gorm:"size:256;not null"`
	Difficulty string    `gorm:"size:16;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (QuestionLibrary) TableName() string {
	return "question_library"
}

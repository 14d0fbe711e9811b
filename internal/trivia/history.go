package trivia

import (
	"fmt"
	"strings"
	"time"
)

const NoAnswer = "No answer"

type Status string

const (
	StatusInProgress Status = "in-progress"
	StatusFinished   Status = "finished"
)

// PlayerAnswer is one player's recorded outcome for a question.
type PlayerAnswer struct {
	Name      string `json:"name"`
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

// HistoryEntry records one resolved question. Entries are never mutated once
// appended.
type HistoryEntry struct {
	Question      string         `json:"question"`
	Category      string         `json:"category"`
	CorrectAnswer string         `json:"correctAnswer"`
	Players       []PlayerAnswer `json:"players"`
}

// Game is the packaged record of a session.
type Game struct {
	ID        string         `json:"id"`
	Mode      Mode           `json:"mode,omitempty"`
	Players   []Player       `json:"players"`
	Questions []Question     `json:"questions"`
	History   []HistoryEntry `json:"history"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Transcript flattens history into the text handed to the summarizer.
func Transcript(history []HistoryEntry) string {
	blocks := make([]string, 0, len(history))
	for _, entry := range history {
		var b strings.Builder
		fmt.Fprintf(&b, "Question: %q (Category: %s, Answer: %s)", entry.Question, entry.Category, entry.CorrectAnswer)
		for _, p := range entry.Players {
			verdict := "Incorrect"
			if p.IsCorrect {
				verdict = "Correct"
			}
			fmt.Fprintf(&b, "\n  - %s answered %q (%s)", p.Name, p.Answer, verdict)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

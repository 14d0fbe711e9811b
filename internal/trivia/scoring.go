package trivia

import (
	"fmt"
	"strings"
)

const PointsPerCorrect = 10

type Mode string

const (
	ModeFreeForAll   Mode = "free-for-all"
	ModeRotatingTurn Mode = "rotating-turn"
)

func ParseMode(raw string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(raw))); m {
	case ModeFreeForAll, ModeRotatingTurn:
		return m, nil
	case "":
		return ModeFreeForAll, nil
	default:
		return "", invalid("mode", fmt.Errorf("unknown game mode %q", raw))
	}
}

// Judgment is the host's call on the active player's spoken answer.
type Judgment string

const (
	JudgmentCorrect   Judgment = "correct"
	JudgmentIncorrect Judgment = "incorrect"
	JudgmentError     Judgment = "error"
)

func ParseJudgment(raw string) (Judgment, error) {
	switch j := Judgment(strings.ToLower(strings.TrimSpace(raw))); j {
	case JudgmentCorrect, JudgmentIncorrect, JudgmentError:
		return j, nil
	default:
		return "", invalid("judgment", ErrBadJudgment)
	}
}

func (j Judgment) label() string {
	switch j {
	case JudgmentCorrect:
		return "Correct"
	case JudgmentIncorrect:
		return "Incorrect"
	default:
		return "Unanswerable"
	}
}

// RoundInput carries what was collected while the question was open.
type RoundInput struct {
	Answers  map[string]string
	Active   int
	Judgment Judgment
}

// RoundOutcome is what resolving one question produces.
type RoundOutcome struct {
	ScoreDeltas map[string]int
	Entry       HistoryEntry
	NextActive  int
}

// ScoringStrategy is the pluggable rule set of a session.
type ScoringStrategy interface {
	Mode() Mode
	ResolveRound(q Question, players []Player, input RoundInput) RoundOutcome
}

func StrategyFor(mode Mode) ScoringStrategy {
	if mode == ModeRotatingTurn {
		return RotatingTurn{}
	}
	return FreeForAll{}
}

func newEntry(q Question, size int) HistoryEntry {
	return HistoryEntry{
		Question:      q.Question,
		Category:      q.Category,
		CorrectAnswer: q.Answer,
		Players:       make([]PlayerAnswer, 0, size),
	}
}

// AnswerMatches compares case-insensitively without further normalization.
func AnswerMatches(answer, correct string) bool {
	return strings.ToLower(answer) == strings.ToLower(correct)
}

// FreeForAll scores every player's typed answer.
type FreeForAll struct{}

func (FreeForAll) Mode() Mode { return ModeFreeForAll }

func (FreeForAll) ResolveRound(q Question, players []Player, input RoundInput) RoundOutcome {
	outcome := RoundOutcome{
		ScoreDeltas: make(map[string]int),
		Entry:       newEntry(q, len(players)),
		NextActive:  input.Active,
	}
	scorable := q.Scorable()
	for _, player := range players {
		answer, ok := input.Answers[player.ID]
		correct := ok && scorable && AnswerMatches(answer, q.Answer)
		if !ok {
			answer = NoAnswer
		}
		if correct {
			outcome.ScoreDeltas[player.ID] += PointsPerCorrect
		}
		outcome.Entry.Players = append(outcome.Entry.Players, PlayerAnswer{
			Name:      player.Name,
			Answer:    answer,
			IsCorrect: correct,
		})
	}
	return outcome
}

// RotatingTurn scores only the active player, judged by the host.
type RotatingTurn struct{}

func (RotatingTurn) Mode() Mode { return ModeRotatingTurn }

func (RotatingTurn) ResolveRound(q Question, players []Player, input RoundInput) RoundOutcome {
	outcome := RoundOutcome{
		ScoreDeltas: make(map[string]int),
		Entry:       newEntry(q, 1),
		NextActive:  input.Active,
	}
	if len(players) == 0 || input.Active < 0 || input.Active >= len(players) {
		return outcome
	}
	active := players[input.Active]
	judgment := input.Judgment
	if !q.Scorable() {
		judgment = JudgmentError
	}
	switch judgment {
	case JudgmentCorrect:
		outcome.ScoreDeltas[active.ID] += PointsPerCorrect
	case JudgmentIncorrect:
		outcome.NextActive = (input.Active + 1) % len(players)
	}
	outcome.Entry.Players = append(outcome.Entry.Players, PlayerAnswer{
		Name:      active.Name,
		Answer:    judgment.label(),
		IsCorrect: judgment == JudgmentCorrect,
	})
	return outcome
}

package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	MinGeneratedQuestions = 1
	MaxGeneratedQuestions = 50
)

// QuestionSource supplies the ordered questions for one session. A
// non-positive n asks for every question the source has.
type QuestionSource interface {
	Draw(ctx context.Context, n int) ([]Question, error)
}

// Generator is the external prompt service that writes new questions.
type Generator interface {
	GenerateQuestions(ctx context.Context, count int) ([]Question, error)
}

// Rand yields a uniform integer in [0, n).
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a Fisher-Yates permutation of questions. The input slice is
// left untouched.
func Shuffle(questions []Question, rng Rand) []Question {
	if rng == nil {
		rng = globalRand{}
	}
	out := make([]Question, len(questions))
	copy(out, questions)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// StaticSource draws from a fixed in-memory catalog.
type StaticSource struct {
	Questions []Question
	Rand      Rand
}

func NewStaticSource(questions []Question) *StaticSource {
	return &StaticSource{Questions: questions}
}

func (s *StaticSource) Draw(ctx context.Context, n int) ([]Question, error) {
	if len(s.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	shuffled := Shuffle(s.Questions, s.Rand)
	if n > 0 && n < len(shuffled) {
		shuffled = shuffled[:n]
	}
	return shuffled, nil
}

// GenerativeSource asks a Generator for exactly n hard questions. Every
// failure is reported as a *GenerationError so callers can abort the game.
type GenerativeSource struct {
	Generator Generator
	Timeout   time.Duration
}

func (s *GenerativeSource) Draw(ctx context.Context, n int) ([]Question, error) {
	if n < MinGeneratedQuestions || n > MaxGeneratedQuestions {
		return nil, invalid("numberOfQuestions", ErrQuestionCount)
	}
	if s.Generator == nil {
		return nil, &GenerationError{Op: "generate questions", Err: errors.New("question generator is not configured")}
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}
	questions, err := s.Generator.GenerateQuestions(ctx, n)
	if err != nil {
		return nil, &GenerationError{Op: "generate questions", Err: err}
	}
	if len(questions) != n {
		return nil, &GenerationError{Op: "generate questions", Err: fmt.Errorf("expected %d questions, got %d", n, len(questions))}
	}
	out := make([]Question, 0, len(questions))
	for i, q := range questions {
		q.Difficulty = DifficultyHard
		if err := q.Validate(); err != nil {
			return nil, &GenerationError{Op: "generate questions", Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		out = append(out, q)
	}
	return out, nil
}

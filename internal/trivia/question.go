package trivia

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is immutable once drawn into a session.
type Question struct {
	Question   string     `json:"question" validate:"required,notblank,max=500"`
	Answer     string     `json:"answer" validate:"required,notblank,max=200"`
	Category   string     `json:"category" validate:"required,notblank,max=64"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=easy medium hard"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func questionValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Validate checks the record against the question schema.
func (q Question) Validate() error {
	if err := questionValidator().Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid question field %s (%s)", strings.ToLower(verrs[0].Field()), verrs[0].Tag())
		}
		return err
	}
	return nil
}

// Scorable reports whether the question has a usable correct answer.
func (q Question) Scorable() bool {
	return strings.TrimSpace(q.Answer) != ""
}

func ParseDifficulty(raw string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(raw))); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q", raw)
	}
}

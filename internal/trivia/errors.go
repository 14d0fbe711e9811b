package trivia

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName        = errors.New("player name cannot be empty")
	ErrNameTooLong      = fmt.Errorf("player name must be %d characters or fewer", MaxNameLength)
	ErrDuplicateName    = errors.New("player name must be unique")
	ErrCapacityExceeded = fmt.Errorf("cannot add more than %d players", MaxPlayers)
	ErrNoPlayers        = errors.New("add at least one player to start")
	ErrUnknownAvatar    = errors.New("unknown avatar")

	ErrNoQuestions     = errors.New("no questions available")
	ErrQuestionCount   = fmt.Errorf("number of questions must be between %d and %d", MinGeneratedQuestions, MaxGeneratedQuestions)
	ErrWrongPhase      = errors.New("action not allowed in current phase")
	ErrWrongMode       = errors.New("action not allowed in this game mode")
	ErrFinished        = errors.New("game already finished")
	ErrNotFinished     = errors.New("game not finished")
	ErrUnknownPlayer   = errors.New("player not found")
	ErrAlreadyAnswered = errors.New("player already answered")
	ErrEmptyAnswer     = errors.New("answer cannot be empty")
	ErrBadJudgment     = errors.New("unknown judgment")

	ErrMalformedGame = errors.New("game data is missing or corrupted")
)

// ValidationError is a locally recoverable input problem. The wrapped error is
// one of the sentinel values above.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// GenerationError reports a failed or malformed call to the question or
// summary service.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-titans/internal/trivia"
)

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// writeDomainError maps game errors onto HTTP statuses.
func writeDomainError(c *gin.Context, err error) {
	var (
		verr *trivia.ValidationError
		gerr *trivia.GenerationError
	)
	switch {
	case errors.Is(err, errLobbyNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &verr):
		writeError(c, http.StatusBadRequest, verr.Error())
	case errors.As(err, &gerr):
		writeError(c, http.StatusBadGateway, gerr.Error())
	case errors.Is(err, trivia.ErrUnknownPlayer):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trivia.ErrWrongPhase),
		errors.Is(err, trivia.ErrWrongMode),
		errors.Is(err, trivia.ErrFinished),
		errors.Is(err, trivia.ErrNotFinished),
		errors.Is(err, trivia.ErrAlreadyAnswered),
		errors.Is(err, errNotInSetup):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "something went wrong")
	}
}

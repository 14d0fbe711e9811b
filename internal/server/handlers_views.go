package server

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"trivia-titans/internal/trivia"
	"trivia-titans/internal/web"
)

const qrSize = 320

func (s *Server) handleHome(c *gin.Context) {
	data := web.HomeData{
		Flash:       s.sessions.PopFlash(c),
		Mode:        string(s.resolveMode("")),
		Source:      s.resolveSource(""),
		Questions:   s.cfg.QuestionsPerGame,
		AIAvailable: s.deps.Generator != nil,
	}
	for _, summary := range s.store.ListSummaries() {
		if summary.Stage == string(trivia.PhaseFinished) {
			continue
		}
		data.Games = append(data.Games, web.GameSummary{
			ID:      summary.ID,
			Stage:   summary.Stage,
			Mode:    string(summary.Mode),
			Players: summary.Players,
		})
	}
	render(c, http.StatusOK, web.Home(data))
}

func (s *Server) handleGameView(c *gin.Context) {
	gameID := c.Param("id")
	if !s.store.Exists(gameID) {
		s.logger.Info("game view missing", "game_id", gameID)
		s.sessions.SetFlash(c, "That game no longer exists.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	avatars := trivia.Avatars()
	options := make([]web.AvatarOption, 0, len(avatars))
	for _, avatar := range avatars {
		options = append(options, web.AvatarOption{Key: string(avatar), Glyph: avatar.Glyph()})
	}
	render(c, http.StatusOK, web.GameView(web.GameData{GameID: gameID, Avatars: options}))
}

// handleResultsView renders a finished game, either by id or from the
// self-contained blob carried by a local deep link.
func (s *Server) handleResultsView(c *gin.Context) {
	id := c.Param("id")
	data := web.ResultsData{QRURL: c.Request.URL.Path + "/qr"}
	if c.Request.URL.RawQuery != "" {
		data.QRURL += "?" + c.Request.URL.RawQuery
	}

	var game trivia.Game
	if id == trivia.LocalGameID {
		blob := c.Query("game")
		decoded, err := trivia.DecodeGame(blob)
		if err != nil {
			s.logger.Info("results link malformed", "error", err)
			render(c, http.StatusBadRequest, web.ResultsError("This results link is missing or corrupted."))
			return
		}
		game = decoded
		data.LocalGame = blob
	} else {
		found, err := s.findResult(id)
		if err != nil {
			if !errors.Is(err, errResultNotFound) {
				s.logger.Error("load results failed", "game_id", id, "error", err)
			}
			render(c, http.StatusNotFound, web.ResultsError("We could not find that game."))
			return
		}
		game = found
		data.SummaryURL = "/api/results/" + id + "/summary"
		s.store.View(id, func(lobby *Lobby) {
			data.Notice = lobby.Notice
		})
	}
	fillResults(&data, game)
	render(c, http.StatusOK, web.ResultsView(data))
}

func fillResults(data *web.ResultsData, game trivia.Game) {
	data.GameID = game.ID
	data.Mode = string(game.Mode)
	if !game.CreatedAt.IsZero() {
		data.PlayedAt = game.CreatedAt.Format("Jan 2, 2006 15:04")
	}
	for _, st := range trivia.Leaderboard(game.Players) {
		data.Standings = append(data.Standings, web.ResultStanding{
			Rank:   st.Rank,
			Name:   st.Player.Name,
			Glyph:  st.Player.Avatar.Glyph(),
			Score:  st.Player.Score,
			Leader: st.Leader,
		})
	}
	for i, entry := range game.History {
		row := web.ResultEntry{
			Number:        i + 1,
			Question:      entry.Question,
			Category:      entry.Category,
			CorrectAnswer: entry.CorrectAnswer,
		}
		for _, answer := range entry.Players {
			row.Answers = append(row.Answers, web.ResultAnswer{
				Name:      answer.Name,
				Answer:    answer.Answer,
				IsCorrect: answer.IsCorrect,
			})
		}
		data.History = append(data.History, row)
	}
}

// handleResultsQR encodes the absolute results URL as a PNG.
func (s *Server) handleResultsQR(c *gin.Context) {
	id := c.Param("id")
	path := "/results/" + id
	if id == trivia.LocalGameID {
		if _, err := trivia.DecodeGame(c.Query("game")); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		path += "?" + c.Request.URL.RawQuery
	} else if _, err := s.findResult(id); err != nil {
		writeError(c, http.StatusNotFound, "results not found")
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	png, err := qrcode.Encode(scheme+"://"+c.Request.Host+path, qrcode.Medium, qrSize)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "qr generation failed")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func render(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		_ = c.Error(err)
	}
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"trivia-titans/internal/trivia"
)

type createGameRequest struct {
	Mode      string `json:"mode" binding:"omitempty,mode"`
	Source    string `json:"source" binding:"omitempty,source"`
	Questions int    `json:"questions" binding:"omitempty,min=1,max=50"`
	Locale    string `json:"locale" binding:"omitempty,max=8"`
}

type addPlayerRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar" binding:"required,avatar"`
}

type answerRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Answer   string `json:"answer"`
}

type judgeRequest struct {
	Judgment string `json:"judgment" binding:"required,judgment"`
}

type localSummaryRequest struct {
	Game string `json:"game" binding:"required"`
}

type analysisRequest struct {
	GameIDs []string `json:"game_ids" binding:"required,min=1,max=50,dive,required"`
}

var createGameMessages = bindMessages{
	"Mode":      {"mode": "mode must be free-for-all or rotating-turn"},
	"Source":    {"source": "source must be ai or static"},
	"Questions": {"min": "number of questions must be between 1 and 50", "max": "number of questions must be between 1 and 50"},
}

var addPlayerMessages = bindMessages{
	"Avatar": {"required": "pick an avatar", "avatar": "pick one of the available avatars"},
}

var answerMessages = bindMessages{
	"PlayerID": {"required": "player_id is required"},
}

var judgeMessages = bindMessages{
	"Judgment": {"required": "judgment is required", "judgment": "judgment must be correct, incorrect or error"},
}

func (s *Server) handleCreateGame(c *gin.Context) {
	var req createGameRequest
	if !bindOptionalJSON(c, &req, createGameMessages, "invalid game settings") {
		return
	}
	count := req.Questions
	if count == 0 {
		count = s.cfg.QuestionsPerGame
	}
	locale := req.Locale
	if locale == "" {
		locale = s.cfg.QuestionLocale
	}
	lobby := s.store.CreateLobby(s.resolveMode(req.Mode), s.resolveSource(req.Source), locale, count)
	s.logger.Info("game created", "game_id", lobby.ID, "mode", lobby.Mode, "source", lobby.Source, "questions", count)
	c.JSON(http.StatusCreated, gin.H{
		"game_id": lobby.ID,
		"url":     "/games/" + lobby.ID,
	})
}

func (s *Server) handleGetGame(c *gin.Context) {
	snap, ok := s.lobbySnapshot(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, errLobbyNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (s *Server) handleAddPlayer(c *gin.Context) {
	gameID := c.Param("id")
	var req addPlayerRequest
	if !bindJSON(c, &req, addPlayerMessages, "invalid player") {
		return
	}
	avatar, err := trivia.ParseAvatar(req.Avatar)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	var player trivia.Player
	err = s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		if lobby.Stage() != stageSetup {
			return errNotInSetup
		}
		added, err := lobby.Roster.Add(req.Name, avatar)
		if err != nil {
			return err
		}
		player = added
		lobby.Notice = ""
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	s.logger.Info("player added", "game_id", gameID, "player_id", player.ID, "name", player.Name)
	s.broadcastLobby(gameID)
	c.JSON(http.StatusCreated, gin.H{"player": playerView{
		ID:     player.ID,
		Name:   player.Name,
		Avatar: string(player.Avatar),
		Glyph:  player.Avatar.Glyph(),
	}})
}

func (s *Server) handleRemovePlayer(c *gin.Context) {
	gameID := c.Param("id")
	var removed bool
	err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		if lobby.Stage() != stageSetup {
			return errNotInSetup
		}
		removed = lobby.Roster.Remove(c.Param("playerID"))
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if removed {
		s.broadcastLobby(gameID)
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// handleStartGame freezes the roster and loads the questions. The request is
// held open while the source is consulted; a failed load returns the lobby to
// setup with its roster intact and nothing persisted.
func (s *Server) handleStartGame(c *gin.Context) {
	gameID := c.Param("id")
	var (
		players   []trivia.Player
		lobbyMode trivia.Mode
		source    string
		locale    string
		count     int
		attempt   int
	)
	err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		if lobby.Stage() != stageSetup {
			return errNotInSetup
		}
		frozen, err := lobby.Roster.Freeze()
		if err != nil {
			return err
		}
		players = frozen
		lobby.Loading = true
		lobby.Slow = false
		lobby.Notice = ""
		lobby.Attempt++
		lobbyMode, source, locale, count, attempt = lobby.Mode, lobby.Source, lobby.Locale, lobby.QuestionCount, lobby.Attempt
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	s.broadcastLobby(gameID)
	s.startSlowTimer(gameID, attempt)

	questions, err := s.drawQuestions(c.Request.Context(), source, locale, count)
	s.cancelSlowTimer(gameID)
	if err != nil {
		s.logger.Warn("question load failed", "game_id", gameID, "source", source, "error", err)
		_ = s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
			lobby.Loading = false
			lobby.Slow = false
			lobby.Notice = loadFailedNotice
			return nil
		})
		s.sessions.SetFlash(c, loadFailedNotice)
		s.broadcastLobby(gameID)
		status := http.StatusBadGateway
		var verr *trivia.ValidationError
		if errors.As(err, &verr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error":  err.Error(),
			"notice": loadFailedNotice,
			"stage":  stageSetup,
		})
		return
	}

	var record trivia.Game
	err = s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		session := trivia.NewSession(players, trivia.StrategyFor(lobbyMode), trivia.Options{
			QuestionSeconds: s.cfg.QuestionSeconds,
		})
		if err := session.Load(questions); err != nil {
			lobby.Loading = false
			return err
		}
		lobby.Session = session
		lobby.Loading = false
		lobby.Slow = false
		record = session.Record()
		record.ID = lobby.ID
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if err := s.persistStart(record, locale, source); err != nil {
		s.logger.Warn("persist game start failed", "game_id", gameID, "error", err)
	}
	s.startQuestionTimer(gameID, 0)
	s.logger.Info("game started", "game_id", gameID, "players", len(players), "questions", len(questions), "source", source)
	s.broadcastLobby(gameID)
	s.respondSnapshot(c, gameID)
}

func (s *Server) handleSubmitAnswer(c *gin.Context) {
	var req answerRequest
	if !bindJSON(c, &req, answerMessages, "invalid answer") {
		return
	}
	s.act(c, func(session *trivia.Session) error {
		_, err := session.SubmitAnswer(req.PlayerID, req.Answer)
		return err
	})
}

func (s *Server) handleReveal(c *gin.Context) {
	s.act(c, func(session *trivia.Session) error {
		return session.Reveal()
	})
}

func (s *Server) handleNext(c *gin.Context) {
	s.act(c, func(session *trivia.Session) error {
		return session.Next()
	})
}

func (s *Server) handleJudge(c *gin.Context) {
	var req judgeRequest
	if !bindJSON(c, &req, judgeMessages, "invalid judgment") {
		return
	}
	judgment, err := trivia.ParseJudgment(req.Judgment)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	s.act(c, func(session *trivia.Session) error {
		return session.Judge(judgment)
	})
}

// act applies one host or player action to the running session, then keeps
// the countdown, the final write and the connected screens in step with it.
func (s *Server) act(c *gin.Context, action func(session *trivia.Session) error) {
	gameID := c.Param("id")
	var (
		phase    trivia.Phase
		question int
		result   *trivia.Game
		locale   string
	)
	err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		if lobby.Session == nil {
			return trivia.ErrWrongPhase
		}
		if err := action(lobby.Session); err != nil {
			return err
		}
		phase = lobby.Session.Phase()
		question = lobby.Session.QuestionIndex()
		if phase == trivia.PhaseFinished && lobby.Result == nil {
			game, err := lobby.Session.Result()
			if err != nil {
				return err
			}
			game.ID = lobby.ID
			lobby.Result = &game
			result = &game
			locale = lobby.Locale
		}
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	s.syncQuestionTimer(gameID, phase, question)
	if result != nil {
		s.finishGame(gameID, *result, locale)
	}
	s.broadcastLobby(gameID)
	s.respondSnapshot(c, gameID)
}

// handleSaveGame retries the final write of a finished game.
func (s *Server) handleSaveGame(c *gin.Context) {
	gameID := c.Param("id")
	var (
		game      trivia.Game
		locale    string
		persisted bool
	)
	err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		if lobby.Result == nil {
			return trivia.ErrNotFinished
		}
		game, locale, persisted = *lobby.Result, lobby.Locale, lobby.Persisted
		return nil
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	if s.db == nil {
		writeError(c, http.StatusConflict, "saving is not available without a database")
		return
	}
	if !persisted {
		s.finishGame(gameID, game, locale)
		s.broadcastLobby(gameID)
	}
	snap, _ := s.lobbySnapshot(gameID)
	status := http.StatusOK
	if !snap.Persisted {
		status = http.StatusBadGateway
	}
	c.JSON(status, snap)
}

func (s *Server) handleSummary(c *gin.Context) {
	game, err := s.findResult(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusNotFound, "results not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": trivia.SummarizeGame(c.Request.Context(), s.deps.Summarizer, game)})
}

func (s *Server) handleLocalSummary(c *gin.Context) {
	var req localSummaryRequest
	if !bindJSON(c, &req, nil, "game data is required") {
		return
	}
	game, err := trivia.DecodeGame(req.Game)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": trivia.SummarizeGame(c.Request.Context(), s.deps.Summarizer, game)})
}

// handleAnalysis asks for the categories players struggled with across one or
// more finished games.
func (s *Server) handleAnalysis(c *gin.Context) {
	var req analysisRequest
	if !bindJSON(c, &req, nil, "game_ids must list between 1 and 50 games") {
		return
	}
	games := make([]trivia.Game, 0, len(req.GameIDs))
	for _, id := range req.GameIDs {
		game, err := s.findResult(id)
		if err != nil {
			writeError(c, http.StatusNotFound, "results not found for game "+id)
			return
		}
		games = append(games, game)
	}
	if s.deps.Analyzer == nil {
		writeError(c, http.StatusBadGateway, "category analysis is not configured")
		return
	}
	categories, err := trivia.AnalyzeCategories(c.Request.Context(), s.deps.Analyzer, games...)
	if err != nil {
		s.logger.Warn("category analysis failed", "games", len(games), "error", err)
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenging_categories": categories})
}

func (s *Server) respondSnapshot(c *gin.Context, gameID string) {
	snap, ok := s.lobbySnapshot(gameID)
	if !ok {
		writeError(c, http.StatusNotFound, errLobbyNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, snap)
}

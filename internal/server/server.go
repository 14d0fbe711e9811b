package server

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"trivia-titans/internal/config"
	"trivia-titans/internal/trivia"
	"trivia-titans/internal/web"
)

// Deps are the external collaborators. Any of them may be nil: a nil
// generator limits games to the static catalog and a nil summarizer
// yields the fallback summary.
type Deps struct {
	Generator  trivia.Generator
	Summarizer trivia.Summarizer
	Analyzer   trivia.CategoryAnalyzer
	Logger     *slog.Logger
}

type Server struct {
	store        *Store
	db           *gorm.DB
	ws           *wsHub
	cfg          config.Config
	deps         Deps
	logger       *slog.Logger
	sessions     *sessionStore
	tickInterval time.Duration
	timersMu     sync.Mutex
	timers       map[string]*tickTimer
	slowTimers   map[string]*time.Timer
}

func New(conn *gorm.DB, cfg config.Config, deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		store:        NewStore(),
		db:           conn,
		ws:           newWSHub(),
		cfg:          cfg,
		deps:         deps,
		logger:       logger,
		sessions:     newSessionStore(conn),
		tickInterval: time.Second,
		timers:       make(map[string]*tickTimer),
		slowTimers:   make(map[string]*time.Timer),
	}
}

func (s *Server) Handler() http.Handler {
	registerValidators()
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.StaticFS("/static", web.StaticFS())
	r.GET("/", s.handleHome)
	r.GET("/games/:id", s.handleGameView)
	r.GET("/results/:id", s.handleResultsView)
	r.GET("/results/:id/qr", s.handleResultsQR)

	api := r.Group("/api")
	api.POST("/games", s.handleCreateGame)
	api.GET("/games/:id", s.handleGetGame)
	api.POST("/games/:id/players", s.handleAddPlayer)
	api.DELETE("/games/:id/players/:playerID", s.handleRemovePlayer)
	api.POST("/games/:id/start", s.handleStartGame)
	api.POST("/games/:id/answers", s.handleSubmitAnswer)
	api.POST("/games/:id/reveal", s.handleReveal)
	api.POST("/games/:id/next", s.handleNext)
	api.POST("/games/:id/judge", s.handleJudge)
	api.POST("/games/:id/save", s.handleSaveGame)
	api.GET("/results/:id/summary", s.handleSummary)
	api.POST("/results/local/summary", s.handleLocalSummary)
	api.POST("/analysis", s.handleAnalysis)

	r.GET("/ws/games/:id", s.handleWebsocket)
	return r
}

// Close stops every running timer.
func (s *Server) Close() {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	for id, tick := range s.timers {
		tick.timer.Stop()
		delete(s.timers, id)
	}
	for id, timer := range s.slowTimers {
		timer.Stop()
		delete(s.slowTimers, id)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"trivia-titans/internal/config"
	"trivia-titans/internal/trivia"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

// startServer builds a database-less server with the given collaborators.
func startServer(t *testing.T, cfg config.Config, deps Deps, tweaks ...func(*Server)) (*Server, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := New(nil, cfg, deps)
	for _, tweak := range tweaks {
		tweak(srv)
	}
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	return srv, ts
}

type fakeGenerator struct {
	mu        sync.Mutex
	questions []trivia.Question
	err       error
	calls     int
}

func (f *fakeGenerator) GenerateQuestions(ctx context.Context, count int) ([]trivia.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if count > len(f.questions) {
		return nil, errors.New("not enough questions")
	}
	out := make([]trivia.Question, count)
	copy(out, f.questions[:count])
	return out, nil
}

func (f *fakeGenerator) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeSummarizer struct {
	summary string
	err     error
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript, winner string) (string, error) {
	return f.summary, f.err
}

type fakeAnalyzer struct {
	mu         sync.Mutex
	raw        string
	transcript string
}

func (f *fakeAnalyzer) AnalyzeCategories(ctx context.Context, transcript string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.transcript = transcript
	return f.raw, nil
}

func (f *fakeAnalyzer) lastTranscript() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transcript
}

func testQuestions() []trivia.Question {
	return []trivia.Question{
		{Question: "What is the chemical formula for water?", Answer: "H2O", Category: "Science", Difficulty: trivia.DifficultyEasy},
		{Question: "Which planet is known as the Red Planet?", Answer: "Mars", Category: "Astronomy", Difficulty: trivia.DifficultyEasy},
		{Question: "Who painted the Mona Lisa?", Answer: "Leonardo da Vinci", Category: "Art", Difficulty: trivia.DifficultyMedium},
	}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.QuestionSource = config.SourceStatic
	cfg.QuestionsPerGame = 2
	return cfg
}

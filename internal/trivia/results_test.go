package trivia

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeSummarizer struct {
	summary    string
	err        error
	transcript string
	winner     string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, transcript, winner string) (string, error) {
	f.transcript = transcript
	f.winner = winner
	return f.summary, f.err
}

type fakeAnalyzer struct {
	result     string
	err        error
	transcript string
}

func (f *fakeAnalyzer) AnalyzeCategories(ctx context.Context, transcript string) (string, error) {
	f.transcript = transcript
	return f.result, f.err
}

func finishedGame() Game {
	return Game{
		Players: []Player{{ID: "1", Name: "Alice", Score: 10}, {ID: "2", Name: "Bob"}},
		History: []HistoryEntry{{
			Question:      "What is the chemical symbol for water?",
			Category:      "Science",
			CorrectAnswer: "H2O",
			Players: []PlayerAnswer{
				{Name: "Alice", Answer: "h2o", IsCorrect: true},
				{Name: "Bob", Answer: "oxygen"},
			},
		}},
		Status: StatusFinished,
	}
}

func TestTranscript(t *testing.T) {
	history := finishedGame().History
	history = append(history, HistoryEntry{Question: "Q2", Category: "Art", CorrectAnswer: "A2"})
	got := Transcript(history)
	want := `Question: "What is the chemical symbol for water?" (Category: Science, Answer: H2O)
  - Alice answered "h2o" (Correct)
  - Bob answered "oxygen" (Incorrect)

Question: "Q2" (Category: Art, Answer: A2)`
	if got != want {
		t.Fatalf("unexpected transcript:\n%s", got)
	}
}

func TestSummarizeGame(t *testing.T) {
	s := &fakeSummarizer{summary: " Alice ran away with it. "}
	got := SummarizeGame(context.Background(), s, finishedGame())
	if got != "Alice ran away with it." {
		t.Fatalf("unexpected summary %q", got)
	}
	if s.winner != "Alice" || !strings.Contains(s.transcript, "Bob answered") {
		t.Fatalf("unexpected summarizer input %q %q", s.winner, s.transcript)
	}
}

func TestSummarizeGameFallback(t *testing.T) {
	cases := map[string]struct {
		s    Summarizer
		game Game
	}{
		"error":         {s: &fakeSummarizer{err: errors.New("down")}, game: finishedGame()},
		"blank":         {s: &fakeSummarizer{summary: "  "}, game: finishedGame()},
		"no summarizer": {s: nil, game: finishedGame()},
		"no history":    {s: &fakeSummarizer{summary: "x"}, game: Game{}},
	}
	for name, tc := range cases {
		if got := SummarizeGame(context.Background(), tc.s, tc.game); got != FallbackSummary {
			t.Fatalf("%s: expected fallback, got %q", name, got)
		}
	}
}

func TestAnalyzeCategories(t *testing.T) {
	a := &fakeAnalyzer{result: "Science, History ,, "}
	got, err := AnalyzeCategories(context.Background(), a, finishedGame(), Game{}, finishedGame())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(got) != 2 || got[0] != "Science" || got[1] != "History" {
		t.Fatalf("unexpected categories %v", got)
	}
	if strings.Count(a.transcript, "Question:") != 2 {
		t.Fatalf("expected both transcripts to be sent, got %q", a.transcript)
	}

	_, err = AnalyzeCategories(context.Background(), &fakeAnalyzer{err: errors.New("down")}, finishedGame())
	var gerr *GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

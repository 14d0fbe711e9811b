package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestHomeEscapesFlash(t *testing.T) {
	var buf bytes.Buffer
	data := HomeData{Flash: "<b>oops</b>", Mode: "rotating-turn", Source: "static", Questions: 5}
	if err := Home(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>oops</b>") {
		t.Fatalf("expected flash to be escaped")
	}
	if !strings.Contains(out, `<option value="rotating-turn" selected>`) {
		t.Fatalf("expected rotating-turn to be selected")
	}
	if strings.Contains(out, `value="ai"`) {
		t.Fatalf("expected ai source to be hidden when unavailable")
	}
}

func TestResultsViewListsStandingsAndAnswers(t *testing.T) {
	var buf bytes.Buffer
	data := ResultsData{
		GameID:     "g1",
		Mode:       "free-for-all",
		Standings:  []ResultStanding{{Rank: 1, Name: "Ana", Score: 10, Leader: true}},
		History:    []ResultEntry{{Number: 1, Question: "Q?", Category: "Science", CorrectAnswer: "H2O", Answers: []ResultAnswer{{Name: "Ana", Answer: "h2o", IsCorrect: true}}}},
		SummaryURL: "/api/results/g1/summary",
	}
	if err := ResultsView(data).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`class="leader"`, "Ana", "H2O", `/api/results/g1/summary`, `<a class="button" href="/">Play again</a>`, "Could not generate an AI summary for this game."} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func TestAssetPathHashesEmbeddedFiles(t *testing.T) {
	t.Setenv("ENV", "")
	path := assetPath("/static/styles.css")
	if !strings.HasPrefix(path, "/static/styles.css?v=") {
		t.Fatalf("expected versioned path, got %q", path)
	}
	if got := assetPath("/favicon.ico"); got != "/favicon.ico" {
		t.Fatalf("expected non-static path unchanged, got %q", got)
	}
	if got := assetPath("/static/missing.css"); got != "/static/missing.css" {
		t.Fatalf("expected missing asset unchanged, got %q", got)
	}
}

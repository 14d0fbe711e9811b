package trivia

import (
	"context"
	"errors"
	"strings"
)

const FallbackSummary = "Could not generate an AI summary for this game."

// Summarizer writes a short narrative of a finished game.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, winner string) (string, error)
}

// CategoryAnalyzer names the categories players struggled with. The result
// is a comma-separated list.
type CategoryAnalyzer interface {
	AnalyzeCategories(ctx context.Context, transcript string) (string, error)
}

// SummarizeGame never fails: any problem yields FallbackSummary.
func SummarizeGame(ctx context.Context, s Summarizer, game Game) string {
	if s == nil || len(game.History) == 0 {
		return FallbackSummary
	}
	winner, _ := Winner(game.Players)
	summary, err := s.Summarize(ctx, Transcript(game.History), winner.Name)
	if err != nil {
		return FallbackSummary
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return FallbackSummary
	}
	return summary
}

func AnalyzeCategories(ctx context.Context, a CategoryAnalyzer, games ...Game) ([]string, error) {
	if a == nil {
		return nil, &GenerationError{Op: "analyze categories", Err: errors.New("category analyzer is not configured")}
	}
	transcripts := make([]string, 0, len(games))
	for _, g := range games {
		if len(g.History) > 0 {
			transcripts = append(transcripts, Transcript(g.History))
		}
	}
	if len(transcripts) == 0 {
		return []string{}, nil
	}
	raw, err := a.AnalyzeCategories(ctx, strings.Join(transcripts, "\n\n"))
	if err != nil {
		return nil, &GenerationError{Op: "analyze categories", Err: err}
	}
	return SplitCategories(raw), nil
}

// SplitCategories turns "History, Science ,," into [History Science].
func SplitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

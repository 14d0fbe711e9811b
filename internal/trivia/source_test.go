package trivia

import (
	"context"
	"errors"
	"testing"
)

type seqRand struct {
	calls []int
}

func (r *seqRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	return 0
}

func TestShufflePermutation(t *testing.T) {
	catalog := Catalog(DefaultLocale)
	for size := 1; size <= len(catalog); size++ {
		input := catalog[:size]
		out := Shuffle(input, nil)
		if len(out) != size {
			t.Fatalf("size %d: expected same length, got %d", size, len(out))
		}
		seen := make(map[string]int)
		for _, q := range input {
			seen[q.Question]++
		}
		for _, q := range out {
			seen[q.Question]--
		}
		for question, count := range seen {
			if count != 0 {
				t.Fatalf("size %d: %q count off by %d", size, question, count)
			}
		}
	}
}

func TestShuffleFisherYates(t *testing.T) {
	input := []Question{{Question: "a"}, {Question: "b"}, {Question: "c"}}
	rng := &seqRand{}
	out := Shuffle(input, rng)
	want := []int{3, 2}
	if len(rng.calls) != len(want) || rng.calls[0] != want[0] || rng.calls[1] != want[1] {
		t.Fatalf("expected IntN calls %v, got %v", want, rng.calls)
	}
	// i=2 swaps with 0, then i=1 swaps with 0: c,b,a -> b,c,a
	if out[0].Question != "b" || out[1].Question != "c" || out[2].Question != "a" {
		t.Fatalf("unexpected order %v", out)
	}
	if input[0].Question != "a" {
		t.Fatalf("expected input to be untouched")
	}
}

func TestStaticSourceDraw(t *testing.T) {
	source := NewStaticSource(Catalog(DefaultLocale))
	all, err := source.Draw(context.Background(), 0)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if len(all) != len(source.Questions) {
		t.Fatalf("expected all %d questions, got %d", len(source.Questions), len(all))
	}
	some, err := source.Draw(context.Background(), 5)
	if err != nil || len(some) != 5 {
		t.Fatalf("expected 5 questions, got %d (%v)", len(some), err)
	}
	empty := NewStaticSource(nil)
	if _, err := empty.Draw(context.Background(), 3); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected no questions error, got %v", err)
	}
}

type fakeGenerator struct {
	questions []Question
	err       error
	asked     int
}

func (f *fakeGenerator) GenerateQuestions(ctx context.Context, count int) ([]Question, error) {
	f.asked = count
	return f.questions, f.err
}

func TestGenerativeSourceForcesHard(t *testing.T) {
	gen := &fakeGenerator{questions: []Question{
		{Question: "Q1", Answer: "A1", Category: "Science", Difficulty: DifficultyEasy},
		{Question: "Q2", Answer: "A2", Category: "History", Difficulty: DifficultyMedium},
	}}
	source := &GenerativeSource{Generator: gen}
	got, err := source.Draw(context.Background(), 2)
	if err != nil {
		t.Fatalf("draw: %v", err)
	}
	if gen.asked != 2 {
		t.Fatalf("expected generator to be asked for 2, got %d", gen.asked)
	}
	for _, q := range got {
		if q.Difficulty != DifficultyHard {
			t.Fatalf("expected hard difficulty, got %q", q.Difficulty)
		}
	}
}

func TestGenerativeSourceFailures(t *testing.T) {
	valid := Question{Question: "Q", Answer: "A", Category: "C", Difficulty: DifficultyHard}
	tests := []struct {
		name string
		gen  Generator
		n    int
	}{
		{name: "call error", gen: &fakeGenerator{err: errors.New("boom")}, n: 1},
		{name: "wrong count", gen: &fakeGenerator{questions: []Question{valid}}, n: 2},
		{name: "blank answer", gen: &fakeGenerator{questions: []Question{{Question: "Q", Answer: " ", Category: "C"}}}, n: 1},
		{name: "no generator", gen: nil, n: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			source := &GenerativeSource{Generator: tc.gen}
			_, err := source.Draw(context.Background(), tc.n)
			var gerr *GenerationError
			if !errors.As(err, &gerr) {
				t.Fatalf("expected generation error, got %v", err)
			}
		})
	}
}

func TestGenerativeSourceBounds(t *testing.T) {
	source := &GenerativeSource{Generator: &fakeGenerator{}}
	for _, n := range []int{0, 51} {
		if _, err := source.Draw(context.Background(), n); !errors.Is(err, ErrQuestionCount) {
			t.Fatalf("n=%d: expected question count error, got %v", n, err)
		}
	}
}

func TestCatalogFallsBackToEnglish(t *testing.T) {
	en := Catalog(DefaultLocale)
	other := Catalog("xx")
	if len(en) == 0 || len(en) != len(other) || en[0] != other[0] {
		t.Fatalf("expected unknown locale to fall back to english")
	}
	for _, q := range Catalog("es") {
		if err := q.Validate(); err != nil {
			t.Fatalf("invalid catalog question %q: %v", q.Question, err)
		}
	}
}

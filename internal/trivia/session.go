package trivia

import (
	"strings"
	"time"
)

type Phase string

const (
	PhaseLoading  Phase = "loading"
	PhasePlaying  Phase = "playing"
	PhaseReveal   Phase = "reveal"
	PhaseFinished Phase = "finished"
)

const DefaultQuestionSeconds = 30

type Options struct {
	QuestionSeconds int
	StartActive     int
	Now             func() time.Time
}

// Session is the state of one game from loading to finished. It is owned by a
// single caller and is not safe for concurrent use.
type Session struct {
	strategy        ScoringStrategy
	players         []Player
	questions       []Question
	index           int
	phase           Phase
	questionSeconds int
	remaining       int
	answers         map[string]string
	active          int
	history         []HistoryEntry
	createdAt       time.Time
	now             func() time.Time
	result          *Game
}

type phaseTransition struct {
	advance func(s *Session) (Phase, error)
}

var phaseTransitions = map[Phase]phaseTransition{
	PhaseLoading: {
		advance: func(s *Session) (Phase, error) {
			if len(s.questions) == 0 {
				return "", ErrNoQuestions
			}
			s.index = 0
			s.beginQuestion()
			return PhasePlaying, nil
		},
	},
	PhasePlaying: {
		advance: func(s *Session) (Phase, error) {
			return PhaseReveal, nil
		},
	},
	PhaseReveal: {
		advance: func(s *Session) (Phase, error) {
			if s.index < len(s.questions)-1 {
				s.index++
				s.beginQuestion()
				return PhasePlaying, nil
			}
			s.finish()
			return PhaseFinished, nil
		},
	},
}

func NewSession(players []Player, strategy ScoringStrategy, opts Options) *Session {
	if strategy == nil {
		strategy = FreeForAll{}
	}
	if opts.QuestionSeconds <= 0 {
		opts.QuestionSeconds = DefaultQuestionSeconds
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	roster := make([]Player, len(players))
	copy(roster, players)
	active := opts.StartActive
	if active < 0 || active >= len(roster) {
		active = 0
	}
	return &Session{
		strategy:        strategy,
		players:         roster,
		phase:           PhaseLoading,
		questionSeconds: opts.QuestionSeconds,
		remaining:       opts.QuestionSeconds,
		answers:         make(map[string]string),
		active:          active,
		createdAt:       opts.Now().UTC(),
		now:             opts.Now,
	}
}

func (s *Session) advancePhase() error {
	transition, ok := phaseTransitions[s.phase]
	if !ok {
		return ErrFinished
	}
	next, err := transition.advance(s)
	if err != nil {
		return err
	}
	s.phase = next
	return nil
}

func (s *Session) beginQuestion() {
	s.remaining = s.questionSeconds
	s.answers = make(map[string]string)
}

func (s *Session) finish() {
	players := make([]Player, len(s.players))
	copy(players, s.players)
	played := make([]Question, s.index+1)
	copy(played, s.questions[:s.index+1])
	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	s.result = &Game{
		Mode:      s.strategy.Mode(),
		Players:   players,
		Questions: played,
		History:   history,
		Status:    StatusFinished,
		CreatedAt: s.createdAt,
	}
}

func (s *Session) guard(mode Mode, phase Phase) error {
	if s.phase == PhaseFinished {
		return ErrFinished
	}
	if mode != "" && s.strategy.Mode() != mode {
		return ErrWrongMode
	}
	if s.phase != phase {
		return ErrWrongPhase
	}
	return nil
}

// Load hands the drawn questions to the session and opens the first one.
func (s *Session) Load(questions []Question) error {
	if err := s.guard("", PhaseLoading); err != nil {
		return err
	}
	s.questions = make([]Question, len(questions))
	copy(s.questions, questions)
	return s.advancePhase()
}

// Tick advances the countdown by one second. It reports whether the phase
// changed, which only happens when the timer runs out.
func (s *Session) Tick() bool {
	if s.phase != PhasePlaying {
		return false
	}
	if s.remaining > 0 {
		s.remaining--
	}
	if s.remaining > 0 {
		return false
	}
	return s.advancePhase() == nil
}

// SubmitAnswer records a free-for-all answer. It reports whether the
// submission closed the question because everyone has answered.
func (s *Session) SubmitAnswer(playerID, answer string) (bool, error) {
	if err := s.guard(ModeFreeForAll, PhasePlaying); err != nil {
		return false, err
	}
	if _, ok := s.playerIndex(playerID); !ok {
		return false, ErrUnknownPlayer
	}
	if _, done := s.answers[playerID]; done {
		return false, ErrAlreadyAnswered
	}
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return false, invalid("answer", ErrEmptyAnswer)
	}
	s.answers[playerID] = trimmed
	if len(s.answers) < len(s.players) {
		return false, nil
	}
	return true, s.advancePhase()
}

// Reveal closes the current question early.
func (s *Session) Reveal() error {
	if err := s.guard("", PhasePlaying); err != nil {
		return err
	}
	return s.advancePhase()
}

// Next scores the revealed free-for-all question and moves on.
func (s *Session) Next() error {
	if err := s.guard(ModeFreeForAll, PhaseReveal); err != nil {
		return err
	}
	return s.resolve(RoundInput{Answers: s.answers, Active: s.active})
}

// Judge scores the active player in rotating-turn mode and moves on.
func (s *Session) Judge(judgment Judgment) error {
	if err := s.guard(ModeRotatingTurn, PhaseReveal); err != nil {
		return err
	}
	switch judgment {
	case JudgmentCorrect, JudgmentIncorrect, JudgmentError:
	default:
		return invalid("judgment", ErrBadJudgment)
	}
	return s.resolve(RoundInput{Active: s.active, Judgment: judgment})
}

func (s *Session) resolve(input RoundInput) error {
	outcome := s.strategy.ResolveRound(s.questions[s.index], s.players, input)
	for i := range s.players {
		s.players[i].Score += outcome.ScoreDeltas[s.players[i].ID]
	}
	s.history = append(s.history, outcome.Entry)
	s.active = outcome.NextActive
	return s.advancePhase()
}

func (s *Session) playerIndex(id string) (int, bool) {
	for i := range s.players {
		if s.players[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// Record is the game as it stands, suitable for an in-progress write.
func (s *Session) Record() Game {
	if s.result != nil {
		return *s.result
	}
	players := make([]Player, len(s.players))
	copy(players, s.players)
	questions := make([]Question, len(s.questions))
	copy(questions, s.questions)
	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return Game{
		Mode:      s.strategy.Mode(),
		Players:   players,
		Questions: questions,
		History:   history,
		Status:    StatusInProgress,
		CreatedAt: s.createdAt,
	}
}

// Result returns the finished game record.
func (s *Session) Result() (Game, error) {
	if s.result == nil {
		return Game{}, ErrNotFinished
	}
	return *s.result, nil
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) Mode() Mode { return s.strategy.Mode() }

func (s *Session) Remaining() int { return s.remaining }

func (s *Session) QuestionIndex() int { return s.index }

func (s *Session) ActiveIndex() int { return s.active }

func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Players() []Player {
	out := make([]Player, len(s.players))
	copy(out, s.players)
	return out
}

// Snapshot is a read-only picture of the session for rendering.
type Snapshot struct {
	Phase           Phase
	Mode            Mode
	QuestionNumber  int
	QuestionCount   int
	Question        *Question
	Remaining       int
	QuestionSeconds int
	Answered        map[string]bool
	Answers         map[string]string
	ActivePlayer    *Player
	Players         []Player
	HistoryLength   int
}

func (s *Session) Snapshot() Snapshot {
	view := Snapshot{
		Phase:           s.phase,
		Mode:            s.strategy.Mode(),
		QuestionCount:   len(s.questions),
		Remaining:       s.remaining,
		QuestionSeconds: s.questionSeconds,
		Answered:        make(map[string]bool, len(s.answers)),
		Players:         s.Players(),
		HistoryLength:   len(s.history),
	}
	if s.phase != PhaseLoading && s.index < len(s.questions) {
		q := s.questions[s.index]
		view.Question = &q
		view.QuestionNumber = s.index + 1
	}
	for id := range s.answers {
		view.Answered[id] = true
	}
	if s.phase == PhaseReveal {
		view.Answers = make(map[string]string, len(s.answers))
		for id, answer := range s.answers {
			view.Answers[id] = answer
		}
	}
	if s.strategy.Mode() == ModeRotatingTurn && s.active < len(s.players) {
		p := s.players[s.active]
		view.ActivePlayer = &p
	}
	return view
}

package web

// GameSummary is one open lobby listed on the home screen.
type GameSummary struct {
	ID      string `json:"id"`
	Stage   string `json:"stage"`
	Mode    string `json:"mode"`
	Players int    `json:"players"`
}

type AvatarOption struct {
	Key   string
	Glyph string
}

type HomeData struct {
	Flash       string
	Games       []GameSummary
	Mode        string
	Source      string
	Questions   int
	AIAvailable bool
}

type GameData struct {
	GameID  string
	Avatars []AvatarOption
}

type ResultStanding struct {
	Rank   int
	Name   string
	Glyph  string
	Score  int
	Leader bool
}

type ResultAnswer struct {
	Name      string
	Answer    string
	IsCorrect bool
}

type ResultEntry struct {
	Number        int
	Question      string
	Category      string
	CorrectAnswer string
	Answers       []ResultAnswer
}

// ResultsData drives the results page. Exactly one of SummaryURL and
// LocalGame is used to fetch the summary.
type ResultsData struct {
	GameID     string
	Mode       string
	Notice     string
	Standings  []ResultStanding
	History    []ResultEntry
	SummaryURL string
	LocalGame  string
	QRURL      string
	PlayedAt   string
}

package server

// EventPayload is the jsonb body of a row in the game event log.
type EventPayload struct {
	Mode      string `json:"mode,omitempty"`
	Source    string `json:"source,omitempty"`
	Players   int    `json:"players,omitempty"`
	Questions int    `json:"questions,omitempty"`
	Winner    string `json:"winner,omitempty"`
	TopScore  int    `json:"top_score,omitempty"`
}

package trivia

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// LocalGameID is the results id used when the game travels in the URL
// instead of the database.
const LocalGameID = "local"

func EncodeGame(game Game) (string, error) {
	raw, err := json.Marshal(game)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeGame reverses EncodeGame. Padded input is accepted.
func DecodeGame(blob string) (Game, error) {
	blob = strings.TrimRight(strings.TrimSpace(blob), "=")
	if blob == "" {
		return Game{}, ErrMalformedGame
	}
	raw, err := base64.RawURLEncoding.DecodeString(blob)
	if err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
	}
	var game Game
	if err := json.Unmarshal(raw, &game); err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
	}
	if len(game.Players) == 0 || game.History == nil {
		return Game{}, fmt.Errorf("%w: missing players or history", ErrMalformedGame)
	}
	return game, nil
}

package trivia

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxPlayers    = 9
	MaxNameLength = 20
)

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar Avatar `json:"avatar"`
	Score  int    `json:"score"`
}

// Roster is the ordered list of players registered during setup.
type Roster struct {
	max     int
	players []Player
	newID   func() string
}

// NewRoster caps the roster at capacity players; zero means MaxPlayers.
func NewRoster(capacity int) *Roster {
	if capacity <= 0 {
		capacity = MaxPlayers
	}
	return &Roster{
		max:   capacity,
		newID: uuid.NewString,
	}
}

// Add registers a new player with a zero score.
func (r *Roster) Add(name string, avatar Avatar) (Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Player{}, invalid("name", ErrEmptyName)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return Player{}, invalid("name", ErrNameTooLong)
	}
	if !avatar.Valid() {
		return Player{}, invalid("avatar", ErrUnknownAvatar)
	}
	if len(r.players) >= r.max {
		return Player{}, invalid("players", ErrCapacityExceeded)
	}
	for _, existing := range r.players {
		if strings.EqualFold(existing.Name, trimmed) {
			return Player{}, invalid("name", ErrDuplicateName)
		}
	}
	player := Player{
		ID:     r.newID(),
		Name:   trimmed,
		Avatar: avatar,
	}
	r.players = append(r.players, player)
	return player, nil
}

// Remove deletes a player by id. Unknown ids are ignored.
func (r *Roster) Remove(id string) bool {
	for i := range r.players {
		if r.players[i].ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}

func (r *Roster) Len() int {
	return len(r.players)
}

// Freeze returns the roster by value for handing to a session.
func (r *Roster) Freeze() ([]Player, error) {
	if len(r.players) == 0 {
		return nil, invalid("players", ErrNoPlayers)
	}
	return r.Players(), nil
}

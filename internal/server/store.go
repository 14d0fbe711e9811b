package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"trivia-titans/internal/trivia"
)

var errLobbyNotFound = errors.New("game not found")

type Store struct {
	mu      sync.Mutex
	lobbies map[string]*Lobby
	newID   func() string
}

func NewStore() *Store {
	return &Store{
		lobbies: make(map[string]*Lobby),
		newID:   uuid.NewString,
	}
}

func (s *Store) CreateLobby(mode trivia.Mode, source, locale string, questions int) *Lobby {
	s.mu.Lock()
	defer s.mu.Unlock()

	lobby := &Lobby{
		ID:            s.newID(),
		Mode:          mode,
		Source:        source,
		Locale:        locale,
		QuestionCount: questions,
		Roster:        trivia.NewRoster(trivia.MaxPlayers),
		CreatedAt:     timeNowUTC(),
	}
	s.lobbies[lobby.ID] = lobby
	return lobby
}

// View runs fn with the lobby locked. fn must not keep references to the lobby.
func (s *Store) View(id string, fn func(lobby *Lobby)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.lobbies[id]
	if !ok {
		return false
	}
	fn(lobby)
	return true
}

func (s *Store) UpdateLobby(id string, update func(lobby *Lobby) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lobby, ok := s.lobbies[id]
	if !ok {
		return errLobbyNotFound
	}
	return update(lobby)
}

func (s *Store) Exists(id string) bool {
	return s.View(id, func(*Lobby) {})
}

// FinishedGame returns the packaged result of a finished lobby.
func (s *Store) FinishedGame(id string) (trivia.Game, bool) {
	var (
		game trivia.Game
		ok   bool
	)
	s.View(id, func(lobby *Lobby) {
		if lobby.Result != nil {
			game, ok = *lobby.Result, true
		}
	})
	return game, ok
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lobbies, id)
}

type LobbySummary struct {
	ID        string
	Stage     string
	Mode      trivia.Mode
	Players   int
	CreatedAt time.Time
}

func (s *Store) ListSummaries() []LobbySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]LobbySummary, 0, len(s.lobbies))
	for _, lobby := range s.lobbies {
		list = append(list, LobbySummary{
			ID:        lobby.ID,
			Stage:     lobby.Stage(),
			Mode:      lobby.Mode,
			Players:   len(lobby.Players()),
			CreatedAt: lobby.CreatedAt,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

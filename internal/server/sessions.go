package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trivia-titans/internal/db"
)

const sessionCookie = "tt_session"

// sessionStore carries one-shot flash notices between requests, in the
// database when there is one and in memory otherwise.
type sessionStore struct {
	db      *gorm.DB
	mu      sync.Mutex
	flashes map[string]string
}

func newSessionStore(conn *gorm.DB) *sessionStore {
	return &sessionStore{
		db:      conn,
		flashes: make(map[string]string),
	}
}

func (s *sessionStore) SetFlash(c *gin.Context, message string) {
	if message == "" {
		return
	}
	id := s.ensureSessionID(c)
	if s.db == nil {
		s.mu.Lock()
		s.flashes[id] = message
		s.mu.Unlock()
		return
	}
	record := db.Session{
		ID:    id,
		Flash: message,
	}
	_ = s.db.Save(&record).Error
}

func (s *sessionStore) PopFlash(c *gin.Context) string {
	id := s.ensureSessionID(c)
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		message := s.flashes[id]
		delete(s.flashes, id)
		return message
	}
	var record db.Session
	if err := s.db.Where("id = ?", id).First(&record).Error; err != nil {
		return ""
	}
	if record.Flash == "" {
		return ""
	}
	message := record.Flash
	record.Flash = ""
	_ = s.db.Save(&record).Error
	return message
}

func (s *sessionStore) ensureSessionID(c *gin.Context) string {
	if value, err := c.Cookie(sessionCookie); err == nil && value != "" {
		return value
	}
	id := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// Later reads in the same request must see the new id.
	c.Request.AddCookie(&http.Cookie{Name: sessionCookie, Value: id})
	return id
}

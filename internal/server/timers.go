package server

import (
	"errors"
	"time"

	"trivia-titans/internal/trivia"
)

var errStaleTimer = errors.New("timer no longer current")

type tickTimer struct {
	question int
	timer    *time.Timer
}

// startQuestionTimer arms the one-second countdown for the given question,
// replacing any timer left from an earlier one.
func (s *Server) startQuestionTimer(gameID string, question int) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.timers[gameID]; ok {
		existing.timer.Stop()
	}
	s.timers[gameID] = &tickTimer{
		question: question,
		timer:    time.AfterFunc(s.tickInterval, func() { s.onTick(gameID, question) }),
	}
}

// rearmQuestionTimer schedules the next tick unless the timer was cancelled
// or replaced in the meantime.
func (s *Server) rearmQuestionTimer(gameID string, question int) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	existing, ok := s.timers[gameID]
	if !ok || existing.question != question {
		return
	}
	existing.timer = time.AfterFunc(s.tickInterval, func() { s.onTick(gameID, question) })
}

func (s *Server) cancelQuestionTimer(gameID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.timers[gameID]; ok {
		existing.timer.Stop()
		delete(s.timers, gameID)
	}
}

func (s *Server) onTick(gameID string, question int) {
	var playing bool
	err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
		session := lobby.Session
		if session == nil || session.Phase() != trivia.PhasePlaying || session.QuestionIndex() != question {
			return errStaleTimer
		}
		session.Tick()
		playing = session.Phase() == trivia.PhasePlaying
		return nil
	})
	if err != nil {
		return
	}
	if playing {
		s.rearmQuestionTimer(gameID, question)
	} else {
		s.stopQuestionTimer(gameID, question)
		s.logger.Info("question timed out", "game_id", gameID, "question", question+1)
	}
	s.broadcastLobby(gameID)
}

// stopQuestionTimer drops the countdown only while it still belongs to
// question, so a late tick cannot remove the timer of the next one.
func (s *Server) stopQuestionTimer(gameID string, question int) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	existing, ok := s.timers[gameID]
	if !ok || existing.question != question {
		return
	}
	existing.timer.Stop()
	delete(s.timers, gameID)
}

// syncQuestionTimer starts or stops the countdown to match the session phase.
func (s *Server) syncQuestionTimer(gameID string, phase trivia.Phase, question int) {
	if phase == trivia.PhasePlaying {
		s.startQuestionTimer(gameID, question)
		return
	}
	s.cancelQuestionTimer(gameID)
}

// startSlowTimer flags a loading lobby as slow once the external call has
// been running for longer than the configured threshold.
func (s *Server) startSlowTimer(gameID string, attempt int) {
	after := s.cfg.SlowCallAfter()
	if after <= 0 {
		return
	}
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.slowTimers[gameID]; ok {
		existing.Stop()
	}
	s.slowTimers[gameID] = time.AfterFunc(after, func() {
		err := s.store.UpdateLobby(gameID, func(lobby *Lobby) error {
			if !lobby.Loading || lobby.Attempt != attempt {
				return errStaleTimer
			}
			lobby.Slow = true
			return nil
		})
		if err != nil {
			return
		}
		s.logger.Warn("question generation is slow", "game_id", gameID, "after", after)
		s.broadcastLobby(gameID)
	})
}

func (s *Server) cancelSlowTimer(gameID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if existing, ok := s.slowTimers[gameID]; ok {
		existing.Stop()
		delete(s.slowTimers, gameID)
	}
}

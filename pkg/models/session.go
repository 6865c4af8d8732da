package models

import "time"

// Session keeps the results of every run played since the game started.
type Session struct {
	Started       time.Time
	Runs          int
	Best          int
	TotalDistance float64
	Collisions    int
}

// NewSession starts an empty session.
func NewSession() *Session {
	return &Session{
		Started: time.Now(),
	}
}

// EndRun folds a finished run into the session totals.
func (s *Session) EndRun(score int, distance float64) {
	s.Runs++
	s.TotalDistance += distance
	if score > s.Best {
		s.Best = score
	}
}

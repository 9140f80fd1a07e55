package cracker

import (
	"time"

	"github.com/google/uuid"
)

// Session identifies one program run. Its ID tags every log line and its
// start time anchors the elapsed figures in reports.
type Session struct {
	ID    uuid.UUID
	Start time.Time
}

func NewSession() Session {
	return Session{ID: uuid.New(), Start: time.Now()}
}

// Elapsed returns the time since the session started.
func (s Session) Elapsed() time.Duration { return time.Since(s.Start) }

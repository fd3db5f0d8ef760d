package gigawall

import (
	"sync"
	"time"
)

// maxDeployLogEntries caps the user-facing deploy log. Older entries fall off.
const maxDeployLogEntries = 50

// LogLevel is the severity tag of a deploy log entry.
type LogLevel string

const (
	LogInfo    LogLevel = "info"
	LogSuccess LogLevel = "success"
	LogError   LogLevel = "error"
)

// LogEntry is one line in the user-facing deploy log.
type LogEntry struct {
	Message string
	Level   LogLevel
	At      time.Time
}

// DeployLog is the append-only, capped operation log shown to the user.
// Entries are kept newest first. It is observability only and is never
// persisted.
type DeployLog struct {
	mu      sync.Mutex
	clock   Clock
	entries []LogEntry
}

func NewDeployLog(clock Clock) *DeployLog {
	return &DeployLog{clock: clock}
}

// Append prepends an entry, dropping the oldest once the cap is reached.
func (l *DeployLog) Append(level LogLevel, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{Message: msg, Level: level, At: l.clock.Now()}
	l.entries = append([]LogEntry{entry}, l.entries...)
	if len(l.entries) > maxDeployLogEntries {
		l.entries = l.entries[:maxDeployLogEntries]
	}
}

// Entries returns a copy of the log, newest first.
func (l *DeployLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

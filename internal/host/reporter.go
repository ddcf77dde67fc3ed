package host

import (
	"fmt"
	"sync"

	"github.com/golang/glog"
)

type Level string

const (
	Info    Level = "INFO"
	Warning Level = "WARNING"
	Error   Level = "ERROR"
)

// Receives the status messages of an export, the way the host notifies its user
type Reporter interface {
	Report(level Level, message string)
}

// Forwards messages to glog. A quiet reporter drops INFO messages.
type GlogReporter struct {
	quiet bool
}

func NewGlogReporter(quiet bool) Reporter {
	return &GlogReporter{
		quiet: quiet,
	}
}

func (r *GlogReporter) Report(level Level, message string) {
	switch level {
	case Warning:
		glog.WarningDepth(1, message)
	case Error:
		glog.ErrorDepth(1, message)
	default:
		if !r.quiet {
			glog.InfoDepth(1, message)
		}
	}
}

type Message struct {
	Level   Level
	Message string
}

func (m Message) String() string {
	return fmt.Sprintf("[%s] %s", m.Level, m.Message)
}

// Keeps every reported message in memory
type RecordingReporter struct {
	mu       sync.Mutex
	messages []Message
}

func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) Report(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, Message{Level: level, Message: message})
}

func (r *RecordingReporter) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}

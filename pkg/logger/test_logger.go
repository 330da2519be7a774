package logger

import (
	"sync"
)

// TestLogger captures records in memory for assertions
type TestLogger struct {
	state *testLogState
	bound []Field
}

type testLogState struct {
	mu      sync.Mutex
	entries []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// NewTestLogger creates a new test logger
func NewTestLogger() *TestLogger {
	return &TestLogger{state: &testLogState{entries: make([]LogEntry, 0)}}
}

func (l *TestLogger) Debug(msg string, fields ...Field) {
	l.log("DEBUG", msg, fields...)
}

func (l *TestLogger) Info(msg string, fields ...Field) {
	l.log("INFO", msg, fields...)
}

func (l *TestLogger) Warn(msg string, fields ...Field) {
	l.log("WARN", msg, fields...)
}

func (l *TestLogger) Error(msg string, fields ...Field) {
	l.log("ERROR", msg, fields...)
}

func (l *TestLogger) Fatal(msg string, fields ...Field) {
	l.log("FATAL", msg, fields...)
}

// With returns a logger whose bound fields appear on every entry.
// Entries land in the shared state so the root logger sees them.
func (l *TestLogger) With(fields ...Field) Logger {
	bound := make([]Field, 0, len(l.bound)+len(fields))
	bound = append(bound, l.bound...)
	bound = append(bound, fields...)
	return &TestLogger{state: l.state, bound: bound}
}

func (l *TestLogger) Named(name string) Logger {
	return l
}

func (l *TestLogger) Sync() error {
	return nil
}

func (l *TestLogger) log(level, msg string, fields ...Field) {
	all := make([]Field, 0, len(l.bound)+len(fields))
	all = append(all, l.bound...)
	all = append(all, fields...)

	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.entries = append(l.state.entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  all,
	})
}

// GetEntries returns all captured entries
func (l *TestLogger) GetEntries() []LogEntry {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	entries := make([]LogEntry, len(l.state.entries))
	copy(entries, l.state.entries)
	return entries
}

// Messages returns captured messages for a level, all levels when empty
func (l *TestLogger) Messages(level string) []string {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	msgs := make([]string, 0, len(l.state.entries))
	for _, e := range l.state.entries {
		if level == "" || e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Clear removes all captured entries
func (l *TestLogger) Clear() {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.entries = l.state.entries[:0]
}

package cellgrid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// LogMessage is one captured log record.
type LogMessage struct {
	Timestamp time.Time
	Level     slog.Level
	Message   string
	// Attrs holds the record's attributes as space separated key=value pairs.
	Attrs string
}

type logStore struct {
	mu          sync.Mutex
	messages    []LogMessage
	maxMessages int
}

// LogCapture is a slog.Handler that keeps the most recent records in memory,
// so they can be shown inside the UI instead of being written over it.
type LogCapture struct {
	store  *logStore
	level  slog.Leveler
	attrs  string
	prefix string
}

// NewLogCapture keeps at most maxMessages records at or above level. A
// non-positive maxMessages means 1000; a nil level means slog.LevelInfo.
func NewLogCapture(maxMessages int, level slog.Leveler) *LogCapture {
	if maxMessages <= 0 {
		maxMessages = 1000
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &LogCapture{
		store: &logStore{maxMessages: maxMessages},
		level: level,
	}
}

func (lc *LogCapture) Enabled(_ context.Context, level slog.Level) bool {
	return level >= lc.level.Level()
}

func (lc *LogCapture) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(lc.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, lc.prefix, a)
		return true
	})
	lc.store.add(LogMessage{
		Timestamp: r.Time,
		Level:     r.Level,
		Message:   r.Message,
		Attrs:     sb.String(),
	})
	return nil
}

func (lc *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(lc.attrs)
	for _, a := range attrs {
		appendAttr(&sb, lc.prefix, a)
	}
	next := *lc
	next.attrs = sb.String()
	return &next
}

func (lc *LogCapture) WithGroup(name string) slog.Handler {
	if name == "" {
		return lc
	}
	next := *lc
	next.prefix = lc.prefix + name + "."
	return &next
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, prefix, ga)
		}
		return
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

func (s *logStore) add(msg LogMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) == s.maxMessages {
		copy(s.messages, s.messages[1:])
		s.messages[len(s.messages)-1] = msg
		return
	}
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of every kept record, oldest first.
func (lc *LogCapture) Messages() []LogMessage {
	return lc.LastMessages(lc.store.maxMessages)
}

// LastMessages returns a copy of the last n records.
func (lc *LogCapture) LastMessages(n int) []LogMessage {
	lc.store.mu.Lock()
	defer lc.store.mu.Unlock()
	msgs := lc.store.messages
	if n < len(msgs) {
		msgs = msgs[len(msgs)-max(n, 0):]
	}
	out := make([]LogMessage, len(msgs))
	copy(out, msgs)
	return out
}

// Clear drops every kept record.
func (lc *LogCapture) Clear() {
	lc.store.mu.Lock()
	lc.store.messages = nil
	lc.store.mu.Unlock()
}

// FormatMessage formats a record as a single display line.
func FormatMessage(msg LogMessage) string {
	line := fmt.Sprintf("[%s] %-5s %s", msg.Timestamp.Format("15:04:05.000"), msg.Level, msg.Message)
	if msg.Attrs != "" {
		line += " " + msg.Attrs
	}
	return line
}

package cellgrid

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCapture(t *testing.T) {
	t.Run("captures records with attributes", func(t *testing.T) {
		lc := NewLogCapture(10, nil)
		logger := slog.New(lc)
		logger.Info("resize", "width", 80, "height", 24)

		msgs := lc.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, slog.LevelInfo, msgs[0].Level)
		assert.Equal(t, "resize", msgs[0].Message)
		assert.Equal(t, "width=80 height=24", msgs[0].Attrs)
	})

	t.Run("filters by level", func(t *testing.T) {
		lc := NewLogCapture(10, slog.LevelWarn)
		logger := slog.New(lc)
		logger.Info("quiet")
		logger.Error("loud")

		msgs := lc.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "loud", msgs[0].Message)
	})

	t.Run("keeps only the newest records", func(t *testing.T) {
		lc := NewLogCapture(3, nil)
		logger := slog.New(lc)
		for i := range 5 {
			logger.Info(fmt.Sprintf("m%d", i))
		}

		var got []string
		for _, m := range lc.Messages() {
			got = append(got, m.Message)
		}
		assert.Equal(t, []string{"m2", "m3", "m4"}, got)
		assert.Len(t, lc.LastMessages(2), 2)
		assert.Equal(t, "m4", lc.LastMessages(1)[0].Message)
		assert.Empty(t, lc.LastMessages(0))
	})

	t.Run("groups and preset attributes", func(t *testing.T) {
		lc := NewLogCapture(10, nil)
		logger := slog.New(lc).With("pane", "main").WithGroup("frame")
		logger.Info("drawn", "patches", 3, slog.Group("area", "w", 4))

		msgs := lc.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "pane=main frame.patches=3 frame.area.w=4", msgs[0].Attrs)
	})

	t.Run("derived handlers share storage", func(t *testing.T) {
		lc := NewLogCapture(10, nil)
		slog.New(lc).With("a", 1).Info("one")
		slog.New(lc).Info("two")
		assert.Len(t, lc.Messages(), 2)

		lc.Clear()
		assert.Empty(t, lc.Messages())
	})
}

func TestFormatMessage(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 5, 6_000_000, time.UTC)
	assert.Equal(t, "[13:04:05.006] INFO  ready",
		FormatMessage(LogMessage{Timestamp: ts, Level: slog.LevelInfo, Message: "ready"}))
	assert.Equal(t, "[13:04:05.006] ERROR failed path=/tmp",
		FormatMessage(LogMessage{Timestamp: ts, Level: slog.LevelError, Message: "failed", Attrs: "path=/tmp"}))
}

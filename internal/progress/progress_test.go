package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSendNil(t *testing.T) {
	var f Func
	assert.NotPanics(t, func() { f.Send(LevelInfo, "ignored %d", 1) })
}

func TestSend(t *testing.T) {
	var got []Event
	f := Func(func(e Event) { got = append(got, e) })

	f.Send(LevelSuccess, "wrote %s", "gd-70s.html")

	assert.Equal(t, []Event{{Message: "wrote gd-70s.html", Level: LevelSuccess}}, got)
}

func TestLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := Log(zap.New(core))

	f.Send(LevelVerbose, "detail")
	f.Send(LevelWarning, "careful")
	f.Send(LevelError, "failed")
	f.Send(LevelSuccess, "done")

	entries := logs.All()
	if assert.Len(t, entries, 4) {
		assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
		assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
		assert.Equal(t, "success", entries[3].ContextMap()["level"])
	}
}

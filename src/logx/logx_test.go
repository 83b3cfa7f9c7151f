package logx

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLoggerLevelByString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, GetLoggerLevelByString("debug"))
	assert.Equal(t, zapcore.WarnLevel, GetLoggerLevelByString("warn"))
	assert.Equal(t, zapcore.InfoLevel, GetLoggerLevelByString("loud"))
}

func TestInitLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogx(zapcore.InfoLevel, false, false)
	l.InitLogger(&buf)

	l.Debug("hidden")
	l.Named("board").Infof("width %d", 400)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "width 400", entry["MESSAGE"])
	assert.Equal(t, "info", entry["LEVEL"])
	assert.Equal(t, "board", entry["NAME"])
}

func TestNewFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromCore(core)
	l.Warnf("style %d", 3)
	l.Named("x").Error("boom")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "style 3", logs.All()[0].Message)
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "x", logs.All()[1].LoggerName)
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing")
	l.Named("n").Debugf("%d", 1)
}

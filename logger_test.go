package lowpoly

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p := NewProcessor()
	p.BlurSize = 3
	_, _, _, err := p.Process(sampleImage(32, 24))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "edge detection finished")
	assert.Contains(t, out, "mesh created")
	assert.Contains(t, out, "mode=color")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

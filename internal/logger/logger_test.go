package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledDiscards(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Enabled: false, Writer: &out})
	l.Error("dropped")
	assert.Zero(t, out.Len())
}

func TestNew_TextAndLevel(t *testing.T) {
	var out bytes.Buffer
	l := New(Options{Enabled: true, Writer: &out, Level: slog.LevelWarn})

	l.Info("hidden")
	l.Warn("shown", "slot", 3)

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "slot=3")
}

func TestInit_JSON(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var out bytes.Buffer
	Init(Options{Enabled: true, Writer: &out, JSON: true, Level: slog.LevelDebug})
	Debug("palette created", "slot", 15)

	assert.Contains(t, out.String(), `"msg":"palette created"`)
	assert.Contains(t, out.String(), `"slot":15`)
}

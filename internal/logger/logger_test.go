package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebug_OnlyWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetVerbose(false)
	Debug("collected %d items", 3)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	defer SetVerbose(false)
	Debug("collected %d items", 3)
	assert.Contains(t, buf.String(), "[DEBUG] collected 3 items")
}

func TestSection_Header(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Section("Content Collection")
	assert.Contains(t, buf.String(), "=== Content Collection ===")
}

func TestInfoWarn_Formats(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	SetVerbose(true)
	defer SetVerbose(false)

	Info("provider: %s", "reddit")
	Warn("engine unreachable")

	out := buf.String()
	assert.Contains(t, out, "[INFO] provider: reddit")
	assert.Contains(t, out, "[WARN] engine unreachable")
}

func TestIsVerbose(t *testing.T) {
	SetVerbose(true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

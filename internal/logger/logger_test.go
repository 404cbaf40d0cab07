package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_VerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	Debug("loading %s", "history")

	assert.Contains(t, buf.String(), "[DEBUG] loading history")
}

func TestDebug_VerboseDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("should not appear")

	assert.Empty(t, buf.String())
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	Warn("decode failed: %v", "bad json")

	assert.Contains(t, buf.String(), "[WARN] decode failed: bad json")
}

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	output := buf.String()
	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "test message arg")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("info")
	Warn("warn")
	Section("section")
	Tier("t", 1, 1)

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Tier alpha")

	assert.Contains(t, buf.String(), "=== Tier alpha ===")
}

func TestInfoAndWarn(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("loaded %d documents", 3)
	Warn("skipping %s", "x.html")

	output := buf.String()
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "loaded 3 documents")
	assert.Contains(t, output, "WRN")
	assert.Contains(t, output, "skipping x.html")
}

func TestTier_StructuredFields(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Tier("alpha", 4, 2)

	output := buf.String()
	assert.Contains(t, output, "tier grouped")
	assert.Contains(t, output, "tier=alpha")
	assert.Contains(t, output, "documents=4")
	assert.Contains(t, output, "groups=2")
}

func TestSetOutput(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)

	assert.Equal(t, &buf, Output())
}

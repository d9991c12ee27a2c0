package ui

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetVerbose(false)
		SetJSONOutput(false)
	})
	return &out, &errOut
}

func TestDebugHiddenUnlessVerbose(t *testing.T) {
	out, _ := capture(t)

	Debug("hidden %d", 1)
	assert.Empty(t, out.String())

	SetVerbose(true)
	Debug("shown %d", 2)
	assert.Contains(t, out.String(), "DEBUG: shown 2")
}

func TestErrorGoesToErrorStream(t *testing.T) {
	out, errOut := capture(t)

	Error("boom: %s", "models.py")
	Info("fine")

	assert.Contains(t, errOut.String(), "ERROR: boom: models.py")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, out.String(), "INFO: fine")
}

func TestJSONOutput(t *testing.T) {
	out, _ := capture(t)
	SetJSONOutput(true)

	Success("generated %s", "Article")

	var msg Message
	require.NoError(t, json.Unmarshal(out.Bytes(), &msg))
	assert.Equal(t, LevelSuccess, msg.Level)
	assert.Equal(t, "generated Article", msg.Text)
}

func TestStep(t *testing.T) {
	out, _ := capture(t)

	Step(2, 5, "Generating %s", "serializers")
	assert.Equal(t, "  [2/5] Generating serializers\n", out.String())
}

package clifmt

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonTerminalIsPlain(t *testing.T) {
	f := For(&bytes.Buffer{}, nil)
	assert.Equal(t, "Error: x", f.Error("Error: x"))
	assert.Equal(t, "careful", f.Warn("careful"))
}

func TestColorized(t *testing.T) {
	f := Formatter{color: true}
	assert.Equal(t, "\x1b[1;31mbad\x1b[0m", f.Error("bad"))
	assert.Equal(t, "\x1b[33mhm\x1b[0m", f.Warn("hm"))
}

func envMap(m map[string]string) Getenv {
	return func(key string) string { return m[key] }
}

func TestNoColorEnv(t *testing.T) {
	assert.False(t, useColor(&bytes.Buffer{}, envMap(map[string]string{"NO_COLOR": "1"})))
}

func TestEnvIsInjected(t *testing.T) {
	var asked []string
	getenv := func(key string) string {
		asked = append(asked, key)
		return ""
	}
	For(&bytes.Buffer{}, getenv)
	assert.Equal(t, []string{"NO_COLOR", "TERM"}, asked)
}

func TestDumbTerminalIsPlain(t *testing.T) {
	assert.False(t, useColor(os.Stderr, envMap(map[string]string{"TERM": "dumb"})))
}

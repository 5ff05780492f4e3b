package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelsWriteTaggedLines(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("opening %s", "page")
	Warn("no containers")
	Error("write failed: %v", "denied")
	Success("done")

	got := buf.String()
	assert.Contains(t, got, "[INFO]  opening page")
	assert.Contains(t, got, "[WARN]  no containers")
	assert.Contains(t, got, "[ERROR] write failed: denied")
	assert.Contains(t, got, "[OK]    done")
}

func TestSection(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Section("RESULTS")

	assert.Contains(t, buf.String(), "══════════ RESULTS ══════════")
}

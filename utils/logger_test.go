package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut)

	l.Info("scraped %d listings", 3)
	l.Warn("fallback for %s", "ref")
	l.Error("boom: %v", "page load")

	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "scraped 3 listings")
	assert.Contains(t, out.String(), "fallback for ref")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "boom: page load")
}

func TestLoggerRunIDOnEveryLine(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	assert.Len(t, l.RunID(), 8)

	l.Info("one")
	l.Warn("two")
	for _, line := range bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n")) {
		assert.Contains(t, string(line), "["+l.RunID()+"]")
	}
}

func TestLoggerDebugSwitch(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out)

	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.SetDebug(true)
	l.Debug("shown %d", 1)
	assert.Contains(t, out.String(), "shown 1")
}

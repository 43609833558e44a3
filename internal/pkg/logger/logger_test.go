package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Format: "json", Output: &buf})

	l.WithField("case_number", "MP2024000001").Info("case created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "case created", entry["msg"])
	assert.Equal(t, "MP2024000001", entry["case_number"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	l := New(Config{Level: "loud", Output: &bytes.Buffer{}})
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestInitSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "text", Output: &buf})
	t.Cleanup(func() { Init(Config{Level: "info"}) })

	WithError(assert.AnError).Warn("push failed")
	logrus.Info("dropped by level")

	out := buf.String()
	assert.Contains(t, out, "push failed")
	assert.NotContains(t, out, "dropped by level")
}

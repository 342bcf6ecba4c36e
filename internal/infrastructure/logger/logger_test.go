package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("nonsense").GetLevel())
}

func TestLogError_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("info", &buf)

	LogError(l, "quotation", "Create", map[string]string{"id": "q1"}, errors.New("boom"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["msg"])
	assert.Equal(t, "quotation", entry["module"])
	assert.Equal(t, "Create", entry["funcName"])
	assert.Equal(t, "error", entry["level"])
}

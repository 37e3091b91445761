package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer
	l := New(&buf)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("skipped")
	assert.Empty(t, buf.String())

	l.Warn("written")
	assert.Contains(t, buf.String(), `"msg":"written"`)
}

func TestNew_DebugOutsideRelease(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_LEVEL", "")

	l := New(&bytes.Buffer{})
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

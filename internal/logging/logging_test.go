package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)

	level, err := ParseLevel("DEBUG")
	assert.NoError(err)
	assert.Equal(slog.LevelDebug, level)

	level, err = ParseLevel(" warn ")
	assert.NoError(err)
	assert.Equal(slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.ErrorContains(err, "invalid log level")
}

func TestNew(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger, err := New(&buf, "info", "json")
	assert.NoError(err)

	logger.Debug("hidden")
	logger.Info("scanned", "dirs", 3)
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), `"msg":"scanned"`)
	assert.Contains(buf.String(), `"dirs":3`)

	buf.Reset()
	logger, err = New(&buf, "debug", "")
	assert.NoError(err)
	logger.Debug("visible")
	assert.Contains(buf.String(), "msg=visible")

	_, err = New(&buf, "info", "xml")
	assert.ErrorContains(err, "invalid log format")
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLevel(t *testing.T) {
	t.Setenv("BINHIST_LOG", "")
	assert.Equal(t, rune(0), Level("x"))

	t.Setenv("BINHIST_LOG", "DEBUG")
	assert.Equal(t, 'D', Level("x"))

	t.Setenv("BINHIST_LOG_x", "error")
	assert.Equal(t, 'e', Level("x"))
	assert.Equal(t, 'D', Level("y"))
}

func TestParseLevel(t *testing.T) {
	for lvl, want := range map[rune]zapcore.Level{
		0:   zapcore.WarnLevel,
		'V': zapcore.DebugLevel,
		'D': zapcore.DebugLevel,
		'I': zapcore.InfoLevel,
		'W': zapcore.WarnLevel,
		'E': zapcore.ErrorLevel,
		'F': zapcore.DPanicLevel,
		'N': zapcore.DPanicLevel,
		'?': zapcore.WarnLevel,
	} {
		assert.Equal(t, want, parseLevel(lvl), "level %q", lvl)
	}
}

func TestNew(t *testing.T) {
	t.Setenv("BINHIST_LOG", "W")
	t.Setenv("BINHIST_LOG_loud", "D")

	quiet := New("quiet")
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	loud := New("loud")
	assert.True(t, loud.Core().Enabled(zapcore.DebugLevel))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := zap.New(newCore(zapcore.AddSync(&buf))).Named("test")
	logger.Warn("dropped", zap.Int("line", 3))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "test", entry["logger"])
	assert.Equal(t, "dropped", entry["msg"])
	assert.Equal(t, 3.0, entry["line"])
}

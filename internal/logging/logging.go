// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging configures zap loggers for binhist.
//
// Log levels are set per logger name with the environment variable
// BINHIST_LOG_<name>, falling back to BINHIST_LOG. The first letter of
// the value selects the level:
//
//	V, D  debug
//	I     info
//	W     warn (default)
//	E     error
//	F, N  fatal only
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var root = zap.New(newCore(os.Stderr))

func newCore(w zapcore.WriteSyncer) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		w,
		zap.DebugLevel,
	)
}

// New creates a logger named pkg at the configured level of pkg.
//
//	var logger = logging.New("binhist")
func New(pkg string) *zap.Logger {
	return root.Named(pkg).
		WithOptions(zap.IncreaseLevel(zap.NewAtomicLevelAt(parseLevel(Level(pkg)))))
}

// Level returns the configured log level of pkg as a letter, or 0 if
// none is configured.
func Level(pkg string) rune {
	lvl, ok := os.LookupEnv("BINHIST_LOG_" + pkg)
	if !ok {
		lvl, ok = os.LookupEnv("BINHIST_LOG")
	}
	if !ok || len(lvl) == 0 {
		return 0
	}
	return rune(lvl[0])
}

func parseLevel(lvl rune) zapcore.Level {
	switch lvl {
	case 'V', 'D':
		return zapcore.DebugLevel
	case 'I':
		return zapcore.InfoLevel
	case 'W':
		return zapcore.WarnLevel
	case 'E':
		return zapcore.ErrorLevel
	case 'F', 'N':
		return zapcore.DPanicLevel
	}
	return zapcore.WarnLevel
}

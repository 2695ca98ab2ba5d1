// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NoLog drops every message.
var NoLog = NewLogger("")

func consoleEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeLevel = levelEncoder
	config.EncodeTime = zapcore.ISO8601TimeEncoder
	config.ConsoleSeparator = " "
	return config
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}

type discardWriteCloser struct{ io.Writer }

func (discardWriteCloser) Close() error { return nil }

// NewDefaultLogger returns a logger named [name] writing to stderr at the
// default display level.
func NewDefaultLogger(name string) Logger {
	return NewStderrLogger(name, DefaultConfig.DisplayLevel)
}

// NewStderrLogger returns a logger named [name] writing messages of [level]
// and above to stderr.
func NewStderrLogger(name string, level Level) Logger {
	encoder := zapcore.NewConsoleEncoder(consoleEncoderConfig())
	core := NewWrappedCore(level, discardWriteCloser{os.Stderr}, encoder)
	return NewLogger(name, core)
}

// New returns a logger built from [config]: a stderr display core, plus a
// rotated JSON file core when a directory is configured.
func New(config Config) (Logger, error) {
	cores := []WrappedCore{
		NewWrappedCore(
			config.DisplayLevel,
			discardWriteCloser{os.Stderr},
			zapcore.NewConsoleEncoder(consoleEncoderConfig()),
		),
	}

	if config.Directory != "" {
		if err := os.MkdirAll(config.Directory, 0o755); err != nil {
			return nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   filepath.Join(config.Directory, config.LoggerName+".log"),
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		fileEncoder := zapcore.NewJSONEncoder(consoleEncoderConfig())
		cores = append(cores, NewWrappedCore(config.LogLevel, rotator, fileEncoder))
	}

	return NewLogger(config.LoggerName, cores...), nil
}

// IsTerminal reports whether [f] is attached to a terminal, which callers can
// use to decide whether displayed output should be decorated.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

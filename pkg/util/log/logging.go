/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

import (
	"github.com/docker/go-units"

	"github.com/natefinch/lumberjack"

	"go.uber.org/multierr"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the level of logging.
type LogLevel int8

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = LogLevel(zapcore.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = LogLevel(zapcore.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = LogLevel(zapcore.WarnLevel)
	// ErrorLevel logs are high-priority. If an application is running smoothly,
	// it shouldn't generate any error-level logs.
	ErrorLevel = LogLevel(zapcore.ErrorLevel)
	// FatalLevel logs a message, then calls os.Exit(1).
	FatalLevel = LogLevel(zapcore.FatalLevel)
)

// _megabyte is the unit lumberjack counts MaxSize in.
const _megabyte = 1024 * 1024

type LoggingConfig struct {
	Level      string `default:"warn" validate:"oneof=debug info warn error fatal DEBUG INFO WARN ERROR FATAL" yaml:"level" json:"level"`
	Path       string `yaml:"path" json:"path"`
	Name       string `default:"polysecret.log" yaml:"name" json:"name"`
	MaxSize    string `default:"10m" yaml:"max_size" json:"max_size"`
	MaxBackups int    `default:"5" validate:"gte=0" yaml:"max_backups" json:"max_backups"`
	MaxAge     int    `default:"30" validate:"gte=0" yaml:"max_age" json:"max_age"`
	Compress   bool   `yaml:"compress" json:"compress"`
	Console    bool   `default:"true" yaml:"console" json:"console"`
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *LogLevel) unmarshalText(text []byte) bool {
	switch string(text) {
	case "debug", "DEBUG":
		*l = DebugLevel
	case "info", "INFO", "": // make the zero value useful
		*l = InfoLevel
	case "warn", "WARN":
		*l = WarnLevel
	case "error", "ERROR":
		*l = ErrorLevel
	case "fatal", "FATAL":
		*l = FatalLevel
	default:
		return false
	}
	return true
}

type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

var (
	_globalMu     sync.RWMutex
	_globalLogger = NewLogger(&LoggingConfig{Level: "warn", Console: true}, os.Stderr)
)

// Init replaces the global logger. The console side writes to stderr, stdout
// is reserved for results.
func Init(cfg *LoggingConfig) error {
	l := NewLogger(cfg, os.Stderr)

	_globalMu.Lock()
	prev := _globalLogger
	_globalLogger = l
	_globalMu.Unlock()

	return prev.Close()
}

func current() *logger {
	_globalMu.RLock()
	defer _globalMu.RUnlock()
	return _globalLogger
}

type logger struct {
	sugar  *zap.SugaredLogger
	closer io.Closer
}

// NewLogger builds a logger writing to console (if enabled) and to a rotated
// file under cfg.Path (if set).
func NewLogger(cfg *LoggingConfig, console io.Writer) *logger {
	var (
		syncers []zapcore.WriteSyncer
		closer  io.Closer
	)

	if cfg.Console && console != nil {
		syncers = append(syncers, zapcore.AddSync(console))
	}
	if len(cfg.Path) > 0 {
		lj := buildLumberJack(cfg)
		syncers = append(syncers, zapcore.AddSync(lj))
		closer = lj
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var level LogLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.NewAtomicLevelAt(zapcore.Level(level)),
	)

	return &logger{
		sugar:  zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar(),
		closer: closer,
	}
}

func buildLumberJack(cfg *LoggingConfig) *lumberjack.Logger {
	maxSize := 10
	if n, err := units.RAMInBytes(cfg.MaxSize); err == nil && n >= _megabyte {
		maxSize = int(n / _megabyte)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Path, cfg.Name),
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

// Close flushes buffered entries and releases the log file.
func (l *logger) Close() error {
	err := l.sugar.Sync()
	// stderr/stdout cannot be fsync'ed on most platforms
	if isUnsyncable(err) {
		err = nil
	}
	if l.closer != nil {
		err = multierr.Append(err, l.closer.Close())
	}
	return err
}

func isUnsyncable(err error) bool {
	if err == nil {
		return false
	}
	for _, e := range multierr.Errors(err) {
		var pe *os.PathError
		if !errors.As(e, &pe) {
			return false
		}
	}
	return true
}

func (l *logger) with(args ...interface{}) *logger {
	return &logger{
		sugar:  l.sugar.With(args...),
		closer: l.closer,
	}
}

func (l *logger) Debug(v ...interface{}) {
	l.sugar.Debug(v...)
}

func (l *logger) Debugf(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *logger) Info(v ...interface{}) {
	l.sugar.Info(v...)
}

func (l *logger) Infof(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *logger) Warn(v ...interface{}) {
	l.sugar.Warn(v...)
}

func (l *logger) Warnf(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *logger) Error(v ...interface{}) {
	l.sugar.Error(v...)
}

func (l *logger) Errorf(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

func (l *logger) Fatal(v ...interface{}) {
	l.sugar.Fatal(v...)
}

func (l *logger) Fatalf(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// With attaches fields to every entry written through the global logger
// from now on.
func With(fields ...zap.Field) {
	args := make([]interface{}, 0, len(fields))
	for _, field := range fields {
		args = append(args, field)
	}

	_globalMu.Lock()
	_globalLogger = _globalLogger.with(args...)
	_globalMu.Unlock()
}

// Sync flushes the global logger and closes its file.
func Sync() error {
	return current().Close()
}

// Debug ...
func Debug(v ...interface{}) {
	current().Debug(v...)
}

// Debugf ...
func Debugf(format string, v ...interface{}) {
	current().Debugf(format, v...)
}

// Info ...
func Info(v ...interface{}) {
	current().Info(v...)
}

// Infof ...
func Infof(format string, v ...interface{}) {
	current().Infof(format, v...)
}

// Warn ...
func Warn(v ...interface{}) {
	current().Warn(v...)
}

// Warnf ...
func Warnf(format string, v ...interface{}) {
	current().Warnf(format, v...)
}

// Error ...
func Error(v ...interface{}) {
	current().Error(v...)
}

// Errorf ...
func Errorf(format string, v ...interface{}) {
	current().Errorf(format, v...)
}

// Fatal ...
func Fatal(v ...interface{}) {
	current().Fatal(v...)
}

// Fatalf ...
func Fatalf(format string, v ...interface{}) {
	current().Fatalf(format, v...)
}

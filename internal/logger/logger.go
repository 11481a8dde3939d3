/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package logger is the internal structured-logging facade the session and
// the engine use to report operational events (not part of the wire
// protocol - see SPEC_FULL.md AMBIENT A). It wraps a *logrus.Logger the
// same way the teacher's logger package does, trimmed to the handful of
// levels and the field map a protocol engine actually needs.
package logger

import (
	"github.com/sirupsen/logrus"
)

// Field is one structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is a short constructor for Field, used at call sites to keep log
// statements on one line.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger is the facade every session and transport logs through.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// SetDebug raises or lowers the logger's verbosity, used to honor
	// the bootstrap environment's _assuan_debug toggle (§6.4).
	SetDebug(on bool)
}

type logrusLogger struct {
	log *logrus.Logger
}

// New wraps an existing *logrus.Logger. Passing nil is equivalent to
// calling Discard().
func New(log *logrus.Logger) Logger {
	if log == nil {
		return Discard()
	}
	return &logrusLogger{log: log}
}

func (l *logrusLogger) entry(fields []Field) *logrus.Entry {
	e := logrus.NewEntry(l.log)
	for _, f := range fields {
		e = e.WithField(f.Key, f.Value)
	}
	return e
}

func (l *logrusLogger) Debug(msg string, fields ...Field) {
	l.entry(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...Field) {
	l.entry(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...Field) {
	l.entry(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...Field) {
	l.entry(fields).Error(msg)
}

// SetDebug raises the wrapped logrus.Logger to DebugLevel, or restores
// InfoLevel when turned off.
func (l *logrusLogger) SetDebug(on bool) {
	if on {
		l.log.SetLevel(logrus.DebugLevel)
		return
	}
	l.log.SetLevel(logrus.InfoLevel)
}

type discard struct{}

// Discard returns a Logger that drops everything, the session default
// when the embedding program supplies none.
func Discard() Logger {
	return discard{}
}

func (discard) Debug(string, ...Field) {}
func (discard) Info(string, ...Field)  {}
func (discard) Warn(string, ...Field)  {}
func (discard) Error(string, ...Field) {}
func (discard) SetDebug(bool)          {}

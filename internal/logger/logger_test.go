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

package logger_test

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/nabbar/goassuan/internal/logger"
)

func TestDiscardLoggerNeverPanics(t *testing.T) {
	l := logger.Discard()
	l.Debug("x")
	l.Info("x", logger.F("k", "v"))
	l.Warn("x")
	l.Error("x")
}

func TestNewWrapsLogrusAndWritesFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l := logger.New(base)
	l.Info("session started", logger.F("pid", 42))

	if !bytes.Contains(buf.Bytes(), []byte("session started")) {
		t.Fatalf("expected message in output, got %q", buf.String())
	}
	if !bytes.Contains(buf.Bytes(), []byte("pid=42")) {
		t.Fatalf("expected field in output, got %q", buf.String())
	}
}

func TestNewNilFallsBackToDiscard(t *testing.T) {
	l := logger.New(nil)
	l.Error("should not panic")
}

func TestSetDebugRaisesLogrusLevel(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetLevel(logrus.InfoLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l := logger.New(base)
	l.Debug("hidden before SetDebug")
	if bytes.Contains(buf.Bytes(), []byte("hidden before SetDebug")) {
		t.Fatalf("debug line should have been suppressed at InfoLevel")
	}

	l.SetDebug(true)
	l.Debug("visible after SetDebug")
	if !bytes.Contains(buf.Bytes(), []byte("visible after SetDebug")) {
		t.Fatalf("expected debug line after SetDebug(true), got %q", buf.String())
	}

	l.SetDebug(false)
	buf.Reset()
	l.Debug("hidden again")
	if bytes.Contains(buf.Bytes(), []byte("hidden again")) {
		t.Fatalf("debug line should be suppressed again after SetDebug(false)")
	}
}

func TestDiscardSetDebugNeverPanics(t *testing.T) {
	l := logger.Discard()
	l.SetDebug(true)
	l.SetDebug(false)
}

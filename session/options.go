/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package session

import (
	"github.com/sirupsen/logrus"

	"github.com/nabbar/goassuan/command"
	"github.com/nabbar/goassuan/internal/logger"
)

// Options collects the session-level tunables the base protocol leaves
// as "implementation choices": the maximum line length, and the data
// handler/logger an embedding program may supply. There is no file- or
// env-backed loader here; the caller constructs Options directly.
type Options struct {
	maxLine int
	log     logger.Logger
	data    command.DataHandler
}

// Option configures a Session at construction time.
type Option func(*Options)

func defaultOptions() Options {
	return Options{maxLine: 0, log: logger.Discard()}
}

// WithMaxLine overrides the line codec's maximum line length. A value
// <= 0 is ignored (the codec's own default applies).
func WithMaxLine(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.maxLine = n
		}
	}
}

// WithLogger attaches a *logrus.Logger as the session's diagnostic
// sink (AMBIENT A). A nil logger leaves the discarding default in place.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.log = logger.New(l)
		}
	}
}

// WithDataHandler overrides the handler invoked for "D "-prefixed
// request lines (§4.D step 1). Unset, the engine's default reports
// NotImplemented.
func WithDataHandler(h command.DataHandler) Option {
	return func(o *Options) {
		if h != nil {
			o.data = h
		}
	}
}

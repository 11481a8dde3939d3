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

// Package pipe implements the transport.Context over a pair of already-open
// descriptors, one per direction (§4.B.1). It is the simplest transport:
// no buffering beyond the line codec's own, no state, and teardown is a
// no-op since the descriptors are owned by whoever spawned the session.
package pipe

import (
	"io"

	"github.com/nabbar/goassuan/transport"
)

type ctx struct {
	in  io.Reader
	out io.Writer
}

// New wraps an already-open read end and write end as a transport.Context.
// Neither end is closed by this transport's Close - the caller retains
// ownership, matching the original's pipe server which is handed its fds
// by the process that spawned it rather than opening them itself.
func New(in io.Reader, out io.Writer) transport.Context {
	return &ctx{in: in, out: out}
}

func (c *ctx) Read(p []byte) (int, error) {
	n, err := c.in.Read(p)
	return n, transport.ErrorFilter(err)
}

func (c *ctx) Write(p []byte) (int, error) {
	n, err := c.out.Write(p)
	return n, transport.ErrorFilter(err)
}

// Close is a no-op: descriptors are owned by the caller (§4.B.1).
func (c *ctx) Close() error {
	return nil
}

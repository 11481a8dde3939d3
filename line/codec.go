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

// Package line implements the line codec of §4.A: it turns a
// transport.Context's byte stream into a sequence of logical request
// lines, skipping comments and blank lines, and writes reply lines back
// out terminated by a single newline.
//
// The codec knows nothing about commands; it produces and consumes raw
// lines only.
package line

import (
	"errors"

	"github.com/nabbar/goassuan/transport"
)

// ErrLineTooLong is returned by ReadLine when a logical line exceeds
// the codec's configured maximum before a terminating '\n' is seen. The
// session is no longer in a known state once this occurs: §4.A requires
// no silent truncation.
var ErrLineTooLong = errors.New("line: line exceeds maximum length")

// Codec reads and writes newline-delimited lines over a transport.Context,
// coalescing partial transport reads in a persistent buffer.
type Codec struct {
	ctx     transport.Context
	maxLine int

	buf []byte // bytes read from ctx but not yet consumed as a line
}

// New returns a Codec reading and writing over ctx. maxLine bounds a
// single logical line (§4.A's MAX_LINE_BYTES); a value <= 0 selects
// transport.MaxLineBytesDefault.
func New(ctx transport.Context, maxLine int) *Codec {
	if maxLine <= 0 {
		maxLine = transport.MaxLineBytesDefault
	}
	return &Codec{
		ctx:     ctx,
		maxLine: maxLine,
		buf:     make([]byte, 0, transport.DefaultBufferSize),
	}
}

// ReadLine returns the next non-trivial logical line with its
// terminating newline stripped. Comment lines (first byte '#') and
// empty lines are consumed silently; the codec loops internally until a
// line worth returning arrives or the transport ends.
func (c *Codec) ReadLine() ([]byte, error) {
	for {
		line, err := c.nextLine()
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' {
			continue
		}
		return line, nil
	}
}

// WriteLine writes p followed by a single newline.
func (c *Codec) WriteLine(p []byte) error {
	out := make([]byte, 0, len(p)+1)
	out = append(out, p...)
	out = append(out, transport.EOL)
	_, err := c.ctx.Write(out)
	return err
}

// nextLine extracts the next '\n'-delimited line from the buffer,
// topping up from the transport as needed, and enforces maxLine.
func (c *Codec) nextLine() ([]byte, error) {
	for {
		if idx := indexByte(c.buf, transport.EOL); idx >= 0 {
			if idx >= c.maxLine {
				c.buf = append(c.buf[:0], c.buf[idx+1:]...)
				return nil, ErrLineTooLong
			}
			line := make([]byte, idx)
			copy(line, c.buf[:idx])
			c.buf = append(c.buf[:0], c.buf[idx+1:]...)
			return line, nil
		}

		if len(c.buf) >= c.maxLine {
			c.buf = c.buf[:0]
			return nil, ErrLineTooLong
		}

		chunk := make([]byte, transport.DefaultBufferSize)
		n, err := c.ctx.Read(chunk)
		if n > 0 {
			c.buf = append(c.buf, chunk[:n]...)
		}
		if err != nil {
			return nil, err
		}
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

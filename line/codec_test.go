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

package line_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nabbar/goassuan/line"
	"github.com/nabbar/goassuan/transport/pipe"
)

func TestReadLineSkipsCommentsAndBlanks(t *testing.T) {
	in := strings.NewReader("# a comment\n\nNOP\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 0)

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "NOP" {
		t.Fatalf("got %q, want %q", got, "NOP")
	}
}

func TestReadLineCoalescesPartialReads(t *testing.T) {
	r, w := io.Pipe()
	c := line.New(pipe.New(r, &bytes.Buffer{}), 0)

	go func() {
		_, _ = w.Write([]byte("BY"))
		_, _ = w.Write([]byte("E\n"))
		_ = w.Close()
	}()

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "BYE" {
		t.Fatalf("got %q, want %q", got, "BYE")
	}
}

func TestReadLineMultipleLinesFromOneBuffer(t *testing.T) {
	in := strings.NewReader("NOP\nBYE\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 0)

	first, err := c.ReadLine()
	if err != nil || string(first) != "NOP" {
		t.Fatalf("first = %q, err = %v", first, err)
	}
	second, err := c.ReadLine()
	if err != nil || string(second) != "BYE" {
		t.Fatalf("second = %q, err = %v", second, err)
	}
}

func TestReadLineExactlyMaxLineSucceeds(t *testing.T) {
	// maxLine=8: a request of length exactly 8 bytes including the
	// newline (7 bytes of content) must succeed (§8 boundary behavior).
	in := strings.NewReader(strings.Repeat("A", 7) + "\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 8)

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != strings.Repeat("A", 7) {
		t.Fatalf("got %q, want 7 A's", got)
	}
}

func TestReadLineOneByteOverMaxLineFails(t *testing.T) {
	// One byte longer than the exactly-maxLine case above: 8 bytes of
	// content plus the newline, total 9 bytes, must be ErrLineTooLong.
	in := strings.NewReader(strings.Repeat("A", 8) + "\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 8)

	_, err := c.ReadLine()
	if !errors.Is(err, line.ErrLineTooLong) {
		t.Fatalf("got %v, want ErrLineTooLong", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	in := strings.NewReader(strings.Repeat("A", 20) + "\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 8)

	_, err := c.ReadLine()
	if !errors.Is(err, line.ErrLineTooLong) {
		t.Fatalf("got %v, want ErrLineTooLong", err)
	}
}

func TestReadLineRecoversAfterTooLong(t *testing.T) {
	in := strings.NewReader(strings.Repeat("A", 20) + "\nNOP\n")
	c := line.New(pipe.New(in, &bytes.Buffer{}), 8)

	if _, err := c.ReadLine(); !errors.Is(err, line.ErrLineTooLong) {
		t.Fatalf("got %v, want ErrLineTooLong", err)
	}

	got, err := c.ReadLine()
	if err != nil {
		t.Fatalf("unexpected error on recovery: %v", err)
	}
	if string(got) != "NOP" {
		t.Fatalf("got %q, want %q", got, "NOP")
	}
}

func TestWriteLineAppendsNewline(t *testing.T) {
	var out bytes.Buffer
	c := line.New(pipe.New(strings.NewReader(""), &out), 0)

	if err := c.WriteLine([]byte("OK")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "OK\n" {
		t.Fatalf("got %q", out.String())
	}
}

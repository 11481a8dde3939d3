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

package status

import "fmt"

// Error is a CodeError plus an optional detail string, the "sticky
// diagnostic" of §3/§7 folded directly into the value a handler returns
// instead of living as mutable session state.
type Error interface {
	error

	// Code returns the underlying CodeError.
	Code() CodeError
	// Detail returns the free-form diagnostic text, or "" if none was set.
	Detail() string
}

type codeErr struct {
	code   CodeError
	detail string
}

// New returns an Error carrying code with no additional detail.
func New(code CodeError) Error {
	return &codeErr{code: code}
}

// WithDetail returns an Error carrying code and a free-form detail string,
// bounded to a reasonable length per §7 ("The error text is bounded (~100
// chars)").
func WithDetail(code CodeError, detail string) Error {
	if len(detail) > 100 {
		detail = detail[:100]
	}
	return &codeErr{code: code, detail: detail}
}

func (e *codeErr) Code() CodeError {
	return e.code
}

func (e *codeErr) Detail() string {
	return e.detail
}

func (e *codeErr) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("%d %s", e.code.Uint16(), e.code.Message())
	}
	return fmt.Sprintf("%d %s - %s", e.code.Uint16(), e.code.Message(), e.detail)
}

// IsCode reports whether err is a status.Error carrying exactly code.
func IsCode(err error, code CodeError) bool {
	se, ok := err.(Error)
	return ok && se.Code() == code
}

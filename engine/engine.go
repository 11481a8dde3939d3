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

// Package engine implements the protocol engine of §4.D: the
// read-dispatch-reply loop that drives a session to completion, strictly
// request/response, single-threaded, with no pipelining.
package engine

import (
	"strings"

	"github.com/nabbar/goassuan/command"
	"github.com/nabbar/goassuan/internal/logger"
	"github.com/nabbar/goassuan/line"
	"github.com/nabbar/goassuan/status"
)

// byeReply is the farewell line written in response to BYE (§6.1).
const byeReply = "OK  Bye, bye - hope to meet you again"

// Lookup resolves a command name to its handler. command.Registry
// satisfies this directly.
type Lookup interface {
	Lookup(name string) (command.Handler, bool)
}

// Engine drives one session's request/response loop over a line.Codec.
type Engine struct {
	Codec       *line.Codec
	Registry    Lookup
	Context     command.Context
	DataHandler command.DataHandler
	Log         logger.Logger
}

// New returns an Engine ready to Run. A nil DataHandler falls back to
// command.DefaultDataHandler; a nil Log discards diagnostics.
func New(codec *line.Codec, reg Lookup, ctx command.Context, data command.DataHandler, log logger.Logger) *Engine {
	if data == nil {
		data = command.DefaultDataHandler
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Engine{Codec: codec, Registry: reg, Context: ctx, DataHandler: data, Log: log}
}

// Run drives the loop until BYE, a protocol-fatal condition, or an I/O
// error on the transport. It returns nil on a clean BYE and the
// triggering error otherwise (§4.E process(): "0 on clean BYE, non-zero
// on I/O error").
func (e *Engine) Run() error {
	for {
		raw, err := e.Codec.ReadLine()
		if err != nil {
			e.Log.Error("read_line failed", logger.F("error", err))
			return err
		}

		result := e.dispatch(raw)

		switch result.Outcome() {
		case status.Success:
			if err := e.Codec.WriteLine([]byte("OK")); err != nil {
				return err
			}
		case status.Terminate:
			return e.Codec.WriteLine([]byte(byeReply))
		default:
			if err := e.Codec.WriteLine([]byte(FormatError(result.Err()))); err != nil {
				return err
			}
		}
	}
}

// dispatch implements §4.D's dispatch(ctx, line).
func (e *Engine) dispatch(raw []byte) status.Result {
	text := string(raw)

	if strings.HasPrefix(text, "D ") {
		return e.DataHandler(e.Context, text[2:])
	}

	if len(text) > 0 && isSpace(text[0]) {
		return status.Fail(status.WithDetail(status.InvalidCommand, "leading white-space"))
	}

	name, args := splitCommand(text)

	h, ok := e.Registry.Lookup(name)
	if !ok {
		return status.Fail(status.New(status.UnknownCommand))
	}
	return h(e.Context, args)
}

// splitCommand splits text at its first run of spaces or tabs: the
// prefix is the command name, the remainder has its leading whitespace
// stripped (§4.D step 2).
func splitCommand(text string) (name, args string) {
	i := 0
	for i < len(text) && !isSpace(text[i]) {
		i++
	}
	name = text[:i]
	for i < len(text) && isSpace(text[i]) {
		i++
	}
	return name, text[i:]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// FormatError renders err per §4.D's error-formatting rule: codes below
// ServerFaultBase always get the ServerFault banner; otherwise the code,
// message and optional sticky detail.
func FormatError(err status.Error) string {
	code := err.Code()
	if code.IsServerFault() {
		return "ERR " + status.ServerFault.String() + " " + status.ServerFault.Message() + " (" + code.Message() + ")"
	}
	if detail := err.Detail(); detail != "" {
		return "ERR " + code.String() + " " + code.Message() + " - " + detail
	}
	return "ERR " + code.String() + " " + code.Message()
}

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

package command

import (
	"strconv"
	"strings"

	"github.com/nabbar/goassuan/status"
)

// Standard command ids, all below status.UserBase (§4.C).
const (
	IDNop = iota + 1
	IDCancel
	IDBye
	IDAuth
	IDReset
	IDEnd
	IDInput
	IDOutput
)

type standardCommand struct {
	name    string
	handler Handler
}

var standardByID = map[int]standardCommand{
	IDNop:    {"NOP", handleNOP},
	IDCancel: {"CANCEL", handleNotImplemented},
	IDBye:    {"BYE", handleBYE},
	IDAuth:   {"AUTH", handleNotImplemented},
	IDReset:  {"RESET", handleNotImplemented},
	IDEnd:    {"END", handleNotImplemented},
	IDInput:  {"INPUT", handleINPUT},
	IDOutput: {"OUTPUT", handleOUTPUT},
}

// RegisterStandard installs every standard "always" command (§4.E
// register_std_commands: NOP, CANCEL, BYE, AUTH, RESET, END) plus
// INPUT/OUTPUT, each with its default handler.
func RegisterStandard(r *Registry) status.Error {
	for _, id := range []int{IDNop, IDCancel, IDBye, IDAuth, IDReset, IDEnd, IDInput, IDOutput} {
		if err := r.Register(id, "", nil); err != nil {
			return err
		}
	}
	return nil
}

func handleNOP(_ Context, _ string) status.Result {
	return status.OK()
}

func handleBYE(_ Context, _ string) status.Result {
	return status.Bye()
}

func handleNotImplemented(_ Context, _ string) status.Result {
	return status.Fail(status.New(status.NotImplemented))
}

func handleINPUT(ctx Context, args string) status.Result {
	n, err := parseFDArg(args)
	if err != nil {
		return status.Fail(err)
	}
	if n == ctx.InboundFD() || n == ctx.OutboundFD() {
		return status.Fail(status.New(status.ParameterConflict))
	}
	ctx.SetInputFD(n)
	return status.OK()
}

func handleOUTPUT(ctx Context, args string) status.Result {
	n, err := parseFDArg(args)
	if err != nil {
		return status.Fail(err)
	}
	if n == ctx.InboundFD() || n == ctx.OutboundFD() {
		return status.Fail(status.New(status.ParameterConflict))
	}
	ctx.SetOutputFD(n)
	return status.OK()
}

// parseFDArg parses the "FD=<n>" argument shared by INPUT and OUTPUT
// (§4.C): n must be a base-10 non-negative integer with no trailing
// garbage.
func parseFDArg(args string) (int, status.Error) {
	const prefix = "FD="
	if !strings.HasPrefix(args, prefix) {
		return 0, status.New(status.SyntaxError)
	}
	digits := strings.TrimPrefix(args, prefix)
	if digits == "" {
		return 0, status.WithDetail(status.SyntaxError, "number required")
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, status.WithDetail(status.SyntaxError, "number required")
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, status.WithDetail(status.SyntaxError, "number required")
	}
	return n, nil
}

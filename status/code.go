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

// Package status provides the numeric result-code taxonomy used to report
// dispatch outcomes across the protocol engine: success, session
// termination, and the family of named error codes a handler or the
// engine itself may return.
package status

import "strconv"

// CodeError is a numeric result code, analogous to an HTTP status code.
// Values below ServerFaultBase are reserved for internal protocol-engine
// faults and always render with the ServerFault banner regardless of
// their specific value.
type CodeError uint16

// ServerFaultBase is the boundary below which every code is treated as an
// internal protocol-engine fault (§7: "Code < 100 is reserved").
const ServerFaultBase CodeError = 100

// UserBase is the boundary at and above which command ids (not error
// codes) are considered application-defined rather than standard.
const UserBase = 100

const (
	// UnknownError is the fallback code when nothing more specific applies.
	UnknownError CodeError = 0

	// ServerFault flags an internal protocol-engine fault. Always inside the
	// reserved < ServerFaultBase band, regardless of the specific value a
	// handler returned.
	ServerFault CodeError = 50

	// InvalidValue reports a malformed argument to a library call.
	InvalidValue CodeError = 157
	// SyntaxError reports a malformed request line.
	SyntaxError CodeError = 158
	// InvalidCommand reports an empty or whitespace-leading command name.
	InvalidCommand CodeError = 159
	// UnknownCommand reports a command name absent from the registry.
	UnknownCommand CodeError = 160
	// ParameterConflict reports an INPUT/OUTPUT target equal to a reserved descriptor.
	ParameterConflict CodeError = 161
	// NotImplemented is the default result for handlers the application did not override.
	NotImplemented CodeError = 162
	// OutOfCore reports an allocation failure.
	OutOfCore CodeError = 163
	// ConnectFailed reports a transport setup failure.
	ConnectFailed CodeError = 164
	// IoError reports a read/write/transport failure; propagated, never encoded as ERR.
	IoError CodeError = 165
)

var codeMessage = map[CodeError]string{
	UnknownError:      "unknown error",
	InvalidValue:      "invalid value",
	SyntaxError:       "syntax error",
	InvalidCommand:    "invalid command",
	UnknownCommand:    "unknown command",
	ParameterConflict: "parameter conflict",
	NotImplemented:    "not implemented",
	OutOfCore:         "out of core",
	ServerFault:       "server fault",
	ConnectFailed:     "connect failed",
	IoError:           "general I/O error",
}

// Message returns the registered message for c, or "unknown error" if none
// was registered.
func (c CodeError) Message() string {
	if m, ok := codeMessage[c]; ok {
		return m
	}
	return "unknown error"
}

// IsServerFault reports whether c falls in the reserved internal-fault band.
func (c CodeError) IsServerFault() bool {
	return c < ServerFaultBase
}

// Uint16 returns c as a uint16.
func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

// String renders the decimal code, matching the wire format's "<code>" field.
func (c CodeError) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

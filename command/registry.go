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

// Package command implements the command registry of §4.C: an ordered
// table of (name, id, Handler) entries split between a fixed standard
// region below UserBase and an application-defined region above it.
package command

import (
	"github.com/nabbar/goassuan/status"
)

// Handler is invoked with the session's own Context and the argument
// string (leading whitespace already stripped) that followed the
// command name on the request line.
type Handler func(ctx Context, args string) status.Result

// Context is the subset of session state a Handler needs. It is kept
// narrow on purpose so command handlers depend only on what dispatch
// actually supplies, not on the full session.
type Context interface {
	// SetError reports a diagnostic code and text for the current
	// request. It does not change the ERR reply: detail text meant for
	// the reply travels in the status.Error the handler returns
	// (status.WithDetail).
	SetError(code status.CodeError, detail string)
	// InboundFD and OutboundFD identify the session's own descriptors,
	// checked by the standard INPUT/OUTPUT handlers for §4.C's
	// reserved-descriptor conflict rule.
	InboundFD() int
	OutboundFD() int
	// SetInputFD and SetOutputFD record the descriptors named by a
	// successful INPUT/OUTPUT command.
	SetInputFD(n int)
	SetOutputFD(n int)
}

type entry struct {
	id      int
	name    string
	handler Handler
	doc     string
}

// Registry is the ordered command table. The zero value is ready to use.
type Registry struct {
	entries []entry
}

// New returns an empty Registry sized for an initial block of standard
// commands, growing geometrically as entries are added (§4.C).
func New() *Registry {
	return &Registry{entries: make([]entry, 0, 10)}
}

// Register installs name/handler at id, per §4.C's two id regions. It
// is equivalent to RegisterWithDoc(id, name, handler, "").
func (r *Registry) Register(id int, name string, handler Handler) status.Error {
	return r.RegisterWithDoc(id, name, handler, "")
}

// RegisterWithDoc is Register plus a free-form, one-line doc string
// attached to the entry (§4.C DOMAIN addition). doc is never consulted
// by dispatch; it exists purely for introspection via Commands.
//
// For id < UserBase, name must be empty: the canonical name is filled
// in from the standard table, and handler may be nil to keep the
// standard default. An id < UserBase outside the standard table is
// status.InvalidValue.
//
// For id >= UserBase, name is required. A nil handler is replaced by
// the dummy handler, which unconditionally reports status.ServerFault.
func (r *Registry) RegisterWithDoc(id int, name string, handler Handler, doc string) status.Error {
	if id < status.UserBase {
		std, ok := standardByID[id]
		if !ok {
			return status.New(status.InvalidValue)
		}
		if name != "" {
			return status.New(status.InvalidValue)
		}
		if handler == nil {
			handler = std.handler
		}
		r.entries = append(r.entries, entry{id: id, name: std.name, handler: handler, doc: doc})
		return nil
	}

	if name == "" {
		return status.New(status.InvalidValue)
	}
	if handler == nil {
		handler = dummyHandler
	}
	r.entries = append(r.entries, entry{id: id, name: name, handler: handler, doc: doc})
	return nil
}

// Lookup returns the handler registered for name, by first match
// (§4.C: duplicate names are permitted but dispatch returns the
// first). ok is false when no entry matches.
func (r *Registry) Lookup(name string) (Handler, bool) {
	for _, e := range r.entries {
		if e.name == name {
			return e.handler, true
		}
	}
	return nil, false
}

// Command is a read-only, introspectable view of one registered entry
// (§4.C DOMAIN addition). It carries no handler: it exists for tooling
// that lists what a Registry accepts, not for dispatch.
type Command struct {
	ID   int
	Name string
	Doc  string
}

// Commands returns a snapshot of every registered entry in
// registration order, for introspection/tooling use only; dispatch
// never consults it.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.entries))
	for i, e := range r.entries {
		out[i] = Command{ID: e.id, Name: e.name, Doc: e.doc}
	}
	return out
}

// dummyHandler backs any user id registered without an explicit
// handler (§4.C).
func dummyHandler(_ Context, _ string) status.Result {
	return status.Fail(status.WithDetail(status.ServerFault, "no handler registered"))
}

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

// Package session implements the SessionContext of §3/§4.E: it owns the
// line codec, the transport, the command registry and the per-session
// descriptors, and drives the protocol engine to completion.
package session

import (
	"io"

	"github.com/nabbar/goassuan/command"
	"github.com/nabbar/goassuan/engine"
	"github.com/nabbar/goassuan/internal/logger"
	"github.com/nabbar/goassuan/line"
	"github.com/nabbar/goassuan/status"
	"github.com/nabbar/goassuan/transport"
	"github.com/nabbar/goassuan/transport/pipe"
	"github.com/nabbar/goassuan/transport/unixgram"
)

// Session is the SessionContext of §3: it carries the registry, the
// negotiated descriptors, the transport and the identity flags for one
// server connection, end to end.
//
// A Session must not be used concurrently by more than one goroutine
// (§5: "single-threaded cooperative per session").
type Session struct {
	opts Options
	log  logger.Logger

	registry *command.Registry
	codec    *line.Codec
	tr       transport.Context

	inboundFD, outboundFD int
	inputFD, outputFD     int

	isServer bool
	pipeMode bool
	pid      int
}

// New allocates an empty Session: an empty registry, descriptors unset
// (§4.E new()).
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &Session{
		opts:      o,
		log:       o.log,
		registry:  command.New(),
		inputFD:   -1,
		outputFD:  -1,
		inboundFD: -1,
		outboundFD: -1,
	}
}

// RegisterStdCommands installs the standard "always" commands plus
// INPUT/OUTPUT (§4.E register_std_commands).
func (s *Session) RegisterStdCommands() status.Error {
	return command.RegisterStandard(s.registry)
}

// SetDebug raises or lowers the session's logger verbosity, honoring
// the bootstrap environment's _assuan_debug toggle (§6.4).
func (s *Session) SetDebug(on bool) {
	s.log.SetDebug(on)
}

// Register installs an application command, per §4.C.
func (s *Session) Register(id int, name string, handler command.Handler) status.Error {
	return s.registry.Register(id, name, handler)
}

// RegisterWithDoc is Register plus a free-form, one-line doc string
// attached to the entry, for introspection/tooling (§4.C DOMAIN
// addition).
func (s *Session) RegisterWithDoc(id int, name string, handler command.Handler, doc string) status.Error {
	return s.registry.RegisterWithDoc(id, name, handler, doc)
}

// Commands returns a snapshot of every registered command, standard
// and application-defined, for introspection/tooling use only.
func (s *Session) Commands() []command.Command {
	return s.registry.Commands()
}

// InitPipeServer configures the pipe transport over an already-open
// read end and write end (§4.B.1, §4.E init_pipe_server). inFD/outFD
// are recorded as the session's inbound/outbound descriptors for the
// INPUT/OUTPUT reserved-descriptor check.
func (s *Session) InitPipeServer(in io.Reader, out io.Writer, inFD, outFD int) {
	s.tr = pipe.New(in, out)
	s.inboundFD, s.outboundFD = inFD, outFD
	s.pipeMode = true
	s.isServer = true
	s.codec = line.New(s.tr, s.opts.maxLine)
}

// InitDomainServer configures the datagram-domain transport, performing
// the rendezvous handshake over rdv (§4.B.2, §4.E init_domain_server).
// peerPID is recorded best-effort for logging; it does not gate
// anything.
func (s *Session) InitDomainServer(rdv transport.Context, peerPID int) status.Error {
	tr, err := unixgram.NewServer(rdv, peerPID)
	if err != nil {
		s.log.Error("domain rendezvous failed", logger.F("error", err))
		return status.WithDetail(status.ConnectFailed, err.Error())
	}
	s.tr = tr
	s.pid = tr.PeerPID()
	s.log.Debug("domain rendezvous complete", logger.F("peer_pid", s.pid))
	s.isServer = true
	s.pipeMode = false
	s.codec = line.New(s.tr, s.opts.maxLine)
	return nil
}

// Process drives the engine until BYE or a fatal I/O error (§4.E
// process()). It returns nil on a clean BYE.
func (s *Session) Process() error {
	e := engine.New(s.codec, s.registry, s, s.opts.data, s.log)
	return e.Run()
}

// Deinit tears the session down: closes the transport and releases its
// buffers. Per §5, every descriptor and bound path acquired during init
// is released exactly once here, on every exit path.
func (s *Session) Deinit() error {
	if s.tr == nil {
		return nil
	}
	err := s.tr.Close()
	s.tr = nil
	s.codec = nil
	return err
}

// The following methods satisfy command.Context, the narrow view a
// Handler receives.

// SetError logs code and detail as a debug diagnostic. It is not
// consulted when an ERR reply is formatted; reply detail comes from the
// status.Error a handler returns.
func (s *Session) SetError(code status.CodeError, detail string) {
	s.log.Debug("set_error", logger.F("code", code), logger.F("detail", detail))
}

// InboundFD returns the session's own inbound descriptor.
func (s *Session) InboundFD() int { return s.inboundFD }

// OutboundFD returns the session's own outbound descriptor.
func (s *Session) OutboundFD() int { return s.outboundFD }

// SetInputFD records the descriptor negotiated by a successful INPUT command.
func (s *Session) SetInputFD(n int) { s.inputFD = n }

// SetOutputFD records the descriptor negotiated by a successful OUTPUT command.
func (s *Session) SetOutputFD(n int) { s.outputFD = n }

// InputFD returns the descriptor negotiated by INPUT, or -1 if unset.
func (s *Session) InputFD() int { return s.inputFD }

// OutputFD returns the descriptor negotiated by OUTPUT, or -1 if unset.
func (s *Session) OutputFD() int { return s.outputFD }

// IsServer reports whether this context is acting as the server side.
func (s *Session) IsServer() bool { return s.isServer }

// PipeMode reports whether the pipe transport (rather than the
// datagram-domain transport) is in use.
func (s *Session) PipeMode() bool { return s.pipeMode }

// PID returns the peer process id when known, or 0.
func (s *Session) PID() int { return s.pid }

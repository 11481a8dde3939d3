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

// Package unixgram implements the datagram-domain transport (§4.B.2): a
// single connectionless local socket re-framed into the byte stream the
// line codec expects, with peer rendezvous and spoof rejection.
//
// Unlike the teacher's socket/server/unixgram (a listening server
// fanning out to many clients), this transport is deliberately
// point-to-point: one bound local address, one expected peer, negotiated
// once at construction over a rendezvous channel.
package unixgram

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"github.com/nabbar/goassuan/transport"
)

// growthStart is the initial allocation for the re-framing buffer; it
// doubles on every truncation per §4.B.2 step 2b.
const growthStart = 4096

// bindAttempts bounds the rendezvous bind retry per DESIGN NOTES §9
// ("refuse after a fixed attempt ceiling").
const bindAttempts = 16

// Transport is the datagram-domain transport. It owns its socket
// descriptor, its bound local path, and its re-framing buffer.
type Transport struct {
	fd   int
	peer string // expected peer's bound path, compared by string equality
	local string // our own bound path, unlinked exactly once on Close
	pid  int    // peer pid as negotiated by the caller, best-effort

	mu     sync.Mutex
	buf    []byte
	size   int
	offset int

	closeOnce sync.Once
}

// Dir is the directory new rendezvous sockets are created in. It is a
// package variable (rather than a hardcoded path) so tests can redirect
// it; production use defaults to os.TempDir().
var Dir = os.TempDir()

// bindNew creates and binds a fresh unixgram socket at a collision-
// resistant path under Dir, retrying up to bindAttempts times.
func bindNew(pid int) (fd int, path string, err error) {
	for attempt := 0; attempt < bindAttempts; attempt++ {
		candidate := fmt.Sprintf("%s/assuan-%d-%s.sock", Dir, pid, uuid.New().String()[:12])

		fd, err = unix.Socket(unix.AF_UNIX, unix.SOCK_DGRAM, 0)
		if err != nil {
			return -1, "", err
		}

		sa := &unix.SockaddrUnix{Name: candidate}
		if err = unix.Bind(fd, sa); err != nil {
			_ = unix.Close(fd)
			continue
		}

		return fd, candidate, nil
	}
	return -1, "", fmt.Errorf("unixgram: failed to bind a rendezvous socket after %d attempts: %w", bindAttempts, err)
}

// NewServer binds a fresh local address, exchanges it with the peer over
// rdv per §6.3, and returns a ready transport.Context. pid is the peer
// process id when known (best-effort, logging only).
func NewServer(rdv transport.Context, pid int) (*Transport, error) {
	fd, local, err := bindNew(pid)
	if err != nil {
		return nil, err
	}

	t := &Transport{
		fd:    fd,
		local: local,
		pid:   pid,
		buf:   make([]byte, growthStart),
	}

	if err := writeLine(rdv, local); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	peer, err := readLine(rdv)
	if err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	t.peer = peer

	return t, nil
}

// Write sends exactly one datagram of len(p) bytes to the expected peer.
func (t *Transport) Write(p []byte) (int, error) {
	sa := &unix.SockaddrUnix{Name: t.peer}
	if err := unix.Sendto(t.fd, p, 0, sa); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Read implements the peek-then-consume re-framing algorithm of §4.B.2.
func (t *Transport) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for {
		if t.size > 0 {
			n := copy(p, t.buf[t.offset:t.offset+t.size])
			t.offset += n
			t.size -= n
			return n, nil
		}

		if err := t.fill(); err != nil {
			return 0, err
		}
	}
}

// fill performs step 2 of §4.B.2: peek the next datagram, discard it if
// the sender isn't the expected peer, grow the buffer if it would be
// truncated, and otherwise perform the destructive receive.
func (t *Transport) fill() error {
	for {
		n, from, err := unix.Recvfrom(t.fd, t.buf, unix.MSG_PEEK)
		if err != nil {
			return err
		}

		sender, ok := from.(*unix.SockaddrUnix)
		if !ok || sender.Name != t.peer {
			t.discardOne()
			continue
		}

		if n >= len(t.buf) {
			t.grow()
			continue
		}

		n2, _, err := unix.Recvfrom(t.fd, t.buf, 0)
		if err != nil {
			return err
		}
		t.size = n2
		t.offset = 0
		return nil
	}
}

// discardOne performs a destructive receive into a throwaway buffer to
// drop a datagram from an unexpected sender (§8 "Spoof rejection":
// "consumed but never surfaced through read").
func (t *Transport) discardOne() {
	scratch := make([]byte, len(t.buf))
	_, _, _ = unix.Recvfrom(t.fd, scratch, 0)
}

// grow doubles the re-framing buffer. Reallocation discards current
// contents, which is safe because grow is only called when size == 0.
func (t *Transport) grow() {
	t.buf = make([]byte, len(t.buf)*2)
}

// Close tears the transport down: closes the socket and unlinks the
// local rendezvous path exactly once.
func (t *Transport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		err = unix.Close(t.fd)
		_ = os.Remove(t.local)
	})
	return err
}

// LocalAddr returns the bound local path.
func (t *Transport) LocalAddr() string {
	return t.local
}

// PeerAddr returns the expected peer's path.
func (t *Transport) PeerAddr() string {
	return t.peer
}

// PeerPID returns the peer's process id for logging, preferring the
// kernel's own record over the negotiated value. It opportunistically
// reads SO_PEERCRED off the socket (populated on Linux once a datagram
// from the peer has been received); when that is unavailable or still
// zero, it falls back to the pid passed to NewServer. The return is
// never authoritative: nothing in the protocol
// gates on it.
func (t *Transport) PeerPID() int {
	cred, err := unix.GetsockoptUcred(t.fd, unix.SOL_SOCKET, unix.SO_PEERCRED)
	if err == nil && cred.Pid != 0 {
		return int(cred.Pid)
	}
	return t.pid
}

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

package session

import (
	"os"
	"strconv"
)

// Bootstrap reads the environment inputs of §6.4: when
// _assuan_connection_fd names a valid descriptor, the server adopts it
// for both inbound and outbound and the caller should switch to the
// datagram transport (rendezvous already concluded externally);
// _assuan_pipe_connect_pid optionally names the peer pid;
// _assuan_debug, when set to any non-empty value, asks the session to
// raise its logger to debug verbosity. ok is false when
// _assuan_connection_fd is absent or not a valid integer.
func Bootstrap() (fd int, peerPID int, debug bool, ok bool) {
	raw, present := os.LookupEnv("_assuan_connection_fd")
	if !present {
		return 0, 0, false, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, 0, false, false
	}

	pid := 0
	if p, present := os.LookupEnv("_assuan_pipe_connect_pid"); present {
		if v, err := strconv.Atoi(p); err == nil {
			pid = v
		}
	}

	dbg := false
	if d, present := os.LookupEnv("_assuan_debug"); present && d != "" {
		dbg = true
	}

	return n, pid, dbg, true
}

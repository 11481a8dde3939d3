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

package unixgram

import (
	"strings"

	"github.com/nabbar/goassuan/transport"
)

// sunPathMax bounds a rendezvous path per §6.3 ("Paths are bounded by the
// platform's sun_path size minus one"); 107 is the common Linux value.
const sunPathMax = 107

func writeLine(c transport.Context, s string) error {
	_, err := c.Write([]byte(s + "\n"))
	return err
}

// readLine reads one newline-terminated path off the rendezvous channel,
// byte by byte, since the channel is not necessarily buffered and may be
// a raw fd shared with nothing else.
func readLine(c transport.Context) (string, error) {
	var sb strings.Builder
	one := make([]byte, 1)

	for sb.Len() < sunPathMax {
		n, err := c.Read(one)
		if n == 1 {
			if one[0] == '\n' {
				return sb.String(), nil
			}
			sb.WriteByte(one[0])
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

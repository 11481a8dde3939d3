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

// Outcome classifies what a dispatched command asked the engine to do.
// It replaces the original int-return-with-minus-one-sentinel convention
// (DESIGN NOTES §9) with an explicit tagged variant.
type Outcome uint8

const (
	// Success means the command completed normally; the engine replies OK.
	Success Outcome = iota
	// Terminate is the BYE sentinel: write the farewell reply and end the session.
	Terminate
	// Failed means the command failed; the engine replies ERR <code> <text>.
	Failed
)

// Result is what a command.Handler returns: either success, a request to
// terminate the session cleanly, or a failure carrying a status.Error.
type Result struct {
	outcome Outcome
	err     Error
}

// OK is the result of a successful command.
func OK() Result {
	return Result{outcome: Success}
}

// Bye is the result that ends the session after the farewell reply.
func Bye() Result {
	return Result{outcome: Terminate}
}

// Fail wraps err as a failed result.
func Fail(err Error) Result {
	return Result{outcome: Failed, err: err}
}

// Outcome returns which of Success, Terminate or Failed this result is.
func (r Result) Outcome() Outcome {
	return r.outcome
}

// Err returns the carried status.Error, or nil unless Outcome() == Failed.
func (r Result) Err() Error {
	return r.err
}

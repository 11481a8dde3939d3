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

package status_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/nabbar/goassuan/status"
)

var _ = Describe("CodeError", func() {
	Describe("reserved server-fault band", func() {
		It("is below ServerFaultBase", func() {
			Expect(ServerFault).To(BeNumerically("<", ServerFaultBase))
		})

		It("flags IsServerFault for any code below the base", func() {
			Expect(ServerFault.IsServerFault()).To(BeTrue())
			Expect(SyntaxError.IsServerFault()).To(BeFalse())
		})
	})

	Describe("messages", func() {
		It("returns the registered message", func() {
			Expect(SyntaxError.Message()).To(Equal("syntax error"))
			Expect(UnknownCommand.Message()).To(Equal("unknown command"))
		})

		It("falls back to unknown error for unregistered codes", func() {
			Expect(CodeError(9999).Message()).To(Equal("unknown error"))
		})
	})

	Describe("String", func() {
		It("renders the decimal code", func() {
			Expect(SyntaxError.String()).To(Equal("158"))
		})
	})
})

var _ = Describe("Error", func() {
	It("renders code and message with no detail", func() {
		e := New(UnknownCommand)
		Expect(e.Error()).To(Equal("160 unknown command"))
		Expect(e.Code()).To(Equal(UnknownCommand))
		Expect(e.Detail()).To(BeEmpty())
	})

	It("appends the detail when present", func() {
		e := WithDetail(SyntaxError, "number required")
		Expect(e.Error()).To(Equal("158 syntax error - number required"))
		Expect(e.Detail()).To(Equal("number required"))
	})

	It("truncates detail beyond 100 characters", func() {
		long := ""
		for i := 0; i < 150; i++ {
			long += "x"
		}
		e := WithDetail(SyntaxError, long)
		Expect(len(e.Detail())).To(Equal(100))
	})

	It("IsCode matches only the exact code", func() {
		e := New(SyntaxError)
		Expect(IsCode(e, SyntaxError)).To(BeTrue())
		Expect(IsCode(e, UnknownCommand)).To(BeFalse())
	})
})

var _ = Describe("Result", func() {
	It("OK carries the Success outcome", func() {
		Expect(OK().Outcome()).To(Equal(Success))
	})

	It("Bye carries the Terminate outcome", func() {
		Expect(Bye().Outcome()).To(Equal(Terminate))
	})

	It("Fail carries the Failed outcome and the error", func() {
		r := Fail(New(NotImplemented))
		Expect(r.Outcome()).To(Equal(Failed))
		Expect(r.Err().Code()).To(Equal(NotImplemented))
	})
})

// Copyright (c) 2019 Perlin
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package recall

// Interactive recall walks the retained window through a cursor that sits
// either on an entry or on the blank slot one past the newest entry. The
// cursor is window-relative; eviction never moves it backwards in time.

// MoveToFirst moves the cursor to the oldest retained entry. It reports
// false if the history is empty or the cursor is already there.
func (h *History) MoveToFirst() bool {
	if h.count > 0 && h.cursor != 0 {
		h.cursor = 0
		return true
	}

	return false
}

// MoveToLast moves the cursor to the newest retained entry, one position
// before the blank slot. It reports false if the history is empty or the
// cursor is already there.
func (h *History) MoveToLast() bool {
	if h.count > 0 && h.cursor != h.count-1 {
		h.cursor = h.count - 1
		return true
	}

	return false
}

// MoveTo moves the cursor to the entry with the given global index,
// reporting whether the index is retained. On failure the cursor does not
// move.
func (h *History) MoveTo(index int) bool {
	index -= h.offset

	if index >= 0 && index < h.count {
		h.cursor = index
		return true
	}

	return false
}

// MoveToEnd parks the cursor on the blank slot past the newest entry.
func (h *History) MoveToEnd() {
	h.cursor = h.count
}

// Previous moves the cursor one entry towards the oldest, reporting false
// at the beginning.
func (h *History) Previous() bool {
	if h.cursor <= 0 {
		return false
	}

	h.cursor--

	return true
}

// Next moves the cursor one position towards the blank slot, reporting
// false once it is there.
func (h *History) Next() bool {
	if h.cursor >= h.count {
		return false
	}

	h.cursor++

	return true
}

// Current returns the line under the cursor, or the empty string when the
// cursor sits on the blank slot.
func (h *History) Current() string {
	if h.cursor >= h.count {
		return ""
	}

	return h.at(h.offset + h.cursor).line
}

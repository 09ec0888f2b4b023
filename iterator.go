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

import "github.com/pkg/errors"

// Iterator walks a frozen copy of the retained window. Mutating the
// History after Iterate does not affect an iterator already handed out.
type Iterator struct {
	entries []Entry
	pos     int
}

// Iterate returns an iterator over the current window starting at the
// given global index. The starting index may be one past Last(), yielding
// an empty iterator; anything else outside the window fails with
// ErrOutOfRange.
func (h *History) Iterate(from int) (*Iterator, error) {
	if from < h.First() || from > h.Last()+1 {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d not in [%d, %d]", from, h.First(), h.Last()+1)
	}

	snapshot := make([]Entry, h.Last()+1-from)

	for i := range snapshot {
		snapshot[i] = h.at(from + i)
	}

	return &Iterator{entries: snapshot}, nil
}

// Next advances the iterator, reporting whether an entry is available.
func (it *Iterator) Next() bool {
	if it.pos >= len(it.entries) {
		return false
	}

	it.pos++

	return true
}

// Entry returns the entry Next last advanced onto.
func (it *Iterator) Entry() Entry {
	return it.entries[it.pos-1]
}

// Reset rewinds the iterator to its starting position.
func (it *Iterator) Reset() {
	it.pos = 0
}

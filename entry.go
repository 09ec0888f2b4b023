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

import (
	"fmt"
	"time"
)

// Entry is a single recorded line. Entries are created by a History and
// never mutated afterwards; callers always work with copies.
type Entry struct {
	index int
	time  time.Time
	line  string
}

// Index returns the entry's global index. Indices increase strictly over
// the lifetime of a History and are never reused, even after eviction.
func (e Entry) Index() int {
	return e.index
}

// Time returns the instant the entry was recorded at.
func (e Entry) Time() time.Time {
	return e.time
}

// Line returns the recorded text.
func (e Entry) Line() string {
	return e.line
}

func (e Entry) String() string {
	return fmt.Sprintf("%d: %s", e.index, e.line)
}

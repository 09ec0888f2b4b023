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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationWalk(t *testing.T) {
	h := New(&testConf{})

	assert.NoError(t, h.Add("cmd0"))
	assert.NoError(t, h.Add("cmd1"))
	assert.NoError(t, h.Add("cmd2"))

	// A fresh add parks the cursor on the blank slot.
	assert.Equal(t, "", h.Current())

	assert.True(t, h.MoveToFirst())
	assert.Equal(t, "cmd0", h.Current())

	assert.True(t, h.Next())
	assert.Equal(t, "cmd1", h.Current())

	assert.True(t, h.Next())
	assert.Equal(t, "cmd2", h.Current())

	// One more step lands on the blank slot past the newest entry.
	assert.True(t, h.Next())
	assert.Equal(t, "", h.Current())
	assert.Equal(t, h.Size(), h.Index()-h.First())

	assert.False(t, h.Next())
}

func TestPrevious(t *testing.T) {
	h := New(&testConf{})

	assert.NoError(t, h.Add("cmd0"))
	assert.NoError(t, h.Add("cmd1"))

	assert.True(t, h.Previous())
	assert.Equal(t, "cmd1", h.Current())

	assert.True(t, h.Previous())
	assert.Equal(t, "cmd0", h.Current())

	assert.False(t, h.Previous())
	assert.Equal(t, "cmd0", h.Current())
}

func TestMoveToFirst(t *testing.T) {
	h := New(&testConf{})

	assert.False(t, h.MoveToFirst())

	assert.NoError(t, h.Add("cmd0"))
	assert.NoError(t, h.Add("cmd1"))

	assert.True(t, h.MoveToFirst())
	assert.Equal(t, "cmd0", h.Current())

	// Already there.
	assert.False(t, h.MoveToFirst())
}

func TestMoveToLast(t *testing.T) {
	h := New(&testConf{})

	assert.False(t, h.MoveToLast())

	assert.NoError(t, h.Add("cmd0"))
	assert.NoError(t, h.Add("cmd1"))

	assert.True(t, h.MoveToLast())
	assert.Equal(t, "cmd1", h.Current())

	assert.False(t, h.MoveToLast())
}

func TestMoveTo(t *testing.T) {
	h := New(&testConf{size: 2})

	for _, line := range []string{"cmd0", "cmd1", "cmd2"} {
		assert.NoError(t, h.Add(line))
	}

	// cmd0 was evicted; its global index is no longer reachable.
	assert.False(t, h.MoveTo(0))
	assert.Equal(t, "", h.Current())

	assert.True(t, h.MoveTo(1))
	assert.Equal(t, "cmd1", h.Current())

	assert.True(t, h.MoveTo(2))
	assert.Equal(t, "cmd2", h.Current())

	assert.False(t, h.MoveTo(3))
	assert.Equal(t, "cmd2", h.Current())
}

func TestMoveToEnd(t *testing.T) {
	h := New(&testConf{})

	assert.NoError(t, h.Add("cmd0"))

	assert.True(t, h.MoveToFirst())
	assert.Equal(t, "cmd0", h.Current())

	h.MoveToEnd()
	assert.Equal(t, "", h.Current())
	assert.Equal(t, h.Last()+1, h.Index())
}

func TestNavigationOnEmptyHistory(t *testing.T) {
	h := New(&testConf{})

	assert.False(t, h.MoveToFirst())
	assert.False(t, h.MoveToLast())
	assert.False(t, h.MoveTo(0))
	assert.False(t, h.Next())
	assert.False(t, h.Previous())
	assert.Equal(t, "", h.Current())

	h.MoveToEnd()
	assert.Equal(t, 0, h.Index())
}

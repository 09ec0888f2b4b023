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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternCache(t *testing.T) {
	cache := newPatternCache(2)

	a := regexp.MustCompile("a")
	b := regexp.MustCompile("b")

	cache.put("a", a)
	cache.put("b", b)

	got, ok := cache.load("a")
	assert.True(t, ok)
	assert.Equal(t, a, got)

	// "b" is now the least recently used and gets evicted.
	cache.put("c", regexp.MustCompile("c"))

	_, ok = cache.load("b")
	assert.False(t, ok)

	_, ok = cache.load("a")
	assert.True(t, ok)
}

func TestPatternCacheKeepsFailedCompilations(t *testing.T) {
	cache := newPatternCache(2)

	cache.put("[", nil)

	got, ok := cache.load("[")
	assert.True(t, ok)
	assert.Nil(t, got)
}

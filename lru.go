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
	"container/list"
	"regexp"
	"sync"
)

// patternCache is a bounded LRU of compiled ignore patterns, keyed by the
// raw pattern string. A failed compilation is cached as nil so a bad
// pattern is reported once, not on every keystroke.
type patternCache struct {
	sync.Mutex

	size int

	elements map[string]*list.Element
	access   *list.List // *patternInfo
}

type patternInfo struct {
	key     string
	matcher *regexp.Regexp
}

func newPatternCache(size int) *patternCache {
	return &patternCache{
		size:     size,
		elements: make(map[string]*list.Element, size),
		access:   list.New(),
	}
}

func (c *patternCache) load(key string) (*regexp.Regexp, bool) {
	c.Lock()
	defer c.Unlock()

	elem, ok := c.elements[key]
	if !ok {
		return nil, false
	}

	c.access.MoveToFront(elem)

	return elem.Value.(*patternInfo).matcher, true
}

func (c *patternCache) put(key string, matcher *regexp.Regexp) {
	c.Lock()
	defer c.Unlock()

	elem, ok := c.elements[key]

	if ok {
		elem.Value.(*patternInfo).matcher = matcher
		c.access.MoveToFront(elem)
	} else {
		c.elements[key] = c.access.PushFront(&patternInfo{
			key:     key,
			matcher: matcher,
		})

		for len(c.elements) > c.size {
			back := c.access.Back()
			info := back.Value.(*patternInfo)

			delete(c.elements, info.key)
			c.access.Remove(back)
		}
	}
}

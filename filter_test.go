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

func TestDisableHistory(t *testing.T) {
	h := New(&testConf{disabled: true})

	assert.NoError(t, h.Add("cmd"))
	assert.True(t, h.IsEmpty())
}

func TestIgnoreSpace(t *testing.T) {
	h := New(&testConf{ignoreSpace: true})

	assert.NoError(t, h.Add(" a"))
	assert.Equal(t, 0, h.Size())

	assert.NoError(t, h.Add("a"))
	assert.Equal(t, 1, h.Size())
}

func TestIgnoreSpaceChecksUntrimmedLine(t *testing.T) {
	h := New(&testConf{ignoreSpace: true, reduceBlank: true})

	// The leading-space check runs before blank reduction.
	assert.NoError(t, h.Add(" a"))
	assert.Equal(t, 0, h.Size())
}

func TestReduceBlanks(t *testing.T) {
	h := New(&testConf{reduceBlank: true})

	assert.NoError(t, h.Add("\ta  \n"))

	line, err := h.Get(0)
	assert.NoError(t, err)
	assert.Equal(t, "a", line)
}

func TestIgnoreDups(t *testing.T) {
	h := New(&testConf{ignoreDups: true})

	assert.NoError(t, h.Add("a"))
	assert.NoError(t, h.Add("a"))
	assert.Equal(t, 1, h.Size())

	// Only the immediately preceding entry is compared.
	assert.NoError(t, h.Add("b"))
	assert.NoError(t, h.Add("a"))
	assert.Equal(t, 3, h.Size())
}

func TestIgnoreDupsComparesReducedLine(t *testing.T) {
	h := New(&testConf{ignoreDups: true, reduceBlank: true})

	assert.NoError(t, h.Add("a"))
	assert.NoError(t, h.Add("  a  "))
	assert.Equal(t, 1, h.Size())
}

func TestIgnorePatterns(t *testing.T) {
	h := New(&testConf{ignore: "ls:cd *"})

	assert.NoError(t, h.Add("ls"))
	assert.NoError(t, h.Add("cd /tmp"))
	assert.Equal(t, 0, h.Size())

	assert.NoError(t, h.Add("pwd"))
	assert.Equal(t, 1, h.Size())
}

func TestIgnorePatternsMatchWholeLine(t *testing.T) {
	h := New(&testConf{ignore: "ls:cd *"})

	// Only whole alternatives reject a line.
	assert.NoError(t, h.Add("lsof"))
	assert.NoError(t, h.Add("cd"))
	assert.Equal(t, 2, h.Size())
}

func TestIgnorePatternsEscapedColon(t *testing.T) {
	h := New(&testConf{ignore: `a\:b`})

	assert.NoError(t, h.Add("a:b"))
	assert.Equal(t, 0, h.Size())

	assert.NoError(t, h.Add("a"))
	assert.Equal(t, 1, h.Size())
}

func TestIgnorePatternsKeepRegexpMetacharacters(t *testing.T) {
	// Characters other than '*', ':' and '\' pass into the underlying
	// expression unescaped, so '.' still matches any character.
	h := New(&testConf{ignore: "a.c"})

	assert.NoError(t, h.Add("abc"))
	assert.Equal(t, 0, h.Size())
}

func TestIgnorePatternsInvalid(t *testing.T) {
	h := New(&testConf{ignore: "["})

	// An uncompilable pattern list rejects nothing.
	assert.NoError(t, h.Add("cmd"))
	assert.Equal(t, 1, h.Size())
}

func TestFilterOrderDisabledWins(t *testing.T) {
	h := New(&testConf{disabled: true, ignoreDups: true, ignore: "*"})

	assert.NoError(t, h.Add("anything"))
	assert.True(t, h.IsEmpty())
}

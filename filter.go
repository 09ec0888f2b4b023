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
	"strings"
)

// accept vets a candidate line against the filter pipeline, in order:
// disabled flag, untrimmed leading space, blank reduction, duplicate of
// the most recent entry, ignore patterns. It returns the line that should
// be stored (blank reduction may have trimmed it) and whether it passed.
func (h *History) accept(line string) (string, bool) {
	if h.disabled() {
		return "", false
	}

	if h.ignoreSpace() && strings.HasPrefix(line, " ") {
		return "", false
	}

	if h.reduceBlanks() {
		line = strings.TrimSpace(line)
	}

	if h.ignoreDups() && h.count > 0 && line == h.at(h.Last()).line {
		return "", false
	}

	if h.matchPatterns(h.ignorePatterns(), line) {
		return "", false
	}

	return line, true
}

// matchPatterns reports whether the line matches any alternative of the
// colon-separated glob pattern string. An empty pattern string matches
// nothing.
func (h *History) matchPatterns(patterns, line string) bool {
	if patterns == "" {
		return false
	}

	matcher := h.pattern(patterns)
	if matcher == nil {
		return false
	}

	return matcher.MatchString(line)
}

// pattern compiles a colon-separated glob pattern string, caching the
// result so interactive adds do not recompile. A backslash escapes the
// next character, ':' separates alternatives and '*' matches any sequence.
// Everything else is copied through into the regular expression verbatim,
// so characters like '.' and '[' keep their regexp meaning. A line is
// ignored only when a whole alternative matches it.
func (h *History) pattern(patterns string) *regexp.Regexp {
	if matcher, ok := h.patterns.load(patterns); ok {
		return matcher
	}

	var sb strings.Builder

	for i := 0; i < len(patterns); i++ {
		switch ch := patterns[i]; {
		case ch == '\\' && i+1 < len(patterns):
			i++
			sb.WriteByte(patterns[i])
		case ch == ':':
			sb.WriteByte('|')
		case ch == '*':
			sb.WriteString(".*")
		default:
			sb.WriteByte(ch)
		}
	}

	matcher, err := regexp.Compile(`^(?:` + sb.String() + `)$`)
	if err != nil {
		h.logger.Warn().Err(err).Str("patterns", patterns).Msg("Failed to compile history ignore patterns.")
	}

	h.patterns.put(patterns, matcher)

	return matcher
}

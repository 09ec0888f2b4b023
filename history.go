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
	"strings"
	"time"

	"github.com/perlin-network/recall/log"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultHistorySize is the number of entries retained in memory when no
// size is configured.
const DefaultHistorySize = 500

var (
	ErrInvalidTime = errors.New("history entry time must not be zero")
	ErrOutOfRange  = errors.New("history index out of range")
)

// Config supplies the options and variables a History consults. A History
// re-reads its Config on every operation, so a live provider (such as the
// conf package) may change settings mid-session.
type Config interface {
	GetHistoryFile() string
	GetHistorySize() int
	GetDisableHistory() bool
	GetHistoryAppend() bool
	GetHistoryIncremental() bool
	GetIgnoreSpace() bool
	GetReduceBlanks() bool
	GetIgnoreDups() bool
	GetHistoryIgnore() string
}

// History is a bounded, globally-indexed log of previously entered lines,
// optionally backed by a file.
//
// A History instance is driven by a single interactive session and takes
// no locks of its own. Multiple instances, including ones in separate
// processes, may safely share one backing file as long as every one of
// them saves in append mode; snapshot saves against a shared file race
// with other writers.
type History struct {
	conf   Config
	logger zerolog.Logger

	// Ring storage for the retained window. The entry with global index
	// i lives at slot (head + i - offset) % len(entries).
	entries []Entry
	head    int
	count   int

	offset int // global index of the oldest retained entry
	cursor int // navigation position, in [0, count]

	pending  []int // global indices recorded since the last save
	patterns *patternCache
}

type Option func(*History)

// WithLogger overrides the diagnostic sink, which defaults to the log
// package's history logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *History) {
		h.logger = logger
	}
}

// New creates an empty history backed by the given configuration provider.
// A nil provider yields an unpersisted history with default settings.
func New(conf Config, opts ...Option) *History {
	h := &History{
		conf:     conf,
		logger:   log.History(),
		patterns: newPatternCache(16),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Add records a line at the current time. See AddAt.
func (h *History) Add(line string) error {
	return h.AddAt(time.Now(), line)
}

// AddAt runs the line through the filter pipeline and, if it is accepted,
// records it with the next global index, evicting the oldest retained
// entries if the window exceeds the configured size.
//
// With both the append and incremental options set, every accepted line is
// flushed to the backing file immediately; flush failures are logged, not
// returned, so an interactive session never aborts over persistence.
func (h *History) AddAt(t time.Time, line string) error {
	if t.IsZero() {
		return ErrInvalidTime
	}

	line, ok := h.accept(line)
	if !ok {
		return nil
	}

	h.internalAdd(t, line)

	if h.appendMode() && h.incremental() {
		if err := h.Save(); err != nil {
			h.logger.Debug().Err(err).Msg("Error saving history file.")
		}
	}

	return nil
}

// Get returns the line at the given global index. It fails with
// ErrOutOfRange if the index falls outside [First(), Last()].
func (h *History) Get(index int) (string, error) {
	if index < h.First() || index > h.Last() {
		return "", errors.Wrapf(ErrOutOfRange, "index %d not in [%d, %d]", index, h.First(), h.Last())
	}

	return h.at(index).line, nil
}

// Size returns the number of entries currently retained in memory.
func (h *History) Size() int {
	return h.count
}

func (h *History) IsEmpty() bool {
	return h.count == 0
}

// Index returns the global index the navigation cursor points at. It is
// one past Last() when the cursor sits on the blank slot.
func (h *History) Index() int {
	return h.offset + h.cursor
}

// First returns the global index of the oldest retained entry.
func (h *History) First() int {
	return h.offset
}

// Last returns the global index of the newest retained entry, or
// First()-1 when the history is empty.
func (h *History) Last() int {
	return h.offset + h.count - 1
}

func (h *History) String() string {
	var sb strings.Builder

	for i := 0; i < h.count; i++ {
		sb.WriteString(h.at(h.offset + i).String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// internalAdd appends a line without consulting the filter pipeline. It is
// the sole place entries are created: both accepted Add calls and load-time
// reconstruction funnel through here, so global indices stay sequential.
func (h *History) internalAdd(t time.Time, line string) {
	entry := Entry{index: h.Last() + 1, time: t, line: line}

	h.push(entry)
	h.pending = append(h.pending, entry.index)
	h.resize()
}

// resize evicts oldest entries until the window fits the configured size,
// then parks the cursor on the blank slot past the newest entry.
func (h *History) resize() {
	for limit := h.size(); h.count > limit; {
		h.evict()
	}

	h.cursor = h.count
}

// at returns the entry with the given global index. The index must be
// within [offset, offset+count).
func (h *History) at(index int) Entry {
	return h.entries[(h.head+index-h.offset)%len(h.entries)]
}

func (h *History) push(entry Entry) {
	if h.count == len(h.entries) {
		h.grow()
	}

	h.entries[(h.head+h.count)%len(h.entries)] = entry
	h.count++
}

func (h *History) evict() {
	h.entries[h.head] = Entry{}
	h.head = (h.head + 1) % len(h.entries)
	h.count--
	h.offset++
}

func (h *History) grow() {
	next := make([]Entry, 2*len(h.entries)+8)

	for i := 0; i < h.count; i++ {
		next[i] = h.entries[(h.head+i)%len(h.entries)]
	}

	h.entries = next
	h.head = 0
}

func (h *History) file() string {
	if h.conf == nil {
		return ""
	}

	return h.conf.GetHistoryFile()
}

func (h *History) size() int {
	if h.conf == nil {
		return DefaultHistorySize
	}

	return h.conf.GetHistorySize()
}

func (h *History) disabled() bool {
	return h.conf != nil && h.conf.GetDisableHistory()
}

func (h *History) appendMode() bool {
	return h.conf != nil && h.conf.GetHistoryAppend()
}

func (h *History) incremental() bool {
	return h.conf != nil && h.conf.GetHistoryIncremental()
}

func (h *History) ignoreSpace() bool {
	return h.conf != nil && h.conf.GetIgnoreSpace()
}

func (h *History) reduceBlanks() bool {
	return h.conf != nil && h.conf.GetReduceBlanks()
}

func (h *History) ignoreDups() bool {
	return h.conf != nil && h.conf.GetIgnoreDups()
}

func (h *History) ignorePatterns() string {
	if h.conf == nil {
		return ""
	}

	return h.conf.GetHistoryIgnore()
}

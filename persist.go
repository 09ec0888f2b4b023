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
	"bufio"
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// The backing file holds one record per line: the entry's epoch
// milliseconds, a ':', and the escaped line. No header, no checksum.

const maxRecordSize = 1 << 20

// Load reads the backing file into the history, in file order, through the
// internal append path: persisted lines were filtered when first recorded,
// so the pipeline is not consulted again. Entries are renumbered from
// Last()+1 with their original timestamps and order preserved.
//
// A missing file, or no configured path, is not an error. A malformed
// record aborts the remainder of the load; entries read before it are
// kept. All failures are logged as well as returned, and a session is
// expected to carry on without its history when Load fails.
func (h *History) Load() error {
	path := h.file()
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		err = errors.Wrap(err, "failed to open history file")
		h.logger.Info().Err(err).Str("path", path).Msg("Error reloading history file.")

		return err
	}

	defer func() {
		_ = f.Close()
	}()

	h.logger.Debug().Str("path", path).Msg("Loading history.")

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	for scanner.Scan() {
		t, line, err := parseRecord(scanner.Text())
		if err != nil {
			h.logger.Info().Err(err).Str("path", path).Msg("Error reloading history file.")
			return err
		}

		h.internalAdd(t, line)
	}

	if err := scanner.Err(); err != nil {
		err = errors.Wrap(err, "failed to read history file")
		h.logger.Info().Err(err).Str("path", path).Msg("Error reloading history file.")

		return err
	}

	return nil
}

// Save flushes the history to the backing file. In append mode only the
// entries recorded since the last save are written, as a single contiguous
// write; relying on the operating system's append atomicity makes this the
// one mode safe for several processes sharing a backing file. Otherwise
// the entire retained window is written to a temporary file which then
// atomically replaces the backing file.
//
// The pending set is cleared whether or not the write succeeds: a failed
// flush is reported once, not retried forever.
func (h *History) Save() error {
	path := h.file()
	if path == "" {
		return nil
	}

	defer func() {
		h.pending = h.pending[:0]
	}()

	h.logger.Debug().Str("path", path).Msg("Flushing history.")

	err := os.MkdirAll(filepath.Dir(path), 0700)

	if err == nil {
		if h.appendMode() {
			err = h.appendPending(path)
		} else {
			err = h.snapshot(path)
		}
	}

	if err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("Error saving history file.")
	}

	return err
}

// Purge drops every retained and pending entry, resets the global index
// space, and deletes the backing file if one is configured.
func (h *History) Purge() error {
	h.offset = 0
	h.cursor = 0
	h.count = 0
	h.head = 0

	for i := range h.entries {
		h.entries[i] = Entry{}
	}

	h.pending = h.pending[:0]

	path := h.file()
	if path == "" {
		return nil
	}

	h.logger.Debug().Str("path", path).Msg("Purging history.")

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		err = errors.Wrap(err, "failed to delete history file")
		h.logger.Warn().Err(err).Str("path", path).Msg("Failed to delete history file.")

		return err
	}

	return nil
}

func (h *History) appendPending(path string) error {
	var block bytes.Buffer

	for _, index := range h.pending {
		if index < h.offset { // evicted before it was ever flushed
			continue
		}

		block.WriteString(formatRecord(h.at(index)))
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return errors.Wrap(err, "failed to open history file for appending")
	}

	if _, err := f.Write(block.Bytes()); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to append history entries")
	}

	return errors.Wrap(f.Close(), "failed to close history file")
}

func (h *History) snapshot(path string) error {
	temp, err := ioutil.TempFile(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary history file")
	}

	var block bytes.Buffer

	for i := 0; i < h.count; i++ {
		block.WriteString(formatRecord(h.at(h.offset + i)))
	}

	if _, err := temp.Write(block.Bytes()); err != nil {
		_ = temp.Close()
		_ = os.Remove(temp.Name())

		return errors.Wrap(err, "failed to write history snapshot")
	}

	if err := temp.Close(); err != nil {
		_ = os.Remove(temp.Name())
		return errors.Wrap(err, "failed to close history snapshot")
	}

	if err := os.Rename(temp.Name(), path); err != nil {
		_ = os.Remove(temp.Name())
		return errors.Wrap(err, "failed to replace history file")
	}

	return nil
}

func formatRecord(entry Entry) string {
	millis := entry.time.UnixNano() / int64(time.Millisecond)

	return strconv.FormatInt(millis, 10) + ":" + escape(entry.line) + "\n"
}

func parseRecord(record string) (time.Time, string, error) {
	sep := strings.IndexByte(record, ':')
	if sep < 0 {
		return time.Time{}, "", errors.Errorf("malformed history record %q: missing separator", record)
	}

	millis, err := strconv.ParseInt(record[:sep], 10, 64)
	if err != nil {
		return time.Time{}, "", errors.Wrapf(err, "malformed history record %q", record)
	}

	return time.Unix(0, millis*int64(time.Millisecond)), unescape(record[sep+1:]), nil
}

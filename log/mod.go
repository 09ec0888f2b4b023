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

package log

import (
	"io"

	"github.com/rs/zerolog"
)

var (
	output = &multiWriter{
		writers: make(map[string]io.Writer),
	}
	logger = zerolog.New(output).With().Timestamp().Logger()

	history zerolog.Logger
	shell   zerolog.Logger
)

const (
	LoggerRecall = "recall"

	KeyModule = "mod"

	ModuleHistory = "history"
	ModuleShell   = "shell"
)

func init() { // nolint:gochecknoinits
	zerolog.MessageFieldName = "message"
	zerolog.LevelFieldName = "level"
	zerolog.ErrorFieldName = "error"

	setupChildLoggers()
}

func setupChildLoggers() {
	history = logger.With().Str(KeyModule, ModuleHistory).Logger()
	shell = logger.With().Str(KeyModule, ModuleShell).Logger()
}

func SetLevel(level string) {
	if l, err := zerolog.ParseLevel(level); err == nil {
		history = history.Level(l)
		shell = shell.Level(l)
	}
}

func SetWriter(key string, writer io.Writer) {
	output.Set(key, writer)
}

func RemoveWriter(key string) {
	output.Remove(key)
}

// History is the engine's default diagnostic sink.
func History() zerolog.Logger {
	return history
}

// Shell is the sink for the interactive host shipped under cmd/recall.
func Shell() zerolog.Logger {
	return shell
}

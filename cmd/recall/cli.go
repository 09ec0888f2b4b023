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

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/benpye/readline"
	"github.com/perlin-network/recall"
	"github.com/perlin-network/recall/conf"
	"github.com/perlin-network/recall/log"
	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

const (
	vtRed   = "\033[31m"
	vtReset = "\033[39m"
	prompt  = "»»»"
)

type CLI struct {
	app     *cli.App
	rl      *readline.Instance
	history *recall.History
	logger  zerolog.Logger
}

func NewCLI(stdin io.ReadCloser, stdout io.Writer) (*CLI, error) {
	c := &CLI{
		history: recall.New(conf.Provider{}),
		logger:  log.Shell(),
		app:     cli.NewApp(),
	}

	c.app.Name = "recall"
	c.app.HideVersion = true
	c.app.UsageText = "command [arguments...]"
	c.app.CommandNotFound = func(ctx *cli.Context, s string) {
		c.logger.Error().
			Msg("Unknown command: " + s)
	}

	c.app.Commands = []cli.Command{
		{
			Name:        "history",
			Aliases:     []string{"h"},
			Action:      a(c.list),
			Description: "print the retained history window",
		},
		{
			Name:        "save",
			Aliases:     []string{"s"},
			Action:      a(c.save),
			Description: "flush recorded entries to the history file",
		},
		{
			Name:        "purge",
			Action:      a(c.purge),
			Description: "drop all history and delete the history file",
		},
		{
			Name:        "settings",
			Action:      a(c.settings),
			Description: "print the active history settings",
		},
		{
			Name:        "exit",
			Aliases:     []string{"q"},
			Action:      a(c.exit),
			Description: "save history and leave the shell",
		},
	}

	var completers []readline.PrefixCompleterInterface

	for _, cmd := range c.app.Commands {
		completers = append(completers, readline.PcItem(cmd.Name))
	}

	completer := readline.NewPrefixCompleter(completers...)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 vtRed + prompt + vtReset + " ",
		AutoComplete:           completer,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		DisableAutoSaveHistory: true,
		Stdin:                  stdin,
		Stdout:                 stdout,
	})

	if err != nil {
		return nil, err
	}

	c.rl = rl

	log.SetWriter(
		log.LoggerRecall,
		zerolog.ConsoleWriter{Out: rl.Stdout()},
	)

	return c, nil
}

func (c *CLI) Start() {
	if err := c.history.Load(); err != nil {
		c.logger.Warn().Err(err).Msg("History was only partially reloaded.")
	}

	c.history.MoveToEnd()

ReadLoop:
	for {
		line, err := c.rl.Readline()
		switch err {
		case readline.ErrInterrupt:
			if len(line) == 0 {
				break ReadLoop
			}

			continue ReadLoop

		case io.EOF:
			break ReadLoop
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := c.history.Add(line); err != nil {
			c.logger.Error().Err(err).Msg("Failed to record the line.")
		}

		_ = c.rl.SaveHistory(line)

		s := append([]string{c.app.Name}, strings.Fields(line)...)

		if err := c.app.Run(s); err != nil {
			c.logger.Error().Err(err).Msg("Failed to run command.")
		}
	}

	if err := c.history.Save(); err != nil {
		c.logger.Warn().Err(err).Msg("History could not be saved.")
	}

	_ = c.rl.Close()
}

func (c *CLI) list(ctx *cli.Context) {
	it, err := c.history.Iterate(c.history.First())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to iterate over the history.")
		return
	}

	w := tabwriter.NewWriter(c.rl.Stdout(), 0, 0, 2, ' ', 0)

	for it.Next() {
		entry := it.Entry()

		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n",
			entry.Index(), entry.Time().Format(time.Kitchen), entry.Line())
	}

	_ = w.Flush()
}

func (c *CLI) save(ctx *cli.Context) {
	if err := c.history.Save(); err != nil {
		return
	}

	c.logger.Info().Int("size", c.history.Size()).Msg("History saved.")
}

func (c *CLI) purge(ctx *cli.Context) {
	if err := c.history.Purge(); err != nil {
		return
	}

	c.logger.Info().Msg("History purged.")
}

func (c *CLI) settings(ctx *cli.Context) {
	_, _ = fmt.Fprintln(c.rl.Stdout(), conf.Stringify())
}

func (c *CLI) exit(ctx *cli.Context) {
	_ = c.rl.Close()
}

func a(f func(*cli.Context)) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		f(ctx)
		return nil
	}
}

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
	"os"
	"path/filepath"

	"github.com/perlin-network/recall"
	"github.com/perlin-network/recall/conf"
	"github.com/perlin-network/recall/log"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	app.Name = "recall"
	app.Usage = "an interactive shell with persistent command history"
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "history-file",
			Usage: "path the history is persisted to; empty disables persistence",
			Value: defaultHistoryPath(),
		},
		cli.IntFlag{
			Name:  "history-size",
			Usage: "maximum number of entries retained in memory",
			Value: recall.DefaultHistorySize,
		},
		cli.BoolFlag{
			Name:  "append",
			Usage: "append newly recorded entries instead of rewriting the file on save",
		},
		cli.BoolFlag{
			Name:  "incremental",
			Usage: "flush every accepted entry immediately (with --append)",
		},
		cli.BoolFlag{
			Name:  "ignore-space",
			Usage: "never record lines starting with a space",
		},
		cli.BoolFlag{
			Name:  "reduce-blanks",
			Usage: "trim surrounding whitespace before recording",
		},
		cli.BoolFlag{
			Name:  "ignore-dups",
			Usage: "never record a line equal to the previous entry",
		},
		cli.StringFlag{
			Name:  "ignore",
			Usage: "colon-separated glob patterns that are never recorded",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "minimum severity printed to the terminal",
			Value: "info",
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		logger := log.Shell()
		logger.Fatal().Err(err).Msg("Failed to start recall.")
	}
}

func run(ctx *cli.Context) error {
	log.SetLevel(ctx.String("log-level"))

	conf.Update(
		conf.WithHistoryFile(ctx.String("history-file")),
		conf.WithHistorySize(ctx.Int("history-size")),
		conf.WithHistoryAppend(ctx.Bool("append")),
		conf.WithHistoryIncremental(ctx.Bool("incremental")),
		conf.WithIgnoreSpace(ctx.Bool("ignore-space")),
		conf.WithReduceBlanks(ctx.Bool("reduce-blanks")),
		conf.WithIgnoreDups(ctx.Bool("ignore-dups")),
		conf.WithHistoryIgnore(ctx.String("ignore")),
	)

	c, err := NewCLI(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	c.Start()

	return nil
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".recall_history")
}

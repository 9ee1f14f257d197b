// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-glossary"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGlosutil is a parent error for all command errors.
var ErrGlosutil = errors.New("glosutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGlosutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use it that way.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// env is the runtime environment shared by commands.
type env struct {
	cfg  *Config
	opts *glossary.Options
	log  *slog.Logger
}

// newEnv loads the configuration, applies command line overrides and
// creates the logger.
func newEnv(c *cli.Context) (*env, error) {
	cfg, err := loadConfig(c.String("config"), configLocations())
	if err != nil {
		return nil, err
	}

	if c.IsSet("default-format") {
		cfg.Glossary.DefaultFormat = c.String("default-format")
	}
	if c.IsSet("no-alts") {
		cfg.Glossary.DisableAlts = c.Bool("no-alts")
	}
	if c.IsSet("compressed") {
		cfg.Glossary.Compress = c.Bool("compressed")
	}
	if c.IsSet("tmp-data-dir") {
		cfg.Glossary.TmpDataDir = c.String("tmp-data-dir")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	opts, err := cfg.Glossary.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	return &env{
		cfg:  cfg,
		opts: opts,
		log:  newLogger(cfg.Log, c.App.ErrWriter),
	}, nil
}

// requireArgs returns a flag parse error unless exactly n arguments were
// given.
func requireArgs(c *cli.Context, n int) error {
	if c.Args().Len() != n {
		return fmt.Errorf("%w: expected %d arguments, got %d", ErrFlagParse, n, c.Args().Len())
	}
	return nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

%s
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright, versionInfo.String())
	return err
}

func newGlosutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Inspect and sort staged glossary records.",
		Description: strings.Join([]string{
			"Glossary staging utility written in Go.",
			"http://github.com/ianlewis/go-glossary",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:  "default-format",
				Usage: "default definition `FORMAT` of the glossary (plain, html, xdxf)",
			},
			&cli.BoolFlag{
				Name:               "no-alts",
				Usage:              "do not split words and definitions into alternates",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "compressed",
				Usage:              "records are zlib compressed",
				Aliases:            []string{"z"},
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:  "tmp-data-dir",
				Usage: "copy resources into `DIR` when writing staged files",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			sortCommand,
			queryCommand,
			extractCommand,
		},
	}
}

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
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/stage"
)

// readStaged reads all encoded records from the staged file at path. Paths
// ending in .dz are read as dictzip files.
func readStaged(e *env, path string) ([][]byte, error) {
	records, err := stage.ReadFile(path, e.cfg.Stage.ScannerOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrGlosutil, path, err)
	}
	e.log.Debug("read staged file", "path", path, "records", len(records))
	return records, nil
}

// preview returns a one line preview of a record's definition truncated to
// width runes.
func preview(r glossary.Record, width int) string {
	var s string
	switch v := r.(type) {
	case *glossary.Entry:
		s = v.DefiText()
	case glossary.Resource:
		size, err := v.Size()
		if err != nil {
			s = v.Defi()
		} else {
			s = fmt.Sprintf("%s (%d bytes)", v.Defi(), size)
		}
	default:
		s = r.Defi()
	}
	return truncate(s, width)
}

func truncate(s string, width int) string {
	out := make([]rune, 0, max(width, 0))
	for _, c := range s {
		if c == '\n' || c == '\r' || c == '\t' {
			c = ' '
		}
		out = append(out, c)
	}
	if width > 0 && len(out) > width {
		return string(out[:width]) + "..."
	}
	return string(out)
}

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "list the records in a staged file",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "width",
			Usage: "truncate definitions to `N` characters (0 disables truncation)",
			Value: 60,
		},
	},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 1); err != nil {
			return err
		}
		if c.Int("width") < 0 {
			return fmt.Errorf("%w: negative width %d", ErrFlagParse, c.Int("width"))
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		records, err := readStaged(e, c.Args().Get(0))
		if err != nil {
			return err
		}

		tbl := table.New("Word", "Format", "Definition").WithWriter(c.App.Writer)
		for i, b := range records {
			r, err := glossary.FromRaw(e.opts, b)
			if err != nil {
				return fmt.Errorf("%w: record %d: %w", ErrGlosutil, i, err)
			}
			tbl.AddRow(r.Word(), r.DefiFormat(), preview(r, c.Int("width")))
		}
		tbl.Print()

		return nil
	},
}

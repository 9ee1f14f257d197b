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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/internal/index"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "print the records matching a headword",
	ArgsUsage: "FILE WORD",
	Flags:     []cli.Flag{foldFlag},
	Action: func(c *cli.Context) error {
		if err := requireArgs(c, 2); err != nil {
			return err
		}
		e, err := newEnv(c)
		if err != nil {
			return err
		}

		records, err := readStaged(e, c.Args().Get(0))
		if err != nil {
			return err
		}

		keys := glossary.NewSortKeys(e.opts, sortKey(c))
		idx, err := index.New(records, keys.Raw)
		if err != nil {
			return fmt.Errorf("%w: indexing: %w", ErrGlosutil, err)
		}

		query := c.Args().Get(1)
		matches := idx.Search(keys.Word(query))
		e.log.Debug("query", "word", query, "matches", len(matches))

		for _, b := range matches {
			r, err := glossary.FromRaw(e.opts, b)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGlosutil, err)
			}
			if _, err := fmt.Fprintf(c.App.Writer, "%s\n\t%s\n", r.Word(), preview(r, 0)); err != nil {
				return fmt.Errorf("%w: %w", ErrGlosutil, err)
			}
		}

		return nil
	},
}

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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/stage"
)

// sortKey returns the key function selected by the --fold flag.
func sortKey(c *cli.Context) glossary.KeyFunc {
	if c.Bool("fold") {
		return glossary.FoldedSortKey
	}
	return glossary.DefaultSortKey
}

// restage copies the resource held by rec into the configured staging
// directory and returns the record re-encoded to point at the copy. Text
// records, and all records when no staging directory is set, are returned
// unchanged.
func restage(e *env, rec []byte) ([]byte, error) {
	if e.opts.TmpDataDir == "" {
		return rec, nil
	}

	r, err := glossary.FromRaw(e.opts, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGlosutil, err)
	}
	res, ok := r.(glossary.Resource)
	if !ok {
		return rec, nil
	}
	if m, ok := res.(*glossary.InMemoryResource); ok && m.Path() == "" {
		e.log.Warn("resource has no backing file", "file", res.FileName())
		return rec, nil
	}

	data, err := res.Data()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGlosutil, err)
	}
	b, err := glossary.NewInMemoryResource(res.FileName(), data).ToRaw(e.opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGlosutil, err)
	}
	e.log.Debug("restaged resource", "file", res.FileName(), "dir", e.opts.TmpDataDir)
	return b, nil
}

var foldFlag = &cli.BoolFlag{
	Name:               "fold",
	Usage:              "fold whitespace before comparing words",
	DisableDefaultText: true,
}

const sortDescription = `Sorts the records of IN and writes them to OUT. OUT is dictzip
compressed if its name ends in .dz. With --tmp-data-dir, resources are
copied into that directory and OUT refers to the copies.`

var sortCommand = &cli.Command{
	Name:        "sort",
	Usage:       "sort a staged file by headword",
	Description: sortDescription,
	ArgsUsage:   "IN OUT",
	Flags:       []cli.Flag{foldFlag},
	Action: func(c *cli.Context) (err error) {
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
		sorted, err := glossary.SortRaw(e.opts, records, sortKey(c))
		if err != nil {
			return fmt.Errorf("%w: sorting: %w", ErrGlosutil, err)
		}

		out := c.Args().Get(1)
		w, err := stage.Create(out)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrGlosutil, err)
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				err = errors.Join(err, fmt.Errorf("%w: %w", ErrGlosutil, cerr))
			}
		}()

		for _, rec := range sorted {
			rec, err := restage(e, rec)
			if err != nil {
				return err
			}
			if err := w.Write(rec); err != nil {
				return fmt.Errorf("%w: %w", ErrGlosutil, err)
			}
		}

		e.log.Info("sorted staged file", "in", c.Args().Get(0), "out", out, "records", w.Count())
		return nil
	},
}

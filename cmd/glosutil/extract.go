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
)

var extractCommand = &cli.Command{
	Name:      "extract",
	Usage:     "save the resources in a staged file to a directory",
	ArgsUsage: "FILE DIR",
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

		dir := c.Args().Get(1)
		var count int
		for i, b := range records {
			r, err := glossary.FromRaw(e.opts, b)
			if err != nil {
				return fmt.Errorf("%w: record %d: %w", ErrGlosutil, i, err)
			}
			res, ok := r.(glossary.Resource)
			if !ok {
				continue
			}
			if m, ok := res.(*glossary.InMemoryResource); ok && m.Path() == "" {
				e.log.Warn("resource has no backing file", "file", res.FileName())
				continue
			}

			// Copy the data so the staged record's file is left in place.
			data, err := res.Data()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGlosutil, err)
			}
			path, err := glossary.NewInMemoryResource(res.FileName(), data).Save(dir)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrGlosutil, err)
			}
			e.log.Debug("extracted resource", "file", res.FileName(), "path", path)
			count++
		}

		e.log.Info("extracted resources", "dir", dir, "count", count)
		return nil
	},
}

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
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-glossary"
	"github.com/ianlewis/go-glossary/stage"
)

// Config is the glosutil configuration.
type Config struct {
	Glossary GlossaryConfig `yaml:"glossary"`
	Stage    StageConfig    `yaml:"stage"`
	Log      LogConfig      `yaml:"log"`
}

// GlossaryConfig holds the options used to decode and encode records.
type GlossaryConfig struct {
	DefaultFormat string `yaml:"default_format" env:"GLOSUTIL_DEFAULT_FORMAT" env-default:"plain"`
	DisableAlts   bool   `yaml:"disable_alts"   env:"GLOSUTIL_DISABLE_ALTS"`
	Compress      bool   `yaml:"compress"       env:"GLOSUTIL_COMPRESS"       env-default:"false"`
	TmpDataDir    string `yaml:"tmp_data_dir"   env:"GLOSUTIL_TMP_DATA_DIR"`
}

// StageConfig holds staged file settings.
type StageConfig struct {
	MaxRecordSize int `yaml:"max_record_size" env:"GLOSUTIL_MAX_RECORD_SIZE" env-default:"67108864"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"GLOSUTIL_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"GLOSUTIL_LOG_FORMAT" env-default:"text"`
}

// Options returns the glossary options described by the config.
func (c GlossaryConfig) Options() (*glossary.Options, error) {
	format, err := glossary.ParseFormat(c.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("default format: %w", err)
	}
	if !format.IsText() {
		return nil, fmt.Errorf("default format: %w: %q", glossary.ErrInvalidFormat, c.DefaultFormat)
	}
	return &glossary.Options{
		DefaultDefiFormat: format,
		EnableAlts:        !c.DisableAlts,
		Compress:          c.Compress,
		TmpDataDir:        c.TmpDataDir,
	}, nil
}

// ScannerOptions returns the staged file scanner options.
func (c StageConfig) ScannerOptions() *stage.ScannerOptions {
	return &stage.ScannerOptions{
		MaxRecordSize: c.MaxRecordSize,
	}
}

// loadConfig reads the configuration. Environment variables take priority
// over the YAML file, which takes priority over defaults. If path is empty
// the first existing file in locations is read. With no file at all the
// configuration comes from the environment and defaults.
func loadConfig(path string, locations []string) (*Config, error) {
	var cfg Config

	if path == "" {
		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: config file %s: %w", ErrFlagParse, path, err)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}


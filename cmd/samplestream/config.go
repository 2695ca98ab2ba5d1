// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/streamkit/reservoir/utils/logging"
)

const (
	sizeKey         = "size"
	weightedKey     = "weighted"
	seedKey         = "seed"
	inputKey        = "input"
	logLevelKey     = "log-level"
	logDirKey       = "log-dir"
	envVarPrefix    = "samplestream"
	defaultSampleSz = 10
)

type config struct {
	// Number of lines in the final sample.
	Size int
	// When set, the first whitespace-delimited column of every line is its
	// weight and is stripped from the output.
	Weighted bool
	// Seed for a deterministic run. Only honored when SeedSet.
	Seed    uint64
	SeedSet bool
	// Path of the file to sample, or "-" for stdin.
	Input string

	LogConfig logging.Config
}

func buildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(envVarPrefix, pflag.ContinueOnError)
	fs.IntP(sizeKey, "n", defaultSampleSz, "number of lines to sample")
	fs.BoolP(weightedKey, "w", false, "treat the first column of each line as its sampling weight")
	fs.Uint64(seedKey, 0, "seed the sampler for a reproducible run")
	fs.StringP(inputKey, "i", "-", "file to sample, or - for stdin")
	fs.String(logLevelKey, logging.Info.String(), "verbosity of messages written to stderr")
	fs.String(logDirKey, "", "directory to write rotated log files into")
	return fs
}

// buildViper returns the viper environment from parsing [args] on top of the
// environment variables prefixed with SAMPLESTREAM_.
func buildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(envVarPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	return v, nil
}

func getConfig(fs *pflag.FlagSet, v *viper.Viper) (config, error) {
	c := config{
		Size:     v.GetInt(sizeKey),
		Weighted: v.GetBool(weightedKey),
		Seed:     v.GetUint64(seedKey),
		SeedSet:  fs.Changed(seedKey) || v.InConfig(seedKey),
		Input:    v.GetString(inputKey),
	}
	if c.Size <= 0 {
		return config{}, fmt.Errorf("%s must be positive, got %d", sizeKey, c.Size)
	}

	displayLevel, err := logging.ToLevel(v.GetString(logLevelKey))
	if err != nil {
		return config{}, err
	}

	c.LogConfig = logging.DefaultConfig
	c.LogConfig.DisplayLevel = displayLevel
	c.LogConfig.Directory = v.GetString(logDirKey)
	c.LogConfig.LoggerName = envVarPrefix
	return c, nil
}

// Copyright (C) 2022-2026, StreamKit, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// samplestream reservoir-samples lines from a file or stdin in one pass,
// holding at most the requested sample size in memory no matter how large
// the input is.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/streamkit/reservoir/sampler"
	"github.com/streamkit/reservoir/utils/logging"
)

func main() {
	fs := buildFlagSet()
	v, err := buildViper(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c, err := getConfig(fs, v)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(c.LogConfig)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Stop()

	if err := run(c, log, os.Stdout); err != nil {
		log.Fatal("sampling failed",
			zap.Error(err),
		)
		log.Stop()
		os.Exit(1)
	}
}

func run(c config, log logging.Logger, out io.Writer) error {
	in := os.Stdin
	if c.Input != "-" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	} else if logging.IsTerminal(os.Stdin) {
		log.Warn("reading from a terminal; pipe input or pass --input")
	}

	var source sampler.Source
	if c.SeedSet {
		source = sampler.NewSource(c.Seed)
		log.Debug("using deterministic sampler",
			zap.Uint64("seed", c.Seed),
		)
	}

	start := time.Now()
	var (
		result   []string
		observed uint64
		err      error
	)
	if c.Weighted {
		result, observed, err = sampleWeighted(in, c.Size, source)
	} else {
		result, observed, err = sampleUniform(in, c.Size, source)
	}
	if err != nil {
		return err
	}

	log.Info("sampling finished",
		zap.Uint64("observed", observed),
		zap.Int("sampled", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	w := bufio.NewWriter(out)
	for _, line := range result {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}

func sampleUniform(in io.Reader, size int, source sampler.Source) ([]string, uint64, error) {
	s, err := sampler.NewDeterministicUniform[string](size, source)
	if err != nil {
		return nil, 0, err
	}

	observed := uint64(0)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		observed++
		if !s.WillConsiderNext() {
			// Skipping avoids copying the line out of the scanner's buffer.
			if err := s.SkipNext(); err != nil {
				return nil, 0, err
			}
			continue
		}
		s.Sample(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return s.ConsumeResult(), observed, nil
}

// sampleWeighted samples lines proportionally to the weight in their first
// whitespace-delimited column. The weight column is stripped from the output;
// lines with a non-positive weight are never sampled.
func sampleWeighted(in io.Reader, size int, source sampler.Source) ([]string, uint64, error) {
	s, err := sampler.NewDeterministicWeighted[string](size, source)
	if err != nil {
		return nil, 0, err
	}

	observed := uint64(0)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		observed++
		line := scanner.Text()

		weightStr, rest, found := strings.Cut(line, " ")
		if !found {
			weightStr, rest, _ = strings.Cut(line, "\t")
		}
		weight, err := strconv.ParseFloat(weightStr, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("line %d: invalid weight %q", observed, weightStr)
		}

		s.Sample(weight, strings.TrimSpace(rest))
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return s.ConsumeResult(), observed, nil
}

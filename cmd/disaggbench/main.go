// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// disaggbench ranks the bundled short option expansion strategies.
//
// For each strategy, in fixed order, it first verifies the expansion of a
// randomly generated bundle against the directly constructed expected
// sequence, then runs the strategy in a wall clock bounded calibration loop
// and reports iterations, elapsed seconds and iterations per second.
//
// The loop is time bounded rather than iteration bounded because the
// strategies differ in speed by up to 2x: a fixed count would finish the in
// process walk near instantly, below useful timer resolution, while dragging
// out the subprocess based ones.
//
// Exit status is 0 when every strategy's output verifies, 1 otherwise.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/OkusiAssociates/argsh/disagg"
	"github.com/OkusiAssociates/argsh/msg"
)

// Bundle alphabet of the reference option table.
const bundleAlphabet = "amLpvqVh"

// Minimum wall clock duration of one calibration loop.
const minDuration = 3 * time.Second

const maxBundleLen = 20

// benchmarkResult - one strategy's measurements. Produced once, printed,
// never mutated.
type benchmarkResult struct {
	strategyName        string
	iterations          int64
	elapsedSeconds      float64
	iterationsPerSecond float64
	verified            bool
}

// randomBundle - a bundle token of 1 to maxBundleLen characters drawn from
// the alphabet.
func randomBundle(r *rand.Rand) string {
	n := 1 + r.Intn(maxBundleLen)
	b := make([]byte, 0, n+1)
	b = append(b, '-')
	for i := 0; i < n; i++ {
		b = append(b, bundleAlphabet[r.Intn(len(bundleAlphabet))])
	}
	return string(b)
}

// expectedExpansion - the sequence every strategy must reproduce.
func expectedExpansion(bundle string) []string {
	chars := strings.TrimPrefix(bundle, "-")
	expanded := make([]string, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		expanded = append(expanded, "-"+string(chars[i]))
	}
	return expanded
}

// rewrite - the synthetic workload: expand the bundle at the front of the
// argument vector and splice the trailing positional-like arguments back on,
// the same rewrite the parse loop performs.
func rewrite(s disagg.Strategy, args []string) ([]string, error) {
	expanded, err := s.Expand(strings.TrimPrefix(args[0], "-"))
	if err != nil {
		return nil, err
	}
	return append(expanded, args[1:]...), nil
}

// calibrate - invokes the strategy on the synthetic input until minDuration
// of wall clock time has elapsed, sampling the clock after every iteration.
func calibrate(s disagg.Strategy, args []string) benchmarkResult {
	var iterations int64
	var elapsed time.Duration
	start := time.Now()
	for elapsed < minDuration {
		if _, err := rewrite(s, args); err != nil {
			msg.Die(1, "%s failed mid-calibration: %s", s.Name(), err)
		}
		iterations++
		elapsed = time.Since(start)
	}
	seconds := elapsed.Seconds()
	return benchmarkResult{
		strategyName:        s.Name(),
		iterations:          iterations,
		elapsedSeconds:      seconds,
		iterationsPerSecond: float64(iterations) / seconds,
		verified:            true,
	}
}

func main() {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	bundle := randomBundle(r)
	want := expectedExpansion(bundle)
	args := []string{bundle, "file1.txt", "file2.txt"}

	// Strategies run strictly sequentially so scheduling noise from one can't
	// bias another's measurement.
	results := make([]benchmarkResult, 0, len(disagg.Strategies()))
	for _, s := range disagg.Strategies() {
		got, err := s.Expand(strings.TrimPrefix(bundle, "-"))
		if err != nil {
			msg.Die(1, "%s failed on '%s': %s", s.Name(), bundle, err)
		}
		if !reflect.DeepEqual(got, want) {
			msg.Die(1, "%s output mismatch for '%s': got %v, want %v", s.Name(), bundle, got, want)
		}
		fmt.Printf("✓ %s output verified\n", s.Name())

		res := calibrate(s, args)
		fmt.Printf("Iterations: %d\n", res.iterations)
		fmt.Printf("Elapsed time: %.6fs\n", res.elapsedSeconds)
		fmt.Printf("Iterations/sec: %.2f\n", res.iterationsPerSecond)
		results = append(results, res)
	}

	fastest := results[0]
	for _, res := range results[1:] {
		if res.iterationsPerSecond > fastest.iterationsPerSecond {
			fastest = res
		}
	}
	fmt.Printf("Fastest: %s (%.2f iterations/sec)\n", fastest.strategyName, fastest.iterationsPerSecond)

	os.Exit(0)
}

// cmd/tolperf/batch.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only
//
// Runs many independent takeoff-performance calculations concurrently.
// Since aviation.Calculator is a pure function of its inputs over
// read-only table state (§5), the whole batch can fan out across an
// errgroup with no synchronization beyond collecting results.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/sync/errgroup"

	"github.com/dancebunny98/tolperf/pkg/aviation"
)

type batchResult struct {
	RunID  string          `json:"runId"`
	Index  int             `json:"index"`
	Result aviation.Result `json:"result"`
}

func runBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	workers := fs.Int("workers", 8, "number of concurrent calculations")
	zst := fs.Bool("zst", false, "zstd-compress the output")
	fs.Parse(args)

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: reading stdin: %v\n", err)
		globalLog.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	var reqs []calcRequest
	if err := json.Unmarshal(body, &reqs); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: parsing request array: %v\n", err)
		globalLog.Error("parsing request array", "error", err)
		os.Exit(1)
	}

	batchLog := globalLog.With("batchSize", len(reqs), "workers", *workers)
	batchLog.Info("starting batch run")

	calc := aviation.NewCalculator()
	results := make([]batchResult, len(reqs))

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(*workers)

	runID := uuid.NewString()
	for i, req := range reqs {
		i, req := i, req
		eg.Go(func() error {
			var result aviation.Result
			if req.Optimal {
				result = calc.CalculateOptimalConfiguration(req.toInputs())
			} else {
				result = calc.Calculate(req.toInputs())
			}
			results[i] = batchResult{
				RunID:  runID,
				Index:  i,
				Result: result,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: %v\n", err)
		batchLog.Error("batch run failed", "error", err)
		os.Exit(1)
	}
	batchLog.Info("batch run complete")

	out, err := json.Marshal(results)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: encoding results: %v\n", err)
		batchLog.Error("encoding results", "error", err)
		os.Exit(1)
	}

	if !*zst {
		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
		return
	}

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: creating zstd writer: %v\n", err)
		os.Exit(1)
	}
	if _, err := zw.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: compressing output: %v\n", err)
		os.Exit(1)
	}
	if err := zw.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf batch: closing zstd writer: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(buf.Bytes())
}

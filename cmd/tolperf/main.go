// cmd/tolperf/main.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/dancebunny98/tolperf/internal/vlog"
)

// globalLog is the CLI's diagnostics logger, configured from the
// TOLPERF_LOG_FILE/TOLPERF_LOG_LEVEL environment variables. The engine itself
// (pkg/aviation) never touches it.
var globalLog *vlog.Logger

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logFile := os.Getenv("TOLPERF_LOG_FILE")
	logLevel := os.Getenv("TOLPERF_LOG_LEVEL")
	globalLog = vlog.New(logFile, logLevel, 50)

	subcommand := os.Args[1]
	globalLog.Info("dispatching subcommand", "subcommand", subcommand)

	switch subcommand {
	case "calculate":
		runCalculate(os.Args[2:])
	case "landing":
		runLanding(os.Args[2:])
	case "batch":
		runBatch(os.Args[2:])
	case "-h", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "tolperf: unknown subcommand %q\n", subcommand)
		globalLog.Error("unknown subcommand", "subcommand", subcommand)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: tolperf <subcommand> [flags]

subcommands:
  calculate   run one takeoff-performance calculation, request JSON on stdin
  landing     run one landing-distance calculation, request JSON on stdin
  batch       run many takeoff-performance calculations concurrently

environment:
  TOLPERF_LOG_FILE   path to a rotated JSON log file (default: stderr)
  TOLPERF_LOG_LEVEL  debug, info, warn, or error (default: info)

`)
}

// cmd/tolperf/calculate.go
// Copyright(c) 2024-2026 tolperf contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dancebunny98/tolperf/pkg/aviation"
)

// calcRequest mirrors aviation.Inputs with JSON tags a CLI caller can
// write by hand, including the optional CG.
type calcRequest struct {
	Tow             float32  `json:"tow"`
	ForwardCg       bool     `json:"forwardCg"`
	Conf            int      `json:"conf"`
	ToraM           float32  `json:"toraM"`
	SlopePercent    float32  `json:"slopePercent"`
	LineupDeg       int      `json:"lineupDeg"`
	WindKt          float32  `json:"windKt"`
	ElevationFt     float32  `json:"elevationFt"`
	QnhHpa          float32  `json:"qnhHpa"`
	Oat             float32  `json:"oat"`
	AntiIce         int      `json:"antiIce"`
	Packs           bool     `json:"packs"`
	ForceToga       bool     `json:"forceToga"`
	RunwayCondition int      `json:"runwayCondition"`
	CgPercentMAC    *float32 `json:"cgPercentMac,omitempty"`
	Optimal         bool     `json:"optimal,omitempty"`
}

func (r calcRequest) toInputs() aviation.Inputs {
	return aviation.Inputs{
		Tow:             r.Tow,
		ForwardCg:       r.ForwardCg,
		Conf:            aviation.Configuration(r.Conf),
		ToraM:           r.ToraM,
		SlopePercent:    r.SlopePercent,
		Lineup:          aviation.LineupAngle(r.LineupDeg),
		WindKt:          r.WindKt,
		ElevationFt:     r.ElevationFt,
		QnhHpa:          r.QnhHpa,
		Oat:             r.Oat,
		AntiIce:         aviation.AntiIce(r.AntiIce),
		Packs:           r.Packs,
		ForceToga:       r.ForceToga,
		RunwayCondition: aviation.RunwayCondition(r.RunwayCondition),
		CgPercentMAC:    r.CgPercentMAC,
	}
}

func runCalculate(args []string) {
	fs := flag.NewFlagSet("calculate", flag.ExitOnError)
	fs.Parse(args)

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tolperf calculate: reading stdin: %v\n", err)
		globalLog.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	var req calcRequest
	if err := json.Unmarshal(body, &req); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf calculate: parsing request: %v\n", err)
		globalLog.Error("parsing request", "error", err)
		os.Exit(1)
	}

	calc := aviation.NewCalculator()
	var result aviation.Result
	if req.Optimal {
		result = calc.CalculateOptimalConfiguration(req.toInputs())
	} else {
		result = calc.Calculate(req.toInputs())
	}
	if result.Err != aviation.ErrNone {
		globalLog.Warn("calculation returned an error result", "error", result.Err.String())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf calculate: encoding result: %v\n", err)
		globalLog.Error("encoding result", "error", err)
		os.Exit(1)
	}
}

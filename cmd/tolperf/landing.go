// cmd/tolperf/landing.go
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

type landingRequest struct {
	WeightKg        float32 `json:"weightKg"`
	Flap            int     `json:"flap"` // 0=Full, 1=Conf3
	Condition       int     `json:"condition"`
	ElevationFt     float32 `json:"elevationFt"`
	QnhHpa          float32 `json:"qnhHpa"`
	Oat             float32 `json:"oat"`
	SlopePct        float32 `json:"slopePct"`
	WindKt          float32 `json:"windKt"`
	HeadingDeltaDeg float32 `json:"headingDeltaDeg"`
	ApproachSpeedKt float32 `json:"approachSpeedKt"`
	ReverseThrust   bool    `json:"reverseThrust"`
	Overweight      bool    `json:"overweight"`
	Autoland        bool    `json:"autoland"`
}

func (r landingRequest) toInputs() aviation.LandingInputs {
	return aviation.LandingInputs{
		WeightKg:        r.WeightKg,
		Flap:            aviation.LandingFlapConfig(r.Flap),
		Condition:       aviation.RunwayCondition(r.Condition),
		ElevationFt:     r.ElevationFt,
		QnhHpa:          r.QnhHpa,
		Oat:             r.Oat,
		SlopePct:        r.SlopePct,
		WindKt:          r.WindKt,
		HeadingDeltaDeg: r.HeadingDeltaDeg,
		ApproachSpeedKt: r.ApproachSpeedKt,
		ReverseThrust:   r.ReverseThrust,
		Overweight:      r.Overweight,
		Autoland:        r.Autoland,
	}
}

func runLanding(args []string) {
	fs := flag.NewFlagSet("landing", flag.ExitOnError)
	fs.Parse(args)

	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tolperf landing: reading stdin: %v\n", err)
		globalLog.Error("reading stdin", "error", err)
		os.Exit(1)
	}

	var req landingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf landing: parsing request: %v\n", err)
		globalLog.Error("parsing request", "error", err)
		os.Exit(1)
	}

	calc := aviation.NewCalculator()
	result := calc.CalculateLandingDistances(req.toInputs())
	globalLog.Debug("landing distances computed", "max", result.Max, "medium", result.Medium, "low", result.Low)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "tolperf landing: encoding result: %v\n", err)
		globalLog.Error("encoding result", "error", err)
		os.Exit(1)
	}
}

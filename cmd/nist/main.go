// Package main runs the NIST frequency, runs and longest-run tests over bit
// sequences and writes a report.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/bitseq/internal/platform/cmd"
	"github.com/louisbranch/bitseq/internal/platform/config"
	"github.com/louisbranch/bitseq/internal/tools/nistreport"
)

func main() {
	cfg, err := nistreport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceNIST, func(ctx context.Context) error {
		return nistreport.Run(ctx, cfg, os.Stdout, nil)
	}); err != nil {
		config.Exitf("nist: %v", err)
	}
}

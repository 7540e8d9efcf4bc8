// Package main runs the product search management CLI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	psctlcmd "github.com/visionops/psctl/internal/cmd/psctl"
	"github.com/visionops/psctl/internal/platform/config"
	apperrors "github.com/visionops/psctl/internal/platform/errors"
)

func main() {
	fs := flag.NewFlagSet("psctl", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: psctl [flags] <command> [args]")
		fs.PrintDefaults()
		psctlcmd.Usage(fs.Output())
	}

	cfg, args, err := psctlcmd.ParseConfig(fs, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		config.Exitf(2, "parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := psctlcmd.Run(ctx, cfg, args, psctlcmd.DefaultClientFactory, os.Stdout); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if apperrors.IsUsage(err) {
			psctlcmd.Usage(os.Stderr)
		}
		os.Exit(apperrors.ExitCode(err))
	}
}

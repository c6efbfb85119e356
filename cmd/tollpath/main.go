// SPDX-License-Identifier: MIT
// Command tollpath answers shortest-path queries, with an optional toll
// coupon, over a graph loaded from an adjacency-matrix CSV. With -serve it
// exposes the same queries over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/tollpath/internal/cli"
	"github.com/katalvlaran/tollpath/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)

		return cli.ExitConfigError
	}

	inv, err := cli.ParseInvocation(args, cfg)
	if err != nil {
		var ie *cli.InvocationError
		if errors.As(err, &ie) {
			fmt.Fprintln(stderr, ie.Message)

			return ie.ExitCode
		}
		fmt.Fprintln(stderr, err)

		return cli.ExitInternalError
	}

	log := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: inv.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := cli.Execute(ctx, inv, stdout, log)
	if err != nil {
		log.Error("tollpath failed", slog.Any("err", err))
	}

	return res.ExitCode
}

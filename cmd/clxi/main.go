// SPDX-License-Identifier: MIT

// Command clxi converts an angular power spectrum into a correlation function.
//
//	clxi [-workers N] [-v] lmin lmax m1 m2 th0 th1 nth [file]
//
// The spectrum is read from file, or from stdin when no file is given, as
// "l C_l" lines. Angles are in degrees; the output is a "theta xi" table.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"

	"github.com/katalvlaran/wigner/xi"
)

func main() {
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "number of angles evaluated concurrently")
	verbose := flag.Bool("v", false, "log debug details to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [options] lmin lmax m1 m2 th0 th1 nth [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := newLogger(os.Stderr, *verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, log, os.Stdout, flag.Args(), *workers)
	stop()
	if err != nil {
		log.Error("clxi failed", "error", err)
		os.Exit(1)
	}
}

// newLogger returns a text logger on w; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// config is the parsed command line.
type config struct {
	lMin, lMax, m1, m2 int
	th0, th1           float64
	nth                int
	file               string
}

func parseArgs(args []string) (config, error) {
	var c config
	if len(args) < 7 || len(args) > 8 {
		flag.Usage()

		return c, fmt.Errorf("expected 7 or 8 arguments, got %d", len(args))
	}
	ints := []*int{&c.lMin, &c.lMax, &c.m1, &c.m2}
	for i, p := range ints {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return c, fmt.Errorf("argument %d: %w", i+1, err)
		}
		*p = v
	}
	floats := []*float64{&c.th0, &c.th1}
	for i, p := range floats {
		v, err := strconv.ParseFloat(args[4+i], 64)
		if err != nil {
			return c, fmt.Errorf("argument %d: %w", 5+i, err)
		}
		*p = v
	}
	n, err := strconv.Atoi(args[6])
	if err != nil {
		return c, fmt.Errorf("argument 7: %w", err)
	}
	c.nth = n
	if len(args) == 8 {
		c.file = args[7]
	}
	if c.lMin < 0 || c.lMax < c.lMin {
		return c, fmt.Errorf("0 <= lmin <= lmax required")
	}

	return c, nil
}

func run(ctx context.Context, log *slog.Logger, out io.Writer, args []string, workers int) error {
	if workers < 1 {
		return fmt.Errorf("-workers must be at least 1, got %d", workers)
	}
	c, err := parseArgs(args)
	if err != nil {
		return err
	}
	grid, err := xi.Grid(c.th0, c.th1, c.nth)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if c.file != "" {
		f, err := os.Open(c.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	sp, err := xi.ParseSpectrum(in)
	if err != nil {
		return err
	}
	log.Debug("spectrum loaded", "samples", sp.Len(), "lmin", c.lMin, "lmax", c.lMax)

	cl, err := sp.Interpolate(c.lMin, c.lMax)
	if err != nil {
		return err
	}
	xis, err := xi.Transform(ctx, cl, c.lMin, c.m1, c.m2, grid, xi.WithWorkers(workers), xi.WithDegrees())
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# %-22s  %-s\n", "theta [deg]", "xi")
	for i, v := range xis {
		fmt.Fprintf(w, "%.18e  %.18e\n", grid[i], v)
	}

	return w.Flush()
}

// SPDX-License-Identifier: MIT

// Command showdl prints d^l_{m1,m2}(θ) for a range of degrees.
//
//	showdl l0 l1 m1 m2 theta-deg
//
// Degrees below max(|m1|,|m2|) are skipped.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/wigner/littled"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s l0 l1 m1 m2 theta-deg\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(os.Stdout, flag.Args()); err != nil {
		log.Error("showdl failed", "error", err)
		os.Exit(1)
	}
}

// run writes the d^l table for args to out.
func run(out io.Writer, args []string) error {
	if len(args) != 5 {
		flag.Usage()

		return fmt.Errorf("expected 5 arguments, got %d", len(args))
	}
	var ints [4]int
	for i := range ints {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		ints[i] = v
	}
	theta, err := strconv.ParseFloat(args[4], 64)
	if err != nil {
		return fmt.Errorf("theta: %w", err)
	}
	l0, l1, m1, m2 := ints[0], ints[1], ints[2], ints[3]
	lMin := max(l0, littled.MinDegree(m1, m2))
	if lMin > l1 {
		return fmt.Errorf("no degree in [%d, %d] reaches max(|m1|,|m2|) = %d", l0, l1, littled.MinDegree(m1, m2))
	}

	d, err := littled.LittleD(lMin, l1, m1, m2, theta*math.Pi/180)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# %4s  d^l_{%d, %d}(%g deg)\n", "l", m1, m2, theta)
	for i, v := range d {
		fmt.Fprintf(w, "%6d  %+.18e\n", lMin+i, v)
	}

	return w.Flush()
}

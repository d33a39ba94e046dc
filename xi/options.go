// SPDX-License-Identifier: MIT

package xi

import "runtime"

// Defaults. The worker default is resolved at call time as
// runtime.GOMAXPROCS(0); DefaultWorkers = 0 stands for that.
const (
	// DefaultWorkers bounds the number of angles evaluated concurrently.
	DefaultWorkers = 0

	// DefaultDegrees reads angles as radians when false.
	DefaultDegrees = false
)

const panicWorkersInvalid = "xi: WithWorkers: n must be ≥ 1"

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the effective configuration of Transform.
type Options struct {
	workers int  // ≥ 1 after gatherOptions
	degrees bool // DefaultDegrees
}

// WithWorkers bounds the number of concurrently evaluated angles.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithDegrees makes Transform read the angles in degrees.
func WithDegrees() Option {
	return func(o *Options) { o.degrees = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers, degrees: DefaultDegrees}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// SPDX-License-Identifier: MIT

package xi

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Sample is one (l, C_l) pair. The degree is a real number so that binned
// spectra (bin centres) can be read as-is.
type Sample struct {
	L float64
	C float64
}

// Spectrum is an ordered set of samples with strictly increasing degrees.
// The zero value is not usable; build one with NewSpectrum or ParseSpectrum.
type Spectrum struct {
	samples []Sample
}

// NewSpectrum copies samples, sorts them by degree and validates them.
//
// Errors:
//   - ErrTooFewSamples when len(samples) < 2.
//   - ErrNaNInf for a non-finite degree or value.
//   - ErrDuplicateDegree when two samples share a degree.
func NewSpectrum(samples []Sample) (*Spectrum, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("%w (got %d)", ErrTooFewSamples, len(samples))
	}
	s := make([]Sample, len(samples))
	copy(s, samples)
	for _, p := range s {
		if math.IsNaN(p.L) || math.IsInf(p.L, 0) || math.IsNaN(p.C) || math.IsInf(p.C, 0) {
			return nil, fmt.Errorf("%w (l=%v C_l=%v)", ErrNaNInf, p.L, p.C)
		}
	}
	sort.SliceStable(s, func(i, j int) bool { return s[i].L < s[j].L })
	for i := 1; i < len(s); i++ {
		if s[i].L == s[i-1].L {
			return nil, fmt.Errorf("%w (l=%v)", ErrDuplicateDegree, s[i].L)
		}
	}

	return &Spectrum{samples: s}, nil
}

// ParseSpectrum reads whitespace separated "l C_l" lines.
//
// Blank lines and lines whose first field starts with '#' are skipped.
// Fields after the second are ignored. A second field that starts with '#'
// counts as missing.
//
// Errors:
//   - ErrMissingValue, ErrMalformedNumber with the 1-based line number.
//   - any error of NewSpectrum, or the reader's own error.
func ParseSpectrum(r io.Reader) (*Spectrum, error) {
	var samples []Sample
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 || strings.HasPrefix(fields[1], "#") {
			return nil, fmt.Errorf("line %d: %w", line, ErrMissingValue)
		}
		l, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrMalformedNumber, fields[0])
		}
		c, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrMalformedNumber, fields[1])
		}
		samples = append(samples, Sample{L: l, C: c})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xi: read spectrum: %w", err)
	}

	return NewSpectrum(samples)
}

// Len returns the number of samples.
func (s *Spectrum) Len() int { return len(s.samples) }

// Samples returns a copy of the samples in ascending degree.
func (s *Spectrum) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	copy(out, s.samples)

	return out
}

// At returns C_l at an arbitrary degree by linear interpolation between the
// neighbouring samples. Outside the sampled range the first or last segment
// is extended.
func (s *Spectrum) At(l float64) float64 {
	p := s.samples
	i := sort.Search(len(p), func(i int) bool { return p[i].L >= l })
	i = min(max(i, 1), len(p)-1)
	a, b := p[i-1], p[i]

	return b.C + (b.C-a.C)/(b.L-a.L)*(l-b.L)
}

// Interpolate evaluates the spectrum at every integer degree lMin..lMax.
//
// Errors:
//   - ErrNegativeDegree, ErrEmptyRange.
func (s *Spectrum) Interpolate(lMin, lMax int) ([]float64, error) {
	if lMin < 0 {
		return nil, fmt.Errorf("Interpolate: %w (lMin=%d)", ErrNegativeDegree, lMin)
	}
	if lMin > lMax {
		return nil, fmt.Errorf("Interpolate: %w (lMin=%d lMax=%d)", ErrEmptyRange, lMin, lMax)
	}
	cl := make([]float64, lMax-lMin+1)
	for i := range cl {
		cl[i] = s.At(float64(lMin + i))
	}

	return cl, nil
}

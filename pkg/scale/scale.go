// Package scale provides linear and logarithmic domain-to-range mappings.
//
// A [Scale] is an immutable value; construct it with [Linear], [Log] or
// [New]. Mapping never divides by zero: a degenerate domain (min == max)
// maps every value to the range minimum.
//
//	x := scale.Linear(0, 120, 30, 740)
//	x.Map(60) // 385
//
//	size, err := scale.Log(1, 12, 20, 90)
//	size.Map(1) // 20
package scale

import (
	"math"

	"github.com/matzehuels/wordtower/pkg/errors"
)

// Kind selects the interpolation of a Scale.
type Kind int

const (
	// KindLinear interpolates values directly.
	KindLinear Kind = iota
	// KindLog interpolates the natural logarithm of values.
	KindLog
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindLog:
		return "log"
	}
	return "unknown"
}

// Scale maps values from [DomainMin, DomainMax] onto [RangeMin, RangeMax].
// Values outside the domain are extrapolated, not clamped.
type Scale struct {
	Kind                 Kind
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// New builds a scale of the given kind. Logarithmic scales require a
// strictly positive domain and fail with ErrCodeInvalidScale otherwise.
func New(kind Kind, d0, d1, r0, r1 float64) (Scale, error) {
	for _, v := range []float64{d0, d1, r0, r1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Scale{}, errors.New(errors.ErrCodeInvalidScale, "scale bounds must be finite, got [%v, %v] -> [%v, %v]", d0, d1, r0, r1)
		}
	}
	switch kind {
	case KindLinear:
	case KindLog:
		if d0 <= 0 || d1 <= 0 {
			return Scale{}, errors.New(errors.ErrCodeInvalidScale, "log scale domain must be positive, got [%v, %v]", d0, d1)
		}
	default:
		return Scale{}, errors.New(errors.ErrCodeInvalidScale, "unknown scale kind %d", int(kind))
	}
	return Scale{Kind: kind, DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}, nil
}

// Linear returns a linear scale. It cannot fail.
func Linear(d0, d1, r0, r1 float64) Scale {
	return Scale{Kind: KindLinear, DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}
}

// Log returns a logarithmic scale; see [New].
func Log(d0, d1, r0, r1 float64) (Scale, error) {
	return New(KindLog, d0, d1, r0, r1)
}

// Map converts a domain value to its range value.
//
// On a logarithmic scale, non-positive values are clamped to the smallest
// domain bound before taking the logarithm.
func (s Scale) Map(v float64) float64 {
	d0, d1 := s.DomainMin, s.DomainMax
	if s.Kind == KindLog {
		if v <= 0 {
			v = min(d0, d1)
		}
		v, d0, d1 = math.Log(v), math.Log(d0), math.Log(d1)
	}
	if d1 == d0 {
		return s.RangeMin
	}
	return s.RangeMin + (v-d0)/(d1-d0)*(s.RangeMax-s.RangeMin)
}

// Span returns RangeMax - RangeMin.
func (s Scale) Span() float64 { return s.RangeMax - s.RangeMin }

// Ticks returns n+1 domain values evenly spaced from DomainMin to DomainMax,
// suitable for axis labels. It returns nil when n < 1.
func (s Scale) Ticks(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n+1)
	step := (s.DomainMax - s.DomainMin) / float64(n)
	for i := range out {
		out[i] = s.DomainMin + float64(i)*step
	}
	out[n] = s.DomainMax
	return out
}

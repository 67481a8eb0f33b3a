package domain

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrMalformedHistogram is returned for histograms that are too short or not hex.
var ErrMalformedHistogram = errors.New("malformed activity histogram")

// Histogram is a decoded activity bitstring. Position 0 of the window is the
// oldest tracked period and position Periods-1 the most recent one, as of the
// moment the histogram was captured.
type Histogram struct {
	nibbles []uint8
}

// ParseHistogram decodes a hex string, most significant digit first. Strings
// longer than HistogramDigits are allowed; the window is their leading
// Periods bits.
func ParseHistogram(s string) (Histogram, error) {
	if len(s) < HistogramDigits {
		return Histogram{}, fmt.Errorf("%w: %d hex digits, need at least %d", ErrMalformedHistogram, len(s), HistogramDigits)
	}

	nibbles := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			return Histogram{}, fmt.Errorf("%w: invalid hex digit %q at %d", ErrMalformedHistogram, s[i], i)
		}
		nibbles[i] = v
	}

	return Histogram{nibbles: nibbles}, nil
}

// Bit reports whether window position p (0 = oldest) was active.
func (h Histogram) Bit(p int) bool {
	if p < 0 || p >= Periods {
		return false
	}
	return h.nibbles[p>>2]>>(3-uint(p&3))&1 == 1
}

// Bucketize realigns the histogram captured at lastActiveAt to now and folds
// it into Buckets bars, stale to recent, each holding the number of active
// periods it covers. It returns nil (and no error) when the whole window has
// aged out.
func Bucketize(histogram string, lastActiveAt, now int64) ([]int, error) {
	d := floorDiv(now, PeriodMS) - floorDiv(lastActiveAt, PeriodMS)
	if d >= Periods {
		return nil, nil
	}
	// clock skew: a capture from the future is read as current
	if d < 0 {
		d = 0
	}

	h, err := ParseHistogram(histogram)
	if err != nil {
		return nil, err
	}

	drift := int(d)
	const mask = uint64(1)<<BucketSize - 1

	out := make([]int, 0, Buckets)
	for i := drift; i < Periods+drift; i += BucketSize {
		j := i + BucketSize

		// periods past the captured window have no data and read as zero
		var v uint64
		for p := i; p < j; p++ {
			v <<= 1
			if h.Bit(p) {
				v |= 1
			}
		}

		out = append(out, bits.OnesCount64(v&mask))
	}

	return out, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

package passgen

import "math"

// Shuffle permutes buf in place with a descending Fisher-Yates pass,
// drawing swap indices from src.
//
// A raw `r % range` is biased whenever 2^32 is not a multiple of range:
// some remainders occur one extra time. Rejection sampling restores exact
// uniformity: values at or above `MaxUint32 - MaxUint32%range` are
// discarded and redrawn, so every accepted value maps to each of the range
// targets with equal probability and all n! permutations are equally
// likely. The rejected band is at most range values out of 2^32, so the
// expected redraw count is ~1 for any realistic buffer length.
//
// If a draw fails mid-shuffle the error is returned immediately; callers
// must discard the partially shuffled buffer rather than use it.
func Shuffle(src *Source, buf []byte) error {
	for i := len(buf) - 1; i > 0; i-- {
		swapRange := uint32(i + 1) // valid targets: [0, i]
		threshold := math.MaxUint32 - math.MaxUint32%swapRange

		var r uint32
		for {
			v, err := src.Uint32()
			if err != nil {
				return err
			}
			if v < threshold {
				r = v
				break
			}
		}

		j := r % swapRange
		buf[i], buf[j] = buf[j], buf[i]
	}
	return nil
}

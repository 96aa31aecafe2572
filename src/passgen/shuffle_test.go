package passgen_test

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/dmahmalat/passgen/src/passgen"
)

func mustAcquire(t *testing.T, r io.Reader) *passgen.Source {
	t.Helper()
	src, err := passgen.AcquireFrom(r)
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	return src
}

// probe returns the chunk AcquireFrom consumes up front.
func probe() []byte { return []byte{0x00} }

func TestShuffle_ThresholdInvariants(t *testing.T) {
	ranges := []uint32{2, 3, 4, 5, 10, 24, 52, 84, 1000, 1 << 20, math.MaxUint32}

	for _, k := range ranges {
		threshold := uint32(math.MaxUint32 - math.MaxUint32%k)
		if threshold%k != 0 {
			t.Errorf("range %d: threshold %d not a multiple of range", k, threshold)
		}
		if rejected := uint32(math.MaxUint32) - threshold + 1; rejected > k {
			t.Errorf("range %d: rejection band %d wider than range", k, rejected)
		}
	}
}

func TestShuffle_RejectsValuesAtOrAboveThreshold(t *testing.T) {
	// n=2: one step with range 2, threshold 0xFFFFFFFE. Both 0xFFFFFFFE
	// and 0xFFFFFFFF must be redrawn; the accepted 1 maps to j=1 (no-op
	// swap of the last position with itself).
	r := &scriptedReader{chunks: [][]byte{
		probe(),
		{0xFF, 0xFF, 0xFF, 0xFF}, // rejected
		{0xFF, 0xFF, 0xFF, 0xFE}, // rejected (== threshold)
		{0x00, 0x00, 0x00, 0x01}, // accepted, j=1
	}}
	src := mustAcquire(t, r)

	buf := []byte{'a', 'b'}
	if err := passgen.Shuffle(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "ab" {
		t.Fatalf("got %q, want %q", buf, "ab")
	}

	// All scripted draws must have been consumed.
	if err := src.Fill(make([]byte, 1)); !errors.Is(err, passgen.ErrGenerationFailed) {
		t.Fatal("rejected values were not consumed from the stream")
	}
}

func TestShuffle_AcceptedValueSelectsSwapTarget(t *testing.T) {
	// n=2 with accepted 0 => j=0, so the two positions swap.
	r := &scriptedReader{chunks: [][]byte{
		probe(),
		{0x00, 0x00, 0x00, 0x00},
	}}
	src := mustAcquire(t, r)

	buf := []byte{'a', 'b'}
	if err := passgen.Shuffle(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "ba" {
		t.Fatalf("got %q, want %q", buf, "ba")
	}
}

func TestShuffle_MaxUint32RejectedWhenRangeDividesIt(t *testing.T) {
	// Range 3 divides MaxUint32 exactly, so the threshold is MaxUint32
	// itself and it is the only rejected value.
	r := &scriptedReader{chunks: [][]byte{
		probe(),
		{0xFF, 0xFF, 0xFF, 0xFF}, // rejected: == threshold
		{0x00, 0x00, 0x00, 0x02}, // i=2: j=2, no-op
		{0x00, 0x00, 0x00, 0x01}, // i=1: j=1, no-op
	}}
	src := mustAcquire(t, r)

	buf := []byte{'a', 'b', 'c'}
	if err := passgen.Shuffle(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(buf) != "abc" {
		t.Fatalf("got %q, want %q", buf, "abc")
	}
}

func TestShuffle_TrivialBuffersDrawNothing(t *testing.T) {
	for _, n := range []int{0, 1} {
		r := &scriptedReader{chunks: [][]byte{probe()}} // no draws available
		src := mustAcquire(t, r)

		buf := make([]byte, n)
		if err := passgen.Shuffle(src, buf); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
	}
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	src := mustAcquire(t, &xorshift32{x: 77})

	buf := []byte("aaabbc0123!?")
	want := make(map[byte]int)
	for _, b := range buf {
		want[b]++
	}

	if err := passgen.Shuffle(src, buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make(map[byte]int)
	for _, b := range buf {
		got[b]++
	}
	for b, n := range want {
		if got[b] != n {
			t.Fatalf("character %q count changed: %d -> %d", b, n, got[b])
		}
	}
}

// Deterministic seed => non-flaky; the threshold is conservative and will
// still catch gross uniformity bugs (a broken swap index or a skipped
// position inflates chi-square by orders of magnitude).
func TestShuffle_PermutationUniformityChiSquare(t *testing.T) {
	src := mustAcquire(t, &xorshift32{x: 2463534242})

	const trials = 100000
	counts := make(map[string]int, 24)

	for i := 0; i < trials; i++ {
		buf := []byte{0, 1, 2, 3}
		if err := passgen.Shuffle(src, buf); err != nil {
			t.Fatalf("trial %d: unexpected error: %v", i, err)
		}
		counts[string(buf)]++
	}

	if len(counts) != 24 {
		t.Fatalf("observed %d permutations, want all 24", len(counts))
	}

	expected := float64(trials) / 24.0
	var chi float64
	for _, c := range counts {
		diff := float64(c) - expected
		chi += diff * diff / expected
	}

	// df=23; anything healthy lands well under 60, gross bias lands in
	// the thousands.
	if chi > 150 {
		t.Fatalf("chi-square %.1f exceeds 150; permutation distribution is skewed", chi)
	}
}

func TestShuffle_DrawFailureAbortsImmediately(t *testing.T) {
	// Probe + one full word + one truncated word: the second step of a
	// 3-element shuffle must fail.
	r := &scriptedReader{chunks: [][]byte{
		probe(),
		{0x00, 0x00, 0x00, 0x02},
		{0x00, 0x00},
	}}
	src := mustAcquire(t, r)

	buf := []byte{'a', 'b', 'c'}
	err := passgen.Shuffle(src, buf)
	if !errors.Is(err, passgen.ErrGenerationFailed) {
		t.Fatalf("got %v, want ErrGenerationFailed", err)
	}
}

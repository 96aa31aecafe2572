package passgen_test

import (
	"testing"

	"github.com/dmahmalat/passgen/src/passgen"
)

func TestCharsetSizes(t *testing.T) {
	cases := []struct {
		name string
		pool string
		want int
	}{
		{"letters", passgen.Letters, 52},
		{"digits", passgen.Digits, 10},
		{"symbols", passgen.Symbols, 22},
		{"alphanumeric", passgen.Alphanumeric, 62},
		{"full", passgen.Full, 84},
	}

	for _, tc := range cases {
		if len(tc.pool) != tc.want {
			t.Errorf("%s pool has %d chars, want %d", tc.name, len(tc.pool), tc.want)
		}
	}
}

func TestCharsetNoDuplicates(t *testing.T) {
	seen := make(map[byte]bool, len(passgen.Full))
	for i := 0; i < len(passgen.Full); i++ {
		b := passgen.Full[i]
		if seen[b] {
			t.Fatalf("duplicate character %q in full pool", b)
		}
		seen[b] = true
	}
}

func TestBuildCharset(t *testing.T) {
	cases := []struct {
		letters, digits, symbols bool
		want                     string
	}{
		{true, true, true, passgen.Full},
		{true, true, false, passgen.Alphanumeric},
		{true, false, false, passgen.Letters},
		{false, true, false, passgen.Digits},
		{false, false, true, passgen.Symbols},
		{false, false, false, ""},
	}

	for _, tc := range cases {
		got := passgen.BuildCharset(tc.letters, tc.digits, tc.symbols)
		if got != tc.want {
			t.Errorf("BuildCharset(%v,%v,%v) = %q, want %q",
				tc.letters, tc.digits, tc.symbols, got, tc.want)
		}
	}
}

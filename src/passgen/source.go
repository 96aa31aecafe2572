package passgen

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Source is an exclusively-owned handle to a secure random byte stream.
// A generation call acquires one, draws from it, and releases it on every
// exit path; handles are never shared across concurrent calls.
type Source struct {
	r io.Reader
	c io.Closer
}

// Acquire opens a handle to the platform CSPRNG (crypto/rand).
func Acquire() (*Source, error) {
	return AcquireFrom(rand.Reader)
}

// AcquireFrom wraps an arbitrary secure byte stream (hardware TRNG, test
// double). A probe byte is drawn up front so an unusable entropy source
// fails acquisition immediately instead of mid-generation. If r is also an
// io.Closer, Release closes it.
func AcquireFrom(r io.Reader) (*Source, error) {
	if r == nil {
		return nil, ErrSourceUnavailable
	}

	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	s := &Source{r: r}
	if c, ok := r.(io.Closer); ok {
		s.c = c
	}
	return s, nil
}

// Fill draws exactly len(p) secure random bytes.
func (s *Source) Fill(p []byte) error {
	if _, err := io.ReadFull(s.r, p); err != nil {
		return fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return nil
}

// Uint32 draws one wide random value, uniform over [0, 2^32).
func (s *Source) Uint32() (uint32, error) {
	var buf [4]byte
	if err := s.Fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Release frees the underlying OS/device handle, if any. Safe to call more
// than once.
func (s *Source) Release() {
	if s == nil || s.c == nil {
		return
	}
	_ = s.c.Close()
	s.c = nil
}

package passgen

import (
	"io"
	"sync"
)

// LockedReader wraps an io.Reader and serializes Read calls with a mutex.
// Serve mode shares one entropy stream between request handlers and the
// background health probe; without serialization, interleaved reads would
// tear the 4-byte words the shuffle draws.
type LockedReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (lr *LockedReader) Read(p []byte) (int, error) {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Read(p)
}

// NewLockedReader returns an io.Reader that is safe for concurrent use.
// If r is already a *LockedReader, it is returned as-is.
func NewLockedReader(r io.Reader) io.Reader {
	if r == nil {
		return nil
	}
	if _, ok := r.(*LockedReader); ok {
		return r
	}
	return &LockedReader{r: r}
}

package passgen_test

import (
	"regexp"
	"testing"

	"github.com/dmahmalat/passgen/src/passgen"
)

var uuidV4Re = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func TestNewUUIDv4_FormatAndBits(t *testing.T) {
	r := &byteCycleReader{}
	for i := 0; i < 100; i++ {
		id, err := passgen.NewUUIDv4(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !uuidV4Re.MatchString(id) {
			t.Fatalf("invalid UUIDv4: %q", id)
		}
	}
}

func TestNewUUIDv4_FailsOnDeadStream(t *testing.T) {
	r := &scriptedReader{}
	if _, err := passgen.NewUUIDv4(r); err == nil {
		t.Fatal("expected error")
	}
}

package idgen_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/idgen"
)

func TestUUID_New(t *testing.T) {
	id := idgen.UUID{}.New()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("ID %q is not a UUID: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("version = %d, want 4", parsed.Version())
	}
}

func TestCounter_Sequence(t *testing.T) {
	c := idgen.NewCounter("req-")

	for _, want := range []string{"req-1", "req-2", "req-3"} {
		if got := c.New(); got != want {
			t.Errorf("New() = %q, want %q", got, want)
		}
	}
}

func TestCounter_ConcurrentUnique(t *testing.T) {
	c := idgen.NewCounter("")

	var (
		mu   sync.Mutex
		seen = map[string]bool{}
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id := c.New()
				mu.Lock()
				if seen[id] {
					t.Errorf("duplicate ID %q", id)
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if len(seen) != 800 {
		t.Errorf("unique IDs = %d, want 800", len(seen))
	}
}

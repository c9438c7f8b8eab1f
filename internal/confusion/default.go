package confusion

import (
	"bytes"
	"sync"

	"github.com/asquebay/chardetect/internal/confusion/assets"
)

var (
	mu      sync.RWMutex
	loaded  bool
	defGraf *Graph
	loadErr error
)

// Default returns the process-wide confusion graph, loading it from the
// embedded packed artifact on first use. Double-checked initialization:
// a lock-free read of the cached pointer on the fast path, a locked
// build on the slow path — the same idiom internal/registry uses, and
// the specification requires for all three load-once caches (§5).
func Default() (*Graph, error) {
	mu.RLock()
	if loaded {
		g, err := defGraf, loadErr
		mu.RUnlock()
		return g, err
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return defGraf, loadErr
	}
	defGraf, loadErr = ReadFrom(bytes.NewReader(assets.Confusion))
	loaded = true
	return defGraf, loadErr
}

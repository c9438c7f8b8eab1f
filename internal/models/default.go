package models

import (
	"bytes"
	"sync"

	"github.com/asquebay/chardetect/internal/models/assets"
)

var (
	mu       sync.RWMutex
	loaded   bool
	defStore *Store
	loadErr  error
)

// Default returns the process-wide Model Store, loading it from the
// embedded packed artifact on first use (double-checked initialization,
// same idiom as confusion.Default and internal/registry's lazy build).
// A load failure is cached and returned to every caller until the
// process restarts, matching §7: model-loading I/O errors are
// "propagated to the caller of the first detection call; subsequent
// calls may retry" — here a retry is a fresh process, since the
// embedded artifact cannot change at runtime.
func Default() (*Store, error) {
	mu.RLock()
	if loaded {
		s, err := defStore, loadErr
		mu.RUnlock()
		return s, err
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if loaded {
		return defStore, loadErr
	}
	defStore, loadErr = ReadFrom(bytes.NewReader(assets.Models))
	loaded = true
	return defStore, loadErr
}

package models

import "testing"

func TestDefaultStoreLoads(t *testing.T) {
	store, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if store.Len() == 0 {
		t.Fatalf("expected the embedded default store to have models")
	}
	if langs := store.Languages("windows-1252"); len(langs) == 0 {
		t.Fatalf("expected at least one language for windows-1252 in the default store")
	}
}

package kv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStoreAt(path)

	if _, ok := store.Get("session"); ok {
		t.Fatal("empty store reported a value")
	}

	if err := store.Set("session", `{"token":"t1"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value, ok := store.Get("session")
	if !ok || value != `{"token":"t1"}` {
		t.Errorf("Get = %q, %v", value, ok)
	}

	// A fresh store over the same file sees the value
	reopened := NewFileStoreAt(path)
	if value, ok := reopened.Get("session"); !ok || value != `{"token":"t1"}` {
		t.Errorf("reopened Get = %q, %v", value, ok)
	}

	if err := store.Remove("session"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := store.Get("session"); ok {
		t.Error("value survived Remove")
	}
}

func TestFileStoreRemoveAbsentKey(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "state.json"))
	if err := store.Remove("missing"); err != nil {
		t.Errorf("Remove of absent key returned %v", err)
	}
}

func TestFileStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")
	store := NewFileStoreAt(path)

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("state file was not created: %v", err)
	}
}

func TestFileStoreReplacesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{corrupt"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStoreAt(path)
	if _, ok := store.Get("k"); ok {
		t.Error("corrupt file produced a value")
	}
	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set over corrupt file failed: %v", err)
	}
	if value, ok := store.Get("k"); !ok || value != "v" {
		t.Errorf("Get after repair = %q, %v", value, ok)
	}
}

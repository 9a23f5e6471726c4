// ABOUTME: Tests for the stream resource table and the file slot borrow discipline
// ABOUTME: Covers take/put exclusivity, kinds, removal, and concurrent access

package registry

import (
	"os"
	"sync"
	"testing"
)

func pipeFile(t *testing.T) *os.File {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})
	return r
}

func TestTable_AddAndLookup(t *testing.T) {
	t.Parallel()

	table := NewTable()
	stdinRid := table.AddStdin()
	fileRid := table.AddFile(pipeFile(t))
	genericRid := table.AddGeneric()

	tests := []struct {
		name string
		rid  uint32
		kind Kind
	}{
		{name: "stdin", rid: stdinRid, kind: KindStdin},
		{name: "file", rid: fileRid, kind: KindFile},
		{name: "generic", rid: genericRid, kind: KindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := table.Lookup(tt.rid)
			if !ok {
				t.Fatalf("Lookup(%d) not found", tt.rid)
			}
			if entry.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", entry.Kind(), tt.kind)
			}
		})
	}

	if _, ok := table.Lookup(99); ok {
		t.Error("Lookup(99) found a resource that was never added")
	}
	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
}

func TestEntry_TakePutFile(t *testing.T) {
	t.Parallel()

	table := NewTable()
	rid := table.AddFile(pipeFile(t))
	entry, _ := table.Lookup(rid)

	slot, ok := entry.TakeFile()
	if !ok {
		t.Fatal("TakeFile failed on a fresh entry")
	}
	if slot.File == nil {
		t.Fatal("taken slot has no file")
	}

	// The descriptor is checked out; a second take must fail without
	// disturbing the entry.
	if _, ok := entry.TakeFile(); ok {
		t.Error("TakeFile succeeded while the slot was checked out")
	}

	entry.PutFile(slot)
	if _, ok := entry.TakeFile(); !ok {
		t.Error("TakeFile failed after the slot was returned")
	}
}

func TestEntry_TakeFileWrongKind(t *testing.T) {
	t.Parallel()

	table := NewTable()
	entry, _ := table.Lookup(table.AddStdin())

	if _, ok := entry.TakeFile(); ok {
		t.Error("TakeFile succeeded on a stdin entry")
	}
}

func TestEntry_SlotCarriesTTYMeta(t *testing.T) {
	t.Parallel()

	table := NewTable()
	rid := table.AddFile(pipeFile(t))
	entry, _ := table.Lookup(rid)

	slot, _ := entry.TakeFile()
	if slot.TTY.Mode != nil {
		t.Error("fresh slot has a saved mode")
	}
	entry.PutFile(slot)
}

func TestTable_Remove(t *testing.T) {
	t.Parallel()

	table := NewTable()
	f := pipeFile(t)
	rid := table.AddFile(f)

	if !table.Remove(rid) {
		t.Fatal("Remove returned false for a registered resource")
	}
	if _, ok := table.Lookup(rid); ok {
		t.Error("resource still present after Remove")
	}
	if table.Remove(rid) {
		t.Error("Remove returned true for an already removed resource")
	}

	// The underlying file was closed by Remove.
	if _, err := f.Stat(); err == nil {
		t.Error("file still open after Remove")
	}
}

func TestTable_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	table := NewTable()
	rid := table.AddFile(pipeFile(t))
	entry, _ := table.Lookup(rid)

	var wg sync.WaitGroup
	const goroutines = 10

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			if slot, ok := entry.TakeFile(); ok {
				entry.PutFile(slot)
			}
		}()
	}

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			_ = table.AddGeneric()
			_, _ = table.Lookup(rid)
		}()
	}

	wg.Wait()

	// The slot must be back exactly once.
	slot, ok := entry.TakeFile()
	if !ok {
		t.Fatal("slot lost during concurrent take/put")
	}
	entry.PutFile(slot)
}

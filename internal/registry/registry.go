// ABOUTME: Arena-style stream resource table keyed by opaque uint32 ids
// ABOUTME: File descriptors are borrowed by moving the slot out of its entry and back in

package registry

import (
	"os"
	"sync"

	"github.com/mauromedda/termctl-go/internal/console"
)

// Kind tags the variant of a stream resource.
type Kind int

const (
	// KindStdin is the process's standard input stream.
	KindStdin Kind = iota
	// KindFile is an open file that may refer to a terminal device.
	KindFile
	// KindGeneric is any resource that is not terminal-capable.
	KindGeneric
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindFile:
		return "file"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// TTYMeta records the terminal mode captured immediately before the
// most recent transition into raw mode. Mode is nil exactly while the
// resource is in cooked mode.
type TTYMeta struct {
	Mode *console.State
}

// FileSlot owns an open file together with its terminal metadata. The
// slot moves out of its entry while one operation has exclusive use of
// the descriptor, and moves back when that operation completes. The
// holder is responsible for returning it.
type FileSlot struct {
	File *os.File
	TTY  TTYMeta
}

// Entry is one registered stream resource. Entries are created and
// removed only by the Table; operations mutate the tty metadata or
// borrow the file slot for the duration of a single call.
type Entry struct {
	mu   sync.Mutex
	kind Kind
	tty  TTYMeta   // stdin only; files keep theirs inside the slot
	file *FileSlot // file only; nil while checked out
}

// Kind returns the resource variant tag.
func (e *Entry) Kind() Kind { return e.kind }

// WithStdinMeta runs fn with exclusive access to the entry's saved
// terminal mode. Only meaningful for KindStdin entries; stdin has no
// detachable handle slot, so the metadata lives on the entry itself.
func (e *Entry) WithStdinMeta(fn func(meta *TTYMeta) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.tty)
}

// TakeFile moves the file slot out of the entry, giving the caller
// exclusive use of the descriptor and its metadata. ok is false when
// the slot is already checked out by another operation (or the entry is
// not a file resource); the entry itself is untouched in that case.
func (e *Entry) TakeFile() (slot *FileSlot, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindFile || e.file == nil {
		return nil, false
	}
	slot = e.file
	e.file = nil
	return slot, true
}

// PutFile returns a previously taken slot to the entry.
func (e *Entry) PutFile(slot *FileSlot) {
	e.mu.Lock()
	e.file = slot
	e.mu.Unlock()
}

// Table maps opaque resource ids to entries. Lookups on different ids
// proceed independently; per-entry state is guarded by each entry's own
// lock, not the table lock.
type Table struct {
	mu      sync.Mutex
	entries map[uint32]*Entry
	nextID  uint32
}

// NewTable creates an empty resource table.
func NewTable() *Table {
	return &Table{entries: make(map[uint32]*Entry)}
}

func (t *Table) add(e *Entry) uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	rid := t.nextID
	t.nextID++
	t.entries[rid] = e
	return rid
}

// AddStdin registers the process's standard input stream.
func (t *Table) AddStdin() uint32 {
	return t.add(&Entry{kind: KindStdin})
}

// AddFile registers an open file.
func (t *Table) AddFile(f *os.File) uint32 {
	return t.add(&Entry{kind: KindFile, file: &FileSlot{File: f}})
}

// AddGeneric registers a resource with no terminal capability.
func (t *Table) AddGeneric() uint32 {
	return t.add(&Entry{kind: KindGeneric})
}

// Lookup returns the entry for rid, or ok=false if no such resource.
func (t *Table) Lookup(rid uint32) (e *Entry, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok = t.entries[rid]
	return e, ok
}

// Remove deletes rid from the table, closing the underlying file if the
// entry is a file resource whose slot is present. Returns false if the
// id is unknown.
func (t *Table) Remove(rid uint32) bool {
	t.mu.Lock()
	e, ok := t.entries[rid]
	delete(t.entries, rid)
	t.mu.Unlock()
	if !ok {
		return false
	}

	e.mu.Lock()
	slot := e.file
	e.file = nil
	e.mu.Unlock()
	if slot != nil && slot.File != nil {
		_ = slot.File.Close()
	}
	return true
}

// Len returns the number of registered resources.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

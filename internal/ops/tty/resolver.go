// ABOUTME: Resolves resource ids to borrowed descriptors plus their saved-mode slot
// ABOUTME: File slots are taken from the registry and put back on every exit path

package tty

import (
	"os"

	"github.com/mauromedda/termctl-go/internal/registry"
)

func stdinFd() uintptr {
	return os.Stdin.Fd()
}

// withTerminal resolves rid to a descriptor and the slot holding its
// saved terminal mode, then runs fn. Standard input resolves directly
// to the process stdin descriptor; file resources borrow the file slot
// for the duration of the call. The borrow is returned on every exit
// path except when the slot was already vacated by an in-flight
// operation, in which case there is nothing to reinsert and the call
// fails fast with ErrUnavailable.
func (o *Ops) withTerminal(rid uint32, fn func(fd uintptr, meta *registry.TTYMeta) error) error {
	entry, ok := o.reg.Lookup(rid)
	if !ok {
		return ErrUnknownResource
	}

	switch entry.Kind() {
	case registry.KindStdin:
		return entry.WithStdinMeta(func(meta *registry.TTYMeta) error {
			fd := stdinFd()
			if !o.con.ValidHandle(fd) {
				return ErrInvalidHandle
			}
			return fn(fd, meta)
		})
	case registry.KindFile:
		slot, ok := entry.TakeFile()
		if !ok {
			return ErrUnavailable
		}
		defer entry.PutFile(slot)

		fd := slot.File.Fd()
		if !o.con.ValidHandle(fd) {
			return ErrInvalidHandle
		}
		return fn(fd, &slot.TTY)
	default:
		return ErrNotSupported
	}
}

// withFileFd borrows a file resource's descriptor for a read-only
// probe. Same take/put discipline as withTerminal, without exposing the
// saved-mode slot.
func (o *Ops) withFileFd(entry *registry.Entry, fn func(fd uintptr) error) error {
	slot, ok := entry.TakeFile()
	if !ok {
		return ErrUnavailable
	}
	defer entry.PutFile(slot)

	fd := slot.File.Fd()
	if !o.con.ValidHandle(fd) {
		return ErrInvalidHandle
	}
	return fn(fd)
}

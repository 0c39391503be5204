package dict

import "math"

// maxEntries is the largest arena the uint32 links can address; index 0
// is reserved for "no entry".
const maxEntries = math.MaxUint32 - 1

type dictEntry struct {
	key  string
	val  int64
	next uint32
}

// entryArena owns every entry of one Dict. Cell 0 is never handed out.
// Released cells are chained through next into the free list.
type entryArena struct {
	cells []dictEntry
	free  uint32
	live  int64
	limit int64
}

func (a *entryArena) init() {
	a.cells = make([]dictEntry, 1)
	a.free = 0
	a.live = 0
}

func (a *entryArena) get(i uint32) *dictEntry {
	return &a.cells[i]
}

// alloc returns the index of an empty cell, or ErrOutOfMemory without
// touching the arena.
func (a *entryArena) alloc() (uint32, error) {
	if a.limit > 0 && a.live >= a.limit {
		return 0, ErrOutOfMemory
	}
	if a.free != 0 {
		i := a.free
		a.free = a.cells[i].next
		a.cells[i].next = 0
		a.live++
		return i, nil
	}
	if int64(len(a.cells)) > maxEntries {
		return 0, ErrOutOfMemory
	}
	a.cells = append(a.cells, dictEntry{})
	a.live++
	return uint32(len(a.cells) - 1), nil
}

// release drops the cell's key copy and puts it on the free list.
func (a *entryArena) release(i uint32) {
	a.cells[i] = dictEntry{next: a.free}
	a.free = i
	a.live--
}

func (a *entryArena) reset() {
	a.cells = nil
	a.free = 0
	a.live = 0
}

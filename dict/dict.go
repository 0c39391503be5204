package dict

import (
	"errors"
	"math"
	"strings"

	"github.com/pengdafu/chaindict/util"
)

// MaxCapacity is the largest slot count Create accepts.
const MaxCapacity = math.MaxInt32

var (
	ErrInvalidCapacity = errors.New("dict: capacity must be at least 1")
	ErrTableAlloc      = errors.New("dict: cannot allocate slot table")
	ErrOutOfMemory     = errors.New("dict: cannot allocate entry")
)

// Dict is a fixed-capacity hash table resolving collisions by chaining.
// It never resizes; callers pick the capacity for the load factor they
// want. A Dict is not safe for concurrent use.
type Dict struct {
	typ      *Type
	ht       dictHt
	entries  entryArena
	released bool
}

// Create allocates a Dict with capacity empty slots. A nil typ selects
// DJB2Type. On error no Dict is returned.
func Create(typ *Type, capacity int64) (*Dict, error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if capacity > MaxCapacity {
		return nil, ErrTableAlloc
	}
	if typ == nil || typ.HashFunction == nil {
		typ = DJB2Type
	}
	d := new(Dict)
	d.typ = typ
	if err := d.ht.init(capacity); err != nil {
		return nil, err
	}
	d.entries.init()
	return d, nil
}

// LimitEntries caps the number of live entries; inserting a new key past
// the cap fails with ErrOutOfMemory. n <= 0 removes the cap.
func (dict *Dict) LimitEntries(n int64) {
	dict.mustLive()
	if n < 0 {
		n = 0
	}
	dict.entries.limit = n
}

func (dict *Dict) Type() *Type {
	dict.mustLive()
	return dict.typ
}

func (dict *Dict) Len() int64 {
	dict.mustLive()
	return dict.ht.used
}

func (dict *Dict) Cap() int64 {
	dict.mustLive()
	return dict.ht.size
}

// Insert stores val under key. An existing key is overwritten in place;
// a new key gets its own copy of the key bytes and becomes the head of
// its slot's chain. ErrOutOfMemory leaves the Dict unchanged.
func (dict *Dict) Insert(key string, val int64) error {
	dict.mustLive()
	idx := dict.slotOf(key)
	if he := dict.find(idx, key); he != nil {
		he.val = val
		return nil
	}

	i, err := dict.entries.alloc()
	if err != nil {
		return err
	}
	entry := dict.entries.get(i)
	entry.key = strings.Clone(key)
	entry.val = val
	entry.next = dict.ht.table[idx]
	dict.ht.table[idx] = i
	dict.ht.used++
	return nil
}

// InsertBytes is Insert for a key held in a caller buffer. The buffer
// may be reused as soon as the call returns.
func (dict *Dict) InsertBytes(key []byte, val int64) error {
	return dict.Insert(util.Bytes2String(key), val)
}

// Search returns the value stored under key and whether it was found.
func (dict *Dict) Search(key string) (int64, bool) {
	dict.mustLive()
	he := dict.find(dict.slotOf(key), key)
	if he == nil {
		return 0, false
	}
	return he.val, true
}

func (dict *Dict) SearchBytes(key []byte) (int64, bool) {
	return dict.Search(util.Bytes2String(key))
}

// Remove unlinks and frees the entry for key. It reports false when
// there was nothing to remove.
func (dict *Dict) Remove(key string) bool {
	dict.mustLive()
	idx := dict.slotOf(key)
	var prev uint32
	for he := dict.ht.table[idx]; he != 0; {
		entry := dict.entries.get(he)
		if entry.key == key {
			if prev != 0 {
				dict.entries.get(prev).next = entry.next
			} else {
				dict.ht.table[idx] = entry.next
			}
			dict.entries.release(he)
			dict.ht.used--
			return true
		}
		prev = he
		he = entry.next
	}
	return false
}

func (dict *Dict) RemoveBytes(key []byte) bool {
	return dict.Remove(util.Bytes2String(key))
}

// Release frees every entry, then the slot table. The Dict must not be
// used afterwards.
func (dict *Dict) Release() {
	dict.mustLive()
	for idx := range dict.ht.table {
		he := dict.ht.table[idx]
		for he != 0 {
			next := dict.entries.get(he).next
			dict.entries.release(he)
			he = next
		}
		dict.ht.table[idx] = 0
	}
	dict.entries.reset()
	dict.ht.reset()
	dict.released = true
}

func (dict *Dict) slotOf(key string) int64 {
	return dict.ht.slot(dict.typ.HashFunction(key))
}

func (dict *Dict) find(idx int64, key string) *dictEntry {
	for he := dict.ht.table[idx]; he != 0; {
		entry := dict.entries.get(he)
		if entry.key == key {
			return entry
		}
		he = entry.next
	}
	return nil
}

func (dict *Dict) mustLive() {
	if dict == nil {
		panic("dict: nil Dict")
	}
	if dict.released {
		panic("dict: use of released Dict")
	}
}

package dict

// Processor is called for each entry; returning false stops the walk.
type Processor func(key string, val int64) bool

type Pair struct {
	Key   string
	Value int64
}

// Iterator walks live entries in slot order, then chain order. The Dict
// must not be modified while an Iterator is in use.
type Iterator struct {
	d         *Dict
	index     int64
	entry     uint32
	nextEntry uint32
}

func (dict *Dict) Iterator() *Iterator {
	dict.mustLive()
	return &Iterator{d: dict, index: -1}
}

func (iter *Iterator) Next() (key string, val int64, ok bool) {
	iter.d.mustLive()
	ht := &iter.d.ht
	for {
		if iter.entry == 0 {
			iter.index++
			if iter.index >= ht.size {
				iter.index = ht.size
				return "", 0, false
			}
			iter.entry = ht.table[iter.index]
		} else {
			iter.entry = iter.nextEntry
		}
		if iter.entry != 0 {
			e := iter.d.entries.get(iter.entry)
			iter.nextEntry = e.next
			return e.key, e.val, true
		}
	}
}

func (dict *Dict) ForEach(p Processor) {
	iter := dict.Iterator()
	for {
		key, val, ok := iter.Next()
		if !ok || !p(key, val) {
			return
		}
	}
}

// Entries returns a snapshot of every live entry in iteration order.
func (dict *Dict) Entries() []Pair {
	res := make([]Pair, 0, dict.Len())
	dict.ForEach(func(key string, val int64) bool {
		res = append(res, Pair{Key: key, Value: val})
		return true
	})
	return res
}

func (dict *Dict) Keys() []string {
	res := make([]string, 0, dict.Len())
	dict.ForEach(func(key string, _ int64) bool {
		res = append(res, key)
		return true
	})
	return res
}

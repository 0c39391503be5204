package dict

type Stats struct {
	Slots      int64
	UsedSlots  int64
	Entries    int64
	MaxChain   int
	LoadFactor float64
}

// ChainLen returns the number of entries chained at slot.
func (dict *Dict) ChainLen(slot int64) int {
	dict.mustLive()
	if slot < 0 || slot >= dict.ht.size {
		panic("dict: slot index out of range")
	}
	n := 0
	for he := dict.ht.table[slot]; he != 0; he = dict.entries.get(he).next {
		n++
	}
	return n
}

func (dict *Dict) Stats() Stats {
	dict.mustLive()
	s := Stats{
		Slots:   dict.ht.size,
		Entries: dict.ht.used,
	}
	for i := int64(0); i < dict.ht.size; i++ {
		if dict.ht.table[i] == 0 {
			continue
		}
		s.UsedSlots++
		if n := dict.ChainLen(i); n > s.MaxChain {
			s.MaxChain = n
		}
	}
	s.LoadFactor = float64(s.Entries) / float64(s.Slots)
	return s
}

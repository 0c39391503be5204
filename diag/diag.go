// Package diag prints the contents of a dict.Dict for inspection. Nothing
// here modifies the dictionary.
package diag

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"

	"github.com/pengdafu/chaindict/dict"
)

// Dump prints every entry in slot order.
func Dump(w io.Writer, d *dict.Dict) error {
	if _, err := fmt.Fprintln(w, "Dictionary:"); err != nil {
		return err
	}
	var err error
	d.ForEach(func(key string, val int64) bool {
		_, err = fmt.Fprintf(w, "  [%s] => %d\n", key, val)
		return err == nil
	})
	return err
}

// DumpSorted prints every entry ordered by key.
func DumpSorted(w io.Writer, d *dict.Dict) error {
	if d == nil || d.Len() == 0 {
		_, err := fmt.Fprintln(w, "Dictionary is empty.")
		return err
	}

	keys := d.Keys()
	slices.Sort(keys)
	if _, err := fmt.Fprintln(w, "Dictionary (sorted by key):"); err != nil {
		return err
	}
	for _, key := range keys {
		val, _ := d.Search(key)
		if _, err := fmt.Fprintf(w, "  '%s': %d\n", key, val); err != nil {
			return err
		}
	}
	return nil
}

// ChainHistogram maps a chain length to the number of slots holding a
// chain of that length. Empty slots are counted under 0.
func ChainHistogram(d *dict.Dict) map[int]int64 {
	res := make(map[int]int64)
	for i := int64(0); i < d.Cap(); i++ {
		res[d.ChainLen(i)]++
	}
	return res
}

// Histogram prints ChainHistogram followed by the table's load factor.
func Histogram(w io.Writer, d *dict.Dict) error {
	h := ChainHistogram(d)
	lengths := make([]int, 0, len(h))
	for l := range h {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)

	s := d.Stats()
	if _, err := fmt.Fprintf(w, "slots: %d, used: %d, entries: %d, load factor: %.3f, longest chain: %d\n",
		s.Slots, s.UsedSlots, s.Entries, s.LoadFactor, s.MaxChain); err != nil {
		return err
	}
	for _, l := range lengths {
		if _, err := fmt.Fprintf(w, "  chain %3d: %d\n", l, h[l]); err != nil {
			return err
		}
	}
	return nil
}

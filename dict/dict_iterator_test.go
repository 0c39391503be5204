package dict

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	d := newDict(t, nil, 10)
	want := make([]Pair, 0, 50)
	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key%d", i)
		require.NoError(t, d.Insert(key, int64(i)))
		want = append(want, Pair{key, int64(i)})
	}
	require.True(t, d.Remove("key7"))
	want = append(want[:7], want[8:]...)

	var got []Pair
	iter := d.Iterator()
	for {
		key, val, ok := iter.Next()
		if !ok {
			break
		}
		got = append(got, Pair{key, val})
	}
	_, _, ok := iter.Next()
	require.False(t, ok)

	sortPairs(want)
	sortPairs(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("iteration mismatch (-want +got):\n%s", diff)
	}
}

func TestIteratorEmpty(t *testing.T) {
	d := newDict(t, nil, 3)
	_, _, ok := d.Iterator().Next()
	require.False(t, ok)
	require.Empty(t, d.Entries())
	require.Empty(t, d.Keys())
}

func TestForEachStops(t *testing.T) {
	d := newDict(t, nil, 5)
	for i := 0; i < 20; i++ {
		require.NoError(t, d.Insert(fmt.Sprintf("%d", i), int64(i)))
	}
	seen := 0
	d.ForEach(func(string, int64) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

func sortPairs(p []Pair) {
	sort.Slice(p, func(i, j int) bool {
		return p[i].Key < p[j].Key
	})
}

package bench

import (
	"fmt"
	"io"
)

func Report(w io.Writer, res Result) error {
	title := fmt.Sprintf("TEST WITH %d ELEMENTS", res.N)
	if res.Baseline {
		title += " (go map)"
	}
	_, err := fmt.Fprintf(w, "\n------ %s ------\n"+
		"Insert time: %.6f s\n"+
		"Search time: %.6f s\n"+
		"Remove time: %.6f s\n",
		title, res.Insert.Seconds(), res.Search.Seconds(), res.Remove.Seconds())
	return err
}

// ReportVerbose adds the bookkeeping counters after Report's lines.
func ReportVerbose(w io.Writer, res Result) error {
	if err := Report(w, res); err != nil {
		return err
	}
	var err error
	if res.Baseline {
		_, err = fmt.Fprintf(w, "entries: %d, hits: %d, misses: %d, removed: %d\n",
			res.Entries, res.Hits, res.Misses, res.Removed)
	} else {
		_, err = fmt.Fprintf(w, "slots: %d, entries: %d, longest chain: %d, hits: %d, misses: %d, removed: %d\n",
			res.Capacity, res.Entries, res.MaxChain, res.Hits, res.Misses, res.Removed)
	}
	return err
}

package util

import (
	"errors"
	"time"
)

var ErrNoCPUClock = errors.New("process cpu clock not available on this platform")

// Clock returns a monotonically increasing reading; only differences
// between two readings are meaningful.
type Clock func() time.Duration

func WallClock() Clock {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// CPUClock reads user+system CPU time of the process, or falls back to
// the wall clock where that is not available.
func CPUClock() (Clock, error) {
	if _, err := ProcessCPUTime(); err != nil {
		return WallClock(), err
	}
	return func() time.Duration {
		d, _ := ProcessCPUTime()
		return d
	}, nil
}

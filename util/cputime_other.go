//go:build !linux && !darwin && !freebsd

package util

import "time"

func ProcessCPUTime() (time.Duration, error) {
	return 0, ErrNoCPUClock
}

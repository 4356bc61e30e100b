package timex

import "time"

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}

// Split divides d into n equal parts. Non-positive d or n yields 0.
func Split(d time.Duration, n int) time.Duration {
	if d <= 0 || n <= 0 {
		return 0
	}
	return d / time.Duration(n)
}

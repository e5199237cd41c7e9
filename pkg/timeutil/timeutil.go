package timeutil

import (
	"math"
	"math/rand"
	"time"
)

// DurationPtr is a helper function to create a pointer to a time.Duration
func DurationPtr(d time.Duration) *time.Duration {
	return &d
}

// ExponentialBackoffDelay computes the delay before the next retry attempt.
// attempt is 1-based: the delay after the first failed attempt uses
// initialDuration, then grows by multiplier per attempt, capped at
// maxDuration. A random jitter in [0, jitter) drawn from rng is added on top
// so that retries from concurrent callers do not align.
func ExponentialBackoffDelay(
	attempt int,
	jitter time.Duration,
	rng rand.Rand,
	backoffParam BackoffParam,
) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	base := float64(backoffParam.InitialDuration()) *
		math.Pow(backoffParam.Multiplier(), float64(attempt-1))

	capped := backoffParam.MaxDuration()
	delay := time.Duration(base)
	if capped > 0 && delay > capped {
		delay = capped
	}

	if jitter > 0 {
		delay += time.Duration(rng.Int63n(int64(jitter)))
	}

	return delay
}

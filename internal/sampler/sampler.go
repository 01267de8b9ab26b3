// Package sampler picks screenshot frame numbers from a clip.
package sampler

import (
	"fmt"
	"math/rand"
	"sort"
)

// Pick returns n distinct frame numbers, each a multiple of 100, drawn
// from the middle 80% of a clip with length frames. Draws are collapsed
// into hundreds-buckets, so nearby candidates dedupe into one screenshot;
// single extra draws top the set up to n.
func Pick(r *rand.Rand, length, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("need at least 1 frame, got %d", n)
	}
	lo := length / 10
	hi := length / 10 * 9
	if hi <= lo {
		return nil, fmt.Errorf("clip too short to sample: %d frames", length)
	}
	// Buckets available in [lo, hi). Without this check the top-up loop
	// below never terminates when the range holds fewer than n buckets.
	buckets := (hi-1)/100 - lo/100 + 1
	if buckets < n {
		return nil, fmt.Errorf("clip offers only %d sample positions in its middle 80%%, cannot pick %d frames", buckets, n)
	}

	picked := make(map[int]struct{}, n)
	for i := 0; i < n; i++ {
		picked[(lo+r.Intn(hi-lo))/100] = struct{}{}
	}
	for len(picked) < n {
		picked[(lo+r.Intn(hi-lo))/100] = struct{}{}
	}

	frames := make([]int, 0, n)
	for bucket := range picked {
		frames = append(frames, bucket*100)
	}
	sort.Ints(frames)
	return frames, nil
}

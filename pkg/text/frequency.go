package text

// FrequencyTracker counts WordKeys observed in stream order.
// The zero value is not usable; create one with [NewFrequencyTracker].
type FrequencyTracker struct {
	counts  map[string]int
	keys    []string // first-occurrence order
	seen    int
	lastNew int
}

// NewFrequencyTracker returns an empty tracker.
func NewFrequencyTracker() *FrequencyTracker {
	return &FrequencyTracker{
		counts:  make(map[string]int),
		lastNew: -1,
	}
}

// Observe records one occurrence of key and returns its 1-based occurrence
// rank, i.e. how many times key has been observed including this call.
func (f *FrequencyTracker) Observe(key string) int {
	n := f.counts[key] + 1
	f.counts[key] = n
	if n == 1 {
		f.keys = append(f.keys, key)
		f.lastNew = f.seen
	}
	f.seen++
	return n
}

// Count returns how many times key has been observed.
func (f *FrequencyTracker) Count(key string) int { return f.counts[key] }

// Observed returns the total number of observations.
func (f *FrequencyTracker) Observed() int { return f.seen }

// TotalDistinctKeys returns the number of distinct keys observed so far.
func (f *FrequencyTracker) TotalDistinctKeys() int { return len(f.keys) }

// Keys returns the distinct keys in order of first occurrence.
func (f *FrequencyTracker) Keys() []string {
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// Counts returns a copy of the key counts.
func (f *FrequencyTracker) Counts() map[string]int {
	out := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

// MaxCount returns the highest count of any key, or 0 if nothing was observed.
func (f *FrequencyTracker) MaxCount() int {
	m := 0
	for _, v := range f.counts {
		m = max(m, v)
	}
	return m
}

// CompletionIndex returns the 0-based sequence index of the observation at
// which the running distinct count first reached TotalDistinctKeys. The
// second result is false when nothing has been observed.
//
// The distinct count only grows, so this is the observation that introduced
// the most recent new key.
func (f *FrequencyTracker) CompletionIndex() (int, bool) {
	if f.lastNew < 0 {
		return 0, false
	}
	return f.lastNew, true
}

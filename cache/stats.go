package cache

// Stats is a snapshot of cache counters.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the per-shard capacity.
	Capacity int
	// Hits counts lookups served from the cache.
	Hits uint64
	// Misses counts lookups that found nothing (and, for GetOrCreate,
	// built the value).
	Misses uint64
	// Evictions counts entries dropped to respect the capacity.
	Evictions uint64
}

// HitRate returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Package cache provides a generic, sharded LRU cache safe for concurrent
// use.
//
// ShardedCache spreads keys over DefaultShardCount independently locked
// shards. GetOrCreate builds a missing value while holding the shard lock,
// so concurrent callers asking for the same key never build it twice and
// never race to insert it.
package cache

// Package ratelimiter implements a token bucket rate limiter with pluggable
// storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens. Every RefillInterval, RefillRate
// tokens are added back. A request consumes one token and is denied once the
// bucket is empty.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//
//	r.Use(ratelimiter.Middleware(bucket, func(r *http.Request) string {
//		return clientip.FromContext(r.Context())
//	}))
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every response and Retry-After on denied ones.
//
// MemoryStore keeps buckets in process memory and evicts idle ones in the
// background. RedisStore keeps them in Redis, updated by a Lua script, so
// every replica shares the same limits:
//
//	store := ratelimiter.NewRedisStore(client)
package ratelimiter

// Copyright (c) 2026 Book Alchemy. All rights reserved.

package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nagrapoonam/Book-Alchemy/internal/platform/apperr"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/constants"
	"github.com/nagrapoonam/Book-Alchemy/internal/platform/respond"
)

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipBuckets holds one token bucket per client IP.
type ipBuckets struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
}

func (b *ipBuckets) allow(ip string, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.buckets[ip]
	if !ok {
		entry = &bucket{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.buckets[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// evictIdle drops buckets not used since before cutoff.
func (b *ipBuckets) evictIdle(cutoff time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ip, entry := range b.buckets {
		if entry.lastSeen.Before(cutoff) {
			delete(b.buckets, ip)
		}
	}
}

// RateLimit gives every client IP a token bucket refilled at rps with the
// given burst. Rejected requests get 429 RATE_LIMITED and a Retry-After
// header. Idle buckets are evicted until ctx is done.
func RateLimit(ctx context.Context, rps float64, burst int) func(http.Handler) http.Handler {
	buckets := &ipBuckets{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				buckets.evictIdle(now.Add(-constants.RateLimitClientTTL))
			case <-ctx.Done():
				return
			}
		}
	}()

	retryAfter := int(math.Ceil(1 / rps))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !buckets.allow(RealIP(request), time.Now()) {
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
				respond.Error(writer, request, apperr.RateLimited(retryAfter))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}

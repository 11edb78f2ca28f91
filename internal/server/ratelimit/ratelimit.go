// Package ratelimit provides per-client rate limiting using the token bucket
// algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket allows a burst of requests up to its capacity, refilling at a
// steady per-second rate.
type TokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token when one is available.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// status reports the remaining tokens and the time at which the bucket is
// full again, without consuming a token.
func (tb *TokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	tb.refill()
	remaining = int(tb.tokens)
	resetTime = tb.lastRefill
	if tb.tokens < float64(tb.capacity) {
		tokensNeeded := float64(tb.capacity) - tb.tokens
		resetTime = tb.lastRefill.Add(time.Duration(tokensNeeded / tb.refillRate * float64(time.Second)))
	}
	return remaining, resetTime
}

// refill credits tokens for the elapsed time. Caller holds the lock.
func (tb *TokenBucket) refill() {
	now := time.Now()
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now
}

// Info describes the rate limit state returned with each decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client.
type Limiter struct {
	limitPerMinute int

	mu         sync.Mutex
	buckets    map[string]*TokenBucket
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter allowing limitPerMinute requests per
// client, with burst capacity equal to the limit. A limit of 0 disables
// limiting. Idle client buckets are evicted in the background until Stop is
// called.
func NewLimiter(limitPerMinute int) *Limiter {
	l := &Limiter{
		limitPerMinute: limitPerMinute,
		buckets:        make(map[string]*TokenBucket),
		lastAccess:     make(map[string]time.Time),
		cleanupStop:    make(chan struct{}),
	}
	if limitPerMinute > 0 {
		l.cleanupTicker = time.NewTicker(5 * time.Minute)
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed, along with header metadata.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if l.limitPerMinute <= 0 {
		return true, Info{}
	}

	bucket := l.bucketFor(clientID)
	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	info := Info{
		Limit:     l.limitPerMinute,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = time.Until(resetTime)
		if info.RetryAfter < time.Second {
			info.RetryAfter = time.Second
		}
	}
	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) bucketFor(clientID string) *TokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = newTokenBucket(l.limitPerMinute, float64(l.limitPerMinute)/60.0)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.evictIdle(10 * time.Minute)
		case <-l.cleanupStop:
			return
		}
	}
}

func (l *Limiter) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for id, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, id)
			delete(l.lastAccess, id)
		}
	}
}

// Package httputil provides HTTP utilities for external API clients.
//
// # Overview
//
// This package provides infrastructure used by the generation and asset
// clients:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/adcanvas/)
// with configurable TTL. This dramatically speeds up repeated operations
// and keeps generation costs down by not re-requesting identical prompts.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	ok, err := cache.Get("gen:prompt-hash", &resp)  // Check cache
//	if !ok {
//	    resp = callGenerationAPI()
//	    cache.Set("gen:prompt-hash", resp)          // Store for later
//	}
//
// Cache keys should be namespaced by client to avoid collisions.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Wrap transient failures in [RetryableError] so the retry loop can tell
// them apart from permanent errors:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return callAPI()
//	})
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/adcanvas/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `adcanvas cache clear` or by deleting
// the cache directory.
package httputil

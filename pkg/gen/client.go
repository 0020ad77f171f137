package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/brandforge/adcanvas/pkg/cache"
	"github.com/brandforge/adcanvas/pkg/errors"
	"github.com/brandforge/adcanvas/pkg/httputil"
	"github.com/brandforge/adcanvas/pkg/observability"
)

const (
	generatePath   = "/v1/generate"
	requestTimeout = 60 * time.Second
)

// Client is an HTTP Service implementation with prompt-level caching.
// Identical prompts against the same document state hit the cache instead
// of the network, which keeps generation costs predictable.
type Client struct {
	baseURL string
	http    *http.Client
	cache   cache.Cache
	keyer   cache.Keyer
}

// NewClient creates a generation client for the service at baseURL.
// A nil c disables caching.
func NewClient(baseURL string, c cache.Cache) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
		cache:   c,
		keyer:   cache.NewDefaultKeyer(),
	}
}

// Generate requests suggestions, retrying transient failures with backoff.
//
// The cache key covers the prompt, document, and revision, so a cached
// response always matches the revision guard the same way a fresh one
// would.
func (c *Client) Generate(ctx context.Context, req Request) (*Response, error) {
	key := c.keyer.GenerationKey(fmt.Sprintf("%s|%d|%s|%s", req.DocumentID, req.Revision, req.FormatID, req.Prompt))

	if data, hit, err := c.cache.Get(ctx, key); err == nil && hit {
		observability.Cache().OnCacheHit(ctx, cache.KeyTypeGeneration)
		var resp Response
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		// Corrupt entry: fall through to the network.
		_ = c.cache.Delete(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, cache.KeyTypeGeneration)
	}

	var resp *Response
	err := httputil.RetryWithBackoff(ctx, func() error {
		var err error
		resp, err = c.post(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := c.cache.Set(ctx, key, data, cache.TTLGeneration); err == nil {
			observability.Cache().OnCacheSet(ctx, cache.KeyTypeGeneration, len(data))
		}
	}
	return resp, nil
}

// post performs one request attempt. Transient failures come back wrapped
// in httputil.RetryableError so the retry loop knows to try again.
func (c *Client) post(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode generation request")
	}

	endpoint := c.baseURL + generatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid generation endpoint")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	host, path := splitEndpoint(endpoint)
	observability.HTTP().OnRequest(ctx, http.MethodPost, host, path)

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodPost, host, path, err)
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "generation request failed")}
	}
	defer httpResp.Body.Close()

	observability.HTTP().OnResponse(ctx, http.MethodPost, host, path, httpResp.StatusCode, time.Since(start))

	switch {
	case httpResp.StatusCode == http.StatusOK:
		// Fall through to decode.
	case httpResp.StatusCode >= 500 || httpResp.StatusCode == http.StatusTooManyRequests:
		return nil, &httputil.RetryableError{
			Err: errors.New(errors.ErrCodeNetwork, "generation service returned %d", httpResp.StatusCode),
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "generation service rejected the request with %d", httpResp.StatusCode)
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "failed to read generation response")}
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "malformed generation response")
	}
	for _, o := range resp.Objects {
		o.ApplyDefaults()
	}
	return &resp, nil
}

func splitEndpoint(endpoint string) (host, path string) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint, ""
	}
	return u.Host, u.Path
}

// Ensure Client implements Service.
var _ Service = (*Client)(nil)

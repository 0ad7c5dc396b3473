package instagram

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"instaosint/pkg/config"
	errs "instaosint/pkg/errors"
	"instaosint/pkg/logger"
	"instaosint/pkg/ratelimit"
	"instaosint/pkg/retry"
)

// Client fetches Instagram pages and media under rate control. Every
// outbound request goes through the pacer first and transient HTTP
// failures are retried a bounded number of times.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	pacer      ratelimit.Limiter
	retryCfg   config.RetryConfig
	logger     logger.Logger
}

// NewClient creates a new client from configuration
func NewClient(cfg *config.Config, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
		},
		headers: map[string]string{
			"User-Agent":      cfg.HTTP.UserAgent,
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
			"Accept-Language": "en-US,en;q=0.5",
			"Cache-Control":   "no-cache",
			"Sec-Fetch-Dest":  "document",
			"Sec-Fetch-Mode":  "navigate",
			"Sec-Fetch-Site":  "none",
		},
		baseURL:  BaseURL,
		pacer:    ratelimit.NewPacer(cfg.RateLimit.MinDelay, cfg.RateLimit.MaxJitter),
		retryCfg: cfg.Retry,
		logger:   log,
	}
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// RequestCount returns the number of outbound requests made so far
func (c *Client) RequestCount() int {
	return c.pacer.RequestCount()
}

// Fetch performs a paced GET request and returns the response body.
// 429 and 5xx responses are retried with their configured cooldowns up
// to the attempt bound; 404 is terminal and never retried.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	backoff := retry.NewCooldownBackoff(c.retryCfg.RateLimitCooldown, c.retryCfg.ServerErrorCooldown)

	return retry.DoWithResult(func() ([]byte, error) {
		return c.doFetch(ctx, url)
	}, &retry.Config{
		MaxAttempts: c.retryCfg.MaxAttempts,
		Backoff:     backoff,
		RetryIf:     retry.DefaultRetryIf,
		Context:     ctx,
		Logger:      c.logger,
	})
}

// doFetch performs a single paced request attempt
func (c *Client) doFetch(ctx context.Context, url string) ([]byte, error) {
	if err := c.pacer.Wait(ctx); err != nil {
		return nil, errs.New(errs.ErrorTypeNetwork, 0, "request cancelled while pacing: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeUnknown, 0, "failed to create request: %v", err)
	}
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"url":     url,
		"request": c.pacer.RequestCount(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": time.Since(start),
		})
		return nil, errs.New(errs.ErrorTypeNetwork, 0, "network error: %v", err)
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("HTTP request completed", map[string]interface{}{
		"url":      url,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	if err := c.checkResponseStatus(resp, url); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.New(errs.ErrorTypeNetwork, resp.StatusCode, "failed to read response body: %v", err)
	}

	return body, nil
}

// checkResponseStatus maps non-200 responses onto the error taxonomy
func (c *Client) checkResponseStatus(resp *http.Response, url string) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		c.logger.WarnWithFields("resource not found", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    url,
		})
		return errs.New(errs.ErrorTypeNotFound, resp.StatusCode, "resource not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		c.logger.WarnWithFields("rate limited by server", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    url,
		})
		return errs.New(errs.ErrorTypeRateLimit, resp.StatusCode, "rate limit exceeded")
	case resp.StatusCode >= 500:
		c.logger.ErrorWithFields("server error", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    url,
		})
		return errs.New(errs.ErrorTypeServerError, resp.StatusCode, "server error")
	default:
		return errs.New(errs.ErrorTypeUnknown, resp.StatusCode, "unexpected status code: %d", resp.StatusCode)
	}
}

// FetchSharedData fetches the canonical profile page for a username and
// extracts its embedded shared-data blob.
func (c *Client) FetchSharedData(ctx context.Context, username string) (*SharedData, error) {
	url := ProfilePageURL(username)

	c.logger.DebugWithFields("fetching profile page", map[string]interface{}{
		"username": username,
		"url":      url,
	})

	body, err := c.Fetch(ctx, url)
	if err != nil {
		c.logger.ErrorWithFields("failed to fetch profile page", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	blob, err := ExtractSharedData(bytes.NewReader(body))
	if err != nil {
		c.logger.WarnWithFields("failed to extract shared data", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	return blob, nil
}

// Download fetches a media URL and returns its bytes
func (c *Client) Download(ctx context.Context, mediaURL string) ([]byte, error) {
	c.logger.DebugWithFields("downloading media", map[string]interface{}{
		"url": mediaURL,
	})

	data, err := c.Fetch(ctx, mediaURL)
	if err != nil {
		c.logger.WarnWithFields("failed to download media", map[string]interface{}{
			"url":   mediaURL,
			"error": err.Error(),
		})
		return nil, err
	}

	c.logger.DebugWithFields("media downloaded", map[string]interface{}{
		"url":  mediaURL,
		"size": len(data),
	})

	return data, nil
}

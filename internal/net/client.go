// Package net owns the outbound HTTP client used to fetch the remote
// word-list resource. A single shared client keeps TLS sessions warm
// across retries.
package net

import (
	"context"
	"fmt"
	"io"
	"sync"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

const ua = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/135.0.0.0 Safari/537.36"

var (
	once    sync.Once
	client  tls_client.HttpClient
	initErr error
)

func shared() (tls_client.HttpClient, error) {
	once.Do(func() {
		client, initErr = tls_client.NewHttpClient(tls_client.NewNoopLogger(),
			tls_client.WithTimeoutSeconds(30),
			tls_client.WithClientProfile(profiles.DefaultClientProfile),
		)
	})
	return client, initErr
}

// Get fetches url and returns the response body.
func Get(ctx context.Context, url string) ([]byte, error) {
	c, err := shared()
	if err != nil {
		return nil, fmt.Errorf("net: client init: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("net: GET %s: unexpected status %d", url, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

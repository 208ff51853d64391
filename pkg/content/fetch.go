package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FetchError reports a failed bundle fetch. Status is zero when the failure
// happened before a response arrived.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch content: %s returned status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch content: %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher reads the content bundle from a single remote endpoint. One read
// per page load, no retry; the client timeout is the only bound.
type Fetcher struct {
	URL    string
	Client *http.Client
}

// NewFetcher returns a Fetcher with a bounded default client.
func NewFetcher(url string) *Fetcher {
	return &Fetcher{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch performs the single non-cached read and decodes the bundle. Any
// non-2xx status or transport failure comes back as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context) (*Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: f.URL, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: f.URL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{URL: f.URL, Status: res.StatusCode}
	}

	var b Bundle
	if err := json.NewDecoder(res.Body).Decode(&b); err != nil {
		return nil, &FetchError{URL: f.URL, Err: err}
	}
	return &b, nil
}

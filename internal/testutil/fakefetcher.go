package testutil

import (
	"context"
	"encoding/json"
	"sync"
)

// FakeFetcher is a canned transport.Fetcher.
// It returns Err when set, otherwise Doc.
type FakeFetcher struct {
	Doc json.RawMessage
	Err error

	mu   sync.Mutex
	urls []string
}

// Fetch implements transport.Fetcher.
func (f *FakeFetcher) Fetch(ctx context.Context, url string) (json.RawMessage, error) {
	f.mu.Lock()
	f.urls = append(f.urls, url)
	f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}
	return f.Doc, nil
}

// URLs returns the URLs fetched so far.
func (f *FakeFetcher) URLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.urls...)
}

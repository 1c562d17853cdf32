// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/pdiddy/find-ref/pkg/types"
)

// Output holds the aggregated records and per-backend warnings.
type Output struct {
	Records       []types.Record
	BackendErrors []string
}

// Run queries all backends and concatenates their records in the fixed
// backend order, preserving each provider's internal result order.
// Backends run concurrently, but results are buffered per backend and
// stitched together only after all have finished, never by arrival time.
// There is no cross-provider deduplication or re-sorting.
//
// Progress notes and warnings are buffered alongside the results and
// written to w in backend order after every fetch has completed; the
// fetch goroutines themselves never touch w.
//
// A backend failure contributes an empty result set and a warning on w;
// it never fails the whole search. The cache, when non-nil, is consulted
// before each fetch and refreshed after it.
func Run(ctx context.Context, q Query, backends []Backend, qc Cache, cfg types.SearchConfig, w io.Writer) Output {
	type fetchResult struct {
		items []json.RawMessage
		notes []string
		err   error
	}

	results := make([]fetchResult, len(backends))
	var wg sync.WaitGroup
	for i, b := range backends {
		wg.Add(1)
		go func(i int, b Backend) {
			defer wg.Done()
			items, notes, err := fetchCached(ctx, q, b, qc, cfg)
			results[i] = fetchResult{items: items, notes: notes, err: err}
		}(i, b)
	}
	wg.Wait()

	var out Output
	for i, b := range backends {
		for _, note := range results[i].notes {
			fmt.Fprintln(w, note)
		}
		if results[i].err != nil {
			out.BackendErrors = append(out.BackendErrors, fmt.Sprintf("%s: %v", b.Name(), results[i].err))
			fmt.Fprintf(w, "warning: %s failed: %v\n", b.Name(), results[i].err)
			continue
		}
		for _, raw := range results[i].items {
			out.Records = append(out.Records, b.Extract(raw))
		}
	}
	return out
}

// fetchCached returns raw items for one backend, reading through the
// cache when one is configured, plus progress notes for the caller to
// emit. A failed cache write is reported as a note but does not discard
// the fetched items.
func fetchCached(ctx context.Context, q Query, b Backend, qc Cache, cfg types.SearchConfig) ([]json.RawMessage, []string, error) {
	key := CacheKey(q, b.Source())
	if qc != nil {
		if items, ok := qc.Get(ctx, key); ok {
			return items, []string{fmt.Sprintf("cached    %s", b.Name())}, nil
		}
	}

	notes := []string{fmt.Sprintf("searching %s", b.Name())}
	items, err := b.Fetch(ctx, q, cfg)
	if err != nil {
		return nil, notes, err
	}

	if qc != nil {
		if err := qc.Put(ctx, key, items); err != nil {
			notes = append(notes, fmt.Sprintf("warning: caching %s results: %v", b.Name(), err))
		}
	}
	return items, notes, nil
}

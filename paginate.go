package main

import (
	"context"
	"fmt"

	"github.com/samgozman/fin-scraper/economist"
	"github.com/samgozman/fin-scraper/pkg/errlvl"
)

// releaseFetcher fetches a single page of release observations.
type releaseFetcher func(ctx context.Context, q economist.ReleaseQuery) (*economist.ReleasePage, error)

// releasePages is the result of walking a release.
type releasePages struct {
	Pages []*economist.ReleasePage
	// Next is the cursor to resume from, empty when the last page was reached.
	Next economist.Cursor
}

// collectReleasePages follows the release cursors starting at q.Cursor. Each cursor is sent back exactly
// as the previous page returned it. It stops at the last page, after maxPages pages (0 means no limit)
// or when the service returns a cursor it already returned before.
func collectReleasePages(ctx context.Context, fetch releaseFetcher, q economist.ReleaseQuery, maxPages int) (*releasePages, error) {
	res := &releasePages{}
	seen := map[economist.Cursor]struct{}{}
	if q.Cursor != "" {
		seen[q.Cursor] = struct{}{}
	}

	for {
		page, err := fetch(ctx, q)
		if err != nil {
			return res, err
		}
		res.Pages = append(res.Pages, page)

		next, ok := page.Continuation()
		if !ok {
			res.Next = ""
			return res, nil
		}
		res.Next = next

		if _, dup := seen[next]; dup {
			return res, errlvl.Wrap(fmt.Errorf("release %d returned cursor %q twice", q.ReleaseID, next), errlvl.WARN)
		}
		if maxPages > 0 && len(res.Pages) >= maxPages {
			return res, nil
		}

		seen[next] = struct{}{}
		q.Cursor = next
	}
}

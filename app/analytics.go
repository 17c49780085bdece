package app

import (
	"context"
	"net/url"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/analytics"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

const (
	beaconTimeout = 5 * time.Second
	uploadTimeout = 60 * time.Second
)

var summaryShape = schema.For[analytics.Summary](summaryContract)

// TrackView reports a page view. The beacon is sent with keepalive so it
// completes even when the caller has already moved on.
func (c *Client) TrackView(ctx context.Context, v analytics.View) result.Envelope[struct{}] {
	return fetch.Send(ctx, c.ex,
		request.Post(endpoint("analytics", "views"),
			request.WithJSON(v),
			request.WithKeepalive(),
			request.WithTimeout(beaconTimeout),
			request.WithCache(request.CacheNoStore),
			request.Named("analytics.view")))
}

// AnalyticsSummary returns traffic over r. An unsupported range falls back
// to the last week.
func (c *Client) AnalyticsSummary(ctx context.Context, r analytics.Range) (*analytics.Summary, error) {
	if !r.Valid() {
		r = analytics.RangeWeek
	}
	return fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("analytics", "summary"),
			request.WithQuery(url.Values{"range": {string(r)}}),
			request.WithCache(request.CacheNoStore),
			request.Named("analytics.summary")),
		summaryShape)
}

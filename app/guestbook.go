package app

import (
	"context"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

var (
	guestbookPageShape = schema.For[page.Page[guestbook.Entry]](pageOf(entryContract))
	entryShape         = schema.For[guestbook.Entry](entryContract)
)

// ListGuestbook returns one page of entries, newest first.
func (c *Client) ListGuestbook(ctx context.Context, number, size int) (*page.Page[guestbook.Entry], error) {
	q := post.Query{Page: number, Size: size}
	return fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("guestbook"), request.WithQuery(q.Values()), request.Named("guestbook.list")),
		guestbookPageShape)
}

// CreateGuestbookEntry signs the guestbook.
func (c *Client) CreateGuestbookEntry(ctx context.Context, d guestbook.Draft) result.Envelope[guestbook.Entry] {
	body := request.NewPayload().
		Set("content", d.Content).
		SetIfPresent("nickname", d.Nickname).
		SetIfPresent("guestPassword", d.GuestPassword)

	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("guestbook"), request.WithJSON(body), request.Named("guestbook.create")),
		entryShape)
}

// DeleteGuestbookEntry removes an entry, authorized like DeleteComment.
func (c *Client) DeleteGuestbookEntry(ctx context.Context, id, guestPassword string) result.Envelope[struct{}] {
	body := request.NewPayload().SetIfPresent("guestPassword", guestPassword)

	return fetch.Send(ctx, c.ex,
		request.Post(endpoint("guestbook", id, "delete"), request.WithJSON(body), request.Named("guestbook.delete")))
}

package app

import (
	"context"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

var (
	threadShape  = schema.For[[]comment.Comment](schema.List(commentContract))
	commentShape = schema.For[comment.Comment](commentContract)
)

// ListComments returns the comment thread of a post.
func (c *Client) ListComments(ctx context.Context, postID string) ([]comment.Comment, error) {
	thread, err := fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("posts", postID, "comments"), request.WithCache(request.CacheNoCache), request.Named("comments.list")),
		threadShape)
	if err != nil || thread == nil {
		return nil, err
	}
	return *thread, nil
}

// CreateComment posts a comment or a reply. The guest fields are sent only
// when the visitor filled them in.
func (c *Client) CreateComment(ctx context.Context, d comment.Draft) result.Envelope[comment.Comment] {
	body := request.NewPayload().
		Set("content", d.Content).
		SetIfPresent("parentId", d.ParentID).
		SetIfPresent("nickname", d.Nickname).
		SetIfPresent("guestPassword", d.GuestPassword)

	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("posts", d.PostID, "comments"), request.WithJSON(body), request.Named("comments.create")),
		commentShape)
}

// UpdateComment replaces a comment's content.
func (c *Client) UpdateComment(ctx context.Context, id string, e comment.Edit) result.Envelope[comment.Comment] {
	body := request.NewPayload().
		Set("content", e.Content).
		SetIfPresent("guestPassword", e.GuestPassword)

	return fetch.Execute(ctx, c.ex,
		request.Patch(endpoint("comments", id), request.WithJSON(body), request.Named("comments.update")),
		commentShape)
}

// DeleteComment deletes a comment. Guests authorize with the password they
// commented with; signed-in authors pass "".
func (c *Client) DeleteComment(ctx context.Context, id, guestPassword string) result.Envelope[struct{}] {
	body := request.NewPayload().SetIfPresent("guestPassword", guestPassword)

	return fetch.Send(ctx, c.ex,
		request.Post(endpoint("comments", id, "delete"), request.WithJSON(body), request.Named("comments.delete")))
}

package app

import (
	"context"
	"strconv"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

var (
	postPageShape   = schema.For[page.Page[post.Summary]](pageOf(postSummaryContract))
	postDetailShape = schema.For[post.Detail](postDetailContract)
	likeShape       = schema.For[post.LikeState](likeContract)
)

// ListPosts returns one page of post summaries.
func (c *Client) ListPosts(ctx context.Context, q post.Query) (*page.Page[post.Summary], error) {
	return fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("posts"), request.WithQuery(q.Values()), request.Named("posts.list")),
		postPageShape)
}

// GetPost returns the post published under slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*post.Detail, error) {
	return fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("posts", slug), request.WithCache(request.CacheNoCache), request.Named("posts.get")),
		postDetailShape)
}

// CreatePost publishes a draft.
func (c *Client) CreatePost(ctx context.Context, d post.Draft) result.Envelope[post.Detail] {
	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("posts"), draftBody(d), request.Named("posts.create")),
		postDetailShape)
}

// UpdatePost replaces a post's content.
func (c *Client) UpdatePost(ctx context.Context, id string, d post.Draft) result.Envelope[post.Detail] {
	return fetch.Execute(ctx, c.ex,
		request.Put(endpoint("posts", id), draftBody(d), request.Named("posts.update")),
		postDetailShape)
}

// DeletePost removes a post.
func (c *Client) DeletePost(ctx context.Context, id string) result.Envelope[struct{}] {
	return fetch.Send(ctx, c.ex,
		request.Delete(endpoint("posts", id), request.Named("posts.delete")))
}

// TogglePostLike likes or unlikes a post for the current visitor.
func (c *Client) TogglePostLike(ctx context.Context, id string) result.Envelope[post.LikeState] {
	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("posts", id, "like"), request.Named("posts.like")),
		likeShape)
}

// draftBody is JSON unless the draft carries a thumbnail, which forces
// multipart.
func draftBody(d post.Draft) request.Option {
	if d.Thumbnail == nil {
		return request.WithJSON(request.NewPayload().
			Set("title", d.Title).
			SetIfPresent("slug", d.Slug).
			SetIfPresent("categoryId", d.CategoryID).
			Set("content", d.Content).
			Set("tags", tagsOrEmpty(d.Tags)).
			Set("published", d.Published))
	}

	m := request.Multipart{}.
		AddField("title", d.Title).
		AddFieldIfPresent("slug", d.Slug).
		AddFieldIfPresent("categoryId", d.CategoryID).
		AddField("content", d.Content).
		AddField("published", strconv.FormatBool(d.Published))
	for _, tag := range d.Tags {
		m = m.AddField("tags", tag)
	}
	thumb := *d.Thumbnail
	thumb.Field = "thumbnail"
	return request.WithMultipart(m.AddFile(thumb))
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

package app

import (
	"context"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

var (
	categoryTreeShape = schema.For[[]category.Category](schema.List(categoryContract))
	categoryShape     = schema.For[category.Category](categoryContract)
)

// ListCategories returns the category tree.
func (c *Client) ListCategories(ctx context.Context) result.Envelope[[]category.Category] {
	return fetch.Execute(ctx, c.ex,
		request.Get(endpoint("categories"), request.Named("categories.list")),
		categoryTreeShape)
}

// CreateCategory adds a category under in.ParentID, or at the root.
func (c *Client) CreateCategory(ctx context.Context, in category.Create) result.Envelope[category.Category] {
	body := request.NewPayload().
		Set("name", in.Name).
		Set("type", in.Type).
		SetIfPresent("parentId", in.ParentID).
		SetIfPresent("link", in.Link)

	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("categories"), request.WithJSON(body), request.Named("categories.create")),
		categoryShape)
}

// UpdateCategory renames a category or changes its link.
func (c *Client) UpdateCategory(ctx context.Context, id string, in category.Update) result.Envelope[category.Category] {
	body := request.NewPayload().
		SetIfPresent("name", in.Name).
		SetIfPresent("link", in.Link)

	return fetch.Execute(ctx, c.ex,
		request.Patch(endpoint("categories", id), request.WithJSON(body), request.Named("categories.update")),
		categoryShape)
}

// DeleteCategory removes a category and its subtree.
func (c *Client) DeleteCategory(ctx context.Context, id string) result.Envelope[struct{}] {
	return fetch.Send(ctx, c.ex,
		request.Delete(endpoint("categories", id), request.Named("categories.delete")))
}

// MoveCategory reparents or reorders a category and returns the new tree.
func (c *Client) MoveCategory(ctx context.Context, m category.Move) result.Envelope[[]category.Category] {
	return fetch.Execute(ctx, c.ex,
		request.Patch(endpoint("categories", "move"), request.WithJSON(m), request.Named("categories.move")),
		categoryTreeShape)
}

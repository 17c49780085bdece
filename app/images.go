package app

import (
	"context"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/image"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

var uploadShape = schema.For[image.Upload](uploadContract)

// UploadImage stores an image for use in post content.
func (c *Client) UploadImage(ctx context.Context, f request.File) result.Envelope[image.Upload] {
	f.Field = "file"
	return fetch.Execute(ctx, c.ex,
		request.Post(endpoint("images"),
			request.WithMultipart(request.Multipart{}.AddFile(f)),
			request.WithTimeout(uploadTimeout),
			request.Named("images.upload")),
		uploadShape)
}

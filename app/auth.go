package app

import (
	"context"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

var userShape = schema.For[user.User](userContract)

// Me returns the signed-in user. Unauthorized and forbidden mean "no
// session" and return (nil, nil); any other failure is an error.
func (c *Client) Me(ctx context.Context) (*user.User, error) {
	u, err := fetch.Fetch(ctx, c.ex,
		request.Get(endpoint("auth", "me"), request.WithCache(request.CacheNoStore), request.Named("auth.me")),
		userShape)
	switch {
	case fetch.IsCode(err, result.CodeUnauthorized), fetch.IsCode(err, result.CodeForbidden):
		c.logger.Debug().Str("code", string(fetch.CodeOf(err))).Msg("no session")
		return nil, nil
	case err != nil:
		return nil, err
	}
	return u, nil
}

// Package post provides blog post types and the list query.
package post

import (
	"net/url"
	"strconv"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
)

// Sort orders a post list.
type Sort string

const (
	SortLatest  Sort = "LATEST"
	SortOldest  Sort = "OLDEST"
	SortPopular Sort = "POPULAR"
)

// Summary is a list row.
type Summary struct {
	ID           string    `json:"id" validate:"required"`
	Slug         string    `json:"slug" validate:"required"`
	Title        string    `json:"title" validate:"required"`
	Excerpt      string    `json:"excerpt"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty" validate:"omitempty,url"`
	CategoryID   string    `json:"categoryId"`
	Tags         []string  `json:"tags"`
	ViewCount    int64     `json:"viewCount" validate:"gte=0"`
	LikeCount    int64     `json:"likeCount" validate:"gte=0"`
	CommentCount int64     `json:"commentCount" validate:"gte=0"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Detail is a full post as rendered on its page.
type Detail struct {
	Summary
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
	Liked     bool      `json:"liked"`
}

// LikeState is the result of toggling a like.
type LikeState struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount" validate:"gte=0"`
}

// Query filters and pages a post list. Zero fields are not sent.
type Query struct {
	Page     int
	Size     int
	Category string
	Tag      string
	Keyword  string
	Sort     Sort
}

// Values encodes q as URL query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	setIfPresent(v, "categoryId", q.Category)
	setIfPresent(v, "tag", q.Tag)
	setIfPresent(v, "keyword", q.Keyword)
	setIfPresent(v, "sort", string(q.Sort))
	return v
}

func setIfPresent(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// Draft is the content of a create or update request. A nil Thumbnail
// leaves the current one in place.
type Draft struct {
	Title      string
	Slug       string
	CategoryID string
	Content    string
	Tags       []string
	Published  bool
	Thumbnail  *request.File
}

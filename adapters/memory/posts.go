package memory

import (
	"sort"
	"strings"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
)

// Posts lists published posts matching q.
func (s *Content) Posts(q post.Query) page.Page[post.Summary] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keyword := strings.ToLower(q.Keyword)
	var rows []post.Summary
	for _, p := range s.posts {
		switch {
		case !p.Published:
			continue
		case q.Category != "" && p.CategoryID != q.Category:
			continue
		case q.Tag != "" && !contains(p.Tags, q.Tag):
			continue
		case keyword != "" && !strings.Contains(strings.ToLower(p.Title+" "+p.Content), keyword):
			continue
		}
		rows = append(rows, p.Summary)
	}

	sort.Slice(rows, func(i, j int) bool {
		switch q.Sort {
		case post.SortOldest:
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		case post.SortPopular:
			if rows[i].LikeCount != rows[j].LikeCount {
				return rows[i].LikeCount > rows[j].LikeCount
			}
			return rows[i].ViewCount > rows[j].ViewCount
		default:
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
	})
	return page.Of(rows, q.Page, q.Size)
}

// Post returns the post at slug and counts a view. visitor decides Liked.
func (s *Content) Post(slug, visitor string) (post.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[s.slugs[slug]]
	if !ok {
		return post.Detail{}, ErrNotFound
	}
	p.ViewCount++
	out := *p
	out.Tags = append([]string{}, p.Tags...)
	out.Liked = s.likes[p.ID][visitor]
	out.CommentCount = int64(s.countComments(p.ID))
	return out, nil
}

// CreatePost stores a draft. thumbnailURL may be empty.
func (s *Content) CreatePost(d post.Draft, thumbnailURL string) (post.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slug := d.Slug
	if slug == "" {
		slug = slugify(d.Title)
	}
	if _, taken := s.slugs[slug]; taken {
		return post.Detail{}, ErrConflict
	}

	now := s.clock.Now()
	p := &post.Detail{
		Summary: post.Summary{
			ID:           s.ids.New(),
			Slug:         slug,
			Title:        d.Title,
			Excerpt:      excerpt(d.Content),
			ThumbnailURL: thumbnailURL,
			CategoryID:   d.CategoryID,
			Tags:         append([]string{}, d.Tags...),
			Published:    d.Published,
			CreatedAt:    now,
		},
		Content:   d.Content,
		UpdatedAt: now,
	}
	s.posts[p.ID] = p
	s.slugs[slug] = p.ID
	return *p, nil
}

// UpdatePost replaces a post's content. An empty thumbnailURL keeps the
// current thumbnail.
func (s *Content) UpdatePost(id string, d post.Draft, thumbnailURL string) (post.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return post.Detail{}, ErrNotFound
	}
	if d.Slug != "" && d.Slug != p.Slug {
		if _, taken := s.slugs[d.Slug]; taken {
			return post.Detail{}, ErrConflict
		}
		delete(s.slugs, p.Slug)
		p.Slug = d.Slug
		s.slugs[p.Slug] = p.ID
	}
	p.Title = d.Title
	p.Content = d.Content
	p.Excerpt = excerpt(d.Content)
	p.CategoryID = d.CategoryID
	p.Tags = append([]string{}, d.Tags...)
	p.Published = d.Published
	if thumbnailURL != "" {
		p.ThumbnailURL = thumbnailURL
	}
	p.UpdatedAt = s.clock.Now()
	return *p, nil
}

// DeletePost removes a post with its comments and likes.
func (s *Content) DeletePost(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.posts, id)
	delete(s.slugs, p.Slug)
	delete(s.likes, id)

	kept := s.thread[:0]
	for _, cid := range s.thread {
		if s.comments[cid].PostID == id {
			delete(s.comments, cid)
			continue
		}
		kept = append(kept, cid)
	}
	s.thread = kept
	return nil
}

// ToggleLike flips visitor's like on a post.
func (s *Content) ToggleLike(id, visitor string) (post.LikeState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		return post.LikeState{}, ErrNotFound
	}
	if s.likes[id] == nil {
		s.likes[id] = make(map[string]bool)
	}
	liked := !s.likes[id][visitor]
	if liked {
		s.likes[id][visitor] = true
		p.LikeCount++
	} else {
		delete(s.likes[id], visitor)
		p.LikeCount--
	}
	return post.LikeState{Liked: liked, LikeCount: p.LikeCount}, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func slugify(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	return strings.Join(fields, "-")
}

func excerpt(content string) string {
	r := []rune(strings.TrimSpace(content))
	if len(r) > 120 {
		return string(r[:120]) + "…"
	}
	return string(r)
}

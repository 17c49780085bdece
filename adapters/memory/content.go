package memory

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/analytics"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

// Store errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrWrongPassword = errors.New("wrong password")
	ErrNotAuthor     = errors.New("not the author")
)

// Content is an in-memory content store: categories, posts, comments,
// guestbook entries, page views, uploaded images and sessions.
type Content struct {
	mu sync.RWMutex

	ids    ports.IDGenerator
	clock  ports.Clock
	hasher ports.Hasher

	categories map[string]*categoryNode
	posts      map[string]*post.Detail
	slugs      map[string]string
	likes      map[string]map[string]bool
	comments   map[string]*storedComment
	thread     []string
	entries    []*storedEntry
	views      []timedView
	images     map[string]Image
	sessions   map[string]user.User
}

type storedComment struct {
	comment.Comment
	password []byte
}

type storedEntry struct {
	guestbook.Entry
	password []byte
}

type timedView struct {
	analytics.View
	at time.Time
}

// Image is an uploaded file.
type Image struct {
	ContentType string
	Content     []byte
}

// NewContent creates an empty store.
func NewContent(ids ports.IDGenerator, clock ports.Clock, hasher ports.Hasher) *Content {
	return &Content{
		ids:        ids,
		clock:      clock,
		hasher:     hasher,
		categories: make(map[string]*categoryNode),
		posts:      make(map[string]*post.Detail),
		slugs:      make(map[string]string),
		likes:      make(map[string]map[string]bool),
		comments:   make(map[string]*storedComment),
		images:     make(map[string]Image),
		sessions:   make(map[string]user.User),
	}
}

// AddSession makes token a session cookie value for u.
func (s *Content) AddSession(token string, u user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = u
}

// Session returns the user behind token.
func (s *Content) Session(token string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.sessions[token]
	return u, ok
}

// SaveImage stores an upload and returns its ID.
func (s *Content) SaveImage(img Image) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.ids.New()
	s.images[id] = img
	return id
}

// Image returns an upload by ID.
func (s *Content) Image(id string) (Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[id]
	return img, ok
}

// RecordView stores a page view at the current time.
func (s *Content) RecordView(v analytics.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views = append(s.views, timedView{View: v, at: s.clock.Now()})
}

// Summary aggregates the views recorded within r, busiest paths first.
// Visitors are approximated by distinct referrers.
func (s *Content) Summary(r analytics.Range) analytics.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since := s.clock.Now().Add(-rangeDuration(r))
	counts := map[string]int64{}
	referrers := map[string]struct{}{}
	var total int64
	for _, v := range s.views {
		if v.at.Before(since) {
			continue
		}
		total++
		counts[v.Path]++
		referrers[v.Referrer] = struct{}{}
	}

	top := make([]analytics.PathCount, 0, len(counts))
	for p, n := range counts {
		top = append(top, analytics.PathCount{Path: p, Views: n})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Views != top[j].Views {
			return top[i].Views > top[j].Views
		}
		return top[i].Path < top[j].Path
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return analytics.Summary{
		Range:     r,
		PageViews: total,
		Visitors:  int64(len(referrers)),
		TopPaths:  top,
	}
}

func rangeDuration(r analytics.Range) time.Duration {
	switch r {
	case analytics.RangeDay:
		return 24 * time.Hour
	case analytics.RangeMonth:
		return 30 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// authorize checks whoever deletes or edits an item: the guest password for
// guest items, the session user for member items. Admins may do anything.
func (s *Content) authorize(author user.Author, hash []byte, password string, actor *user.User) error {
	if actor.IsAdmin() {
		return nil
	}
	if author.Guest {
		if !s.hasher.Compare(hash, password) {
			return ErrWrongPassword
		}
		return nil
	}
	if actor == nil || actor.ID != author.ID {
		return ErrNotAuthor
	}
	return nil
}

// authorOf returns the author record for a new item. A nil actor is a guest.
func (s *Content) authorOf(actor *user.User, nickname, password string) (user.Author, []byte, error) {
	if actor != nil {
		return user.Author{ID: actor.ID, Nickname: actor.Nickname, AvatarURL: actor.AvatarURL}, nil, nil
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return user.Author{}, nil, err
	}
	return user.Author{Nickname: nickname, Guest: true}, hash, nil
}

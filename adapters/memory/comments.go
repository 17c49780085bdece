package memory

import (
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

// Comments returns the thread of a post, oldest first with nested replies.
func (s *Content) Comments(postID string) ([]comment.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.posts[postID]; !ok {
		return nil, ErrNotFound
	}
	return s.replies(postID, ""), nil
}

func (s *Content) replies(postID, parentID string) []comment.Comment {
	out := []comment.Comment{}
	for _, id := range s.thread {
		c := s.comments[id]
		if c.PostID != postID || c.ParentID != parentID {
			continue
		}
		view := c.Comment
		view.Replies = s.replies(postID, c.ID)
		out = append(out, view)
	}
	return out
}

func (s *Content) countComments(postID string) int {
	n := 0
	for _, id := range s.thread {
		if c := s.comments[id]; c.PostID == postID && !c.Deleted {
			n++
		}
	}
	return n
}

// CreateComment stores a comment by actor, or by a guest when actor is nil.
func (s *Content) CreateComment(d comment.Draft, actor *user.User) (comment.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[d.PostID]; !ok {
		return comment.Comment{}, ErrNotFound
	}
	if d.ParentID != "" {
		parent, ok := s.comments[d.ParentID]
		if !ok || parent.PostID != d.PostID {
			return comment.Comment{}, ErrNotFound
		}
	}
	author, hash, err := s.authorOf(actor, d.Nickname, d.GuestPassword)
	if err != nil {
		return comment.Comment{}, err
	}

	c := &storedComment{
		Comment: comment.Comment{
			ID:        s.ids.New(),
			PostID:    d.PostID,
			ParentID:  d.ParentID,
			Author:    author,
			Content:   d.Content,
			CreatedAt: s.clock.Now(),
			Replies:   []comment.Comment{},
		},
		password: hash,
	}
	s.comments[c.ID] = c
	s.thread = append(s.thread, c.ID)
	return c.Comment, nil
}

// UpdateComment replaces the content of a comment.
func (s *Content) UpdateComment(id string, e comment.Edit, actor *user.User) (comment.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok || c.Deleted {
		return comment.Comment{}, ErrNotFound
	}
	if err := s.authorize(c.Author, c.password, e.GuestPassword, actor); err != nil {
		return comment.Comment{}, err
	}
	c.Content = e.Content
	out := c.Comment
	out.Replies = s.replies(c.PostID, c.ID)
	return out, nil
}

// DeleteComment deletes a comment. A comment with replies is kept as a
// tombstone so the thread stays intact.
func (s *Content) DeleteComment(id, password string, actor *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok || c.Deleted {
		return ErrNotFound
	}
	if err := s.authorize(c.Author, c.password, password, actor); err != nil {
		return err
	}

	if len(s.replies(c.PostID, c.ID)) > 0 {
		c.Deleted = true
		c.Content = ""
		return nil
	}
	delete(s.comments, id)
	for i, cid := range s.thread {
		if cid == id {
			s.thread = append(s.thread[:i], s.thread[i+1:]...)
			break
		}
	}
	return nil
}

// Guestbook lists entries newest first.
func (s *Content) Guestbook(number, size int) page.Page[guestbook.Entry] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make([]guestbook.Entry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		rows = append(rows, s.entries[i].Entry)
	}
	return page.Of(rows, number, size)
}

// CreateEntry signs the guestbook as actor, or as a guest when actor is nil.
func (s *Content) CreateEntry(d guestbook.Draft, actor *user.User) (guestbook.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, hash, err := s.authorOf(actor, d.Nickname, d.GuestPassword)
	if err != nil {
		return guestbook.Entry{}, err
	}
	e := &storedEntry{
		Entry: guestbook.Entry{
			ID:        s.ids.New(),
			Author:    author,
			Content:   d.Content,
			CreatedAt: s.clock.Now(),
		},
		password: hash,
	}
	s.entries = append(s.entries, e)
	return e.Entry, nil
}

// DeleteEntry removes a guestbook entry.
func (s *Content) DeleteEntry(id, password string, actor *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}
		if err := s.authorize(e.Author, e.password, password, actor); err != nil {
			return err
		}
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
		return nil
	}
	return ErrNotFound
}

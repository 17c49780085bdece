// Package comment provides post comments. Signed-in users comment under
// their account; guests pick a nickname and a password that later
// authorizes edits and deletion.
package comment

import (
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

// Comment is one node of a post's comment thread.
type Comment struct {
	ID        string      `json:"id" validate:"required"`
	PostID    string      `json:"postId" validate:"required"`
	ParentID  string      `json:"parentId,omitempty"`
	Author    user.Author `json:"author"`
	Content   string      `json:"content"`
	Deleted   bool        `json:"deleted"`
	CreatedAt time.Time   `json:"createdAt"`
	Replies   []Comment   `json:"replies" validate:"dive"`
}

// Draft is a new comment. Nickname and GuestPassword are sent only when set.
type Draft struct {
	PostID        string
	ParentID      string
	Content       string
	Nickname      string
	GuestPassword string
}

// Edit replaces a comment's content.
type Edit struct {
	Content       string
	GuestPassword string
}

// Count returns the number of comments in thread, replies included.
func Count(thread []Comment) int {
	n := 0
	for _, c := range thread {
		n += 1 + Count(c.Replies)
	}
	return n
}

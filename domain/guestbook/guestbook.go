// Package guestbook provides guestbook entries.
package guestbook

import (
	"time"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

// Entry is one signed message.
type Entry struct {
	ID        string      `json:"id" validate:"required"`
	Author    user.Author `json:"author"`
	Content   string      `json:"content" validate:"required"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Draft is a new entry. Guests must give Nickname and GuestPassword.
type Draft struct {
	Content       string
	Nickname      string
	GuestPassword string
}

package devapi

import (
	"fmt"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

// Seed session tokens.
const (
	AdminToken  = "dev-admin"
	MemberToken = "dev-member"
)

// Seeded accounts.
var (
	Admin  = user.User{ID: "admin", Nickname: "DevNathan", Role: user.RoleAdmin}
	Member = user.User{ID: "member", Nickname: "reader", Role: user.RoleUser}
)

// Seed fills store with a small site: two sessions, a category tree, a few
// published posts and a guest comment whose password is "1234".
func Seed(store *memory.Content) error {
	store.AddSession(AdminToken, Admin)
	store.AddSession(MemberToken, Member)

	dev, err := store.CreateCategory(category.Create{Name: "Development", Type: category.TypeFolder})
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	goCat, err := store.CreateCategory(category.Create{Name: "Go", Type: category.TypeFolder, ParentID: dev.ID})
	if err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if _, err := store.CreateCategory(category.Create{Name: "GitHub", Type: category.TypeLink, Link: "https://github.com/DevNathan"}); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	drafts := []post.Draft{
		{Title: "Hello World", Content: "첫 번째 글입니다.", Tags: []string{"intro"}, CategoryID: dev.ID, Published: true},
		{Title: "Typed Results", Content: "모든 요청은 결과 봉투를 돌려줍니다.", Tags: []string{"go", "api"}, CategoryID: goCat.ID, Published: true},
		{Title: "Unpublished", Content: "작성 중", CategoryID: goCat.ID},
	}
	var first post.Detail
	for i, d := range drafts {
		p, err := store.CreatePost(d, "")
		if err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		if i == 0 {
			first = p
		}
	}

	if _, err := store.CreateComment(comment.Draft{
		PostID:        first.ID,
		Content:       "잘 읽었습니다!",
		Nickname:      "손님",
		GuestPassword: "1234",
	}, nil); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	return nil
}

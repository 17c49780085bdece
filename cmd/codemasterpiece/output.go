package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/formatter"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/guestbook"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/user"
)

const timeLayout = "2006-01-02 15:04"

var (
	outputFormat string
	noHeader     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		fmt.Sprintf("output format (%s)", strings.Join(formatter.List(), ", ")))
	rootCmd.PersistentFlags().BoolVar(&noHeader, "no-header", false, "omit table headers")
}

// render writes v in the selected output format. Table output needs a
// Tabular view; other formats write the view's underlying value.
func render(cmd *cobra.Command, view formatter.Tabular, value any) error {
	f, err := formatter.Get(outputFormat)
	if err != nil {
		return err
	}
	var v any = view
	if f.Name() != "table" {
		v = value
	}
	return f.Format(cmd.OutOrStdout(), v, formatter.FormatOptions{NoHeader: noHeader})
}

type categoryTree []category.Category

func (t categoryTree) Table() formatter.Table {
	out := formatter.Table{Headers: []string{"NAME", "TYPE", "ID"}, Empty: "No categories found."}
	category.Walk(t, func(c category.Category, depth int) {
		name := strings.Repeat("  ", depth) + c.Name
		if c.Type == category.TypeLink {
			name += " -> " + c.Link
		}
		out.Rows = append(out.Rows, []string{name, string(c.Type), c.ID})
	})
	return out
}

type postPage page.Page[post.Summary]

func (p postPage) Table() formatter.Table {
	out := formatter.Table{
		Headers: []string{"SLUG", "TITLE", "VIEWS", "LIKES", "COMMENTS", "CREATED"},
		Empty:   "No posts found.",
	}
	for _, s := range p.Content {
		out.Rows = append(out.Rows, []string{
			s.Slug, s.Title,
			strconv.FormatInt(s.ViewCount, 10),
			strconv.FormatInt(s.LikeCount, 10),
			strconv.FormatInt(s.CommentCount, 10),
			s.CreatedAt.Format("2006-01-02"),
		})
	}
	if len(p.Content) > 0 {
		out.Footer = fmt.Sprintf("Page %d of %d (%d posts)", p.Number+1, max(p.TotalPages, 1), p.TotalElements)
	}
	return out
}

type postDetail post.Detail

func (d postDetail) Table() formatter.Table {
	out := formatter.Table{Rows: [][]string{
		{"Title:", d.Title},
		{"Slug:", d.Slug},
		{"ID:", d.ID},
		{"Category:", d.CategoryID},
	}}
	if len(d.Tags) > 0 {
		out.Rows = append(out.Rows, []string{"Tags:", strings.Join(d.Tags, ", ")})
	}
	out.Rows = append(out.Rows,
		[]string{"Views:", strconv.FormatInt(d.ViewCount, 10)},
		[]string{"Likes:", strconv.FormatInt(d.LikeCount, 10)},
		[]string{"Comments:", strconv.FormatInt(d.CommentCount, 10)},
		[]string{"Created:", d.CreatedAt.Format(timeLayout)},
	)
	out.Footer = d.Content
	return out
}

type thread []comment.Comment

func (th thread) Table() formatter.Table {
	out := formatter.Table{Headers: []string{"ID", "AUTHOR", "CREATED", "CONTENT"}, Empty: "No comments yet."}
	var walk func([]comment.Comment, int)
	walk = func(cs []comment.Comment, depth int) {
		for _, c := range cs {
			author := c.Author.Nickname
			if c.Author.Guest {
				author += " (guest)"
			}
			body := c.Content
			if c.Deleted {
				body = "(deleted)"
			}
			out.Rows = append(out.Rows, []string{c.ID, author, c.CreatedAt.Format(timeLayout), strings.Repeat("  ", depth) + body})
			walk(c.Replies, depth+1)
		}
	}
	walk(th, 0)
	if len(th) > 0 {
		out.Footer = fmt.Sprintf("%d comments", comment.Count(th))
	}
	return out
}

type entryPage page.Page[guestbook.Entry]

func (p entryPage) Table() formatter.Table {
	out := formatter.Table{Headers: []string{"ID", "AUTHOR", "CREATED", "CONTENT"}, Empty: "No entries yet."}
	for _, e := range p.Content {
		out.Rows = append(out.Rows, []string{e.ID, e.Author.Nickname, e.CreatedAt.Format(timeLayout), e.Content})
	}
	return out
}

type session struct {
	u *user.User
}

func (s session) Table() formatter.Table {
	if s.u == nil {
		return formatter.Table{Empty: "Not signed in."}
	}
	return formatter.Table{
		Headers: []string{"ID", "NICKNAME", "ROLE"},
		Rows:    [][]string{{s.u.ID, s.u.Nickname, string(s.u.Role)}},
	}
}

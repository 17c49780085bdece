package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/page"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse the category tree",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the category tree",
	Args:  cobra.NoArgs,
	RunE:  runCategoriesList,
}

var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "Browse posts",
}

var postsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	Args:  cobra.NoArgs,
	RunE:  runPostsList,
}

var postsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	RunE:  runPostsGet,
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the account behind the configured session",
	Args:  cobra.NoArgs,
	RunE:  runMe,
}

var postsQuery post.Query

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
	rootCmd.AddCommand(categoriesCmd)

	postsListCmd.Flags().IntVar(&postsQuery.Page, "page", 0, "zero-based page number")
	postsListCmd.Flags().IntVar(&postsQuery.Size, "size", 0, "page size (server default when 0)")
	postsListCmd.Flags().StringVar(&postsQuery.Category, "category", "", "category ID")
	postsListCmd.Flags().StringVar(&postsQuery.Tag, "tag", "", "tag")
	postsListCmd.Flags().StringVar(&postsQuery.Keyword, "keyword", "", "search keyword")
	postsListCmd.Flags().StringVar((*string)(&postsQuery.Sort), "sort", "", "LATEST, OLDEST or POPULAR")
	postsCmd.AddCommand(postsListCmd, postsGetCmd)
	rootCmd.AddCommand(postsCmd)

	rootCmd.AddCommand(meCmd)
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	tree, err := fetch.Unwrap(app.Client().ListCategories(app.Context(cmd.Context())))
	if err != nil {
		return fmt.Errorf("failed to list categories: %w", err)
	}
	var view categoryTree
	if tree != nil {
		view = *tree
	}
	return render(cmd, view, view)
}

func runPostsList(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	p, err := app.Client().ListPosts(app.Context(cmd.Context()), postsQuery)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}
	if p == nil {
		p = &page.Page[post.Summary]{}
	}
	return render(cmd, postPage(*p), p)
}

func runPostsGet(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	d, err := app.Client().GetPost(app.Context(cmd.Context()), args[0])
	if err != nil {
		return fmt.Errorf("failed to get post: %w", err)
	}
	if d == nil {
		return fmt.Errorf("post %s: empty response", args[0])
	}
	return render(cmd, postDetail(*d), d)
}

func runMe(cmd *cobra.Command, args []string) error {
	app, err := newApp()
	if err != nil {
		return err
	}
	u, err := app.Client().Me(app.Context(cmd.Context()))
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	return render(cmd, session{u: u}, u)
}

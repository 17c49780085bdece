// Package category provides the blog's category tree.
package category

// Type distinguishes a folder of posts from an outbound link.
type Type string

const (
	TypeFolder Type = "FOLDER"
	TypeLink   Type = "LINK"
)

// Category is one node of the tree. Children are sorted by Order.
type Category struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required,max=50"`
	Type     Type       `json:"type" validate:"oneof=FOLDER LINK"`
	Link     string     `json:"link,omitempty" validate:"omitempty,url"`
	Order    int        `json:"sortOrder" validate:"gte=0"`
	ParentID string     `json:"parentId,omitempty"`
	Children []Category `json:"children" validate:"dive"`
}

// Create is the body of a create request.
type Create struct {
	Name     string
	Type     Type
	ParentID string
	Link     string
}

// Update renames a category or changes its link.
type Update struct {
	Name string
	Link string
}

// Move reparents a category and places it at Index among its new siblings.
// An empty ParentID moves it to the root.
type Move struct {
	ID       string `json:"categoryId"`
	ParentID string `json:"newParentId,omitempty"`
	Index    int    `json:"newIndex"`
}

// Find returns the node with id anywhere in tree.
func Find(tree []Category, id string) (*Category, bool) {
	for i := range tree {
		if tree[i].ID == id {
			return &tree[i], true
		}
		if c, ok := Find(tree[i].Children, id); ok {
			return c, true
		}
	}
	return nil, false
}

// Walk calls fn for every node depth-first, parents before children.
func Walk(tree []Category, fn func(c Category, depth int)) {
	walk(tree, 0, fn)
}

func walk(tree []Category, depth int, fn func(Category, int)) {
	for _, c := range tree {
		fn(c, depth)
		walk(c.Children, depth+1, fn)
	}
}

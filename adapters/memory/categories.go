package memory

import (
	"sort"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
)

type categoryNode struct {
	category.Category
}

// Categories returns the category tree.
func (s *Content) Categories() []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subtree("")
}

func (s *Content) subtree(parentID string) []category.Category {
	out := []category.Category{}
	for _, n := range s.categories {
		if n.ParentID == parentID {
			c := n.Category
			c.Children = s.subtree(c.ID)
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// siblings returns the nodes under parentID ordered by position.
func (s *Content) siblings(parentID string) []*categoryNode {
	var out []*categoryNode
	for _, n := range s.categories {
		if n.ParentID == parentID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// CreateCategory appends a category to its parent's children.
func (s *Content) CreateCategory(in category.Create) (category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.ParentID != "" {
		if _, ok := s.categories[in.ParentID]; !ok {
			return category.Category{}, ErrNotFound
		}
	}
	for _, n := range s.siblings(in.ParentID) {
		if n.Name == in.Name {
			return category.Category{}, ErrConflict
		}
	}

	n := &categoryNode{category.Category{
		ID:       s.ids.New(),
		Name:     in.Name,
		Type:     in.Type,
		Link:     in.Link,
		Order:    len(s.siblings(in.ParentID)),
		ParentID: in.ParentID,
	}}
	s.categories[n.ID] = n

	out := n.Category
	out.Children = []category.Category{}
	return out, nil
}

// UpdateCategory changes the non-empty fields of in.
func (s *Content) UpdateCategory(id string, in category.Update) (category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.categories[id]
	if !ok {
		return category.Category{}, ErrNotFound
	}
	if in.Name != "" {
		n.Name = in.Name
	}
	if in.Link != "" {
		n.Link = in.Link
	}
	out := n.Category
	out.Children = s.subtree(id)
	return out, nil
}

// DeleteCategory removes a category with its subtree.
func (s *Content) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.categories[id]
	if !ok {
		return ErrNotFound
	}
	s.removeSubtree(id)
	s.renumber(n.ParentID)
	return nil
}

func (s *Content) removeSubtree(id string) {
	for _, child := range s.siblings(id) {
		s.removeSubtree(child.ID)
	}
	delete(s.categories, id)
}

// MoveCategory reparents m.ID and inserts it at m.Index among its new
// siblings. A category cannot move under its own subtree.
func (s *Content) MoveCategory(m category.Move) ([]category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.categories[m.ID]
	if !ok {
		return nil, ErrNotFound
	}
	if m.ParentID != "" {
		if _, ok := s.categories[m.ParentID]; !ok {
			return nil, ErrNotFound
		}
		for p := m.ParentID; p != ""; p = s.categories[p].ParentID {
			if p == m.ID {
				return nil, ErrConflict
			}
		}
	}

	oldParent := n.ParentID
	n.ParentID = m.ParentID

	var order []*categoryNode
	for _, sib := range s.siblings(m.ParentID) {
		if sib.ID != n.ID {
			order = append(order, sib)
		}
	}
	idx := m.Index
	if idx < 0 {
		idx = 0
	}
	if idx > len(order) {
		idx = len(order)
	}
	order = append(order[:idx], append([]*categoryNode{n}, order[idx:]...)...)
	for i, sib := range order {
		sib.Order = i
	}
	if oldParent != m.ParentID {
		s.renumber(oldParent)
	}
	return s.subtree(""), nil
}

func (s *Content) renumber(parentID string) {
	for i, n := range s.siblings(parentID) {
		n.Order = i
	}
}

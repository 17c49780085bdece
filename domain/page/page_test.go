package page

import (
	"reflect"
	"testing"
)

func TestOf(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	tests := []struct {
		name     string
		number   int
		size     int
		content  []int
		pages    int
		last     bool
		hasNext  bool
	}{
		{"first page", 0, 2, []int{1, 2}, 3, false, true},
		{"last partial page", 2, 2, []int{5}, 3, true, false},
		{"past the end", 7, 2, []int{}, 3, true, false},
		{"default size", 0, 0, []int{1, 2, 3, 4, 5}, 1, true, false},
		{"negative page", -1, 5, []int{1, 2, 3, 4, 5}, 1, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Of(items, tt.number, tt.size)
			if !reflect.DeepEqual(p.Content, tt.content) {
				t.Errorf("Content = %v, want %v", p.Content, tt.content)
			}
			if p.TotalPages != tt.pages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.pages)
			}
			if p.Last != tt.last {
				t.Errorf("Last = %v, want %v", p.Last, tt.last)
			}
			if p.HasNext() != tt.hasNext {
				t.Errorf("HasNext() = %v, want %v", p.HasNext(), tt.hasNext)
			}
			if p.TotalElements != 5 {
				t.Errorf("TotalElements = %d, want 5", p.TotalElements)
			}
		})
	}
}

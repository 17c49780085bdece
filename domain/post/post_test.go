package post

import "testing"

func TestQuery_Values(t *testing.T) {
	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{"zero query", Query{}, ""},
		{"paging", Query{Page: 2, Size: 20}, "page=2&size=20"},
		{"filters", Query{Category: "go", Tag: "chi", Keyword: "router", Sort: SortPopular}, "categoryId=go&keyword=router&sort=POPULAR&tag=chi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.query.Values().Encode(); got != tt.want {
				t.Errorf("Values() = %q, want %q", got, tt.want)
			}
		})
	}
}

package comment

import "testing"

func TestCount(t *testing.T) {
	thread := []Comment{
		{ID: "1", Replies: []Comment{{ID: "2"}, {ID: "3", Replies: []Comment{{ID: "4"}}}}},
		{ID: "5"},
	}
	if got := Count(thread); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := Count(nil); got != 0 {
		t.Errorf("Count(nil) = %d, want 0", got)
	}
}

// Package page provides the paginated list envelope used by list endpoints.
package page

// Page is one slice of a server-side sorted list.
type Page[T any] struct {
	Content       []T   `json:"content" validate:"dive"`
	Number        int   `json:"page" validate:"gte=0"`
	Size          int   `json:"size" validate:"gte=0"`
	TotalElements int64 `json:"totalElements" validate:"gte=0"`
	TotalPages    int   `json:"totalPages" validate:"gte=0"`
	Last          bool  `json:"last"`
}

// HasNext reports whether a following page exists.
func (p Page[T]) HasNext() bool {
	return !p.Last && p.Number+1 < p.TotalPages
}

// Of slices items into the zero-based page number of the given size.
func Of[T any](items []T, number, size int) Page[T] {
	if size <= 0 {
		size = 10
	}
	if number < 0 {
		number = 0
	}
	total := len(items)
	pages := (total + size - 1) / size

	start := number * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]T, end-start)
	copy(content, items[start:end])

	return Page[T]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: int64(total),
		TotalPages:    pages,
		Last:          end >= total,
	}
}

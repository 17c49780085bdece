// Package analytics provides page view tracking and traffic summaries.
package analytics

// Range selects the window a summary covers.
type Range string

const (
	RangeDay   Range = "1d"
	RangeWeek  Range = "7d"
	RangeMonth Range = "30d"
)

// Valid reports whether r is a supported window.
func (r Range) Valid() bool {
	switch r {
	case RangeDay, RangeWeek, RangeMonth:
		return true
	}
	return false
}

// View is one page view beacon.
type View struct {
	Path     string `json:"path"`
	Referrer string `json:"referrer,omitempty"`
}

// PathCount is the view count of one path.
type PathCount struct {
	Path  string `json:"path" validate:"required"`
	Views int64  `json:"views" validate:"gte=0"`
}

// Summary aggregates traffic over a range.
type Summary struct {
	Range     Range       `json:"range" validate:"oneof=1d 7d 30d"`
	PageViews int64       `json:"pageViews" validate:"gte=0"`
	Visitors  int64       `json:"visitors" validate:"gte=0"`
	TopPaths  []PathCount `json:"topPaths" validate:"dive"`
}

package domain

// ListFilter carries the query parameters shared by the list endpoints.
// Category "all" or empty means unfiltered. Search matches case-insensitive
// substrings across the searchable text fields of the resource. Featured is
// only consulted for projects.
type ListFilter struct {
	Category string
	Search   string
	Featured *bool
	Page     int
	Limit    int
}

// Normalize clamps pagination to sane values. Pages are 1-indexed.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}
}

// Offset returns the number of rows to skip for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Package course holds the catalog item shown on the landing page.
package course

import "net/url"

// Course is a catalog item as served by the marketplace backend.
// The backend is the source of truth; this service never mutates courses.
type Course struct {
	ID       string
	Title    string
	ImageURL string
}

// BuyPath returns the purchase/detail route for the course.
func (c Course) BuyPath() string {
	return "/buy/" + url.PathEscape(c.ID)
}

// Clone returns a copy of the list so callers can't alias the loader's snapshot.
func Clone(in []Course) []Course {
	if in == nil {
		return []Course{}
	}
	out := make([]Course, len(in))
	copy(out, in)
	return out
}

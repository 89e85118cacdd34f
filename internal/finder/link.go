package finder

import "net/url"

// Link builds page URLs that carry the filter and section state.
type Link struct {
	BasePath string
	Filters  Filters
	Toggled  Selection
}

// Values returns the query parameters the link carries.
func (l Link) Values() url.Values {
	q := l.Filters.Values()
	for _, key := range l.Toggled {
		q.Add(ParamToggled, key)
	}
	return q
}

// String renders the URL. Parameters are emitted in sorted key order so equal
// states always produce equal links.
func (l Link) String() string {
	q := l.Values()
	if len(q) == 0 {
		return l.BasePath
	}
	return l.BasePath + "?" + q.Encode()
}

// WithFilters returns a link to the same page with different filters.
func (l Link) WithFilters(f Filters) Link {
	l.Filters = f
	return l
}

// ToggleSection returns a link that flips one sidebar section.
func (l Link) ToggleSection(key string) Link {
	l.Toggled = l.Toggled.Toggle(key)
	return l
}

// Cleared returns a link with every filter reset. Section state is kept.
func (l Link) Cleared() Link {
	l.Filters = l.Filters.Clear()
	return l
}

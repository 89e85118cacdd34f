package finder

import (
	"net/url"
	"strings"
)

// Sidebar section keys.
const (
	SectionSubject    = "subject"
	SectionLocation   = "location"
	SectionExperience = "experience"
	SectionPrice      = "price"
)

// FilterSection is a collapsible sidebar container.
type FilterSection struct {
	Key         string
	Title       string
	Icon        string
	DefaultOpen bool
	Open        bool
}

// NewFilterSection returns a section in its default state.
func NewFilterSection(key, title, icon string, defaultOpen bool) FilterSection {
	return FilterSection{Key: key, Title: title, Icon: icon, DefaultOpen: defaultOpen, Open: defaultOpen}
}

// Toggle flips the section between shown and hidden.
func (s *FilterSection) Toggle() {
	s.Open = !s.Open
}

// DefaultSections is the sidebar layout of the find-tutors page.
func DefaultSections() []FilterSection {
	return []FilterSection{
		NewFilterSection(SectionSubject, "Subject", "book", true),
		NewFilterSection(SectionLocation, "Location", "map-pin", true),
		NewFilterSection(SectionExperience, "Experience", "award", true),
		NewFilterSection(SectionPrice, "Price", "wallet", true),
	}
}

// ParseToggled reads which sections the visitor has flipped away from their
// default state.
func ParseToggled(q url.Values) Selection {
	var out Selection
	for _, value := range q[ParamToggled] {
		for _, part := range strings.Split(value, ",") {
			key := strings.TrimSpace(part)
			if key == "" || out.Contains(key) {
				continue
			}
			out = append(out, key)
		}
	}
	return out
}

// ApplyToggled returns a copy of sections with every toggled key flipped once.
func ApplyToggled(sections []FilterSection, toggled Selection) []FilterSection {
	out := make([]FilterSection, len(sections))
	copy(out, sections)
	for i := range out {
		if toggled.Contains(out[i].Key) {
			out[i].Toggle()
		}
	}
	return out
}

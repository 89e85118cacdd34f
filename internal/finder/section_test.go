package finder

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSectionToggle(t *testing.T) {
	s := NewFilterSection(SectionPrice, "Price", "", true)
	assert.True(t, s.Open)

	s.Toggle()
	assert.False(t, s.Open)
	assert.True(t, s.DefaultOpen)

	s.Toggle()
	assert.True(t, s.Open)
}

func TestApplyToggledFlipsOnlyListedSections(t *testing.T) {
	sections := []FilterSection{
		NewFilterSection(SectionSubject, "Subject", "", true),
		NewFilterSection(SectionPrice, "Price", "", false),
	}

	got := ApplyToggled(sections, Selection{SectionPrice, "unknown"})

	assert.True(t, got[0].Open)
	assert.True(t, got[1].Open)
	assert.False(t, sections[1].Open, "input must not change")
}

func TestParseToggled(t *testing.T) {
	q, _ := url.ParseQuery("toggled=price,subject&toggled=price&toggled=")

	assert.Equal(t, Selection{"price", "subject"}, ParseToggled(q))
}

func TestLinkString(t *testing.T) {
	l := Link{BasePath: "/find-tutors"}
	assert.Equal(t, "/find-tutors", l.String())

	l = l.WithFilters(Filters{Subject: "Maths", Experience: Selection{"10+"}})
	assert.Equal(t, "/find-tutors?experience=10%2B&subject=Maths", l.String())

	l = l.ToggleSection(SectionPrice)
	assert.Equal(t, "/find-tutors?experience=10%2B&subject=Maths&toggled=price", l.String())

	assert.Equal(t, "/find-tutors?toggled=price", l.Cleared().String())
	assert.Equal(t, "/find-tutors?experience=10%2B&subject=Maths", l.ToggleSection(SectionPrice).String())
}

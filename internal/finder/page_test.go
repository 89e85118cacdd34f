package finder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/tutor-finder/internal/models"
)

func TestPageState(t *testing.T) {
	tutors := []models.Tutor{tutor("a", 1, 1), tutor("b", 7, 3)}

	assert.Equal(t, StateLoading, Page{}.State())
	assert.Equal(t, StateLoading, Page{Tutors: tutors}.State())
	assert.Equal(t, StateEmpty, Page{SearchDone: true}.State())
	assert.Equal(t, StateResults, Page{SearchDone: true, Tutors: tutors, Pricing: DefaultPricing()}.State())

	filtered := Page{
		SearchDone: true,
		Tutors:     tutors,
		Pricing:    DefaultPricing(),
		Filters:    Filters{Experience: Selection{"10+"}},
	}
	assert.Equal(t, StateEmpty, filtered.State())
	assert.Empty(t, filtered.Results())
}

func TestPageResultsWithoutSelections(t *testing.T) {
	tutors := []models.Tutor{tutor("a", 1, 1), tutor("b", 7, 3)}
	p := Page{SearchDone: true, Tutors: tutors, Filters: Filters{Subject: "Maths"}}

	assert.Equal(t, tutors, p.Results())
}

func TestVisibleSubjects(t *testing.T) {
	subjects := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	visible, more := VisibleSubjects(subjects, 8)
	assert.Equal(t, subjects[:8], visible)
	assert.True(t, more)

	visible, more = VisibleSubjects(subjects[:8], 8)
	assert.Len(t, visible, 8)
	assert.False(t, more)

	visible, more = VisibleSubjects(nil, 8)
	assert.Empty(t, visible)
	assert.False(t, more)
}

package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-finder/internal/dto"
)

func render(t *testing.T, data *dto.FindTutorsView) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "find_tutors.html", data))
	return buf.String()
}

func TestTemplatesRenderEmptyState(t *testing.T) {
	out := render(t, &dto.FindTutorsView{
		State:            "empty",
		ClearURL:         "/find-tutors",
		HasActiveFilters: true,
		Sections:         []dto.SectionView{{Key: "subject", Title: "Subject", Open: true, ToggleURL: "/find-tutors?toggled=subject"}},
		Subjects:         []dto.OptionView{{Value: "Maths", Label: "Maths", Selected: true, ToggleURL: "/find-tutors"}},
		HasMoreSubjects:  true,
	})

	assert.Contains(t, out, "No tutors found")
	assert.Contains(t, out, `href="/find-tutors?toggled=subject"`)
	assert.Contains(t, out, "Show more")
	assert.Contains(t, out, "option--selected")
}

func TestTemplatesRenderLoadingAndCollapsed(t *testing.T) {
	out := render(t, &dto.FindTutorsView{
		State:    "loading",
		Sections: []dto.SectionView{{Key: "price", Title: "Price", Open: false}},
		Price:    []dto.OptionView{{Value: "0-1000", Label: "₹0 - ₹1,000/month"}},
	})

	assert.Contains(t, out, "Loading tutors...")
	assert.NotContains(t, out, "₹0 - ₹1,000/month")
}

func TestTemplatesRenderCards(t *testing.T) {
	out := render(t, &dto.FindTutorsView{
		State:       "results",
		ResultCount: 1,
		Tutors: []dto.TutorCard{{
			ID:                 "t1",
			Name:               "Asha Rao",
			Initials:           "AR",
			Subjects:           []string{"Maths", "Physics"},
			YearsExperience:    1,
			Rating:             4.76,
			IsTopRated:         true,
			MonthlyRateDisplay: "₹1,600",
		}},
	})

	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "Maths, Physics")
	assert.Contains(t, out, "1 year experience")
	assert.Contains(t, out, "4.8 rating")
	assert.Contains(t, out, "₹1,600/month")
	assert.Contains(t, out, "Top Rated")
}

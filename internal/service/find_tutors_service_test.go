package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-finder/internal/dto"
	"github.com/noah-isme/tutor-finder/internal/finder"
	"github.com/noah-isme/tutor-finder/internal/models"
)

type fakeCatalog struct {
	mu        sync.Mutex
	tutors    []models.Tutor
	subjects  []string
	searchErr error
	listErr   error
	searched  [][2]string
}

func (f *fakeCatalog) SearchTutors(_ context.Context, subject, location string) ([]models.Tutor, error) {
	f.mu.Lock()
	f.searched = append(f.searched, [2]string{subject, location})
	f.mu.Unlock()
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.tutors, nil
}

func (f *fakeCatalog) ListSubjects(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.subjects, nil
}

func sampleTutors() []models.Tutor {
	return []models.Tutor{
		{ID: "a", User: &models.TutorUser{FirstName: "asha", LastName: "rao"}, HourlyRate: 0.5, YearsExperience: 1, Subjects: []string{"Maths"}},
		{ID: "b", HourlyRate: 1, YearsExperience: 4},
		{ID: "c", HourlyRate: 4, YearsExperience: 12},
	}
}

func newFindTutors(catalog catalogFetcher) *FindTutorsService {
	return NewFindTutorsService(catalog, NewMetricsService(), nil, FindTutorsConfig{})
}

func TestFindTutorsLoadSearchesWithURLFilters(t *testing.T) {
	catalog := &fakeCatalog{tutors: sampleTutors(), subjects: []string{"Maths"}}
	svc := newFindTutors(catalog)

	view := svc.Load(context.Background(), url.Values{"subject": {"Maths"}, "location": {"Pune"}})

	require.Len(t, catalog.searched, 1)
	assert.Equal(t, [2]string{"Maths", "Pune"}, catalog.searched[0])
	assert.Equal(t, string(finder.StateResults), view.State)
	assert.Equal(t, 3, view.FetchedCount)
	assert.Equal(t, 3, view.ResultCount)
	assert.True(t, view.HasActiveFilters)
}

func TestFindTutorsLoadAppliesBuckets(t *testing.T) {
	svc := newFindTutors(&fakeCatalog{tutors: sampleTutors()})

	view := svc.Load(context.Background(), url.Values{"experience": {"0-2", "10+"}, "price": {"0-1000"}})

	require.Len(t, view.Tutors, 1)
	card := view.Tutors[0]
	assert.Equal(t, "a", card.ID)
	assert.Equal(t, "asha rao", card.Name)
	assert.Equal(t, "AR", card.Initials)
	assert.Equal(t, int64(800), card.MonthlyRate)
	assert.Equal(t, "₹800", card.MonthlyRateDisplay)
	assert.Equal(t, 3, view.FetchedCount)
	assert.Equal(t, 1, view.ResultCount)
}

func TestFindTutorsLoadFailedSearchRendersEmpty(t *testing.T) {
	catalog := &fakeCatalog{searchErr: errors.New("catalog: unexpected status 500"), subjects: []string{"Maths"}}
	svc := newFindTutors(catalog)

	view := svc.Load(context.Background(), url.Values{})

	assert.Equal(t, string(finder.StateEmpty), view.State)
	assert.Empty(t, view.Tutors)
	require.Len(t, view.Subjects, 1)
	assert.Equal(t, "/find-tutors", view.ClearURL)
}

func TestFindTutorsLoadFailedSubjectsKeepsResults(t *testing.T) {
	svc := newFindTutors(&fakeCatalog{tutors: sampleTutors(), listErr: errors.New("boom")})

	view := svc.Load(context.Background(), url.Values{})

	assert.Equal(t, string(finder.StateResults), view.State)
	assert.Empty(t, view.Subjects)
	assert.NotNil(t, view.Subjects)
	assert.False(t, view.HasMoreSubjects)
}

func TestFindTutorsBuildCapsSubjects(t *testing.T) {
	subjects := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		subjects = append(subjects, fmt.Sprintf("Subject %d", i))
	}
	svc := newFindTutors(&fakeCatalog{})

	view := svc.Build(finder.Page{Subjects: subjects, SearchDone: true})

	assert.Len(t, view.Subjects, 8)
	assert.True(t, view.HasMoreSubjects)
	assert.Equal(t, "Subject 7", view.Subjects[7].Label)
}

func TestFindTutorsBuildLoadingState(t *testing.T) {
	svc := newFindTutors(&fakeCatalog{})

	view := svc.Build(finder.Page{})

	assert.Equal(t, string(finder.StateLoading), view.State)
	assert.False(t, view.HasActiveFilters)
}

func TestFindTutorsBuildToggleLinks(t *testing.T) {
	svc := newFindTutors(&fakeCatalog{})
	page := finder.Page{
		Filters:    finder.Filters{Subject: "Maths", Experience: finder.Selection{"0-2"}},
		Subjects:   []string{"Maths", "Physics"},
		SearchDone: true,
	}

	view := svc.Build(page)

	assert.Equal(t, dto.OptionView{Value: "Maths", Label: "Maths", Selected: true, ToggleURL: "/find-tutors?experience=0-2"}, view.Subjects[0])
	assert.Equal(t, "/find-tutors?experience=0-2&subject=Physics", view.Subjects[1].ToggleURL)

	require.Len(t, view.Experience, 4)
	assert.True(t, view.Experience[0].Selected)
	assert.Equal(t, "/find-tutors?subject=Maths", view.Experience[0].ToggleURL)
	assert.Equal(t, "/find-tutors?experience=0-2&experience=3-5&subject=Maths", view.Experience[1].ToggleURL)

	require.Len(t, view.Price, 4)
	assert.Equal(t, "₹0 - ₹1,000/month", view.Price[0].Label)
	assert.Equal(t, "/find-tutors?experience=0-2&price=0-1000&subject=Maths", view.Price[0].ToggleURL)

	require.Len(t, view.Sections, 4)
	assert.True(t, view.Sections[0].Open)
	assert.Equal(t, "/find-tutors?experience=0-2&subject=Maths&toggled=subject", view.Sections[0].ToggleURL)
	assert.Equal(t, "/find-tutors", view.ClearURL)
}

func TestFindTutorsBuildToggledSectionsAndLocationForm(t *testing.T) {
	svc := NewFindTutorsService(&fakeCatalog{}, nil, nil, FindTutorsConfig{BasePath: "/tutors"})
	query := url.Values{
		"subject":    {"Maths"},
		"location":   {"Pune"},
		"experience": {"3-5"},
		"toggled":    {"price"},
	}
	page := finder.Page{Filters: finder.ParseFilters(query), Toggled: finder.ParseToggled(query), SearchDone: true}

	view := svc.Build(page)

	assert.False(t, view.Sections[3].Open)
	assert.Equal(t, "/tutors?experience=3-5&location=Pune&subject=Maths", view.Sections[3].ToggleURL)
	assert.Equal(t, "/tutors?toggled=price", view.ClearURL)
	assert.Equal(t, dto.LocationForm{
		Action: "/tutors",
		Value:  "Pune",
		Hidden: []dto.QueryParam{
			{Name: "experience", Value: "3-5"},
			{Name: "subject", Value: "Maths"},
			{Name: "toggled", Value: "price"},
		},
	}, view.LocationForm)
}

func TestFindTutorsCardFallbacks(t *testing.T) {
	svc := newFindTutors(&fakeCatalog{})

	card := svc.card(models.Tutor{ID: "x", HourlyRate: 1})

	assert.Equal(t, "Tutor", card.Name)
	assert.Equal(t, "T", card.Initials)
	assert.Equal(t, "₹1,600", card.MonthlyRateDisplay)
	assert.Equal(t, []string{}, card.Subjects)
}

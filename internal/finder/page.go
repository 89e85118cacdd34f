package finder

import "github.com/noah-isme/tutor-finder/internal/models"

// ResultState is what the results grid shows.
type ResultState string

const (
	StateLoading ResultState = "loading"
	StateResults ResultState = "results"
	StateEmpty   ResultState = "empty"
)

// Page is the view state of the find-tutors page for one request.
type Page struct {
	Filters  Filters
	Toggled  Selection
	Pricing  Pricing
	Subjects []string
	// Tutors is the list fetched for (subject, location), before bucket filters.
	Tutors     []models.Tutor
	SearchDone bool
}

// Results is the fetched list narrowed by the experience and price buckets.
func (p Page) Results() []models.Tutor {
	return p.Filters.Apply(p.Tutors, p.Pricing)
}

// State reports loading until the search has completed, then results or empty.
func (p Page) State() ResultState {
	if !p.SearchDone {
		return StateLoading
	}
	if len(p.Results()) == 0 {
		return StateEmpty
	}
	return StateResults
}

// VisibleSubjects caps the subject options at limit and reports whether more
// were available.
func VisibleSubjects(subjects []string, limit int) ([]string, bool) {
	if limit <= 0 || len(subjects) <= limit {
		return subjects, false
	}
	return subjects[:limit], true
}

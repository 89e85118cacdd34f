package finder

import (
	"net/url"
	"strings"

	"github.com/noah-isme/tutor-finder/internal/models"
)

// Query parameter names carried by the find-tutors page URL.
const (
	ParamSubject    = "subject"
	ParamLocation   = "location"
	ParamExperience = "experience"
	ParamPrice      = "price"
	ParamToggled    = "toggled"
)

// Filters is the complete filter state of the find-tutors page.
type Filters struct {
	Subject    string    `json:"subject"`
	Location   string    `json:"location"`
	Experience Selection `json:"experience"`
	Price      Selection `json:"price"`
}

// ParseFilters reads filter state from a query string. Bucket labels may be
// repeated or comma separated; unknown labels and duplicates are dropped.
func ParseFilters(q url.Values) Filters {
	return Filters{
		Subject:    strings.TrimSpace(q.Get(ParamSubject)),
		Location:   strings.TrimSpace(q.Get(ParamLocation)),
		Experience: parseLabels(q[ParamExperience], ExperienceBucket),
		Price:      parseLabels(q[ParamPrice], PriceBucket),
	}
}

func parseLabels(raw []string, known func(string) (Bucket, bool)) Selection {
	var out Selection
	for _, value := range raw {
		for _, part := range strings.Split(value, ",") {
			label := strings.TrimSpace(part)
			if _, ok := known(label); !ok || out.Contains(label) {
				continue
			}
			out = append(out, label)
		}
	}
	return out
}

// Values encodes the filter state back into query parameters.
func (f Filters) Values() url.Values {
	q := url.Values{}
	if f.Subject != "" {
		q.Set(ParamSubject, f.Subject)
	}
	if f.Location != "" {
		q.Set(ParamLocation, f.Location)
	}
	for _, label := range f.Experience {
		q.Add(ParamExperience, label)
	}
	for _, label := range f.Price {
		q.Add(ParamPrice, label)
	}
	return q
}

// ToggleSubject selects name, or clears the subject when name is already selected.
func (f Filters) ToggleSubject(name string) Filters {
	if strings.EqualFold(f.Subject, name) {
		f.Subject = ""
	} else {
		f.Subject = name
	}
	return f
}

// ToggleExperience flips membership of label in the experience selection.
func (f Filters) ToggleExperience(label string) Filters {
	f.Experience = f.Experience.Toggle(label)
	return f
}

// TogglePrice flips membership of label in the price selection.
func (f Filters) TogglePrice(label string) Filters {
	f.Price = f.Price.Toggle(label)
	return f
}

// Clear resets every filter.
func (f Filters) Clear() Filters {
	return Filters{}
}

// Active reports whether any filter is set.
func (f Filters) Active() bool {
	return f.Subject != "" || f.Location != "" || !f.Experience.Empty() || !f.Price.Empty()
}

// Apply narrows the fetched tutors by the experience and price selections.
// Subject and location are not applied here; they key the upstream search.
// With both selections empty the input slice is returned as is.
func (f Filters) Apply(tutors []models.Tutor, pricing Pricing) []models.Tutor {
	if f.Experience.Empty() && f.Price.Empty() {
		return tutors
	}
	out := make([]models.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if MatchesExperience(t, f.Experience) && MatchesPrice(t, f.Price, pricing) {
			out = append(out, t)
		}
	}
	return out
}

// MatchesExperience is true when no bucket is selected or any selected bucket
// contains the tutor's years of experience.
func MatchesExperience(t models.Tutor, selected Selection) bool {
	if selected.Empty() {
		return true
	}
	for _, label := range selected {
		if b, ok := ExperienceBucket(label); ok && b.Matches(t.YearsExperience) {
			return true
		}
	}
	return false
}

// MatchesPrice is true when no bucket is selected or any selected bucket
// contains the tutor's rounded monthly rate.
func MatchesPrice(t models.Tutor, selected Selection, pricing Pricing) bool {
	if selected.Empty() {
		return true
	}
	monthly := float64(pricing.MonthlyRate(t.HourlyRate))
	for _, label := range selected {
		if b, ok := PriceBucket(label); ok && b.Matches(monthly) {
			return true
		}
	}
	return false
}

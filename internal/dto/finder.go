package dto

// FindTutorsView is everything the find-tutors page renders, shared by the
// HTML page and the JSON endpoint.
type FindTutorsView struct {
	Filters          FilterStateView `json:"filters"`
	Sections         []SectionView   `json:"sections"`
	Subjects         []OptionView    `json:"subjects"`
	HasMoreSubjects  bool            `json:"hasMoreSubjects"`
	Experience       []OptionView    `json:"experience"`
	Price            []OptionView    `json:"price"`
	LocationForm     LocationForm    `json:"locationForm"`
	State            string          `json:"state"`
	Tutors           []TutorCard     `json:"tutors"`
	FetchedCount     int             `json:"fetchedCount"`
	ResultCount      int             `json:"resultCount"`
	HasActiveFilters bool            `json:"hasActiveFilters"`
	ClearURL         string          `json:"clearUrl"`
}

// FilterStateView echoes the parsed filter state.
type FilterStateView struct {
	Subject    string   `json:"subject"`
	Location   string   `json:"location"`
	Experience []string `json:"experience"`
	Price      []string `json:"price"`
}

// SectionView is one collapsible sidebar section.
type SectionView struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Icon      string `json:"icon,omitempty"`
	Open      bool   `json:"open"`
	ToggleURL string `json:"toggleUrl"`
}

// OptionView is one checkbox in a sidebar section.
type OptionView struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Selected  bool   `json:"selected"`
	ToggleURL string `json:"toggleUrl"`
}

// LocationForm describes the GET form for the free-text location filter.
type LocationForm struct {
	Action string       `json:"action"`
	Value  string       `json:"value"`
	Hidden []QueryParam `json:"hidden"`
}

// QueryParam is a hidden form field preserving the rest of the page state.
type QueryParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TutorCard is one tile in the results grid.
type TutorCard struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Initials           string   `json:"initials"`
	ProfilePicture     string   `json:"profilePicture,omitempty"`
	Headline           string   `json:"headline"`
	Bio                string   `json:"bio"`
	Subjects           []string `json:"subjects"`
	Location           string   `json:"location,omitempty"`
	HourlyRate         float64  `json:"hourlyRate"`
	MonthlyRate        int64    `json:"monthlyRate"`
	MonthlyRateDisplay string   `json:"monthlyRateDisplay"`
	YearsExperience    float64  `json:"yearsExperience"`
	Rating             float64  `json:"rating"`
	IsTopRated         bool     `json:"isTopRated"`
	IsNew              bool     `json:"isNew"`
}

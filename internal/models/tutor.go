package models

// TutorUser is the account profile attached to a tutor listing.
type TutorUser struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// Tutor is a searchable tutor listing as exposed by the catalog API.
type Tutor struct {
	ID              string     `json:"id"`
	User            *TutorUser `json:"user,omitempty"`
	Headline        string     `json:"headline"`
	Bio             string     `json:"bio"`
	Subjects        []string   `json:"subjects"`
	HourlyRate      float64    `json:"hourlyRate"`
	YearsExperience float64    `json:"yearsExperience"`
	Rating          float64    `json:"rating"`
	IsTopRated      bool       `json:"isTopRated"`
	IsNew           bool       `json:"isNew"`
	Location        string     `json:"location,omitempty"`
}

// TutorSearchFilter captures the catalog search keys.
type TutorSearchFilter struct {
	Subject  string
	Location string
	Limit    int
}

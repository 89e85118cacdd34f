// Package seed generates a synthetic tutor catalog for local development.
package seed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jaswdr/faker"

	"github.com/noah-isme/tutor-finder/internal/models"
)

// Subjects is the catalogue of subject names the seeder installs.
var Subjects = []string{
	"Mathematics", "Physics", "Chemistry", "Biology", "English", "Hindi",
	"Computer Science", "Economics", "Accountancy", "History", "Geography",
	"Political Science", "French", "Music", "Art",
}

var locations = []string{
	"Mumbai", "Delhi", "Bengaluru", "Pune", "Hyderabad", "Chennai", "Kolkata",
	"Ahmedabad", "Jaipur", "Lucknow", "Online",
}

var headlines = []string{
	"%s tutor for board exams",
	"Patient %s coach for all levels",
	"Making %s simple and fun",
	"%s mentor with a results track record",
	"Competitive exam prep in %s",
}

// Generator builds fake tutors. The same seed yields the same catalog.
type Generator struct {
	fake faker.Faker
}

// NewGenerator returns a generator. A zero seed picks a random one.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		return &Generator{fake: faker.New()}
	}
	return &Generator{fake: faker.NewWithSeed(rand.NewSource(seed))}
}

// Tutors generates n tutors drawing subjects from Subjects.
func (g *Generator) Tutors(n int) []models.Tutor {
	out := make([]models.Tutor, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.tutor())
	}
	return out
}

func (g *Generator) tutor() models.Tutor {
	f := g.fake
	subjects := g.pickSubjects(f.IntBetween(1, 3))
	years := float64(f.IntBetween(0, 20))
	rating := math.Round(f.Float64(2, 30, 50)) / 10

	t := models.Tutor{
		Headline:        fmt.Sprintf(f.RandomStringElement(headlines), subjects[0]),
		Bio:             f.Lorem().Sentence(f.IntBetween(12, 24)),
		Subjects:        subjects,
		HourlyRate:      f.Float64(2, 0, 6),
		YearsExperience: years,
		Rating:          rating,
		IsTopRated:      rating >= 4.7,
		IsNew:           years <= 1,
		Location:        f.RandomStringElement(locations),
	}
	if f.IntBetween(1, 10) > 1 {
		t.User = &models.TutorUser{
			FirstName: f.Person().FirstName(),
			LastName:  f.Person().LastName(),
		}
	}
	return t
}

func (g *Generator) pickSubjects(n int) []string {
	picked := make([]string, 0, n)
	for len(picked) < n {
		name := g.fake.RandomStringElement(Subjects)
		if !contains(picked, name) {
			picked = append(picked, name)
		}
	}
	return picked
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}

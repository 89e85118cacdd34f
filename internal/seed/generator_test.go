package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorTutors(t *testing.T) {
	tutors := NewGenerator(42).Tutors(50)
	require.Len(t, tutors, 50)

	for _, tutor := range tutors {
		require.NotEmpty(t, tutor.Subjects)
		assert.LessOrEqual(t, len(tutor.Subjects), 3)
		for _, s := range tutor.Subjects {
			assert.Contains(t, Subjects, s)
		}
		assert.Contains(t, tutor.Headline, tutor.Subjects[0])
		assert.GreaterOrEqual(t, tutor.HourlyRate, 0.0)
		assert.LessOrEqual(t, tutor.HourlyRate, 6.0)
		assert.GreaterOrEqual(t, tutor.Rating, 3.0)
		assert.LessOrEqual(t, tutor.Rating, 5.0)
		assert.Equal(t, tutor.Rating >= 4.7, tutor.IsTopRated)
		assert.NotEmpty(t, tutor.Location)
	}
}

func TestGeneratorSeedIsDeterministic(t *testing.T) {
	a := NewGenerator(7).Tutors(5)
	b := NewGenerator(7).Tutors(5)
	assert.Equal(t, a, b)
}

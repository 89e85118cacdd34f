package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/tutor-finder/internal/models"
)

func TestCatalogWriterApplySchema(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS users")).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewCatalogWriter(db).ApplySchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogWriterLoad(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE tutors, users, subjects")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subjects")).
		WithArgs(sqlmock.AnyArg(), "Maths", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Asha", "Rao", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tutors")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO tutors")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tutors := []models.Tutor{
		{User: &models.TutorUser{FirstName: "Asha", LastName: "Rao"}, Subjects: []string{"Maths"}, HourlyRate: 2},
		{Subjects: []string{"Physics"}, HourlyRate: 1},
	}
	err := NewCatalogWriter(db).Load(context.Background(), []string{"Maths"}, tutors, true)
	require.NoError(t, err)
	assert.NotEmpty(t, tutors[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogWriterLoadRollsBack(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO subjects")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := NewCatalogWriter(db).Load(context.Background(), []string{"Maths"}, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert subject Maths")
	assert.NoError(t, mock.ExpectationsWereMet())
}

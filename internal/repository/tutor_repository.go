package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/tutor-finder/internal/models"
)

const defaultSearchLimit = 100

// TutorRepository reads tutor listings.
type TutorRepository struct {
	db *sqlx.DB
}

// NewTutorRepository constructs a TutorRepository.
func NewTutorRepository(db *sqlx.DB) *TutorRepository {
	return &TutorRepository{db: db}
}

type tutorRow struct {
	ID              string          `db:"id"`
	Headline        sql.NullString  `db:"headline"`
	Bio             sql.NullString  `db:"bio"`
	Subjects        pq.StringArray  `db:"subjects"`
	HourlyRate      float64         `db:"hourly_rate"`
	YearsExperience float64         `db:"years_experience"`
	Rating          sql.NullFloat64 `db:"rating"`
	IsTopRated      bool            `db:"is_top_rated"`
	IsNew           bool            `db:"is_new"`
	Location        sql.NullString  `db:"location"`
	UserID          sql.NullString  `db:"user_id"`
	FirstName       sql.NullString  `db:"first_name"`
	LastName        sql.NullString  `db:"last_name"`
	ProfilePicture  sql.NullString  `db:"profile_picture"`
}

func (r tutorRow) toModel() models.Tutor {
	tutor := models.Tutor{
		ID:              r.ID,
		Headline:        r.Headline.String,
		Bio:             r.Bio.String,
		Subjects:        []string(r.Subjects),
		HourlyRate:      r.HourlyRate,
		YearsExperience: r.YearsExperience,
		Rating:          r.Rating.Float64,
		IsTopRated:      r.IsTopRated,
		IsNew:           r.IsNew,
		Location:        r.Location.String,
	}
	if tutor.Subjects == nil {
		tutor.Subjects = []string{}
	}
	if r.UserID.Valid {
		user := &models.TutorUser{FirstName: r.FirstName.String, LastName: r.LastName.String}
		if r.ProfilePicture.Valid && r.ProfilePicture.String != "" {
			pic := r.ProfilePicture.String
			user.ProfilePicture = &pic
		}
		tutor.User = user
	}
	return tutor
}

// Search returns tutors teaching the subject (case-insensitive exact match)
// whose location contains the location text. Empty keys match everything.
func (r *TutorRepository) Search(ctx context.Context, filter models.TutorSearchFilter) ([]models.Tutor, error) {
	base := "FROM tutors t LEFT JOIN users u ON u.id = t.user_id WHERE 1=1"
	var conditions []string
	var args []interface{}

	if subject := strings.TrimSpace(filter.Subject); subject != "" {
		conditions = append(conditions, fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(t.subjects) AS s(name) WHERE LOWER(s.name) = LOWER($%d))", len(args)+1))
		args = append(args, subject)
	}
	if location := strings.TrimSpace(filter.Location); location != "" {
		conditions = append(conditions, fmt.Sprintf(`LOWER(COALESCE(t.location, '')) LIKE $%d ESCAPE '\'`, len(args)+1))
		args = append(args, "%"+escapeLike(strings.ToLower(location))+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = defaultSearchLimit
	}

	query := fmt.Sprintf(`SELECT t.id, t.headline, t.bio, t.subjects, t.hourly_rate, t.years_experience, t.rating, t.is_top_rated, t.is_new, t.location, t.user_id, u.first_name, u.last_name, u.profile_picture %s ORDER BY t.is_top_rated DESC, t.rating DESC NULLS LAST, t.created_at DESC LIMIT %d`, base, limit)

	var rows []tutorRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("search tutors: %w", err)
	}

	tutors := make([]models.Tutor, 0, len(rows))
	for _, row := range rows {
		tutors = append(tutors, row.toModel())
	}
	return tutors, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE treat s literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Ping verifies database connectivity for readiness probes.
func (r *TutorRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

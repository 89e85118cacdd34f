package repository

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/tutor-finder/internal/models"
)

// Schema creates the catalog tables when they do not exist.
//
//go:embed schema.sql
var Schema string

// CatalogWriter loads catalog data. It is used by the seeder only.
type CatalogWriter struct {
	db *sqlx.DB
}

// NewCatalogWriter constructs a CatalogWriter.
func NewCatalogWriter(db *sqlx.DB) *CatalogWriter {
	return &CatalogWriter{db: db}
}

// ApplySchema runs the embedded schema.
func (w *CatalogWriter) ApplySchema(ctx context.Context) error {
	if _, err := w.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Load inserts subjects and tutors in one transaction. With reset the
// existing catalog is removed first. Subjects already present are skipped.
func (w *CatalogWriter) Load(ctx context.Context, subjects []string, tutors []models.Tutor, reset bool) (err error) {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if reset {
		if _, err = tx.ExecContext(ctx, `TRUNCATE tutors, users, subjects`); err != nil {
			return fmt.Errorf("reset catalog: %w", err)
		}
	}

	now := time.Now().UTC()
	for _, name := range subjects {
		subject := models.Subject{ID: uuid.NewString(), Name: name, CreatedAt: now}
		if _, err = tx.NamedExecContext(ctx, `INSERT INTO subjects (id, name, created_at) VALUES (:id, :name, :created_at) ON CONFLICT (name) DO NOTHING`, &subject); err != nil {
			return fmt.Errorf("insert subject %s: %w", name, err)
		}
	}

	for i := range tutors {
		if err = insertTutor(ctx, tx, &tutors[i], now); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog load: %w", err)
	}
	return nil
}

func insertTutor(ctx context.Context, tx *sqlx.Tx, tutor *models.Tutor, now time.Time) error {
	if tutor.ID == "" {
		tutor.ID = uuid.NewString()
	}

	var userID *string
	if tutor.User != nil {
		id := uuid.NewString()
		userID = &id
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO users (id, first_name, last_name, profile_picture, created_at) VALUES ($1, $2, $3, $4, $5)`,
			id, tutor.User.FirstName, tutor.User.LastName, tutor.User.ProfilePicture, now,
		); err != nil {
			return fmt.Errorf("insert user for tutor %s: %w", tutor.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO tutors (id, user_id, headline, bio, subjects, hourly_rate, years_experience, rating, is_top_rated, is_new, location, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		tutor.ID, userID, tutor.Headline, tutor.Bio, pq.Array(tutor.Subjects), tutor.HourlyRate,
		tutor.YearsExperience, tutor.Rating, tutor.IsTopRated, tutor.IsNew, nullable(tutor.Location), now,
	); err != nil {
		return fmt.Errorf("insert tutor %s: %w", tutor.ID, err)
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SubjectRepository reads the subject catalogue.
type SubjectRepository struct {
	db *sqlx.DB
}

// NewSubjectRepository constructs a SubjectRepository.
func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// ListNames returns every subject name in alphabetical order.
func (r *SubjectRepository) ListNames(ctx context.Context) ([]string, error) {
	const query = `SELECT name FROM subjects ORDER BY LOWER(name) ASC`
	names := []string{}
	if err := r.db.SelectContext(ctx, &names, query); err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return names, nil
}

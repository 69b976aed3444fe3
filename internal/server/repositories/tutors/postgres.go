package tutors

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coursehub/internal/dbx"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, tutor *models.TutorProfile) (*models.TutorProfile, error) {
	query :=
		`INSERT INTO tutors (name, subject, bio)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, tutor.Name, tutor.Subject, tutor.Bio).Scan(&tutor.ID, &tutor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tutor, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.TutorProfile, error) {
	query :=
		`SELECT id, name, subject, bio, created_at FROM tutors
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.TutorProfile{}
	for rows.Next() {
		var t models.TutorProfile
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Bio, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

var _ Repository = (*PostgresRepository)(nil)

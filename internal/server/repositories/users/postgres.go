package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/dbx"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (first_name, last_name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.EnrolledCourses = []models.EnrolledCourse{}
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, first_name, last_name, email, password_hash, created_at FROM users
		 WHERE email = $1
		 `
	return r.getUser(ctx, query, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrUserNotFound
	}

	query :=
		`SELECT id, first_name, last_name, email, password_hash, created_at FROM users
		 WHERE id = $1
		 `
	user, err := r.getUser(ctx, query, id)
	if err != nil {
		return nil, err
	}

	user.EnrolledCourses, err = listCourses(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) getUser(ctx context.Context, query string, arg string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

// AddCourse locks the user row, then relies on the (user_id, course_id)
// primary key: a conflicting insert affects zero rows.
func (r *PostgresRepository) AddCourse(ctx context.Context, userID string, course models.EnrolledCourse) ([]models.EnrolledCourse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrUserNotFound
	}

	return dbx.WithTxResult(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) ([]models.EnrolledCourse, error) {
		if err := lockUser(ctx, tx, userID); err != nil {
			return nil, err
		}

		query :=
			`INSERT INTO enrolled_courses (user_id, course_id, title, enrolled_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id, course_id) DO NOTHING
			 `
		res, err := tx.ExecContext(ctx, query, userID, course.CourseID, course.Title, course.EnrolledAt)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if n == 0 {
			return nil, common.ErrAlreadyEnrolled
		}

		return listCourses(ctx, tx, userID)
	})
}

func (r *PostgresRepository) RemoveCourse(ctx context.Context, userID, courseID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return common.ErrUserNotFound
	}

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := lockUser(ctx, tx, userID); err != nil {
			return err
		}

		query :=
			`DELETE FROM enrolled_courses
			 WHERE user_id = $1 AND course_id = $2
			 `
		if _, err := tx.ExecContext(ctx, query, userID, courseID); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) ListCourses(ctx context.Context, userID string) ([]models.EnrolledCourse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, common.ErrUserNotFound
	}

	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return listCourses(ctx, r.db, userID)
}

func lockUser(ctx context.Context, db dbx.DBTX, userID string) error {
	var id string
	err := db.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrUserNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func listCourses(ctx context.Context, db dbx.DBTX, userID string) ([]models.EnrolledCourse, error) {
	query :=
		`SELECT course_id, title, enrolled_at FROM enrolled_courses
		 WHERE user_id = $1
		 ORDER BY seq
		 `

	rows, err := db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	courses := []models.EnrolledCourse{}
	for rows.Next() {
		var c models.EnrolledCourse
		if err := rows.Scan(&c.CourseID, &c.Title, &c.EnrolledAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		c.EnrolledAt = c.EnrolledAt.UTC()
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return courses, nil
}

var _ Repository = (*PostgresRepository)(nil)
